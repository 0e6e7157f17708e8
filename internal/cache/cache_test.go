package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1, time.Minute)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c := New[string, string]()
	c.Set("short", "soon gone", 30*time.Second)
	c.Set("forever", "stays", 0)

	v, ok := c.Get("short")
	require.True(t, ok)
	assert.Equal(t, "soon gone", v)

	now = func() time.Time { return base.Add(31 * time.Second) }

	_, ok = c.Get("short")
	assert.False(t, ok)

	_, ok = c.Get("forever")
	assert.True(t, ok)
}

func TestLenAndPurgeExpired(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c := New[int, int]()
	c.Set(1, 1, 10*time.Second)
	c.Set(2, 2, time.Hour)
	c.Set(3, 3, 0)
	assert.Equal(t, 3, c.Len())

	now = func() time.Time { return base.Add(time.Minute) }
	assert.Equal(t, 2, c.Len())

	c.PurgeExpired()
	c.mu.RLock()
	stored := len(c.items)
	c.mu.RUnlock()
	assert.Equal(t, 2, stored)
}

func TestOverwriteAndDelete(t *testing.T) {
	c := New[string, int]()
	c.Set("k", 1, time.Minute)
	c.Set("k", 2, time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n%10, n, time.Minute)
			c.Get(n % 10)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}
