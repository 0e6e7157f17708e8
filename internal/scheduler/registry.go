package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Registry maintains the set of scheduled jobs and runs the due-check.
// A single mutex serializes every operation; jobs execute sequentially
// inside the poll loop, never in parallel.
type Registry struct {
	mu     sync.Mutex
	db     *gorm.DB
	jobs   []*Job // registration order
	byName map[string]*Job
	stop   chan struct{}

	// nowFn is an indirection so tests can drive the daemon clock.
	nowFn func() time.Time
}

// NewRegistry creates an empty job registry sharing the given database
// handle with every job body.
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		db:     db,
		byName: make(map[string]*Job),
		nowFn:  time.Now,
	}
}

// Register adds a named job with the given trigger, enabled by default.
func (r *Registry) Register(name string, trigger Trigger, fn JobFunc) error {
	if !trigger.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidTrigger, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("job %q already registered", name)
	}

	job := &Job{
		Name:    name,
		Trigger: trigger,
		Enabled: true,
		fn:      fn,
	}
	r.jobs = append(r.jobs, job)
	r.byName[name] = job
	log.Printf("scheduler: registered job %s (%s)", name, trigger)

	return nil
}

// RunPending executes every job whose trigger is due at now and returns the
// number of jobs that ran successfully. A failing job increments its error
// counter and is logged, but never halts the batch and never advances its
// last_run, so it stays due for the next check.
func (r *Registry) RunPending(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	executed := 0
	for _, job := range r.jobs {
		if !job.shouldRun(now) {
			continue
		}
		if err := r.execute(job, now); err != nil {
			log.Printf("scheduler: %v", err)
			continue
		}
		executed++
	}

	return executed
}

// RunNow executes a single named job immediately, bypassing the trigger
// check. Unlike RunPending, a body failure is returned to the caller.
func (r *Registry) RunNow(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	return r.execute(job, r.nowFn())
}

// execute runs the job body. last_run advances only on success so a failed
// run is not silently marked done.
func (r *Registry) execute(job *Job, now time.Time) error {
	log.Printf("scheduler: executing job %s", job.Name)

	if err := runBody(job.fn, r.db, now); err != nil {
		job.ErrorCount++
		return &JobError{Job: job.Name, Err: err}
	}

	t := now
	job.LastRun = &t
	job.RunCount++
	return nil
}

// runBody invokes the job function, converting a panic into an error so one
// misbehaving job cannot take down the poll loop.
func runBody(fn JobFunc, db *gorm.DB, now time.Time) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(db, now)
}

// Enable marks a job enabled. Returns false if the name is unknown.
func (r *Registry) Enable(name string) bool {
	return r.setEnabled(name, true)
}

// Disable marks a job disabled. Returns false if the name is unknown.
func (r *Registry) Disable(name string) bool {
	return r.setEnabled(name, false)
}

func (r *Registry) setEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.byName[name]
	if !ok {
		return false
	}
	job.Enabled = enabled
	log.Printf("scheduler: job %s enabled=%v", name, enabled)
	return true
}

// Status returns the snapshot of a single job.
func (r *Registry) Status(name string) (JobStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.byName[name]
	if !ok {
		return JobStatus{}, fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	return job.status(), nil
}

// AllStatuses returns snapshots of every job in registration order.
func (r *Registry) AllStatuses() []JobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]JobStatus, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job.status())
	}
	return out
}

// Start launches the poll loop checking for due jobs on the given tick.
// Job bodies run inline in the loop, so a hung job blocks the next cycle.
func (r *Registry) Start(tick time.Duration) {
	r.stop = make(chan struct{})

	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				if n := r.RunPending(r.nowFn()); n > 0 {
					log.Printf("scheduler: executed %d pending jobs", n)
				}
			}
		}
	}()

	log.Printf("scheduler: daemon started (check interval %s)", tick)
}

// Stop shuts down the poll loop. It does not interrupt a job already running.
func (r *Registry) Stop() {
	if r.stop != nil {
		close(r.stop)
	}
}
