package scheduler

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrJobNotFound is returned when no registered job has the given name.
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidTrigger is returned when a trigger sets neither an interval
	// nor a daily time, or an interval that is not positive.
	ErrInvalidTrigger = errors.New("invalid job trigger")
)

// JobError wraps a failure raised inside a job body. It is recorded on the
// job's error counter and surfaced from RunNow, but never halts RunPending.
type JobError struct {
	Job string
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: %v", e.Job, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// JobFunc is a job body. It receives the shared database handle and the
// time of the due-check that triggered it.
type JobFunc func(db *gorm.DB, now time.Time) error

// Trigger is the rule determining when a job becomes due: a fixed interval
// or a specific daily clock time, never both.
type Trigger struct {
	interval time.Duration
	hour     int
	minute   int
	daily    bool
}

// Every returns an interval trigger firing once per given number of minutes.
func Every(minutes int) Trigger {
	return Trigger{interval: time.Duration(minutes) * time.Minute}
}

// DailyAt returns a trigger firing once per calendar day at or after the
// given clock time.
func DailyAt(hour, minute int) Trigger {
	return Trigger{hour: hour, minute: minute, daily: true}
}

func (t Trigger) valid() bool {
	if t.daily {
		return t.interval == 0 && t.hour >= 0 && t.hour < 24 && t.minute >= 0 && t.minute < 60
	}
	return t.interval > 0
}

func (t Trigger) String() string {
	if t.daily {
		return fmt.Sprintf("daily at %02d:%02d", t.hour, t.minute)
	}
	return fmt.Sprintf("every %dm", int(t.interval.Minutes()))
}

// Job is a named scheduled job with its trigger and run bookkeeping.
// All mutation goes through the owning Registry.
type Job struct {
	Name       string
	Trigger    Trigger
	Enabled    bool
	LastRun    *time.Time
	RunCount   int
	ErrorCount int

	fn JobFunc
}

// shouldRun evaluates the trigger-due predicate against now.
func (j *Job) shouldRun(now time.Time) bool {
	if !j.Enabled {
		return false
	}
	// Never run before
	if j.LastRun == nil {
		return true
	}

	if !j.Trigger.daily {
		return !now.Before(j.LastRun.Add(j.Trigger.interval))
	}

	// Daily job: due once we pass today's scheduled time, unless the last
	// run already happened at or after it. This re-arms the next day
	// without any day-rollover flag.
	scheduled := time.Date(now.Year(), now.Month(), now.Day(), j.Trigger.hour, j.Trigger.minute, 0, 0, now.Location())
	return !now.Before(scheduled) && j.LastRun.Before(scheduled)
}

// JobStatus is the externally visible snapshot of a job.
type JobStatus struct {
	Name       string     `json:"name"`
	Enabled    bool       `json:"enabled"`
	LastRun    *time.Time `json:"last_run"`
	RunCount   int        `json:"run_count"`
	ErrorCount int        `json:"error_count"`
	Trigger    string     `json:"trigger"`
}

func (j *Job) status() JobStatus {
	return JobStatus{
		Name:       j.Name,
		Enabled:    j.Enabled,
		LastRun:    j.LastRun,
		RunCount:   j.RunCount,
		ErrorCount: j.ErrorCount,
		Trigger:    j.Trigger.String(),
	}
}
