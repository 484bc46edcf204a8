// Package scheduler runs a task repeatedly until it is stopped, its context
// is cancelled or the task reports that there is nothing left to do.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")

	// ErrStop is returned by a task to end the loop without logging a failure.
	ErrStop = errors.New("scheduler: stop requested by task")
)
