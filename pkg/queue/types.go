// Package queue is the database-backed worker pool. Tasks are claimed with
// FOR UPDATE SKIP LOCKED, heartbeated while running, retried with backoff on
// transient failure, and recovered when their worker disappears.
package queue

import (
	"errors"
	"time"
)

// Poll loop sentinels.
var (
	ErrNoTasksAvailable = errors.New("no tasks available")
	ErrAtCapacity       = errors.New("at max concurrent tasks")
)

// PermanentError wraps a handler error that must not be retried regardless
// of remaining attempts.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

// Unwrap exposes the wrapped error to errors.Is/As.
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

// PoolHealth is the pool's health snapshot, served by the health endpoint.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan,omitempty"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
