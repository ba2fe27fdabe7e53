package config

import "time"

// QueueConfig contains task queue and worker pool configuration.
// These values control how tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tasks.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of concurrently executing
	// tasks across ALL replicas/pods. Enforced by a database COUNT(*).
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum time a single task may execute.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// HeartbeatInterval is how often a worker refreshes the claim
	// heartbeat on its current task.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a task can go without a heartbeat
	// before it is considered orphaned and returned to pending.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// SaturationDepth is the pending-task count above which the queue
	// reports backpressure to producers.
	SaturationDepth int `yaml:"saturation_depth"`
}
