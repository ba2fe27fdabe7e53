package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/task"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// retryBaseDelay is the backoff base for requeued attempts: 30s, 60s, 120s.
const retryBaseDelay = 30 * time.Second

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor *Executor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor *Executor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. The current
// task completes before the worker exits.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	t, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", t.ID, "handler", t.Handler, "worker_id", w.id)
	log.Info("Task claimed", "attempt", t.Attempts)

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	w.pool.RegisterTask(t.ID, cancelTask)
	defer w.pool.UnregisterTask(t.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	go w.runHeartbeat(heartbeatCtx, t.ID)

	execErr := w.executor.Execute(taskCtx, t)
	cancelHeartbeat()

	if execErr == nil && taskCtx.Err() != nil {
		execErr = taskCtx.Err()
	}

	// Terminal update uses the background context; taskCtx may be dead.
	if err := w.settle(context.Background(), t, execErr); err != nil {
		log.Error("Failed to settle task", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	if execErr != nil {
		log.Warn("Task attempt failed", "error", execErr.Error())
	} else {
		log.Info("Task completed")
	}
	return nil
}

// claimNextTask atomically claims the next due pending task using
// FOR UPDATE SKIP LOCKED, FIFO by scheduled time.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	t, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.ScheduledAtLTE(now),
		).
		Order(ent.Asc(task.FieldScheduledAt), ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	t, err = t.Update().
		SetStatus(task.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return t, nil
}

// runHeartbeat refreshes the claim for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// settle writes the task's post-attempt state: completed, failed, or back to
// pending with backoff for another attempt.
func (w *Worker) settle(ctx context.Context, t *ent.Task, execErr error) error {
	now := time.Now()

	if execErr == nil {
		metrics.TasksProcessedTotal.WithLabelValues(t.Queue, "completed").Inc()
		return w.client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusCompleted).
			SetCompletedAt(now).
			Exec(ctx)
	}

	var perm *PermanentError
	exhausted := t.Attempts >= t.MaxAttempts
	if errors.As(execErr, &perm) || exhausted {
		metrics.TasksProcessedTotal.WithLabelValues(t.Queue, "failed").Inc()
		return w.client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusFailed).
			SetCompletedAt(now).
			SetLastError(execErr.Error()).
			Exec(ctx)
	}

	metrics.TasksProcessedTotal.WithLabelValues(t.Queue, "retried").Inc()
	return w.client.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusPending).
		SetLastError(execErr.Error()).
		ClearPodID().
		SetScheduledAt(now.Add(retryDelay(t.Attempts))).
		Exec(ctx)
}

// retryDelay doubles per consumed attempt: 30s after the first, then 60s,
// then 120s.
func retryDelay(attempts int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempts; i++ {
		d *= 2
	}
	return d
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
