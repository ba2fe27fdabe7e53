package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks. All pods run
// this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress tasks with stale heartbeats and
// returns them to pending for another attempt, or fails them when attempts
// are exhausted.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, t := range orphans {
		if err := p.recoverOrphanedTask(ctx, t); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, t *ent.Task) error {
	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}
	lastHeartbeat := "unknown"
	if t.LastHeartbeatAt != nil {
		lastHeartbeat = t.LastHeartbeatAt.Format(time.RFC3339)
	}
	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	return requeueOrFail(ctx, t, reason)
}

// requeueOrFail returns an interrupted task to pending when attempts remain,
// otherwise marks it failed.
func requeueOrFail(ctx context.Context, t *ent.Task, reason string) error {
	now := time.Now()
	if t.Attempts >= t.MaxAttempts {
		err := t.Update().
			SetStatus(task.StatusFailed).
			SetCompletedAt(now).
			SetLastError(reason).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark task failed: %w", err)
		}
		slog.Warn("Orphaned task failed, attempts exhausted", "task_id", t.ID)
		return nil
	}

	err := t.Update().
		SetStatus(task.StatusPending).
		SetLastError(reason).
		ClearPodID().
		SetScheduledAt(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue task: %w", err)
	}
	slog.Info("Orphaned task requeued", "task_id", t.ID, "attempt", t.Attempts)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of tasks owned by this
// pod that were in progress when it previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, t := range orphans {
		reason := fmt.Sprintf("Orphaned: pod %s restarted while task was in progress", podID)
		if err := requeueOrFail(ctx, t, reason); err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "task_id", t.ID)
	}

	return nil
}
