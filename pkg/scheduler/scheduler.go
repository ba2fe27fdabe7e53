// Package scheduler enqueues deferred work onto the database task queue:
// periodic agent runs, outreach sends, and cleanup sweeps. Names are
// deterministic so repeated enqueues of the same logical task collapse.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/agentstate"
	enttask "github.com/bookflow/agentplane/ent/task"
	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/metrics"
)

// Scheduler enqueues tasks.
type Scheduler struct {
	client  *ent.Client
	runtime *agent.Runtime
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
}

// New creates the scheduler.
func New(client *ent.Client, runtime *agent.Runtime, cfg *config.Config, logger *slog.Logger) *Scheduler {
	if client == nil {
		panic("New: client must not be nil")
	}
	return &Scheduler{
		client:  client,
		runtime: runtime,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Enqueue creates a task with an optional earliest-execution time. A live
// task with the same name already in the queue absorbs the enqueue.
func (s *Scheduler) Enqueue(ctx context.Context, queue, name, handler, tenantID string, payload map[string]interface{}, scheduleAt time.Time) error {
	if scheduleAt.IsZero() {
		scheduleAt = s.now().UTC()
	}

	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetQueue(queue).
		SetHandler(handler).
		SetScheduledAt(scheduleAt)
	if tenantID != "" {
		create.SetTenantID(tenantID)
	}
	if len(payload) > 0 {
		create.SetPayload(payload)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			s.logger.Debug("duplicate enqueue collapsed", slog.String("task", name))
			return nil
		}
		return fmt.Errorf("failed to enqueue task %s: %w", name, err)
	}
	return nil
}

// ScheduleAgentRun enqueues a periodic agent execution. Skipped when the
// agent is paused or its breaker is open; the earliest-execution time
// honors the agent's minimum run interval.
func (s *Scheduler) ScheduleAgentRun(ctx context.Context, tenantID, agentName, action string, data map[string]interface{}, delay time.Duration) error {
	state, err := s.runtime.State(ctx, tenantID, agentName)
	if err != nil {
		return err
	}
	if state.Status == agentstate.StatusPaused {
		s.logger.Debug("agent run not scheduled",
			slog.String("agent", agentName),
			slog.String("reason", "paused"))
		return nil
	}
	if state.BreakerState == agentstate.BreakerStateOpen {
		s.logger.Debug("agent run not scheduled",
			slog.String("agent", agentName),
			slog.String("reason", "circuit_open"))
		return nil
	}

	now := s.now().UTC()
	at := now.Add(delay)
	if min := s.minInterval(agentName); min > 0 && state.LastExecution != nil {
		if earliest := state.LastExecution.Add(min); earliest.After(at) {
			at = earliest
		}
	}

	payload := map[string]interface{}{
		"tenant_id":  tenantID,
		"agent_name": agentName,
		"action":     action,
	}
	if len(data) > 0 {
		payload["data"] = data
	}
	return s.Enqueue(ctx, QueueAgents, agentRunName(tenantID, agentName, action), HandlerAgentRun, tenantID, payload, at)
}

// ScheduleOutreachSend enqueues the provider send for one outreach.
func (s *Scheduler) ScheduleOutreachSend(ctx context.Context, tenantID, outreachID, channel string, delay time.Duration) error {
	payload := map[string]interface{}{
		"tenant_id":   tenantID,
		"outreach_id": outreachID,
		"channel":     channel,
	}
	return s.Enqueue(ctx, QueueOutreach, outreachSendName(outreachID), HandlerOutreachSend, tenantID, payload, s.now().UTC().Add(delay))
}

// ScheduleCleanup enqueues an expiry sweep. tenantID may be empty for a
// global sweep.
func (s *Scheduler) ScheduleCleanup(ctx context.Context, kind, tenantID string) error {
	payload := map[string]interface{}{"task_type": kind}
	if tenantID != "" {
		payload["tenant_id"] = tenantID
	}
	return s.Enqueue(ctx, QueueMaintenance, cleanupName(kind, tenantID), HandlerCleanup, tenantID, payload, time.Time{})
}

// ScheduleTick enqueues a run for every active (tenant, agent) pair.
// Per-pair failures are logged and do not stop the sweep; returns the
// number of runs scheduled.
func (s *Scheduler) ScheduleTick(ctx context.Context) (int, error) {
	states, err := s.client.AgentState.Query().
		Where(agentstate.StatusEQ(agentstate.StatusActive)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active agent states: %w", err)
	}

	scheduled := 0
	for _, st := range states {
		if err := s.ScheduleAgentRun(ctx, st.TenantID, st.AgentName, "tick", nil, 0); err != nil {
			s.logger.Warn("tick not scheduled",
				slog.String("tenant_id", st.TenantID),
				slog.String("agent", st.AgentName),
				slog.String("error", err.Error()))
			continue
		}
		scheduled++
	}
	return scheduled, nil
}

// Saturated reports whether the pending backlog is above the configured
// saturation depth. Producers defer instead of piling on.
func (s *Scheduler) Saturated(ctx context.Context) (bool, error) {
	depth, err := s.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusPending)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to measure queue depth: %w", err)
	}
	metrics.QueueDepth.WithLabelValues("all").Set(float64(depth))
	return depth > s.cfg.Queue.SaturationDepth, nil
}

func (s *Scheduler) minInterval(agentName string) time.Duration {
	if ac, ok := s.cfg.Agents[agentName]; ok {
		return ac.MinRunInterval
	}
	return 0
}
