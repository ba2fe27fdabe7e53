package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookflow/agentplane/ent"
	entoutreach "github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/agent/gapfill"
	"github.com/bookflow/agentplane/pkg/approval"
	"github.com/bookflow/agentplane/pkg/outreach"
	"github.com/bookflow/agentplane/pkg/scheduler"
	"github.com/bookflow/agentplane/pkg/services"
)

// Handlers binds the domain services to queue handler paths. The same
// dispatch backs the internal task HTTP endpoints.
type Handlers struct {
	orchestrator *gapfill.Orchestrator
	outreaches   *outreach.Service
	provider     outreach.Provider
	approvals    *approval.Service
	decisions    *services.DecisionService
	runtime      *agent.Runtime
	sched        *scheduler.Scheduler
	logger       *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(
	orchestrator *gapfill.Orchestrator,
	outreaches *outreach.Service,
	provider outreach.Provider,
	approvals *approval.Service,
	decisions *services.DecisionService,
	runtime *agent.Runtime,
	sched *scheduler.Scheduler,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		outreaches:   outreaches,
		provider:     provider,
		approvals:    approvals,
		decisions:    decisions,
		runtime:      runtime,
		sched:        sched,
		logger:       logger,
	}
}

// RegisterAll binds every handler path on the executor.
func (h *Handlers) RegisterAll(e *Executor) {
	e.Register(scheduler.HandlerAgentRun, h.AgentRun)
	e.Register(scheduler.HandlerOutreachSend, h.OutreachSend)
	e.Register(scheduler.HandlerCleanup, h.Cleanup)
}

// AgentRun executes one periodic agent pass. A saturated queue defers the
// pass with the orchestrator's backoff instead of failing the task.
func (h *Handlers) AgentRun(ctx context.Context, t *ent.Task) error {
	tenantID := payloadString(t, "tenant_id")
	agentName := payloadString(t, "agent_name")
	if tenantID == "" || agentName == "" {
		return Permanent(errors.New("agent_run task missing tenant_id or agent_name"))
	}

	if agentName != gapfill.AgentName {
		// Other agents ride the decision pipeline through the API surface;
		// they have no periodic tick yet.
		return Permanent(fmt.Errorf("no periodic runner for agent %q", agentName))
	}

	err := h.orchestrator.RunTenant(ctx, tenantID)
	if errors.Is(err, gapfill.ErrBackpressure) {
		return h.deferRun(ctx, t, tenantID, agentName)
	}
	return err
}

// deferRun re-enqueues the pass after the backpressure delay and completes
// the current task. The deferral count rides in the payload.
func (h *Handlers) deferRun(ctx context.Context, t *ent.Task, tenantID, agentName string) error {
	attempt := payloadInt(t, "defer_attempt")
	delay := gapfill.DeferDelay(attempt)
	h.logger.Info("agent run deferred under backpressure",
		slog.String("tenant_id", tenantID),
		slog.Duration("delay", delay))

	payload := map[string]interface{}{}
	for k, v := range t.Payload {
		payload[k] = v
	}
	payload["defer_attempt"] = attempt + 1

	name := fmt.Sprintf("%s:defer:%d", t.Name, attempt+1)
	return h.sched.Enqueue(ctx, t.Queue, name, scheduler.HandlerAgentRun, tenantID, payload, time.Now().UTC().Add(delay))
}

// OutreachSend delivers one pending outreach through the provider.
// Idempotent: a record already past pending completes without a send.
func (h *Handlers) OutreachSend(ctx context.Context, t *ent.Task) error {
	tenantID := payloadString(t, "tenant_id")
	outreachID := payloadString(t, "outreach_id")
	if tenantID == "" || outreachID == "" {
		return Permanent(errors.New("outreach_send task missing tenant_id or outreach_id"))
	}

	o, err := h.outreaches.Get(ctx, tenantID, outreachID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return Permanent(err)
		}
		return err
	}
	if o.Status != entoutreach.StatusPending {
		return nil
	}

	providerMessageID, err := h.provider.Send(ctx, o)
	if err != nil {
		if errors.Is(err, outreach.ErrSendRejected) {
			// Definitive provider failure: terminal for the outreach and a
			// breaker error for the agent.
			if markErr := h.outreaches.MarkFailed(ctx, tenantID, outreachID, err.Error()); markErr != nil &&
				!errors.Is(markErr, services.ErrStateConflict) {
				return markErr
			}
			if recErr := h.runtime.RecordFailure(ctx, tenantID, gapfill.AgentName, err); recErr != nil {
				h.logger.Warn("failed to record breaker failure", slog.String("error", recErr.Error()))
			}
			return Permanent(err)
		}
		return err // transient, retried by the queue
	}

	if err := h.outreaches.MarkSent(ctx, tenantID, outreachID, providerMessageID); err != nil {
		if errors.Is(err, services.ErrStateConflict) {
			return nil // raced with another delivery path
		}
		return err
	}
	return nil
}

// Cleanup runs one expiry sweep.
func (h *Handlers) Cleanup(ctx context.Context, t *ent.Task) error {
	kind := payloadString(t, "task_type")
	switch kind {
	case scheduler.CleanupExpiredApprovals:
		n, err := h.approvals.ExpireOverdue(ctx)
		if err != nil {
			return err
		}
		// Decisions share the 15-minute horizon with their approvals.
		d, err := h.decisions.ExpireOverdue(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		h.logger.Info("expiry sweep complete",
			slog.String("kind", kind),
			slog.Int("approvals", n),
			slog.Int("decisions", d))
		return nil
	case scheduler.CleanupExpiredOutreach:
		n, err := h.outreaches.ExpireOverdue(ctx)
		if err != nil {
			return err
		}
		h.logger.Info("expiry sweep complete", slog.String("kind", kind), slog.Int("expired", n))
		return nil
	case scheduler.CleanupExpiredGaps:
		n, err := h.orchestrator.ReconcileExpired(ctx)
		if err != nil {
			return err
		}
		h.logger.Info("expiry sweep complete", slog.String("kind", kind), slog.Int("expired", n))
		return nil
	default:
		return Permanent(fmt.Errorf("unknown cleanup kind %q", kind))
	}
}

func payloadString(t *ent.Task, key string) string {
	if t.Payload == nil {
		return ""
	}
	s, _ := t.Payload[key].(string)
	return s
}

func payloadInt(t *ent.Task, key string) int {
	if t.Payload == nil {
		return 0
	}
	switch v := t.Payload[key].(type) {
	case int:
		return v
	case float64: // JSON round-trip
		return int(v)
	default:
		return 0
	}
}
