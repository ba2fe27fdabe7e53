package gapfill

import (
	"context"
	"errors"

	"github.com/bookflow/agentplane/pkg/agent"
)

// InvokeAgent adapts the orchestrator to the agent registry so a gap-fill
// pass can be triggered through the decision pipeline (breaker admission,
// rate limits, and logging included). Periodic passes arrive through the
// task queue instead; both paths run the same orchestrator.
type InvokeAgent struct {
	orchestrator *Orchestrator
}

// NewInvokeAgent wraps an orchestrator for registry use.
func NewInvokeAgent(o *Orchestrator) *InvokeAgent {
	return &InvokeAgent{orchestrator: o}
}

func (a *InvokeAgent) Name() string { return AgentName }

func (a *InvokeAgent) Description() string {
	return "Fills open schedule gaps by inviting the best-scoring customers."
}

func (a *InvokeAgent) SystemPrompt() string { return composeSystemPrompt }

// Handle runs one gap-fill pass for the tenant. Backpressure is a business
// outcome, not an agent failure: the pass is rescheduled by the queue.
func (a *InvokeAgent) Handle(ctx context.Context, in agent.Input) (*agent.Output, error) {
	err := a.orchestrator.RunTenant(ctx, in.TenantID)
	if errors.Is(err, ErrBackpressure) {
		return &agent.Output{
			Message: "task queue saturated, pass deferred",
			Data:    map[string]any{"status": "deferred"},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent.Output{
		Message: "gap-fill pass completed",
		Data:    map[string]any{"status": "completed"},
	}, nil
}
