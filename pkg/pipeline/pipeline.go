// Package pipeline composes the fixed middleware chain around agent
// execution:
//
//	logging → rate-limit → guardrail → cache → model-router → agent-execute
//
// The pipeline is the error boundary: agent and middleware failures become
// structured results, never panics or errors propagating to the transport.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/cache"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/guardrail"
	"github.com/bookflow/agentplane/pkg/metrics"
)

// Result is what one pipeline invocation produced.
type Result struct {
	Success       bool                   `json:"success"`
	Data          map[string]any         `json:"data,omitempty"`
	Message       string                 `json:"message,omitempty"`
	Cached        bool                   `json:"cached"`
	SkipRemaining bool                   `json:"-"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	Suggestions   []string               `json:"suggestions,omitempty"`
	Confidence    float64                `json:"confidence"`
	ModelUsed     string                 `json:"model_used,omitempty"`
}

// Failure reasons carried in Result.Message for machine handling.
const (
	ReasonRateLimited   = "rate_limited"
	ReasonCircuitOpen   = "circuit_open"
	ReasonUnknownAgent  = "unknown_agent"
	ReasonCancelled     = "cancelled"
	ReasonInternalError = "internal_error"
)

// Invocation is the mutable per-request state the middlewares share.
type Invocation struct {
	AgentName string
	Input     agent.Input
	RequestID string
	Model     string
	Tier      string
	StartedAt time.Time
}

// Handler runs the remainder of the chain.
type Handler func(ctx context.Context, inv *Invocation) Result

// Middleware wraps the rest of the chain. Not calling next short-circuits.
type Middleware func(ctx context.Context, inv *Invocation, next Handler) Result

// Pipeline is the fixed chain, assembled once at startup.
type Pipeline struct {
	registry *agent.Registry
	runtime  *agent.Runtime
	guard    *guardrail.Guardrail
	cache    *cache.Cache
	limiter  *Limiter
	failures *failureTracker
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time

	chain Handler
}

// New assembles the pipeline.
func New(registry *agent.Registry, runtime *agent.Runtime, guard *guardrail.Guardrail, responseCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *Pipeline {
	p := &Pipeline{
		registry: registry,
		runtime:  runtime,
		guard:    guard,
		cache:    responseCache,
		limiter:  NewLimiter(cfg.Pipeline.RateLimitPerMinute, cfg.Pipeline.RateLimitPerHour),
		failures: newFailureTracker(),
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}

	middlewares := []Middleware{
		p.loggingMiddleware,
		p.rateLimitMiddleware,
		p.guardrailMiddleware,
		p.cacheMiddleware,
		p.modelRouterMiddleware,
	}
	h := p.agentExecute
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		next := h
		h = func(ctx context.Context, inv *Invocation) Result {
			return mw(ctx, inv, next)
		}
	}
	p.chain = h
	return p
}

// Execute runs one request through the chain. Panics are absorbed into an
// internal-error result; a cancelled context yields a cancelled result.
func (p *Pipeline) Execute(ctx context.Context, agentName string, in agent.Input) (res Result) {
	inv := &Invocation{
		AgentName: agentName,
		Input:     in,
		RequestID: uuid.New().String(),
		StartedAt: p.now().UTC(),
	}
	if pinned, ok := in.Params["model"].(string); ok && pinned != "" {
		inv.Model = pinned
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panic recovered",
				slog.String("request_id", inv.RequestID),
				slog.String("agent", agentName),
				slog.Any("panic", r))
			res = Result{Success: false, Message: ReasonInternalError}
		}
	}()

	res = p.chain(ctx, inv)

	if !res.Success && errors.Is(ctx.Err(), context.Canceled) {
		res.Message = ReasonCancelled
	}

	outcome := "success"
	if !res.Success {
		outcome = "failure"
	}
	metrics.PipelineRequestsTotal.WithLabelValues(agentName, outcome).Inc()
	metrics.PipelineDurationSeconds.WithLabelValues(agentName).
		Observe(p.now().UTC().Sub(inv.StartedAt).Seconds())
	return res
}
