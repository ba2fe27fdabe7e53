package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bookflow/agentplane/pkg/cache"
	"github.com/bookflow/agentplane/pkg/guardrail"
	"github.com/bookflow/agentplane/pkg/llm"
	"github.com/bookflow/agentplane/pkg/metrics"
)

func (p *Pipeline) loggingMiddleware(ctx context.Context, inv *Invocation, next Handler) Result {
	log := p.logger.With(
		slog.String("request_id", inv.RequestID),
		slog.String("tenant_id", inv.Input.TenantID),
		slog.String("agent", inv.AgentName))
	log.Info("pipeline request started")

	res := next(ctx, inv)

	log.Info("pipeline request finished",
		slog.Bool("success", res.Success),
		slog.Bool("cached", res.Cached),
		slog.Duration("duration", p.now().UTC().Sub(inv.StartedAt)))
	return res
}

// rateLimitMiddleware sheds load with a typed rejection. A shed request is
// not a circuit-breaker error and consumes no window slot.
func (p *Pipeline) rateLimitMiddleware(ctx context.Context, inv *Invocation, next Handler) Result {
	if !p.limiter.Allow(inv.Input.TenantID, inv.AgentName) {
		return Result{Success: false, Message: ReasonRateLimited, SkipRemaining: true}
	}
	return next(ctx, inv)
}

func (p *Pipeline) guardrailMiddleware(ctx context.Context, inv *Invocation, next Handler) Result {
	verdict := p.guard.Validate(inv.Input.Query)
	if verdict.Accept {
		return next(ctx, inv)
	}

	language := inv.Input.Language
	if language == "" {
		language = guardrail.DetectLanguage(inv.Input.Query)
	}
	return Result{
		Success:       false,
		Message:       p.guard.RejectionMessage(language),
		SkipRemaining: true,
		Metadata:      map[string]interface{}{"guardrail_reason": verdict.Reason},
	}
}

// cacheMiddleware replays prior responses and single-flights the compute on
// a miss: concurrent identical misses share one downstream call.
func (p *Pipeline) cacheMiddleware(ctx context.Context, inv *Invocation, next Handler) Result {
	if p.cache == nil {
		return next(ctx, inv)
	}

	q := p.cacheQuery(inv)
	if hit, _ := p.cache.Get(ctx, q); hit != nil {
		metrics.CacheLookupsTotal.WithLabelValues(hit.Layer, "hit").Inc()
		return Result{
			Success:   true,
			Message:   hit.Content,
			Cached:    true,
			ModelUsed: hit.Model,
			Metadata: map[string]interface{}{
				"cache_layer": hit.Layer,
				"replayed":    true,
			},
			SkipRemaining: true,
		}
	}
	metrics.CacheLookupsTotal.WithLabelValues("exact", "miss").Inc()

	v, shared, _ := p.cache.Coalesce(cache.ExactKey(q), func() (any, error) {
		return next(ctx, inv), nil
	})
	res, ok := v.(Result)
	if !ok {
		return Result{Success: false, Message: ReasonInternalError}
	}

	if shared {
		res.Cached = true
		if res.Metadata == nil {
			res.Metadata = map[string]interface{}{}
		}
		res.Metadata["coalesced"] = true
		return res
	}
	if res.Success && !res.Cached && res.Message != "" {
		p.cache.Put(ctx, q, res.Message, res.ModelUsed)
	}
	return res
}

func (p *Pipeline) cacheQuery(inv *Invocation) cache.Query {
	system := ""
	if a, ok := p.registry.Get(inv.AgentName); ok {
		system = a.SystemPrompt()
	}
	model := inv.Model
	if model == "" {
		model = p.cfg.Provider.DefaultModel
	}
	return cache.Query{
		TenantID:    inv.Input.TenantID,
		Prompt:      inv.Input.Query,
		System:      system,
		Model:       model,
		Temperature: p.cfg.Provider.Temperature,
	}
}

// modelRouterMiddleware picks the model tier unless the request pinned one.
func (p *Pipeline) modelRouterMiddleware(ctx context.Context, inv *Invocation, next Handler) Result {
	plan, _ := inv.Input.Params["plan"].(string)
	inv.Tier = RouteTier(
		len([]rune(inv.Input.Query)),
		plan,
		p.failures.recent(inv.Input.TenantID, inv.AgentName))

	if inv.Model == "" {
		switch inv.Tier {
		case TierFast:
			inv.Model = p.cfg.Provider.FallbackModel
		default:
			inv.Model = p.cfg.Provider.DefaultModel
		}
	}
	return next(ctx, inv)
}

// agentExecute is the terminal step: breaker admission, agent invocation,
// and error classification.
func (p *Pipeline) agentExecute(ctx context.Context, inv *Invocation) Result {
	a, ok := p.registry.Get(inv.AgentName)
	if !ok {
		return Result{Success: false, Message: ReasonUnknownAgent}
	}

	allowed, reason, err := p.runtime.CanOperate(ctx, inv.Input.TenantID, inv.AgentName)
	if err != nil {
		p.logger.Error("breaker admission check failed",
			slog.String("request_id", inv.RequestID),
			slog.String("error", err.Error()))
		return Result{Success: false, Message: ReasonInternalError}
	}
	if !allowed {
		msg := reason
		if reason == "circuit_open" {
			msg = ReasonCircuitOpen
		}
		return Result{Success: false, Message: msg}
	}

	in := inv.Input
	params := map[string]any{"model": inv.Model, "tier": inv.Tier}
	for k, v := range inv.Input.Params {
		params[k] = v
	}
	in.Params = params

	out, err := a.Handle(ctx, in)
	if err != nil {
		return p.executeError(ctx, inv, err)
	}

	if err := p.runtime.RecordAction(ctx, in.TenantID, inv.AgentName, "invoke", true, 0); err != nil {
		p.logger.Warn("failed to record agent action",
			slog.String("request_id", inv.RequestID),
			slog.String("error", err.Error()))
	}

	modelUsed := out.ModelUsed
	if modelUsed == "" {
		modelUsed = inv.Model
	}
	return Result{
		Success:     true,
		Data:        out.Data,
		Message:     out.Message,
		Suggestions: out.Suggestions,
		Confidence:  out.Confidence,
		ModelUsed:   modelUsed,
	}
}

// executeError classifies an agent failure. Provider rate limiting and
// cancellation are not breaker errors; everything else counts one.
func (p *Pipeline) executeError(ctx context.Context, inv *Invocation, err error) Result {
	tenantID := inv.Input.TenantID

	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return Result{Success: false, Message: ReasonCancelled}
	case errors.Is(err, llm.ErrProviderRateLimited):
		return Result{Success: false, Message: "provider_rate_limited"}
	}

	p.failures.record(tenantID, inv.AgentName)
	if recErr := p.runtime.RecordFailure(ctx, tenantID, inv.AgentName, err); recErr != nil {
		p.logger.Warn("failed to record breaker failure",
			slog.String("request_id", inv.RequestID),
			slog.String("error", recErr.Error()))
	}

	message := "agent_error"
	if errors.Is(err, llm.ErrProviderUnavailable) || errors.Is(err, llm.ErrNotConfigured) {
		message = "provider_unavailable"
	}
	p.logger.Error("agent execution failed",
		slog.String("request_id", inv.RequestID),
		slog.String("agent", inv.AgentName),
		slog.String("error", err.Error()))
	return Result{Success: false, Message: message}
}
