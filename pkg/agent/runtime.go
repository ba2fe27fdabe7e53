package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bookflow/agentplane/ent"
	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/pkg/audit"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/events"
	"github.com/bookflow/agentplane/pkg/metrics"
	"github.com/bookflow/agentplane/pkg/services"
)

// conflictRetries bounds the version-guarded update loop. Contention on one
// (tenant, agent) record is rare; three attempts is plenty.
const conflictRetries = 3

// Runtime governs agent execution: breaker state, budgets, and counters.
// All state lives on the AgentState record; every mutation is a conditional
// update guarded by the record version.
type Runtime struct {
	client    *ent.Client
	cfg       *config.Config
	publisher *events.Publisher
	auditor   *audit.Writer
	logger    *slog.Logger
	now       func() time.Time
}

// NewRuntime creates the agent runtime.
func NewRuntime(client *ent.Client, cfg *config.Config, publisher *events.Publisher, auditor *audit.Writer, logger *slog.Logger) *Runtime {
	if client == nil {
		panic("NewRuntime: client must not be nil")
	}
	return &Runtime{
		client:    client,
		cfg:       cfg,
		publisher: publisher,
		auditor:   auditor,
		logger:    logger,
		now:       time.Now,
	}
}

// CanOperate reports whether the agent may act for the tenant right now.
// Consults the pause flag and the circuit breaker; an elapsed cooldown moves
// the breaker to half_open and admits this caller as the single probe.
func (r *Runtime) CanOperate(ctx context.Context, tenantID, agentName string) (bool, string, error) {
	now := r.now().UTC()

	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := r.loadOrCreate(ctx, tenantID, agentName)
		if err != nil {
			return false, "", err
		}

		if state.Status == agentstate.StatusPaused {
			return false, "paused", nil
		}

		admission, next := Admit(breakerSnapshot(state), now)
		if snapshotEqual(breakerSnapshot(state), next) {
			return admission.Allowed, admission.Reason, nil
		}

		// The admit decision changed breaker state (open → half_open probe);
		// persist it so exactly one caller wins the probe slot.
		n, err := r.breakerUpdate(state, next).Save(ctx)
		if err != nil {
			return false, "", fmt.Errorf("failed to persist breaker transition: %w", err)
		}
		if n == 1 {
			return admission.Allowed, admission.Reason, nil
		}
		// Lost the race; re-read and re-decide.
	}
	return false, "", services.ErrConcurrentModification
}

// CheckRateLimit checks the hourly or daily action budget and, when allowed,
// consumes one slot atomically.
func (r *Runtime) CheckRateLimit(ctx context.Context, tenantID, agentName string, window Window) (BudgetDecision, error) {
	now := r.now().UTC()

	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := r.loadOrCreate(ctx, tenantID, agentName)
		if err != nil {
			return BudgetDecision{}, err
		}

		var (
			decision BudgetDecision
			next     WindowState
		)
		switch window {
		case WindowDaily:
			decision, next = CheckBudget(
				WindowState{Start: state.DayWindowStart, Count: state.DayWindowCount},
				state.MaxDailyActions, 24*time.Hour, now)
		default:
			decision, next = CheckBudget(
				WindowState{Start: state.HourWindowStart, Count: state.HourWindowCount},
				state.MaxHourlyActions, time.Hour, now)
		}
		if !decision.Allowed {
			return decision, nil
		}

		update := r.client.AgentState.Update().
			Where(agentstate.IDEQ(state.ID), agentstate.VersionEQ(state.Version)).
			AddVersion(1)
		if window == WindowDaily {
			update.SetNillableDayWindowStart(next.Start).SetDayWindowCount(next.Count)
		} else {
			update.SetNillableHourWindowStart(next.Start).SetHourWindowCount(next.Count)
		}

		n, err := update.Save(ctx)
		if err != nil {
			return BudgetDecision{}, fmt.Errorf("failed to consume budget slot: %w", err)
		}
		if n == 1 {
			return decision, nil
		}
	}
	return BudgetDecision{}, services.ErrConcurrentModification
}

// RecordAction atomically bumps the daily counters for one completed action.
// The first action of a new day resets the counters (idempotent: detected by
// date-stamp drift). A successful action also closes the breaker.
func (r *Runtime) RecordAction(ctx context.Context, tenantID, agentName, actionType string, success bool, revenue int64) error {
	now := r.now().UTC()
	today := now.Format("2006-01-02")

	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := r.loadOrCreate(ctx, tenantID, agentName)
		if err != nil {
			return err
		}

		taken, successful, failed := state.ActionsTaken, state.ActionsSuccessful, state.ActionsFailed
		revenueTotal := state.RevenueGenerated
		byType := map[string]int{}
		if state.CounterDate == today {
			for k, v := range state.ActionsByType {
				byType[k] = v
			}
		} else {
			taken, successful, failed, revenueTotal = 0, 0, 0, 0
		}

		taken++
		byType[actionType]++
		consecutiveFailures := state.ConsecutiveFailures
		if success {
			successful++
			revenueTotal += revenue
			consecutiveFailures = 0
		} else {
			failed++
			consecutiveFailures++
		}

		update := r.client.AgentState.Update().
			Where(agentstate.IDEQ(state.ID), agentstate.VersionEQ(state.Version)).
			AddVersion(1).
			SetCounterDate(today).
			SetActionsTaken(taken).
			SetActionsSuccessful(successful).
			SetActionsFailed(failed).
			SetRevenueGenerated(revenueTotal).
			SetActionsByType(byType).
			SetConsecutiveFailures(consecutiveFailures).
			SetSuccessRate(float64(successful) / float64(taken)).
			SetLastExecution(now).
			SetLastHeartbeat(now)
		if success {
			next := OnSuccess(breakerSnapshot(state))
			applyBreaker(update, next)
			if state.Status == agentstate.StatusCircuitBreaker {
				update.SetStatus(agentstate.StatusActive)
			}
		}

		n, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to record action: %w", err)
		}
		if n == 1 {
			return nil
		}
	}
	return services.ErrConcurrentModification
}

// RecordRevenue attributes revenue to an already-counted action, for
// conversions that complete after the action ran (a customer accepting an
// offer hours later). Counters other than revenue are untouched.
func (r *Runtime) RecordRevenue(ctx context.Context, tenantID, agentName string, revenue int64) error {
	if revenue <= 0 {
		return nil
	}
	today := r.now().UTC().Format("2006-01-02")

	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := r.loadOrCreate(ctx, tenantID, agentName)
		if err != nil {
			return err
		}

		total := revenue
		if state.CounterDate == today {
			total += state.RevenueGenerated
		}

		n, err := r.client.AgentState.Update().
			Where(agentstate.IDEQ(state.ID), agentstate.VersionEQ(state.Version)).
			AddVersion(1).
			SetCounterDate(today).
			SetRevenueGenerated(total).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to record revenue: %w", err)
		}
		if n == 1 {
			return nil
		}
	}
	return services.ErrConcurrentModification
}

// RecordFailure counts one circuit-breaker error. Tripping the breaker sets
// the record status, publishes CIRCUIT_BREAKER_TRIPPED, and audits the trip.
func (r *Runtime) RecordFailure(ctx context.Context, tenantID, agentName string, actionErr error) error {
	now := r.now().UTC()

	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := r.loadOrCreate(ctx, tenantID, agentName)
		if err != nil {
			return err
		}

		next, tripped := OnFailure(breakerSnapshot(state), now, r.cfg.Breaker)

		update := r.breakerUpdate(state, next).
			SetBreakerLastError(truncateError(actionErr))
		if tripped {
			update.SetStatus(agentstate.StatusCircuitBreaker)
		}

		n, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to record breaker failure: %w", err)
		}
		if n != 1 {
			continue
		}

		if tripped {
			metrics.BreakerTripsTotal.WithLabelValues(agentName).Inc()
			r.logger.Warn("circuit breaker tripped",
				slog.String("tenant_id", tenantID),
				slog.String("agent", agentName),
				slog.Int("cooldown_minutes", next.CooldownMinutes))
			if r.publisher != nil {
				r.publisher.PublishBestEffort(ctx, tenantID, events.TypeCircuitBreakerTripped, map[string]any{
					"agent":            agentName,
					"cooldown_minutes": next.CooldownMinutes,
					"error":            truncateError(actionErr),
				})
			}
			if r.auditor != nil {
				r.auditor.Record(ctx, audit.Entry{
					TenantID:  tenantID,
					EventType: "circuit_breaker.tripped",
					Severity:  audit.SeverityWarning,
					Actor:     agentName,
					Details:   map[string]interface{}{"error": truncateError(actionErr)},
				})
			}
		}
		return nil
	}
	return services.ErrConcurrentModification
}

// ResetDaily zeroes the daily counters with today's stamp. Idempotent; also
// reachable through the scheduled cleanup task.
func (r *Runtime) ResetDaily(ctx context.Context, tenantID, agentName string) error {
	today := r.now().UTC().Format("2006-01-02")

	state, err := r.loadOrCreate(ctx, tenantID, agentName)
	if err != nil {
		return err
	}
	if state.CounterDate == today {
		return nil
	}

	_, err = r.client.AgentState.Update().
		Where(agentstate.IDEQ(state.ID), agentstate.CounterDateNEQ(today)).
		AddVersion(1).
		SetCounterDate(today).
		SetActionsTaken(0).
		SetActionsSuccessful(0).
		SetActionsFailed(0).
		SetRevenueGenerated(0).
		SetActionsByType(map[string]int{}).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset daily counters: %w", err)
	}
	return nil
}

// SetPaused pauses or resumes an agent for one tenant.
func (r *Runtime) SetPaused(ctx context.Context, tenantID, agentName string, paused bool) error {
	state, err := r.loadOrCreate(ctx, tenantID, agentName)
	if err != nil {
		return err
	}

	status := agentstate.StatusActive
	if paused {
		status = agentstate.StatusPaused
	}
	_, err = r.client.AgentState.Update().
		Where(agentstate.IDEQ(state.ID)).
		AddVersion(1).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set paused=%t: %w", paused, err)
	}
	return nil
}

// State returns the current AgentState record, creating it on first use.
func (r *Runtime) State(ctx context.Context, tenantID, agentName string) (*ent.AgentState, error) {
	return r.loadOrCreate(ctx, tenantID, agentName)
}

// loadOrCreate fetches the (tenant, agent) record, seeding it from the agent
// catalogue on first use. A create race is resolved by re-querying.
func (r *Runtime) loadOrCreate(ctx context.Context, tenantID, agentName string) (*ent.AgentState, error) {
	state, err := r.client.AgentState.Query().
		Where(agentstate.TenantIDEQ(tenantID), agentstate.AgentNameEQ(agentName)).
		Only(ctx)
	if err == nil {
		return state, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load agent state: %w", err)
	}

	create := r.client.AgentState.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAgentName(agentName)
	if ac, ok := r.cfg.Agents[agentName]; ok {
		create.SetMaxHourlyActions(ac.MaxHourlyActions).
			SetMaxDailyActions(ac.MaxDailyActions).
			SetCooldownMinutes(ac.CooldownMinutes)
		if len(ac.Knobs) > 0 {
			create.SetConfig(ac.Knobs)
		}
	}

	state, err = create.Save(ctx)
	if err == nil {
		return state, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create agent state: %w", err)
	}

	// Another worker created it first.
	state, err = r.client.AgentState.Query().
		Where(agentstate.TenantIDEQ(tenantID), agentstate.AgentNameEQ(agentName)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload agent state: %w", err)
	}
	return state, nil
}

// breakerUpdate builds a version-guarded update applying a breaker snapshot.
func (r *Runtime) breakerUpdate(state *ent.AgentState, next BreakerSnapshot) *ent.AgentStateUpdate {
	update := r.client.AgentState.Update().
		Where(agentstate.IDEQ(state.ID), agentstate.VersionEQ(state.Version)).
		AddVersion(1)
	applyBreaker(update, next)
	return update
}

func applyBreaker(update *ent.AgentStateUpdate, s BreakerSnapshot) {
	update.SetBreakerState(s.State).
		SetBreakerConsecutiveErrors(s.ConsecutiveErrors).
		SetBreakerCooldownMinutes(s.CooldownMinutes).
		SetProbeInFlight(s.ProbeInFlight)
	if s.FirstFailureAt != nil {
		update.SetBreakerFirstFailureAt(*s.FirstFailureAt)
	} else {
		update.ClearBreakerFirstFailureAt()
	}
	if s.CooldownUntil != nil {
		update.SetBreakerCooldownUntil(*s.CooldownUntil)
	} else {
		update.ClearBreakerCooldownUntil()
	}
}

func breakerSnapshot(state *ent.AgentState) BreakerSnapshot {
	return BreakerSnapshot{
		State:             state.BreakerState,
		ConsecutiveErrors: state.BreakerConsecutiveErrors,
		FirstFailureAt:    state.BreakerFirstFailureAt,
		CooldownUntil:     state.BreakerCooldownUntil,
		CooldownMinutes:   state.BreakerCooldownMinutes,
		ProbeInFlight:     state.ProbeInFlight,
	}
}

func snapshotEqual(a, b BreakerSnapshot) bool {
	return a.State == b.State &&
		a.ConsecutiveErrors == b.ConsecutiveErrors &&
		a.ProbeInFlight == b.ProbeInFlight &&
		a.CooldownMinutes == b.CooldownMinutes &&
		timePtrEqual(a.FirstFailureAt, b.FirstFailureAt) &&
		timePtrEqual(a.CooldownUntil, b.CooldownUntil)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func truncateError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	return msg
}
