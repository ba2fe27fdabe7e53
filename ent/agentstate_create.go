// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/agentstate"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *AgentStateCreate) SetTenantID(v string) *AgentStateCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentStateCreate) SetAgentName(v string) *AgentStateCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStateCreate) SetStatus(v agentstate.Status) *AgentStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableStatus(v *agentstate.Status) *AgentStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastExecution sets the "last_execution" field.
func (_c *AgentStateCreate) SetLastExecution(v time.Time) *AgentStateCreate {
	_c.mutation.SetLastExecution(v)
	return _c
}

// SetNillableLastExecution sets the "last_execution" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLastExecution(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetLastExecution(*v)
	}
	return _c
}

// SetNextScheduled sets the "next_scheduled" field.
func (_c *AgentStateCreate) SetNextScheduled(v time.Time) *AgentStateCreate {
	_c.mutation.SetNextScheduled(v)
	return _c
}

// SetNillableNextScheduled sets the "next_scheduled" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableNextScheduled(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetNextScheduled(*v)
	}
	return _c
}

// SetBreakerState sets the "breaker_state" field.
func (_c *AgentStateCreate) SetBreakerState(v agentstate.BreakerState) *AgentStateCreate {
	_c.mutation.SetBreakerState(v)
	return _c
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerState(v *agentstate.BreakerState) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerState(*v)
	}
	return _c
}

// SetBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field.
func (_c *AgentStateCreate) SetBreakerConsecutiveErrors(v int) *AgentStateCreate {
	_c.mutation.SetBreakerConsecutiveErrors(v)
	return _c
}

// SetNillableBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerConsecutiveErrors(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerConsecutiveErrors(*v)
	}
	return _c
}

// SetBreakerLastError sets the "breaker_last_error" field.
func (_c *AgentStateCreate) SetBreakerLastError(v string) *AgentStateCreate {
	_c.mutation.SetBreakerLastError(v)
	return _c
}

// SetNillableBreakerLastError sets the "breaker_last_error" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerLastError(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerLastError(*v)
	}
	return _c
}

// SetBreakerFirstFailureAt sets the "breaker_first_failure_at" field.
func (_c *AgentStateCreate) SetBreakerFirstFailureAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetBreakerFirstFailureAt(v)
	return _c
}

// SetNillableBreakerFirstFailureAt sets the "breaker_first_failure_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerFirstFailureAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerFirstFailureAt(*v)
	}
	return _c
}

// SetBreakerCooldownUntil sets the "breaker_cooldown_until" field.
func (_c *AgentStateCreate) SetBreakerCooldownUntil(v time.Time) *AgentStateCreate {
	_c.mutation.SetBreakerCooldownUntil(v)
	return _c
}

// SetNillableBreakerCooldownUntil sets the "breaker_cooldown_until" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerCooldownUntil(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerCooldownUntil(*v)
	}
	return _c
}

// SetBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field.
func (_c *AgentStateCreate) SetBreakerCooldownMinutes(v int) *AgentStateCreate {
	_c.mutation.SetBreakerCooldownMinutes(v)
	return _c
}

// SetNillableBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableBreakerCooldownMinutes(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetBreakerCooldownMinutes(*v)
	}
	return _c
}

// SetProbeInFlight sets the "probe_in_flight" field.
func (_c *AgentStateCreate) SetProbeInFlight(v bool) *AgentStateCreate {
	_c.mutation.SetProbeInFlight(v)
	return _c
}

// SetNillableProbeInFlight sets the "probe_in_flight" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableProbeInFlight(v *bool) *AgentStateCreate {
	if v != nil {
		_c.SetProbeInFlight(*v)
	}
	return _c
}

// SetMaxHourlyActions sets the "max_hourly_actions" field.
func (_c *AgentStateCreate) SetMaxHourlyActions(v int) *AgentStateCreate {
	_c.mutation.SetMaxHourlyActions(v)
	return _c
}

// SetNillableMaxHourlyActions sets the "max_hourly_actions" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableMaxHourlyActions(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetMaxHourlyActions(*v)
	}
	return _c
}

// SetMaxDailyActions sets the "max_daily_actions" field.
func (_c *AgentStateCreate) SetMaxDailyActions(v int) *AgentStateCreate {
	_c.mutation.SetMaxDailyActions(v)
	return _c
}

// SetNillableMaxDailyActions sets the "max_daily_actions" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableMaxDailyActions(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetMaxDailyActions(*v)
	}
	return _c
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_c *AgentStateCreate) SetCooldownMinutes(v int) *AgentStateCreate {
	_c.mutation.SetCooldownMinutes(v)
	return _c
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCooldownMinutes(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetCooldownMinutes(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *AgentStateCreate) SetConfig(v map[string]interface{}) *AgentStateCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCounterDate sets the "counter_date" field.
func (_c *AgentStateCreate) SetCounterDate(v string) *AgentStateCreate {
	_c.mutation.SetCounterDate(v)
	return _c
}

// SetNillableCounterDate sets the "counter_date" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCounterDate(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetCounterDate(*v)
	}
	return _c
}

// SetActionsTaken sets the "actions_taken" field.
func (_c *AgentStateCreate) SetActionsTaken(v int) *AgentStateCreate {
	_c.mutation.SetActionsTaken(v)
	return _c
}

// SetNillableActionsTaken sets the "actions_taken" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableActionsTaken(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetActionsTaken(*v)
	}
	return _c
}

// SetActionsSuccessful sets the "actions_successful" field.
func (_c *AgentStateCreate) SetActionsSuccessful(v int) *AgentStateCreate {
	_c.mutation.SetActionsSuccessful(v)
	return _c
}

// SetNillableActionsSuccessful sets the "actions_successful" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableActionsSuccessful(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetActionsSuccessful(*v)
	}
	return _c
}

// SetActionsFailed sets the "actions_failed" field.
func (_c *AgentStateCreate) SetActionsFailed(v int) *AgentStateCreate {
	_c.mutation.SetActionsFailed(v)
	return _c
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableActionsFailed(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetActionsFailed(*v)
	}
	return _c
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_c *AgentStateCreate) SetRevenueGenerated(v int64) *AgentStateCreate {
	_c.mutation.SetRevenueGenerated(v)
	return _c
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableRevenueGenerated(v *int64) *AgentStateCreate {
	if v != nil {
		_c.SetRevenueGenerated(*v)
	}
	return _c
}

// SetActionsByType sets the "actions_by_type" field.
func (_c *AgentStateCreate) SetActionsByType(v map[string]int) *AgentStateCreate {
	_c.mutation.SetActionsByType(v)
	return _c
}

// SetHourWindowStart sets the "hour_window_start" field.
func (_c *AgentStateCreate) SetHourWindowStart(v time.Time) *AgentStateCreate {
	_c.mutation.SetHourWindowStart(v)
	return _c
}

// SetNillableHourWindowStart sets the "hour_window_start" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableHourWindowStart(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetHourWindowStart(*v)
	}
	return _c
}

// SetHourWindowCount sets the "hour_window_count" field.
func (_c *AgentStateCreate) SetHourWindowCount(v int) *AgentStateCreate {
	_c.mutation.SetHourWindowCount(v)
	return _c
}

// SetNillableHourWindowCount sets the "hour_window_count" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableHourWindowCount(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetHourWindowCount(*v)
	}
	return _c
}

// SetDayWindowStart sets the "day_window_start" field.
func (_c *AgentStateCreate) SetDayWindowStart(v time.Time) *AgentStateCreate {
	_c.mutation.SetDayWindowStart(v)
	return _c
}

// SetNillableDayWindowStart sets the "day_window_start" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableDayWindowStart(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetDayWindowStart(*v)
	}
	return _c
}

// SetDayWindowCount sets the "day_window_count" field.
func (_c *AgentStateCreate) SetDayWindowCount(v int) *AgentStateCreate {
	_c.mutation.SetDayWindowCount(v)
	return _c
}

// SetNillableDayWindowCount sets the "day_window_count" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableDayWindowCount(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetDayWindowCount(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentStateCreate) SetLastHeartbeat(v time.Time) *AgentStateCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLastHeartbeat(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *AgentStateCreate) SetConsecutiveFailures(v int) *AgentStateCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableConsecutiveFailures(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *AgentStateCreate) SetSuccessRate(v float64) *AgentStateCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableSuccessRate(v *float64) *AgentStateCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_c *AgentStateCreate) SetAvgLatencyMs(v float64) *AgentStateCreate {
	_c.mutation.SetAvgLatencyMs(v)
	return _c
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableAvgLatencyMs(v *float64) *AgentStateCreate {
	if v != nil {
		_c.SetAvgLatencyMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentStateCreate) SetVersion(v int64) *AgentStateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableVersion(v *int64) *AgentStateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStateCreate) SetCreatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCreatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentStateCreate) SetUpdatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableUpdatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BreakerState(); !ok {
		v := agentstate.DefaultBreakerState
		_c.mutation.SetBreakerState(v)
	}
	if _, ok := _c.mutation.BreakerConsecutiveErrors(); !ok {
		v := agentstate.DefaultBreakerConsecutiveErrors
		_c.mutation.SetBreakerConsecutiveErrors(v)
	}
	if _, ok := _c.mutation.BreakerCooldownMinutes(); !ok {
		v := agentstate.DefaultBreakerCooldownMinutes
		_c.mutation.SetBreakerCooldownMinutes(v)
	}
	if _, ok := _c.mutation.ProbeInFlight(); !ok {
		v := agentstate.DefaultProbeInFlight
		_c.mutation.SetProbeInFlight(v)
	}
	if _, ok := _c.mutation.MaxHourlyActions(); !ok {
		v := agentstate.DefaultMaxHourlyActions
		_c.mutation.SetMaxHourlyActions(v)
	}
	if _, ok := _c.mutation.MaxDailyActions(); !ok {
		v := agentstate.DefaultMaxDailyActions
		_c.mutation.SetMaxDailyActions(v)
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		v := agentstate.DefaultCooldownMinutes
		_c.mutation.SetCooldownMinutes(v)
	}
	if _, ok := _c.mutation.CounterDate(); !ok {
		v := agentstate.DefaultCounterDate
		_c.mutation.SetCounterDate(v)
	}
	if _, ok := _c.mutation.ActionsTaken(); !ok {
		v := agentstate.DefaultActionsTaken
		_c.mutation.SetActionsTaken(v)
	}
	if _, ok := _c.mutation.ActionsSuccessful(); !ok {
		v := agentstate.DefaultActionsSuccessful
		_c.mutation.SetActionsSuccessful(v)
	}
	if _, ok := _c.mutation.ActionsFailed(); !ok {
		v := agentstate.DefaultActionsFailed
		_c.mutation.SetActionsFailed(v)
	}
	if _, ok := _c.mutation.RevenueGenerated(); !ok {
		v := agentstate.DefaultRevenueGenerated
		_c.mutation.SetRevenueGenerated(v)
	}
	if _, ok := _c.mutation.HourWindowCount(); !ok {
		v := agentstate.DefaultHourWindowCount
		_c.mutation.SetHourWindowCount(v)
	}
	if _, ok := _c.mutation.DayWindowCount(); !ok {
		v := agentstate.DefaultDayWindowCount
		_c.mutation.SetDayWindowCount(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := agentstate.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := agentstate.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		v := agentstate.DefaultAvgLatencyMs
		_c.mutation.SetAvgLatencyMs(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentstate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AgentState.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := agentstate.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "AgentState.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentState.agent_name"`)}
	}
	if v, ok := _c.mutation.AgentName(); ok {
		if err := agentstate.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "AgentState.agent_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BreakerState(); !ok {
		return &ValidationError{Name: "breaker_state", err: errors.New(`ent: missing required field "AgentState.breaker_state"`)}
	}
	if v, ok := _c.mutation.BreakerState(); ok {
		if err := agentstate.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "AgentState.breaker_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BreakerConsecutiveErrors(); !ok {
		return &ValidationError{Name: "breaker_consecutive_errors", err: errors.New(`ent: missing required field "AgentState.breaker_consecutive_errors"`)}
	}
	if _, ok := _c.mutation.BreakerCooldownMinutes(); !ok {
		return &ValidationError{Name: "breaker_cooldown_minutes", err: errors.New(`ent: missing required field "AgentState.breaker_cooldown_minutes"`)}
	}
	if _, ok := _c.mutation.ProbeInFlight(); !ok {
		return &ValidationError{Name: "probe_in_flight", err: errors.New(`ent: missing required field "AgentState.probe_in_flight"`)}
	}
	if _, ok := _c.mutation.MaxHourlyActions(); !ok {
		return &ValidationError{Name: "max_hourly_actions", err: errors.New(`ent: missing required field "AgentState.max_hourly_actions"`)}
	}
	if _, ok := _c.mutation.MaxDailyActions(); !ok {
		return &ValidationError{Name: "max_daily_actions", err: errors.New(`ent: missing required field "AgentState.max_daily_actions"`)}
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		return &ValidationError{Name: "cooldown_minutes", err: errors.New(`ent: missing required field "AgentState.cooldown_minutes"`)}
	}
	if _, ok := _c.mutation.CounterDate(); !ok {
		return &ValidationError{Name: "counter_date", err: errors.New(`ent: missing required field "AgentState.counter_date"`)}
	}
	if _, ok := _c.mutation.ActionsTaken(); !ok {
		return &ValidationError{Name: "actions_taken", err: errors.New(`ent: missing required field "AgentState.actions_taken"`)}
	}
	if _, ok := _c.mutation.ActionsSuccessful(); !ok {
		return &ValidationError{Name: "actions_successful", err: errors.New(`ent: missing required field "AgentState.actions_successful"`)}
	}
	if _, ok := _c.mutation.ActionsFailed(); !ok {
		return &ValidationError{Name: "actions_failed", err: errors.New(`ent: missing required field "AgentState.actions_failed"`)}
	}
	if _, ok := _c.mutation.RevenueGenerated(); !ok {
		return &ValidationError{Name: "revenue_generated", err: errors.New(`ent: missing required field "AgentState.revenue_generated"`)}
	}
	if _, ok := _c.mutation.HourWindowCount(); !ok {
		return &ValidationError{Name: "hour_window_count", err: errors.New(`ent: missing required field "AgentState.hour_window_count"`)}
	}
	if _, ok := _c.mutation.DayWindowCount(); !ok {
		return &ValidationError{Name: "day_window_count", err: errors.New(`ent: missing required field "AgentState.day_window_count"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "AgentState.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "AgentState.success_rate"`)}
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		return &ValidationError{Name: "avg_latency_ms", err: errors.New(`ent: missing required field "AgentState.avg_latency_ms"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentState.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentState.updated_at"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(agentstate.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentstate.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastExecution(); ok {
		_spec.SetField(agentstate.FieldLastExecution, field.TypeTime, value)
		_node.LastExecution = &value
	}
	if value, ok := _c.mutation.NextScheduled(); ok {
		_spec.SetField(agentstate.FieldNextScheduled, field.TypeTime, value)
		_node.NextScheduled = &value
	}
	if value, ok := _c.mutation.BreakerState(); ok {
		_spec.SetField(agentstate.FieldBreakerState, field.TypeEnum, value)
		_node.BreakerState = value
	}
	if value, ok := _c.mutation.BreakerConsecutiveErrors(); ok {
		_spec.SetField(agentstate.FieldBreakerConsecutiveErrors, field.TypeInt, value)
		_node.BreakerConsecutiveErrors = value
	}
	if value, ok := _c.mutation.BreakerLastError(); ok {
		_spec.SetField(agentstate.FieldBreakerLastError, field.TypeString, value)
		_node.BreakerLastError = &value
	}
	if value, ok := _c.mutation.BreakerFirstFailureAt(); ok {
		_spec.SetField(agentstate.FieldBreakerFirstFailureAt, field.TypeTime, value)
		_node.BreakerFirstFailureAt = &value
	}
	if value, ok := _c.mutation.BreakerCooldownUntil(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownUntil, field.TypeTime, value)
		_node.BreakerCooldownUntil = &value
	}
	if value, ok := _c.mutation.BreakerCooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownMinutes, field.TypeInt, value)
		_node.BreakerCooldownMinutes = value
	}
	if value, ok := _c.mutation.ProbeInFlight(); ok {
		_spec.SetField(agentstate.FieldProbeInFlight, field.TypeBool, value)
		_node.ProbeInFlight = value
	}
	if value, ok := _c.mutation.MaxHourlyActions(); ok {
		_spec.SetField(agentstate.FieldMaxHourlyActions, field.TypeInt, value)
		_node.MaxHourlyActions = value
	}
	if value, ok := _c.mutation.MaxDailyActions(); ok {
		_spec.SetField(agentstate.FieldMaxDailyActions, field.TypeInt, value)
		_node.MaxDailyActions = value
	}
	if value, ok := _c.mutation.CooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldCooldownMinutes, field.TypeInt, value)
		_node.CooldownMinutes = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(agentstate.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CounterDate(); ok {
		_spec.SetField(agentstate.FieldCounterDate, field.TypeString, value)
		_node.CounterDate = value
	}
	if value, ok := _c.mutation.ActionsTaken(); ok {
		_spec.SetField(agentstate.FieldActionsTaken, field.TypeInt, value)
		_node.ActionsTaken = value
	}
	if value, ok := _c.mutation.ActionsSuccessful(); ok {
		_spec.SetField(agentstate.FieldActionsSuccessful, field.TypeInt, value)
		_node.ActionsSuccessful = value
	}
	if value, ok := _c.mutation.ActionsFailed(); ok {
		_spec.SetField(agentstate.FieldActionsFailed, field.TypeInt, value)
		_node.ActionsFailed = value
	}
	if value, ok := _c.mutation.RevenueGenerated(); ok {
		_spec.SetField(agentstate.FieldRevenueGenerated, field.TypeInt64, value)
		_node.RevenueGenerated = value
	}
	if value, ok := _c.mutation.ActionsByType(); ok {
		_spec.SetField(agentstate.FieldActionsByType, field.TypeJSON, value)
		_node.ActionsByType = value
	}
	if value, ok := _c.mutation.HourWindowStart(); ok {
		_spec.SetField(agentstate.FieldHourWindowStart, field.TypeTime, value)
		_node.HourWindowStart = &value
	}
	if value, ok := _c.mutation.HourWindowCount(); ok {
		_spec.SetField(agentstate.FieldHourWindowCount, field.TypeInt, value)
		_node.HourWindowCount = value
	}
	if value, ok := _c.mutation.DayWindowStart(); ok {
		_spec.SetField(agentstate.FieldDayWindowStart, field.TypeTime, value)
		_node.DayWindowStart = &value
	}
	if value, ok := _c.mutation.DayWindowCount(); ok {
		_spec.SetField(agentstate.FieldDayWindowCount, field.TypeInt, value)
		_node.DayWindowCount = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agentstate.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(agentstate.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(agentstate.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentstate.FieldAvgLatencyMs, field.TypeFloat64, value)
		_node.AvgLatencyMs = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentstate.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
