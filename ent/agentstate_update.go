// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/ent/predicate"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdate) SetStatus(v agentstate.Status) *AgentStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableStatus(v *agentstate.Status) *AgentStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastExecution sets the "last_execution" field.
func (_u *AgentStateUpdate) SetLastExecution(v time.Time) *AgentStateUpdate {
	_u.mutation.SetLastExecution(v)
	return _u
}

// SetNillableLastExecution sets the "last_execution" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLastExecution(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetLastExecution(*v)
	}
	return _u
}

// ClearLastExecution clears the value of the "last_execution" field.
func (_u *AgentStateUpdate) ClearLastExecution() *AgentStateUpdate {
	_u.mutation.ClearLastExecution()
	return _u
}

// SetNextScheduled sets the "next_scheduled" field.
func (_u *AgentStateUpdate) SetNextScheduled(v time.Time) *AgentStateUpdate {
	_u.mutation.SetNextScheduled(v)
	return _u
}

// SetNillableNextScheduled sets the "next_scheduled" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableNextScheduled(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetNextScheduled(*v)
	}
	return _u
}

// ClearNextScheduled clears the value of the "next_scheduled" field.
func (_u *AgentStateUpdate) ClearNextScheduled() *AgentStateUpdate {
	_u.mutation.ClearNextScheduled()
	return _u
}

// SetBreakerState sets the "breaker_state" field.
func (_u *AgentStateUpdate) SetBreakerState(v agentstate.BreakerState) *AgentStateUpdate {
	_u.mutation.SetBreakerState(v)
	return _u
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerState(v *agentstate.BreakerState) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerState(*v)
	}
	return _u
}

// SetBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field.
func (_u *AgentStateUpdate) SetBreakerConsecutiveErrors(v int) *AgentStateUpdate {
	_u.mutation.ResetBreakerConsecutiveErrors()
	_u.mutation.SetBreakerConsecutiveErrors(v)
	return _u
}

// SetNillableBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerConsecutiveErrors(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerConsecutiveErrors(*v)
	}
	return _u
}

// AddBreakerConsecutiveErrors adds value to the "breaker_consecutive_errors" field.
func (_u *AgentStateUpdate) AddBreakerConsecutiveErrors(v int) *AgentStateUpdate {
	_u.mutation.AddBreakerConsecutiveErrors(v)
	return _u
}

// SetBreakerLastError sets the "breaker_last_error" field.
func (_u *AgentStateUpdate) SetBreakerLastError(v string) *AgentStateUpdate {
	_u.mutation.SetBreakerLastError(v)
	return _u
}

// SetNillableBreakerLastError sets the "breaker_last_error" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerLastError(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerLastError(*v)
	}
	return _u
}

// ClearBreakerLastError clears the value of the "breaker_last_error" field.
func (_u *AgentStateUpdate) ClearBreakerLastError() *AgentStateUpdate {
	_u.mutation.ClearBreakerLastError()
	return _u
}

// SetBreakerFirstFailureAt sets the "breaker_first_failure_at" field.
func (_u *AgentStateUpdate) SetBreakerFirstFailureAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetBreakerFirstFailureAt(v)
	return _u
}

// SetNillableBreakerFirstFailureAt sets the "breaker_first_failure_at" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerFirstFailureAt(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerFirstFailureAt(*v)
	}
	return _u
}

// ClearBreakerFirstFailureAt clears the value of the "breaker_first_failure_at" field.
func (_u *AgentStateUpdate) ClearBreakerFirstFailureAt() *AgentStateUpdate {
	_u.mutation.ClearBreakerFirstFailureAt()
	return _u
}

// SetBreakerCooldownUntil sets the "breaker_cooldown_until" field.
func (_u *AgentStateUpdate) SetBreakerCooldownUntil(v time.Time) *AgentStateUpdate {
	_u.mutation.SetBreakerCooldownUntil(v)
	return _u
}

// SetNillableBreakerCooldownUntil sets the "breaker_cooldown_until" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerCooldownUntil(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerCooldownUntil(*v)
	}
	return _u
}

// ClearBreakerCooldownUntil clears the value of the "breaker_cooldown_until" field.
func (_u *AgentStateUpdate) ClearBreakerCooldownUntil() *AgentStateUpdate {
	_u.mutation.ClearBreakerCooldownUntil()
	return _u
}

// SetBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field.
func (_u *AgentStateUpdate) SetBreakerCooldownMinutes(v int) *AgentStateUpdate {
	_u.mutation.ResetBreakerCooldownMinutes()
	_u.mutation.SetBreakerCooldownMinutes(v)
	return _u
}

// SetNillableBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableBreakerCooldownMinutes(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetBreakerCooldownMinutes(*v)
	}
	return _u
}

// AddBreakerCooldownMinutes adds value to the "breaker_cooldown_minutes" field.
func (_u *AgentStateUpdate) AddBreakerCooldownMinutes(v int) *AgentStateUpdate {
	_u.mutation.AddBreakerCooldownMinutes(v)
	return _u
}

// SetProbeInFlight sets the "probe_in_flight" field.
func (_u *AgentStateUpdate) SetProbeInFlight(v bool) *AgentStateUpdate {
	_u.mutation.SetProbeInFlight(v)
	return _u
}

// SetNillableProbeInFlight sets the "probe_in_flight" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableProbeInFlight(v *bool) *AgentStateUpdate {
	if v != nil {
		_u.SetProbeInFlight(*v)
	}
	return _u
}

// SetMaxHourlyActions sets the "max_hourly_actions" field.
func (_u *AgentStateUpdate) SetMaxHourlyActions(v int) *AgentStateUpdate {
	_u.mutation.ResetMaxHourlyActions()
	_u.mutation.SetMaxHourlyActions(v)
	return _u
}

// SetNillableMaxHourlyActions sets the "max_hourly_actions" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableMaxHourlyActions(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetMaxHourlyActions(*v)
	}
	return _u
}

// AddMaxHourlyActions adds value to the "max_hourly_actions" field.
func (_u *AgentStateUpdate) AddMaxHourlyActions(v int) *AgentStateUpdate {
	_u.mutation.AddMaxHourlyActions(v)
	return _u
}

// SetMaxDailyActions sets the "max_daily_actions" field.
func (_u *AgentStateUpdate) SetMaxDailyActions(v int) *AgentStateUpdate {
	_u.mutation.ResetMaxDailyActions()
	_u.mutation.SetMaxDailyActions(v)
	return _u
}

// SetNillableMaxDailyActions sets the "max_daily_actions" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableMaxDailyActions(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetMaxDailyActions(*v)
	}
	return _u
}

// AddMaxDailyActions adds value to the "max_daily_actions" field.
func (_u *AgentStateUpdate) AddMaxDailyActions(v int) *AgentStateUpdate {
	_u.mutation.AddMaxDailyActions(v)
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *AgentStateUpdate) SetCooldownMinutes(v int) *AgentStateUpdate {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableCooldownMinutes(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *AgentStateUpdate) AddCooldownMinutes(v int) *AgentStateUpdate {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentStateUpdate) SetConfig(v map[string]interface{}) *AgentStateUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentStateUpdate) ClearConfig() *AgentStateUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetCounterDate sets the "counter_date" field.
func (_u *AgentStateUpdate) SetCounterDate(v string) *AgentStateUpdate {
	_u.mutation.SetCounterDate(v)
	return _u
}

// SetNillableCounterDate sets the "counter_date" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableCounterDate(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetCounterDate(*v)
	}
	return _u
}

// SetActionsTaken sets the "actions_taken" field.
func (_u *AgentStateUpdate) SetActionsTaken(v int) *AgentStateUpdate {
	_u.mutation.ResetActionsTaken()
	_u.mutation.SetActionsTaken(v)
	return _u
}

// SetNillableActionsTaken sets the "actions_taken" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableActionsTaken(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetActionsTaken(*v)
	}
	return _u
}

// AddActionsTaken adds value to the "actions_taken" field.
func (_u *AgentStateUpdate) AddActionsTaken(v int) *AgentStateUpdate {
	_u.mutation.AddActionsTaken(v)
	return _u
}

// SetActionsSuccessful sets the "actions_successful" field.
func (_u *AgentStateUpdate) SetActionsSuccessful(v int) *AgentStateUpdate {
	_u.mutation.ResetActionsSuccessful()
	_u.mutation.SetActionsSuccessful(v)
	return _u
}

// SetNillableActionsSuccessful sets the "actions_successful" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableActionsSuccessful(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetActionsSuccessful(*v)
	}
	return _u
}

// AddActionsSuccessful adds value to the "actions_successful" field.
func (_u *AgentStateUpdate) AddActionsSuccessful(v int) *AgentStateUpdate {
	_u.mutation.AddActionsSuccessful(v)
	return _u
}

// SetActionsFailed sets the "actions_failed" field.
func (_u *AgentStateUpdate) SetActionsFailed(v int) *AgentStateUpdate {
	_u.mutation.ResetActionsFailed()
	_u.mutation.SetActionsFailed(v)
	return _u
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableActionsFailed(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetActionsFailed(*v)
	}
	return _u
}

// AddActionsFailed adds value to the "actions_failed" field.
func (_u *AgentStateUpdate) AddActionsFailed(v int) *AgentStateUpdate {
	_u.mutation.AddActionsFailed(v)
	return _u
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_u *AgentStateUpdate) SetRevenueGenerated(v int64) *AgentStateUpdate {
	_u.mutation.ResetRevenueGenerated()
	_u.mutation.SetRevenueGenerated(v)
	return _u
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableRevenueGenerated(v *int64) *AgentStateUpdate {
	if v != nil {
		_u.SetRevenueGenerated(*v)
	}
	return _u
}

// AddRevenueGenerated adds value to the "revenue_generated" field.
func (_u *AgentStateUpdate) AddRevenueGenerated(v int64) *AgentStateUpdate {
	_u.mutation.AddRevenueGenerated(v)
	return _u
}

// SetActionsByType sets the "actions_by_type" field.
func (_u *AgentStateUpdate) SetActionsByType(v map[string]int) *AgentStateUpdate {
	_u.mutation.SetActionsByType(v)
	return _u
}

// ClearActionsByType clears the value of the "actions_by_type" field.
func (_u *AgentStateUpdate) ClearActionsByType() *AgentStateUpdate {
	_u.mutation.ClearActionsByType()
	return _u
}

// SetHourWindowStart sets the "hour_window_start" field.
func (_u *AgentStateUpdate) SetHourWindowStart(v time.Time) *AgentStateUpdate {
	_u.mutation.SetHourWindowStart(v)
	return _u
}

// SetNillableHourWindowStart sets the "hour_window_start" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableHourWindowStart(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetHourWindowStart(*v)
	}
	return _u
}

// ClearHourWindowStart clears the value of the "hour_window_start" field.
func (_u *AgentStateUpdate) ClearHourWindowStart() *AgentStateUpdate {
	_u.mutation.ClearHourWindowStart()
	return _u
}

// SetHourWindowCount sets the "hour_window_count" field.
func (_u *AgentStateUpdate) SetHourWindowCount(v int) *AgentStateUpdate {
	_u.mutation.ResetHourWindowCount()
	_u.mutation.SetHourWindowCount(v)
	return _u
}

// SetNillableHourWindowCount sets the "hour_window_count" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableHourWindowCount(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetHourWindowCount(*v)
	}
	return _u
}

// AddHourWindowCount adds value to the "hour_window_count" field.
func (_u *AgentStateUpdate) AddHourWindowCount(v int) *AgentStateUpdate {
	_u.mutation.AddHourWindowCount(v)
	return _u
}

// SetDayWindowStart sets the "day_window_start" field.
func (_u *AgentStateUpdate) SetDayWindowStart(v time.Time) *AgentStateUpdate {
	_u.mutation.SetDayWindowStart(v)
	return _u
}

// SetNillableDayWindowStart sets the "day_window_start" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableDayWindowStart(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetDayWindowStart(*v)
	}
	return _u
}

// ClearDayWindowStart clears the value of the "day_window_start" field.
func (_u *AgentStateUpdate) ClearDayWindowStart() *AgentStateUpdate {
	_u.mutation.ClearDayWindowStart()
	return _u
}

// SetDayWindowCount sets the "day_window_count" field.
func (_u *AgentStateUpdate) SetDayWindowCount(v int) *AgentStateUpdate {
	_u.mutation.ResetDayWindowCount()
	_u.mutation.SetDayWindowCount(v)
	return _u
}

// SetNillableDayWindowCount sets the "day_window_count" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableDayWindowCount(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetDayWindowCount(*v)
	}
	return _u
}

// AddDayWindowCount adds value to the "day_window_count" field.
func (_u *AgentStateUpdate) AddDayWindowCount(v int) *AgentStateUpdate {
	_u.mutation.AddDayWindowCount(v)
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentStateUpdate) SetLastHeartbeat(v time.Time) *AgentStateUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLastHeartbeat(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentStateUpdate) ClearLastHeartbeat() *AgentStateUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *AgentStateUpdate) SetConsecutiveFailures(v int) *AgentStateUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableConsecutiveFailures(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *AgentStateUpdate) AddConsecutiveFailures(v int) *AgentStateUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *AgentStateUpdate) SetSuccessRate(v float64) *AgentStateUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableSuccessRate(v *float64) *AgentStateUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *AgentStateUpdate) AddSuccessRate(v float64) *AgentStateUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentStateUpdate) SetAvgLatencyMs(v float64) *AgentStateUpdate {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableAvgLatencyMs(v *float64) *AgentStateUpdate {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentStateUpdate) AddAvgLatencyMs(v float64) *AgentStateUpdate {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentStateUpdate) SetVersion(v int64) *AgentStateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableVersion(v *int64) *AgentStateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentStateUpdate) AddVersion(v int64) *AgentStateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdate) SetUpdatedAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BreakerState(); ok {
		if err := agentstate.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "AgentState.breaker_state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastExecution(); ok {
		_spec.SetField(agentstate.FieldLastExecution, field.TypeTime, value)
	}
	if _u.mutation.LastExecutionCleared() {
		_spec.ClearField(agentstate.FieldLastExecution, field.TypeTime)
	}
	if value, ok := _u.mutation.NextScheduled(); ok {
		_spec.SetField(agentstate.FieldNextScheduled, field.TypeTime, value)
	}
	if _u.mutation.NextScheduledCleared() {
		_spec.ClearField(agentstate.FieldNextScheduled, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerState(); ok {
		_spec.SetField(agentstate.FieldBreakerState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BreakerConsecutiveErrors(); ok {
		_spec.SetField(agentstate.FieldBreakerConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakerConsecutiveErrors(); ok {
		_spec.AddField(agentstate.FieldBreakerConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakerLastError(); ok {
		_spec.SetField(agentstate.FieldBreakerLastError, field.TypeString, value)
	}
	if _u.mutation.BreakerLastErrorCleared() {
		_spec.ClearField(agentstate.FieldBreakerLastError, field.TypeString)
	}
	if value, ok := _u.mutation.BreakerFirstFailureAt(); ok {
		_spec.SetField(agentstate.FieldBreakerFirstFailureAt, field.TypeTime, value)
	}
	if _u.mutation.BreakerFirstFailureAtCleared() {
		_spec.ClearField(agentstate.FieldBreakerFirstFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerCooldownUntil(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.BreakerCooldownUntilCleared() {
		_spec.ClearField(agentstate.FieldBreakerCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerCooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakerCooldownMinutes(); ok {
		_spec.AddField(agentstate.FieldBreakerCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProbeInFlight(); ok {
		_spec.SetField(agentstate.FieldProbeInFlight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxHourlyActions(); ok {
		_spec.SetField(agentstate.FieldMaxHourlyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHourlyActions(); ok {
		_spec.AddField(agentstate.FieldMaxHourlyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyActions(); ok {
		_spec.SetField(agentstate.FieldMaxDailyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyActions(); ok {
		_spec.AddField(agentstate.FieldMaxDailyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(agentstate.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentstate.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentstate.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CounterDate(); ok {
		_spec.SetField(agentstate.FieldCounterDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionsTaken(); ok {
		_spec.SetField(agentstate.FieldActionsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsTaken(); ok {
		_spec.AddField(agentstate.FieldActionsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsSuccessful(); ok {
		_spec.SetField(agentstate.FieldActionsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsSuccessful(); ok {
		_spec.AddField(agentstate.FieldActionsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsFailed(); ok {
		_spec.SetField(agentstate.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsFailed(); ok {
		_spec.AddField(agentstate.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueGenerated(); ok {
		_spec.SetField(agentstate.FieldRevenueGenerated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenueGenerated(); ok {
		_spec.AddField(agentstate.FieldRevenueGenerated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActionsByType(); ok {
		_spec.SetField(agentstate.FieldActionsByType, field.TypeJSON, value)
	}
	if _u.mutation.ActionsByTypeCleared() {
		_spec.ClearField(agentstate.FieldActionsByType, field.TypeJSON)
	}
	if value, ok := _u.mutation.HourWindowStart(); ok {
		_spec.SetField(agentstate.FieldHourWindowStart, field.TypeTime, value)
	}
	if _u.mutation.HourWindowStartCleared() {
		_spec.ClearField(agentstate.FieldHourWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.HourWindowCount(); ok {
		_spec.SetField(agentstate.FieldHourWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHourWindowCount(); ok {
		_spec.AddField(agentstate.FieldHourWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayWindowStart(); ok {
		_spec.SetField(agentstate.FieldDayWindowStart, field.TypeTime, value)
	}
	if _u.mutation.DayWindowStartCleared() {
		_spec.ClearField(agentstate.FieldDayWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DayWindowCount(); ok {
		_spec.SetField(agentstate.FieldDayWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayWindowCount(); ok {
		_spec.AddField(agentstate.FieldDayWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agentstate.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agentstate.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(agentstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(agentstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(agentstate.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(agentstate.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentstate.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentstate.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdateOne) SetStatus(v agentstate.Status) *AgentStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableStatus(v *agentstate.Status) *AgentStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastExecution sets the "last_execution" field.
func (_u *AgentStateUpdateOne) SetLastExecution(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetLastExecution(v)
	return _u
}

// SetNillableLastExecution sets the "last_execution" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLastExecution(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLastExecution(*v)
	}
	return _u
}

// ClearLastExecution clears the value of the "last_execution" field.
func (_u *AgentStateUpdateOne) ClearLastExecution() *AgentStateUpdateOne {
	_u.mutation.ClearLastExecution()
	return _u
}

// SetNextScheduled sets the "next_scheduled" field.
func (_u *AgentStateUpdateOne) SetNextScheduled(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetNextScheduled(v)
	return _u
}

// SetNillableNextScheduled sets the "next_scheduled" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableNextScheduled(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetNextScheduled(*v)
	}
	return _u
}

// ClearNextScheduled clears the value of the "next_scheduled" field.
func (_u *AgentStateUpdateOne) ClearNextScheduled() *AgentStateUpdateOne {
	_u.mutation.ClearNextScheduled()
	return _u
}

// SetBreakerState sets the "breaker_state" field.
func (_u *AgentStateUpdateOne) SetBreakerState(v agentstate.BreakerState) *AgentStateUpdateOne {
	_u.mutation.SetBreakerState(v)
	return _u
}

// SetNillableBreakerState sets the "breaker_state" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerState(v *agentstate.BreakerState) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerState(*v)
	}
	return _u
}

// SetBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field.
func (_u *AgentStateUpdateOne) SetBreakerConsecutiveErrors(v int) *AgentStateUpdateOne {
	_u.mutation.ResetBreakerConsecutiveErrors()
	_u.mutation.SetBreakerConsecutiveErrors(v)
	return _u
}

// SetNillableBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerConsecutiveErrors(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerConsecutiveErrors(*v)
	}
	return _u
}

// AddBreakerConsecutiveErrors adds value to the "breaker_consecutive_errors" field.
func (_u *AgentStateUpdateOne) AddBreakerConsecutiveErrors(v int) *AgentStateUpdateOne {
	_u.mutation.AddBreakerConsecutiveErrors(v)
	return _u
}

// SetBreakerLastError sets the "breaker_last_error" field.
func (_u *AgentStateUpdateOne) SetBreakerLastError(v string) *AgentStateUpdateOne {
	_u.mutation.SetBreakerLastError(v)
	return _u
}

// SetNillableBreakerLastError sets the "breaker_last_error" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerLastError(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerLastError(*v)
	}
	return _u
}

// ClearBreakerLastError clears the value of the "breaker_last_error" field.
func (_u *AgentStateUpdateOne) ClearBreakerLastError() *AgentStateUpdateOne {
	_u.mutation.ClearBreakerLastError()
	return _u
}

// SetBreakerFirstFailureAt sets the "breaker_first_failure_at" field.
func (_u *AgentStateUpdateOne) SetBreakerFirstFailureAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetBreakerFirstFailureAt(v)
	return _u
}

// SetNillableBreakerFirstFailureAt sets the "breaker_first_failure_at" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerFirstFailureAt(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerFirstFailureAt(*v)
	}
	return _u
}

// ClearBreakerFirstFailureAt clears the value of the "breaker_first_failure_at" field.
func (_u *AgentStateUpdateOne) ClearBreakerFirstFailureAt() *AgentStateUpdateOne {
	_u.mutation.ClearBreakerFirstFailureAt()
	return _u
}

// SetBreakerCooldownUntil sets the "breaker_cooldown_until" field.
func (_u *AgentStateUpdateOne) SetBreakerCooldownUntil(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetBreakerCooldownUntil(v)
	return _u
}

// SetNillableBreakerCooldownUntil sets the "breaker_cooldown_until" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerCooldownUntil(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerCooldownUntil(*v)
	}
	return _u
}

// ClearBreakerCooldownUntil clears the value of the "breaker_cooldown_until" field.
func (_u *AgentStateUpdateOne) ClearBreakerCooldownUntil() *AgentStateUpdateOne {
	_u.mutation.ClearBreakerCooldownUntil()
	return _u
}

// SetBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field.
func (_u *AgentStateUpdateOne) SetBreakerCooldownMinutes(v int) *AgentStateUpdateOne {
	_u.mutation.ResetBreakerCooldownMinutes()
	_u.mutation.SetBreakerCooldownMinutes(v)
	return _u
}

// SetNillableBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableBreakerCooldownMinutes(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetBreakerCooldownMinutes(*v)
	}
	return _u
}

// AddBreakerCooldownMinutes adds value to the "breaker_cooldown_minutes" field.
func (_u *AgentStateUpdateOne) AddBreakerCooldownMinutes(v int) *AgentStateUpdateOne {
	_u.mutation.AddBreakerCooldownMinutes(v)
	return _u
}

// SetProbeInFlight sets the "probe_in_flight" field.
func (_u *AgentStateUpdateOne) SetProbeInFlight(v bool) *AgentStateUpdateOne {
	_u.mutation.SetProbeInFlight(v)
	return _u
}

// SetNillableProbeInFlight sets the "probe_in_flight" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableProbeInFlight(v *bool) *AgentStateUpdateOne {
	if v != nil {
		_u.SetProbeInFlight(*v)
	}
	return _u
}

// SetMaxHourlyActions sets the "max_hourly_actions" field.
func (_u *AgentStateUpdateOne) SetMaxHourlyActions(v int) *AgentStateUpdateOne {
	_u.mutation.ResetMaxHourlyActions()
	_u.mutation.SetMaxHourlyActions(v)
	return _u
}

// SetNillableMaxHourlyActions sets the "max_hourly_actions" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableMaxHourlyActions(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetMaxHourlyActions(*v)
	}
	return _u
}

// AddMaxHourlyActions adds value to the "max_hourly_actions" field.
func (_u *AgentStateUpdateOne) AddMaxHourlyActions(v int) *AgentStateUpdateOne {
	_u.mutation.AddMaxHourlyActions(v)
	return _u
}

// SetMaxDailyActions sets the "max_daily_actions" field.
func (_u *AgentStateUpdateOne) SetMaxDailyActions(v int) *AgentStateUpdateOne {
	_u.mutation.ResetMaxDailyActions()
	_u.mutation.SetMaxDailyActions(v)
	return _u
}

// SetNillableMaxDailyActions sets the "max_daily_actions" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableMaxDailyActions(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetMaxDailyActions(*v)
	}
	return _u
}

// AddMaxDailyActions adds value to the "max_daily_actions" field.
func (_u *AgentStateUpdateOne) AddMaxDailyActions(v int) *AgentStateUpdateOne {
	_u.mutation.AddMaxDailyActions(v)
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *AgentStateUpdateOne) SetCooldownMinutes(v int) *AgentStateUpdateOne {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableCooldownMinutes(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *AgentStateUpdateOne) AddCooldownMinutes(v int) *AgentStateUpdateOne {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentStateUpdateOne) SetConfig(v map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentStateUpdateOne) ClearConfig() *AgentStateUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetCounterDate sets the "counter_date" field.
func (_u *AgentStateUpdateOne) SetCounterDate(v string) *AgentStateUpdateOne {
	_u.mutation.SetCounterDate(v)
	return _u
}

// SetNillableCounterDate sets the "counter_date" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableCounterDate(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetCounterDate(*v)
	}
	return _u
}

// SetActionsTaken sets the "actions_taken" field.
func (_u *AgentStateUpdateOne) SetActionsTaken(v int) *AgentStateUpdateOne {
	_u.mutation.ResetActionsTaken()
	_u.mutation.SetActionsTaken(v)
	return _u
}

// SetNillableActionsTaken sets the "actions_taken" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableActionsTaken(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetActionsTaken(*v)
	}
	return _u
}

// AddActionsTaken adds value to the "actions_taken" field.
func (_u *AgentStateUpdateOne) AddActionsTaken(v int) *AgentStateUpdateOne {
	_u.mutation.AddActionsTaken(v)
	return _u
}

// SetActionsSuccessful sets the "actions_successful" field.
func (_u *AgentStateUpdateOne) SetActionsSuccessful(v int) *AgentStateUpdateOne {
	_u.mutation.ResetActionsSuccessful()
	_u.mutation.SetActionsSuccessful(v)
	return _u
}

// SetNillableActionsSuccessful sets the "actions_successful" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableActionsSuccessful(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetActionsSuccessful(*v)
	}
	return _u
}

// AddActionsSuccessful adds value to the "actions_successful" field.
func (_u *AgentStateUpdateOne) AddActionsSuccessful(v int) *AgentStateUpdateOne {
	_u.mutation.AddActionsSuccessful(v)
	return _u
}

// SetActionsFailed sets the "actions_failed" field.
func (_u *AgentStateUpdateOne) SetActionsFailed(v int) *AgentStateUpdateOne {
	_u.mutation.ResetActionsFailed()
	_u.mutation.SetActionsFailed(v)
	return _u
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableActionsFailed(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetActionsFailed(*v)
	}
	return _u
}

// AddActionsFailed adds value to the "actions_failed" field.
func (_u *AgentStateUpdateOne) AddActionsFailed(v int) *AgentStateUpdateOne {
	_u.mutation.AddActionsFailed(v)
	return _u
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_u *AgentStateUpdateOne) SetRevenueGenerated(v int64) *AgentStateUpdateOne {
	_u.mutation.ResetRevenueGenerated()
	_u.mutation.SetRevenueGenerated(v)
	return _u
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableRevenueGenerated(v *int64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetRevenueGenerated(*v)
	}
	return _u
}

// AddRevenueGenerated adds value to the "revenue_generated" field.
func (_u *AgentStateUpdateOne) AddRevenueGenerated(v int64) *AgentStateUpdateOne {
	_u.mutation.AddRevenueGenerated(v)
	return _u
}

// SetActionsByType sets the "actions_by_type" field.
func (_u *AgentStateUpdateOne) SetActionsByType(v map[string]int) *AgentStateUpdateOne {
	_u.mutation.SetActionsByType(v)
	return _u
}

// ClearActionsByType clears the value of the "actions_by_type" field.
func (_u *AgentStateUpdateOne) ClearActionsByType() *AgentStateUpdateOne {
	_u.mutation.ClearActionsByType()
	return _u
}

// SetHourWindowStart sets the "hour_window_start" field.
func (_u *AgentStateUpdateOne) SetHourWindowStart(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetHourWindowStart(v)
	return _u
}

// SetNillableHourWindowStart sets the "hour_window_start" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableHourWindowStart(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetHourWindowStart(*v)
	}
	return _u
}

// ClearHourWindowStart clears the value of the "hour_window_start" field.
func (_u *AgentStateUpdateOne) ClearHourWindowStart() *AgentStateUpdateOne {
	_u.mutation.ClearHourWindowStart()
	return _u
}

// SetHourWindowCount sets the "hour_window_count" field.
func (_u *AgentStateUpdateOne) SetHourWindowCount(v int) *AgentStateUpdateOne {
	_u.mutation.ResetHourWindowCount()
	_u.mutation.SetHourWindowCount(v)
	return _u
}

// SetNillableHourWindowCount sets the "hour_window_count" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableHourWindowCount(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetHourWindowCount(*v)
	}
	return _u
}

// AddHourWindowCount adds value to the "hour_window_count" field.
func (_u *AgentStateUpdateOne) AddHourWindowCount(v int) *AgentStateUpdateOne {
	_u.mutation.AddHourWindowCount(v)
	return _u
}

// SetDayWindowStart sets the "day_window_start" field.
func (_u *AgentStateUpdateOne) SetDayWindowStart(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetDayWindowStart(v)
	return _u
}

// SetNillableDayWindowStart sets the "day_window_start" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableDayWindowStart(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetDayWindowStart(*v)
	}
	return _u
}

// ClearDayWindowStart clears the value of the "day_window_start" field.
func (_u *AgentStateUpdateOne) ClearDayWindowStart() *AgentStateUpdateOne {
	_u.mutation.ClearDayWindowStart()
	return _u
}

// SetDayWindowCount sets the "day_window_count" field.
func (_u *AgentStateUpdateOne) SetDayWindowCount(v int) *AgentStateUpdateOne {
	_u.mutation.ResetDayWindowCount()
	_u.mutation.SetDayWindowCount(v)
	return _u
}

// SetNillableDayWindowCount sets the "day_window_count" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableDayWindowCount(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetDayWindowCount(*v)
	}
	return _u
}

// AddDayWindowCount adds value to the "day_window_count" field.
func (_u *AgentStateUpdateOne) AddDayWindowCount(v int) *AgentStateUpdateOne {
	_u.mutation.AddDayWindowCount(v)
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentStateUpdateOne) SetLastHeartbeat(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLastHeartbeat(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentStateUpdateOne) ClearLastHeartbeat() *AgentStateUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *AgentStateUpdateOne) SetConsecutiveFailures(v int) *AgentStateUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableConsecutiveFailures(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *AgentStateUpdateOne) AddConsecutiveFailures(v int) *AgentStateUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *AgentStateUpdateOne) SetSuccessRate(v float64) *AgentStateUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableSuccessRate(v *float64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *AgentStateUpdateOne) AddSuccessRate(v float64) *AgentStateUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentStateUpdateOne) SetAvgLatencyMs(v float64) *AgentStateUpdateOne {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableAvgLatencyMs(v *float64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentStateUpdateOne) AddAvgLatencyMs(v float64) *AgentStateUpdateOne {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentStateUpdateOne) SetVersion(v int64) *AgentStateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableVersion(v *int64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentStateUpdateOne) AddVersion(v int64) *AgentStateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdateOne) SetUpdatedAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BreakerState(); ok {
		if err := agentstate.BreakerStateValidator(v); err != nil {
			return &ValidationError{Name: "breaker_state", err: fmt.Errorf(`ent: validator failed for field "AgentState.breaker_state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastExecution(); ok {
		_spec.SetField(agentstate.FieldLastExecution, field.TypeTime, value)
	}
	if _u.mutation.LastExecutionCleared() {
		_spec.ClearField(agentstate.FieldLastExecution, field.TypeTime)
	}
	if value, ok := _u.mutation.NextScheduled(); ok {
		_spec.SetField(agentstate.FieldNextScheduled, field.TypeTime, value)
	}
	if _u.mutation.NextScheduledCleared() {
		_spec.ClearField(agentstate.FieldNextScheduled, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerState(); ok {
		_spec.SetField(agentstate.FieldBreakerState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BreakerConsecutiveErrors(); ok {
		_spec.SetField(agentstate.FieldBreakerConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakerConsecutiveErrors(); ok {
		_spec.AddField(agentstate.FieldBreakerConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BreakerLastError(); ok {
		_spec.SetField(agentstate.FieldBreakerLastError, field.TypeString, value)
	}
	if _u.mutation.BreakerLastErrorCleared() {
		_spec.ClearField(agentstate.FieldBreakerLastError, field.TypeString)
	}
	if value, ok := _u.mutation.BreakerFirstFailureAt(); ok {
		_spec.SetField(agentstate.FieldBreakerFirstFailureAt, field.TypeTime, value)
	}
	if _u.mutation.BreakerFirstFailureAtCleared() {
		_spec.ClearField(agentstate.FieldBreakerFirstFailureAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerCooldownUntil(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.BreakerCooldownUntilCleared() {
		_spec.ClearField(agentstate.FieldBreakerCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakerCooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldBreakerCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBreakerCooldownMinutes(); ok {
		_spec.AddField(agentstate.FieldBreakerCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProbeInFlight(); ok {
		_spec.SetField(agentstate.FieldProbeInFlight, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxHourlyActions(); ok {
		_spec.SetField(agentstate.FieldMaxHourlyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxHourlyActions(); ok {
		_spec.AddField(agentstate.FieldMaxHourlyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyActions(); ok {
		_spec.SetField(agentstate.FieldMaxDailyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyActions(); ok {
		_spec.AddField(agentstate.FieldMaxDailyActions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(agentstate.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(agentstate.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agentstate.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agentstate.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.CounterDate(); ok {
		_spec.SetField(agentstate.FieldCounterDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionsTaken(); ok {
		_spec.SetField(agentstate.FieldActionsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsTaken(); ok {
		_spec.AddField(agentstate.FieldActionsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsSuccessful(); ok {
		_spec.SetField(agentstate.FieldActionsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsSuccessful(); ok {
		_spec.AddField(agentstate.FieldActionsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsFailed(); ok {
		_spec.SetField(agentstate.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsFailed(); ok {
		_spec.AddField(agentstate.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueGenerated(); ok {
		_spec.SetField(agentstate.FieldRevenueGenerated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenueGenerated(); ok {
		_spec.AddField(agentstate.FieldRevenueGenerated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActionsByType(); ok {
		_spec.SetField(agentstate.FieldActionsByType, field.TypeJSON, value)
	}
	if _u.mutation.ActionsByTypeCleared() {
		_spec.ClearField(agentstate.FieldActionsByType, field.TypeJSON)
	}
	if value, ok := _u.mutation.HourWindowStart(); ok {
		_spec.SetField(agentstate.FieldHourWindowStart, field.TypeTime, value)
	}
	if _u.mutation.HourWindowStartCleared() {
		_spec.ClearField(agentstate.FieldHourWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.HourWindowCount(); ok {
		_spec.SetField(agentstate.FieldHourWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHourWindowCount(); ok {
		_spec.AddField(agentstate.FieldHourWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayWindowStart(); ok {
		_spec.SetField(agentstate.FieldDayWindowStart, field.TypeTime, value)
	}
	if _u.mutation.DayWindowStartCleared() {
		_spec.ClearField(agentstate.FieldDayWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DayWindowCount(); ok {
		_spec.SetField(agentstate.FieldDayWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayWindowCount(); ok {
		_spec.AddField(agentstate.FieldDayWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agentstate.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agentstate.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(agentstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(agentstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(agentstate.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(agentstate.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentstate.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentstate.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentstate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
