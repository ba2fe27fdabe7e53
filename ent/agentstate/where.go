// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTenantID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAgentName, v))
}

// LastExecution applies equality check predicate on the "last_execution" field. It's identical to LastExecutionEQ.
func LastExecution(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastExecution, v))
}

// NextScheduled applies equality check predicate on the "next_scheduled" field. It's identical to NextScheduledEQ.
func NextScheduled(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldNextScheduled, v))
}

// BreakerConsecutiveErrors applies equality check predicate on the "breaker_consecutive_errors" field. It's identical to BreakerConsecutiveErrorsEQ.
func BreakerConsecutiveErrors(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerConsecutiveErrors, v))
}

// BreakerLastError applies equality check predicate on the "breaker_last_error" field. It's identical to BreakerLastErrorEQ.
func BreakerLastError(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerLastError, v))
}

// BreakerFirstFailureAt applies equality check predicate on the "breaker_first_failure_at" field. It's identical to BreakerFirstFailureAtEQ.
func BreakerFirstFailureAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerFirstFailureAt, v))
}

// BreakerCooldownUntil applies equality check predicate on the "breaker_cooldown_until" field. It's identical to BreakerCooldownUntilEQ.
func BreakerCooldownUntil(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownMinutes applies equality check predicate on the "breaker_cooldown_minutes" field. It's identical to BreakerCooldownMinutesEQ.
func BreakerCooldownMinutes(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerCooldownMinutes, v))
}

// ProbeInFlight applies equality check predicate on the "probe_in_flight" field. It's identical to ProbeInFlightEQ.
func ProbeInFlight(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldProbeInFlight, v))
}

// MaxHourlyActions applies equality check predicate on the "max_hourly_actions" field. It's identical to MaxHourlyActionsEQ.
func MaxHourlyActions(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldMaxHourlyActions, v))
}

// MaxDailyActions applies equality check predicate on the "max_daily_actions" field. It's identical to MaxDailyActionsEQ.
func MaxDailyActions(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldMaxDailyActions, v))
}

// CooldownMinutes applies equality check predicate on the "cooldown_minutes" field. It's identical to CooldownMinutesEQ.
func CooldownMinutes(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCooldownMinutes, v))
}

// CounterDate applies equality check predicate on the "counter_date" field. It's identical to CounterDateEQ.
func CounterDate(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCounterDate, v))
}

// ActionsTaken applies equality check predicate on the "actions_taken" field. It's identical to ActionsTakenEQ.
func ActionsTaken(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsTaken, v))
}

// ActionsSuccessful applies equality check predicate on the "actions_successful" field. It's identical to ActionsSuccessfulEQ.
func ActionsSuccessful(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsSuccessful, v))
}

// ActionsFailed applies equality check predicate on the "actions_failed" field. It's identical to ActionsFailedEQ.
func ActionsFailed(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsFailed, v))
}

// RevenueGenerated applies equality check predicate on the "revenue_generated" field. It's identical to RevenueGeneratedEQ.
func RevenueGenerated(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldRevenueGenerated, v))
}

// HourWindowStart applies equality check predicate on the "hour_window_start" field. It's identical to HourWindowStartEQ.
func HourWindowStart(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldHourWindowStart, v))
}

// HourWindowCount applies equality check predicate on the "hour_window_count" field. It's identical to HourWindowCountEQ.
func HourWindowCount(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldHourWindowCount, v))
}

// DayWindowStart applies equality check predicate on the "day_window_start" field. It's identical to DayWindowStartEQ.
func DayWindowStart(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldDayWindowStart, v))
}

// DayWindowCount applies equality check predicate on the "day_window_count" field. It's identical to DayWindowCountEQ.
func DayWindowCount(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldDayWindowCount, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastHeartbeat, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSuccessRate, v))
}

// AvgLatencyMs applies equality check predicate on the "avg_latency_ms" field. It's identical to AvgLatencyMsEQ.
func AvgLatencyMs(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldAgentName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldStatus, vs...))
}

// LastExecutionEQ applies the EQ predicate on the "last_execution" field.
func LastExecutionEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastExecution, v))
}

// LastExecutionNEQ applies the NEQ predicate on the "last_execution" field.
func LastExecutionNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldLastExecution, v))
}

// LastExecutionIn applies the In predicate on the "last_execution" field.
func LastExecutionIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldLastExecution, vs...))
}

// LastExecutionNotIn applies the NotIn predicate on the "last_execution" field.
func LastExecutionNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldLastExecution, vs...))
}

// LastExecutionGT applies the GT predicate on the "last_execution" field.
func LastExecutionGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldLastExecution, v))
}

// LastExecutionGTE applies the GTE predicate on the "last_execution" field.
func LastExecutionGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldLastExecution, v))
}

// LastExecutionLT applies the LT predicate on the "last_execution" field.
func LastExecutionLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldLastExecution, v))
}

// LastExecutionLTE applies the LTE predicate on the "last_execution" field.
func LastExecutionLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldLastExecution, v))
}

// LastExecutionIsNil applies the IsNil predicate on the "last_execution" field.
func LastExecutionIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldLastExecution))
}

// LastExecutionNotNil applies the NotNil predicate on the "last_execution" field.
func LastExecutionNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldLastExecution))
}

// NextScheduledEQ applies the EQ predicate on the "next_scheduled" field.
func NextScheduledEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldNextScheduled, v))
}

// NextScheduledNEQ applies the NEQ predicate on the "next_scheduled" field.
func NextScheduledNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldNextScheduled, v))
}

// NextScheduledIn applies the In predicate on the "next_scheduled" field.
func NextScheduledIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldNextScheduled, vs...))
}

// NextScheduledNotIn applies the NotIn predicate on the "next_scheduled" field.
func NextScheduledNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldNextScheduled, vs...))
}

// NextScheduledGT applies the GT predicate on the "next_scheduled" field.
func NextScheduledGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldNextScheduled, v))
}

// NextScheduledGTE applies the GTE predicate on the "next_scheduled" field.
func NextScheduledGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldNextScheduled, v))
}

// NextScheduledLT applies the LT predicate on the "next_scheduled" field.
func NextScheduledLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldNextScheduled, v))
}

// NextScheduledLTE applies the LTE predicate on the "next_scheduled" field.
func NextScheduledLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldNextScheduled, v))
}

// NextScheduledIsNil applies the IsNil predicate on the "next_scheduled" field.
func NextScheduledIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldNextScheduled))
}

// NextScheduledNotNil applies the NotNil predicate on the "next_scheduled" field.
func NextScheduledNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldNextScheduled))
}

// BreakerStateEQ applies the EQ predicate on the "breaker_state" field.
func BreakerStateEQ(v BreakerState) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerState, v))
}

// BreakerStateNEQ applies the NEQ predicate on the "breaker_state" field.
func BreakerStateNEQ(v BreakerState) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerState, v))
}

// BreakerStateIn applies the In predicate on the "breaker_state" field.
func BreakerStateIn(vs ...BreakerState) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerState, vs...))
}

// BreakerStateNotIn applies the NotIn predicate on the "breaker_state" field.
func BreakerStateNotIn(vs ...BreakerState) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerState, vs...))
}

// BreakerConsecutiveErrorsEQ applies the EQ predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerConsecutiveErrors, v))
}

// BreakerConsecutiveErrorsNEQ applies the NEQ predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerConsecutiveErrors, v))
}

// BreakerConsecutiveErrorsIn applies the In predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerConsecutiveErrors, vs...))
}

// BreakerConsecutiveErrorsNotIn applies the NotIn predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerConsecutiveErrors, vs...))
}

// BreakerConsecutiveErrorsGT applies the GT predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldBreakerConsecutiveErrors, v))
}

// BreakerConsecutiveErrorsGTE applies the GTE predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldBreakerConsecutiveErrors, v))
}

// BreakerConsecutiveErrorsLT applies the LT predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldBreakerConsecutiveErrors, v))
}

// BreakerConsecutiveErrorsLTE applies the LTE predicate on the "breaker_consecutive_errors" field.
func BreakerConsecutiveErrorsLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldBreakerConsecutiveErrors, v))
}

// BreakerLastErrorEQ applies the EQ predicate on the "breaker_last_error" field.
func BreakerLastErrorEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerLastError, v))
}

// BreakerLastErrorNEQ applies the NEQ predicate on the "breaker_last_error" field.
func BreakerLastErrorNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerLastError, v))
}

// BreakerLastErrorIn applies the In predicate on the "breaker_last_error" field.
func BreakerLastErrorIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerLastError, vs...))
}

// BreakerLastErrorNotIn applies the NotIn predicate on the "breaker_last_error" field.
func BreakerLastErrorNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerLastError, vs...))
}

// BreakerLastErrorGT applies the GT predicate on the "breaker_last_error" field.
func BreakerLastErrorGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldBreakerLastError, v))
}

// BreakerLastErrorGTE applies the GTE predicate on the "breaker_last_error" field.
func BreakerLastErrorGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldBreakerLastError, v))
}

// BreakerLastErrorLT applies the LT predicate on the "breaker_last_error" field.
func BreakerLastErrorLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldBreakerLastError, v))
}

// BreakerLastErrorLTE applies the LTE predicate on the "breaker_last_error" field.
func BreakerLastErrorLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldBreakerLastError, v))
}

// BreakerLastErrorContains applies the Contains predicate on the "breaker_last_error" field.
func BreakerLastErrorContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldBreakerLastError, v))
}

// BreakerLastErrorHasPrefix applies the HasPrefix predicate on the "breaker_last_error" field.
func BreakerLastErrorHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldBreakerLastError, v))
}

// BreakerLastErrorHasSuffix applies the HasSuffix predicate on the "breaker_last_error" field.
func BreakerLastErrorHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldBreakerLastError, v))
}

// BreakerLastErrorIsNil applies the IsNil predicate on the "breaker_last_error" field.
func BreakerLastErrorIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldBreakerLastError))
}

// BreakerLastErrorNotNil applies the NotNil predicate on the "breaker_last_error" field.
func BreakerLastErrorNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldBreakerLastError))
}

// BreakerLastErrorEqualFold applies the EqualFold predicate on the "breaker_last_error" field.
func BreakerLastErrorEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldBreakerLastError, v))
}

// BreakerLastErrorContainsFold applies the ContainsFold predicate on the "breaker_last_error" field.
func BreakerLastErrorContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldBreakerLastError, v))
}

// BreakerFirstFailureAtEQ applies the EQ predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtNEQ applies the NEQ predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtIn applies the In predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerFirstFailureAt, vs...))
}

// BreakerFirstFailureAtNotIn applies the NotIn predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerFirstFailureAt, vs...))
}

// BreakerFirstFailureAtGT applies the GT predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtGTE applies the GTE predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtLT applies the LT predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtLTE applies the LTE predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldBreakerFirstFailureAt, v))
}

// BreakerFirstFailureAtIsNil applies the IsNil predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldBreakerFirstFailureAt))
}

// BreakerFirstFailureAtNotNil applies the NotNil predicate on the "breaker_first_failure_at" field.
func BreakerFirstFailureAtNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldBreakerFirstFailureAt))
}

// BreakerCooldownUntilEQ applies the EQ predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilNEQ applies the NEQ predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilIn applies the In predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerCooldownUntil, vs...))
}

// BreakerCooldownUntilNotIn applies the NotIn predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerCooldownUntil, vs...))
}

// BreakerCooldownUntilGT applies the GT predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilGTE applies the GTE predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilLT applies the LT predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilLTE applies the LTE predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldBreakerCooldownUntil, v))
}

// BreakerCooldownUntilIsNil applies the IsNil predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldBreakerCooldownUntil))
}

// BreakerCooldownUntilNotNil applies the NotNil predicate on the "breaker_cooldown_until" field.
func BreakerCooldownUntilNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldBreakerCooldownUntil))
}

// BreakerCooldownMinutesEQ applies the EQ predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldBreakerCooldownMinutes, v))
}

// BreakerCooldownMinutesNEQ applies the NEQ predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldBreakerCooldownMinutes, v))
}

// BreakerCooldownMinutesIn applies the In predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldBreakerCooldownMinutes, vs...))
}

// BreakerCooldownMinutesNotIn applies the NotIn predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldBreakerCooldownMinutes, vs...))
}

// BreakerCooldownMinutesGT applies the GT predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldBreakerCooldownMinutes, v))
}

// BreakerCooldownMinutesGTE applies the GTE predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldBreakerCooldownMinutes, v))
}

// BreakerCooldownMinutesLT applies the LT predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldBreakerCooldownMinutes, v))
}

// BreakerCooldownMinutesLTE applies the LTE predicate on the "breaker_cooldown_minutes" field.
func BreakerCooldownMinutesLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldBreakerCooldownMinutes, v))
}

// ProbeInFlightEQ applies the EQ predicate on the "probe_in_flight" field.
func ProbeInFlightEQ(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldProbeInFlight, v))
}

// ProbeInFlightNEQ applies the NEQ predicate on the "probe_in_flight" field.
func ProbeInFlightNEQ(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldProbeInFlight, v))
}

// MaxHourlyActionsEQ applies the EQ predicate on the "max_hourly_actions" field.
func MaxHourlyActionsEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldMaxHourlyActions, v))
}

// MaxHourlyActionsNEQ applies the NEQ predicate on the "max_hourly_actions" field.
func MaxHourlyActionsNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldMaxHourlyActions, v))
}

// MaxHourlyActionsIn applies the In predicate on the "max_hourly_actions" field.
func MaxHourlyActionsIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldMaxHourlyActions, vs...))
}

// MaxHourlyActionsNotIn applies the NotIn predicate on the "max_hourly_actions" field.
func MaxHourlyActionsNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldMaxHourlyActions, vs...))
}

// MaxHourlyActionsGT applies the GT predicate on the "max_hourly_actions" field.
func MaxHourlyActionsGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldMaxHourlyActions, v))
}

// MaxHourlyActionsGTE applies the GTE predicate on the "max_hourly_actions" field.
func MaxHourlyActionsGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldMaxHourlyActions, v))
}

// MaxHourlyActionsLT applies the LT predicate on the "max_hourly_actions" field.
func MaxHourlyActionsLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldMaxHourlyActions, v))
}

// MaxHourlyActionsLTE applies the LTE predicate on the "max_hourly_actions" field.
func MaxHourlyActionsLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldMaxHourlyActions, v))
}

// MaxDailyActionsEQ applies the EQ predicate on the "max_daily_actions" field.
func MaxDailyActionsEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldMaxDailyActions, v))
}

// MaxDailyActionsNEQ applies the NEQ predicate on the "max_daily_actions" field.
func MaxDailyActionsNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldMaxDailyActions, v))
}

// MaxDailyActionsIn applies the In predicate on the "max_daily_actions" field.
func MaxDailyActionsIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldMaxDailyActions, vs...))
}

// MaxDailyActionsNotIn applies the NotIn predicate on the "max_daily_actions" field.
func MaxDailyActionsNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldMaxDailyActions, vs...))
}

// MaxDailyActionsGT applies the GT predicate on the "max_daily_actions" field.
func MaxDailyActionsGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldMaxDailyActions, v))
}

// MaxDailyActionsGTE applies the GTE predicate on the "max_daily_actions" field.
func MaxDailyActionsGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldMaxDailyActions, v))
}

// MaxDailyActionsLT applies the LT predicate on the "max_daily_actions" field.
func MaxDailyActionsLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldMaxDailyActions, v))
}

// MaxDailyActionsLTE applies the LTE predicate on the "max_daily_actions" field.
func MaxDailyActionsLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldMaxDailyActions, v))
}

// CooldownMinutesEQ applies the EQ predicate on the "cooldown_minutes" field.
func CooldownMinutesEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesNEQ applies the NEQ predicate on the "cooldown_minutes" field.
func CooldownMinutesNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesIn applies the In predicate on the "cooldown_minutes" field.
func CooldownMinutesIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesNotIn applies the NotIn predicate on the "cooldown_minutes" field.
func CooldownMinutesNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesGT applies the GT predicate on the "cooldown_minutes" field.
func CooldownMinutesGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCooldownMinutes, v))
}

// CooldownMinutesGTE applies the GTE predicate on the "cooldown_minutes" field.
func CooldownMinutesGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCooldownMinutes, v))
}

// CooldownMinutesLT applies the LT predicate on the "cooldown_minutes" field.
func CooldownMinutesLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCooldownMinutes, v))
}

// CooldownMinutesLTE applies the LTE predicate on the "cooldown_minutes" field.
func CooldownMinutesLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCooldownMinutes, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldConfig))
}

// CounterDateEQ applies the EQ predicate on the "counter_date" field.
func CounterDateEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCounterDate, v))
}

// CounterDateNEQ applies the NEQ predicate on the "counter_date" field.
func CounterDateNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCounterDate, v))
}

// CounterDateIn applies the In predicate on the "counter_date" field.
func CounterDateIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCounterDate, vs...))
}

// CounterDateNotIn applies the NotIn predicate on the "counter_date" field.
func CounterDateNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCounterDate, vs...))
}

// CounterDateGT applies the GT predicate on the "counter_date" field.
func CounterDateGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCounterDate, v))
}

// CounterDateGTE applies the GTE predicate on the "counter_date" field.
func CounterDateGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCounterDate, v))
}

// CounterDateLT applies the LT predicate on the "counter_date" field.
func CounterDateLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCounterDate, v))
}

// CounterDateLTE applies the LTE predicate on the "counter_date" field.
func CounterDateLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCounterDate, v))
}

// CounterDateContains applies the Contains predicate on the "counter_date" field.
func CounterDateContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldCounterDate, v))
}

// CounterDateHasPrefix applies the HasPrefix predicate on the "counter_date" field.
func CounterDateHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldCounterDate, v))
}

// CounterDateHasSuffix applies the HasSuffix predicate on the "counter_date" field.
func CounterDateHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldCounterDate, v))
}

// CounterDateEqualFold applies the EqualFold predicate on the "counter_date" field.
func CounterDateEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldCounterDate, v))
}

// CounterDateContainsFold applies the ContainsFold predicate on the "counter_date" field.
func CounterDateContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldCounterDate, v))
}

// ActionsTakenEQ applies the EQ predicate on the "actions_taken" field.
func ActionsTakenEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsTaken, v))
}

// ActionsTakenNEQ applies the NEQ predicate on the "actions_taken" field.
func ActionsTakenNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldActionsTaken, v))
}

// ActionsTakenIn applies the In predicate on the "actions_taken" field.
func ActionsTakenIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldActionsTaken, vs...))
}

// ActionsTakenNotIn applies the NotIn predicate on the "actions_taken" field.
func ActionsTakenNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldActionsTaken, vs...))
}

// ActionsTakenGT applies the GT predicate on the "actions_taken" field.
func ActionsTakenGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldActionsTaken, v))
}

// ActionsTakenGTE applies the GTE predicate on the "actions_taken" field.
func ActionsTakenGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldActionsTaken, v))
}

// ActionsTakenLT applies the LT predicate on the "actions_taken" field.
func ActionsTakenLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldActionsTaken, v))
}

// ActionsTakenLTE applies the LTE predicate on the "actions_taken" field.
func ActionsTakenLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldActionsTaken, v))
}

// ActionsSuccessfulEQ applies the EQ predicate on the "actions_successful" field.
func ActionsSuccessfulEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsSuccessful, v))
}

// ActionsSuccessfulNEQ applies the NEQ predicate on the "actions_successful" field.
func ActionsSuccessfulNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldActionsSuccessful, v))
}

// ActionsSuccessfulIn applies the In predicate on the "actions_successful" field.
func ActionsSuccessfulIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldActionsSuccessful, vs...))
}

// ActionsSuccessfulNotIn applies the NotIn predicate on the "actions_successful" field.
func ActionsSuccessfulNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldActionsSuccessful, vs...))
}

// ActionsSuccessfulGT applies the GT predicate on the "actions_successful" field.
func ActionsSuccessfulGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldActionsSuccessful, v))
}

// ActionsSuccessfulGTE applies the GTE predicate on the "actions_successful" field.
func ActionsSuccessfulGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldActionsSuccessful, v))
}

// ActionsSuccessfulLT applies the LT predicate on the "actions_successful" field.
func ActionsSuccessfulLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldActionsSuccessful, v))
}

// ActionsSuccessfulLTE applies the LTE predicate on the "actions_successful" field.
func ActionsSuccessfulLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldActionsSuccessful, v))
}

// ActionsFailedEQ applies the EQ predicate on the "actions_failed" field.
func ActionsFailedEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldActionsFailed, v))
}

// ActionsFailedNEQ applies the NEQ predicate on the "actions_failed" field.
func ActionsFailedNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldActionsFailed, v))
}

// ActionsFailedIn applies the In predicate on the "actions_failed" field.
func ActionsFailedIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldActionsFailed, vs...))
}

// ActionsFailedNotIn applies the NotIn predicate on the "actions_failed" field.
func ActionsFailedNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldActionsFailed, vs...))
}

// ActionsFailedGT applies the GT predicate on the "actions_failed" field.
func ActionsFailedGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldActionsFailed, v))
}

// ActionsFailedGTE applies the GTE predicate on the "actions_failed" field.
func ActionsFailedGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldActionsFailed, v))
}

// ActionsFailedLT applies the LT predicate on the "actions_failed" field.
func ActionsFailedLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldActionsFailed, v))
}

// ActionsFailedLTE applies the LTE predicate on the "actions_failed" field.
func ActionsFailedLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldActionsFailed, v))
}

// RevenueGeneratedEQ applies the EQ predicate on the "revenue_generated" field.
func RevenueGeneratedEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldRevenueGenerated, v))
}

// RevenueGeneratedNEQ applies the NEQ predicate on the "revenue_generated" field.
func RevenueGeneratedNEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldRevenueGenerated, v))
}

// RevenueGeneratedIn applies the In predicate on the "revenue_generated" field.
func RevenueGeneratedIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldRevenueGenerated, vs...))
}

// RevenueGeneratedNotIn applies the NotIn predicate on the "revenue_generated" field.
func RevenueGeneratedNotIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldRevenueGenerated, vs...))
}

// RevenueGeneratedGT applies the GT predicate on the "revenue_generated" field.
func RevenueGeneratedGT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldRevenueGenerated, v))
}

// RevenueGeneratedGTE applies the GTE predicate on the "revenue_generated" field.
func RevenueGeneratedGTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldRevenueGenerated, v))
}

// RevenueGeneratedLT applies the LT predicate on the "revenue_generated" field.
func RevenueGeneratedLT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldRevenueGenerated, v))
}

// RevenueGeneratedLTE applies the LTE predicate on the "revenue_generated" field.
func RevenueGeneratedLTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldRevenueGenerated, v))
}

// ActionsByTypeIsNil applies the IsNil predicate on the "actions_by_type" field.
func ActionsByTypeIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldActionsByType))
}

// ActionsByTypeNotNil applies the NotNil predicate on the "actions_by_type" field.
func ActionsByTypeNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldActionsByType))
}

// HourWindowStartEQ applies the EQ predicate on the "hour_window_start" field.
func HourWindowStartEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldHourWindowStart, v))
}

// HourWindowStartNEQ applies the NEQ predicate on the "hour_window_start" field.
func HourWindowStartNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldHourWindowStart, v))
}

// HourWindowStartIn applies the In predicate on the "hour_window_start" field.
func HourWindowStartIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldHourWindowStart, vs...))
}

// HourWindowStartNotIn applies the NotIn predicate on the "hour_window_start" field.
func HourWindowStartNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldHourWindowStart, vs...))
}

// HourWindowStartGT applies the GT predicate on the "hour_window_start" field.
func HourWindowStartGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldHourWindowStart, v))
}

// HourWindowStartGTE applies the GTE predicate on the "hour_window_start" field.
func HourWindowStartGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldHourWindowStart, v))
}

// HourWindowStartLT applies the LT predicate on the "hour_window_start" field.
func HourWindowStartLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldHourWindowStart, v))
}

// HourWindowStartLTE applies the LTE predicate on the "hour_window_start" field.
func HourWindowStartLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldHourWindowStart, v))
}

// HourWindowStartIsNil applies the IsNil predicate on the "hour_window_start" field.
func HourWindowStartIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldHourWindowStart))
}

// HourWindowStartNotNil applies the NotNil predicate on the "hour_window_start" field.
func HourWindowStartNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldHourWindowStart))
}

// HourWindowCountEQ applies the EQ predicate on the "hour_window_count" field.
func HourWindowCountEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldHourWindowCount, v))
}

// HourWindowCountNEQ applies the NEQ predicate on the "hour_window_count" field.
func HourWindowCountNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldHourWindowCount, v))
}

// HourWindowCountIn applies the In predicate on the "hour_window_count" field.
func HourWindowCountIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldHourWindowCount, vs...))
}

// HourWindowCountNotIn applies the NotIn predicate on the "hour_window_count" field.
func HourWindowCountNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldHourWindowCount, vs...))
}

// HourWindowCountGT applies the GT predicate on the "hour_window_count" field.
func HourWindowCountGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldHourWindowCount, v))
}

// HourWindowCountGTE applies the GTE predicate on the "hour_window_count" field.
func HourWindowCountGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldHourWindowCount, v))
}

// HourWindowCountLT applies the LT predicate on the "hour_window_count" field.
func HourWindowCountLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldHourWindowCount, v))
}

// HourWindowCountLTE applies the LTE predicate on the "hour_window_count" field.
func HourWindowCountLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldHourWindowCount, v))
}

// DayWindowStartEQ applies the EQ predicate on the "day_window_start" field.
func DayWindowStartEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldDayWindowStart, v))
}

// DayWindowStartNEQ applies the NEQ predicate on the "day_window_start" field.
func DayWindowStartNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldDayWindowStart, v))
}

// DayWindowStartIn applies the In predicate on the "day_window_start" field.
func DayWindowStartIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldDayWindowStart, vs...))
}

// DayWindowStartNotIn applies the NotIn predicate on the "day_window_start" field.
func DayWindowStartNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldDayWindowStart, vs...))
}

// DayWindowStartGT applies the GT predicate on the "day_window_start" field.
func DayWindowStartGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldDayWindowStart, v))
}

// DayWindowStartGTE applies the GTE predicate on the "day_window_start" field.
func DayWindowStartGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldDayWindowStart, v))
}

// DayWindowStartLT applies the LT predicate on the "day_window_start" field.
func DayWindowStartLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldDayWindowStart, v))
}

// DayWindowStartLTE applies the LTE predicate on the "day_window_start" field.
func DayWindowStartLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldDayWindowStart, v))
}

// DayWindowStartIsNil applies the IsNil predicate on the "day_window_start" field.
func DayWindowStartIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldDayWindowStart))
}

// DayWindowStartNotNil applies the NotNil predicate on the "day_window_start" field.
func DayWindowStartNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldDayWindowStart))
}

// DayWindowCountEQ applies the EQ predicate on the "day_window_count" field.
func DayWindowCountEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldDayWindowCount, v))
}

// DayWindowCountNEQ applies the NEQ predicate on the "day_window_count" field.
func DayWindowCountNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldDayWindowCount, v))
}

// DayWindowCountIn applies the In predicate on the "day_window_count" field.
func DayWindowCountIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldDayWindowCount, vs...))
}

// DayWindowCountNotIn applies the NotIn predicate on the "day_window_count" field.
func DayWindowCountNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldDayWindowCount, vs...))
}

// DayWindowCountGT applies the GT predicate on the "day_window_count" field.
func DayWindowCountGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldDayWindowCount, v))
}

// DayWindowCountGTE applies the GTE predicate on the "day_window_count" field.
func DayWindowCountGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldDayWindowCount, v))
}

// DayWindowCountLT applies the LT predicate on the "day_window_count" field.
func DayWindowCountLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldDayWindowCount, v))
}

// DayWindowCountLTE applies the LTE predicate on the "day_window_count" field.
func DayWindowCountLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldDayWindowCount, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldLastHeartbeat))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldSuccessRate, v))
}

// AvgLatencyMsEQ applies the EQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsNEQ applies the NEQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsNEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsIn applies the In predicate on the "avg_latency_ms" field.
func AvgLatencyMsIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsNotIn applies the NotIn predicate on the "avg_latency_ms" field.
func AvgLatencyMsNotIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsGT applies the GT predicate on the "avg_latency_ms" field.
func AvgLatencyMsGT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsGTE applies the GTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsGTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLT applies the LT predicate on the "avg_latency_ms" field.
func AvgLatencyMsLT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLTE applies the LTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsLTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldAvgLatencyMs, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.NotPredicates(p))
}
