// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentstate type in the database.
	Label = "agent_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_state_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastExecution holds the string denoting the last_execution field in the database.
	FieldLastExecution = "last_execution"
	// FieldNextScheduled holds the string denoting the next_scheduled field in the database.
	FieldNextScheduled = "next_scheduled"
	// FieldBreakerState holds the string denoting the breaker_state field in the database.
	FieldBreakerState = "breaker_state"
	// FieldBreakerConsecutiveErrors holds the string denoting the breaker_consecutive_errors field in the database.
	FieldBreakerConsecutiveErrors = "breaker_consecutive_errors"
	// FieldBreakerLastError holds the string denoting the breaker_last_error field in the database.
	FieldBreakerLastError = "breaker_last_error"
	// FieldBreakerFirstFailureAt holds the string denoting the breaker_first_failure_at field in the database.
	FieldBreakerFirstFailureAt = "breaker_first_failure_at"
	// FieldBreakerCooldownUntil holds the string denoting the breaker_cooldown_until field in the database.
	FieldBreakerCooldownUntil = "breaker_cooldown_until"
	// FieldBreakerCooldownMinutes holds the string denoting the breaker_cooldown_minutes field in the database.
	FieldBreakerCooldownMinutes = "breaker_cooldown_minutes"
	// FieldProbeInFlight holds the string denoting the probe_in_flight field in the database.
	FieldProbeInFlight = "probe_in_flight"
	// FieldMaxHourlyActions holds the string denoting the max_hourly_actions field in the database.
	FieldMaxHourlyActions = "max_hourly_actions"
	// FieldMaxDailyActions holds the string denoting the max_daily_actions field in the database.
	FieldMaxDailyActions = "max_daily_actions"
	// FieldCooldownMinutes holds the string denoting the cooldown_minutes field in the database.
	FieldCooldownMinutes = "cooldown_minutes"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCounterDate holds the string denoting the counter_date field in the database.
	FieldCounterDate = "counter_date"
	// FieldActionsTaken holds the string denoting the actions_taken field in the database.
	FieldActionsTaken = "actions_taken"
	// FieldActionsSuccessful holds the string denoting the actions_successful field in the database.
	FieldActionsSuccessful = "actions_successful"
	// FieldActionsFailed holds the string denoting the actions_failed field in the database.
	FieldActionsFailed = "actions_failed"
	// FieldRevenueGenerated holds the string denoting the revenue_generated field in the database.
	FieldRevenueGenerated = "revenue_generated"
	// FieldActionsByType holds the string denoting the actions_by_type field in the database.
	FieldActionsByType = "actions_by_type"
	// FieldHourWindowStart holds the string denoting the hour_window_start field in the database.
	FieldHourWindowStart = "hour_window_start"
	// FieldHourWindowCount holds the string denoting the hour_window_count field in the database.
	FieldHourWindowCount = "hour_window_count"
	// FieldDayWindowStart holds the string denoting the day_window_start field in the database.
	FieldDayWindowStart = "day_window_start"
	// FieldDayWindowCount holds the string denoting the day_window_count field in the database.
	FieldDayWindowCount = "day_window_count"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldSuccessRate holds the string denoting the success_rate field in the database.
	FieldSuccessRate = "success_rate"
	// FieldAvgLatencyMs holds the string denoting the avg_latency_ms field in the database.
	FieldAvgLatencyMs = "avg_latency_ms"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentstate in the database.
	Table = "agent_states"
)

// Columns holds all SQL columns for agentstate fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentName,
	FieldStatus,
	FieldLastExecution,
	FieldNextScheduled,
	FieldBreakerState,
	FieldBreakerConsecutiveErrors,
	FieldBreakerLastError,
	FieldBreakerFirstFailureAt,
	FieldBreakerCooldownUntil,
	FieldBreakerCooldownMinutes,
	FieldProbeInFlight,
	FieldMaxHourlyActions,
	FieldMaxDailyActions,
	FieldCooldownMinutes,
	FieldConfig,
	FieldCounterDate,
	FieldActionsTaken,
	FieldActionsSuccessful,
	FieldActionsFailed,
	FieldRevenueGenerated,
	FieldActionsByType,
	FieldHourWindowStart,
	FieldHourWindowCount,
	FieldDayWindowStart,
	FieldDayWindowCount,
	FieldLastHeartbeat,
	FieldConsecutiveFailures,
	FieldSuccessRate,
	FieldAvgLatencyMs,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	AgentNameValidator func(string) error
	// DefaultBreakerConsecutiveErrors holds the default value on creation for the "breaker_consecutive_errors" field.
	DefaultBreakerConsecutiveErrors int
	// DefaultBreakerCooldownMinutes holds the default value on creation for the "breaker_cooldown_minutes" field.
	DefaultBreakerCooldownMinutes int
	// DefaultProbeInFlight holds the default value on creation for the "probe_in_flight" field.
	DefaultProbeInFlight bool
	// DefaultMaxHourlyActions holds the default value on creation for the "max_hourly_actions" field.
	DefaultMaxHourlyActions int
	// DefaultMaxDailyActions holds the default value on creation for the "max_daily_actions" field.
	DefaultMaxDailyActions int
	// DefaultCooldownMinutes holds the default value on creation for the "cooldown_minutes" field.
	DefaultCooldownMinutes int
	// DefaultCounterDate holds the default value on creation for the "counter_date" field.
	DefaultCounterDate string
	// DefaultActionsTaken holds the default value on creation for the "actions_taken" field.
	DefaultActionsTaken int
	// DefaultActionsSuccessful holds the default value on creation for the "actions_successful" field.
	DefaultActionsSuccessful int
	// DefaultActionsFailed holds the default value on creation for the "actions_failed" field.
	DefaultActionsFailed int
	// DefaultRevenueGenerated holds the default value on creation for the "revenue_generated" field.
	DefaultRevenueGenerated int64
	// DefaultHourWindowCount holds the default value on creation for the "hour_window_count" field.
	DefaultHourWindowCount int
	// DefaultDayWindowCount holds the default value on creation for the "day_window_count" field.
	DefaultDayWindowCount int
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultSuccessRate holds the default value on creation for the "success_rate" field.
	DefaultSuccessRate float64
	// DefaultAvgLatencyMs holds the default value on creation for the "avg_latency_ms" field.
	DefaultAvgLatencyMs float64
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive         Status = "active"
	StatusPaused         Status = "paused"
	StatusError          Status = "error"
	StatusCircuitBreaker Status = "circuit_breaker"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusError, StatusCircuitBreaker:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for status field: %q", s)
	}
}

// BreakerState defines the type for the "breaker_state" enum field.
type BreakerState string

// BreakerStateClosed is the default value of the BreakerState enum.
const DefaultBreakerState = BreakerStateClosed

// BreakerState values.
const (
	BreakerStateClosed   BreakerState = "closed"
	BreakerStateOpen     BreakerState = "open"
	BreakerStateHalfOpen BreakerState = "half_open"
)

func (bs BreakerState) String() string {
	return string(bs)
}

// BreakerStateValidator is a validator for the "breaker_state" field enum values. It is called by the builders before save.
func BreakerStateValidator(bs BreakerState) error {
	switch bs {
	case BreakerStateClosed, BreakerStateOpen, BreakerStateHalfOpen:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for breaker_state field: %q", bs)
	}
}

// OrderOption defines the ordering options for the AgentState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastExecution orders the results by the last_execution field.
func ByLastExecution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecution, opts...).ToFunc()
}

// ByNextScheduled orders the results by the next_scheduled field.
func ByNextScheduled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextScheduled, opts...).ToFunc()
}

// ByBreakerState orders the results by the breaker_state field.
func ByBreakerState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerState, opts...).ToFunc()
}

// ByBreakerConsecutiveErrors orders the results by the breaker_consecutive_errors field.
func ByBreakerConsecutiveErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerConsecutiveErrors, opts...).ToFunc()
}

// ByBreakerLastError orders the results by the breaker_last_error field.
func ByBreakerLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerLastError, opts...).ToFunc()
}

// ByBreakerFirstFailureAt orders the results by the breaker_first_failure_at field.
func ByBreakerFirstFailureAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerFirstFailureAt, opts...).ToFunc()
}

// ByBreakerCooldownUntil orders the results by the breaker_cooldown_until field.
func ByBreakerCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerCooldownUntil, opts...).ToFunc()
}

// ByBreakerCooldownMinutes orders the results by the breaker_cooldown_minutes field.
func ByBreakerCooldownMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakerCooldownMinutes, opts...).ToFunc()
}

// ByProbeInFlight orders the results by the probe_in_flight field.
func ByProbeInFlight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbeInFlight, opts...).ToFunc()
}

// ByMaxHourlyActions orders the results by the max_hourly_actions field.
func ByMaxHourlyActions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxHourlyActions, opts...).ToFunc()
}

// ByMaxDailyActions orders the results by the max_daily_actions field.
func ByMaxDailyActions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDailyActions, opts...).ToFunc()
}

// ByCooldownMinutes orders the results by the cooldown_minutes field.
func ByCooldownMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownMinutes, opts...).ToFunc()
}

// ByCounterDate orders the results by the counter_date field.
func ByCounterDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounterDate, opts...).ToFunc()
}

// ByActionsTaken orders the results by the actions_taken field.
func ByActionsTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsTaken, opts...).ToFunc()
}

// ByActionsSuccessful orders the results by the actions_successful field.
func ByActionsSuccessful(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsSuccessful, opts...).ToFunc()
}

// ByActionsFailed orders the results by the actions_failed field.
func ByActionsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsFailed, opts...).ToFunc()
}

// ByRevenueGenerated orders the results by the revenue_generated field.
func ByRevenueGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenueGenerated, opts...).ToFunc()
}

// ByHourWindowStart orders the results by the hour_window_start field.
func ByHourWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHourWindowStart, opts...).ToFunc()
}

// ByHourWindowCount orders the results by the hour_window_count field.
func ByHourWindowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHourWindowCount, opts...).ToFunc()
}

// ByDayWindowStart orders the results by the day_window_start field.
func ByDayWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayWindowStart, opts...).ToFunc()
}

// ByDayWindowCount orders the results by the day_window_count field.
func ByDayWindowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayWindowCount, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// BySuccessRate orders the results by the success_rate field.
func BySuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRate, opts...).ToFunc()
}

// ByAvgLatencyMs orders the results by the avg_latency_ms field.
func ByAvgLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgLatencyMs, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
