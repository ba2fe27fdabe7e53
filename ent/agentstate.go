// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/agentstate"
)

// AgentState is the model entity for the AgentState schema.
type AgentState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Status holds the value of the "status" field.
	Status agentstate.Status `json:"status,omitempty"`
	// LastExecution holds the value of the "last_execution" field.
	LastExecution *time.Time `json:"last_execution,omitempty"`
	// NextScheduled holds the value of the "next_scheduled" field.
	NextScheduled *time.Time `json:"next_scheduled,omitempty"`
	// BreakerState holds the value of the "breaker_state" field.
	BreakerState agentstate.BreakerState `json:"breaker_state,omitempty"`
	// BreakerConsecutiveErrors holds the value of the "breaker_consecutive_errors" field.
	BreakerConsecutiveErrors int `json:"breaker_consecutive_errors,omitempty"`
	// BreakerLastError holds the value of the "breaker_last_error" field.
	BreakerLastError *string `json:"breaker_last_error,omitempty"`
	// Start of the current consecutive-failure window
	BreakerFirstFailureAt *time.Time `json:"breaker_first_failure_at,omitempty"`
	// BreakerCooldownUntil holds the value of the "breaker_cooldown_until" field.
	BreakerCooldownUntil *time.Time `json:"breaker_cooldown_until,omitempty"`
	// Last applied cooldown, doubled on repeated trips (capped)
	BreakerCooldownMinutes int `json:"breaker_cooldown_minutes,omitempty"`
	// Half-open admits exactly one probe action
	ProbeInFlight bool `json:"probe_in_flight,omitempty"`
	// MaxHourlyActions holds the value of the "max_hourly_actions" field.
	MaxHourlyActions int `json:"max_hourly_actions,omitempty"`
	// MaxDailyActions holds the value of the "max_daily_actions" field.
	MaxDailyActions int `json:"max_daily_actions,omitempty"`
	// CooldownMinutes holds the value of the "cooldown_minutes" field.
	CooldownMinutes int `json:"cooldown_minutes,omitempty"`
	// Agent-specific custom knobs
	Config map[string]interface{} `json:"config,omitempty"`
	// YYYY-MM-DD stamp the counters belong to
	CounterDate string `json:"counter_date,omitempty"`
	// ActionsTaken holds the value of the "actions_taken" field.
	ActionsTaken int `json:"actions_taken,omitempty"`
	// ActionsSuccessful holds the value of the "actions_successful" field.
	ActionsSuccessful int `json:"actions_successful,omitempty"`
	// ActionsFailed holds the value of the "actions_failed" field.
	ActionsFailed int `json:"actions_failed,omitempty"`
	// RevenueGenerated holds the value of the "revenue_generated" field.
	RevenueGenerated int64 `json:"revenue_generated,omitempty"`
	// ActionsByType holds the value of the "actions_by_type" field.
	ActionsByType map[string]int `json:"actions_by_type,omitempty"`
	// HourWindowStart holds the value of the "hour_window_start" field.
	HourWindowStart *time.Time `json:"hour_window_start,omitempty"`
	// HourWindowCount holds the value of the "hour_window_count" field.
	HourWindowCount int `json:"hour_window_count,omitempty"`
	// DayWindowStart holds the value of the "day_window_start" field.
	DayWindowStart *time.Time `json:"day_window_start,omitempty"`
	// DayWindowCount holds the value of the "day_window_count" field.
	DayWindowCount int `json:"day_window_count,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float64 `json:"success_rate,omitempty"`
	// AvgLatencyMs holds the value of the "avg_latency_ms" field.
	AvgLatencyMs float64 `json:"avg_latency_ms,omitempty"`
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldConfig, agentstate.FieldActionsByType:
			values[i] = new([]byte)
		case agentstate.FieldProbeInFlight:
			values[i] = new(sql.NullBool)
		case agentstate.FieldSuccessRate, agentstate.FieldAvgLatencyMs:
			values[i] = new(sql.NullFloat64)
		case agentstate.FieldBreakerConsecutiveErrors, agentstate.FieldBreakerCooldownMinutes, agentstate.FieldMaxHourlyActions, agentstate.FieldMaxDailyActions, agentstate.FieldCooldownMinutes, agentstate.FieldActionsTaken, agentstate.FieldActionsSuccessful, agentstate.FieldActionsFailed, agentstate.FieldRevenueGenerated, agentstate.FieldHourWindowCount, agentstate.FieldDayWindowCount, agentstate.FieldConsecutiveFailures, agentstate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case agentstate.FieldID, agentstate.FieldTenantID, agentstate.FieldAgentName, agentstate.FieldStatus, agentstate.FieldBreakerState, agentstate.FieldBreakerLastError, agentstate.FieldCounterDate:
			values[i] = new(sql.NullString)
		case agentstate.FieldLastExecution, agentstate.FieldNextScheduled, agentstate.FieldBreakerFirstFailureAt, agentstate.FieldBreakerCooldownUntil, agentstate.FieldHourWindowStart, agentstate.FieldDayWindowStart, agentstate.FieldLastHeartbeat, agentstate.FieldCreatedAt, agentstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentState fields.
func (_m *AgentState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstate.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case agentstate.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case agentstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentstate.Status(value.String)
			}
		case agentstate.FieldLastExecution:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_execution", values[i])
			} else if value.Valid {
				_m.LastExecution = new(time.Time)
				*_m.LastExecution = value.Time
			}
		case agentstate.FieldNextScheduled:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_scheduled", values[i])
			} else if value.Valid {
				_m.NextScheduled = new(time.Time)
				*_m.NextScheduled = value.Time
			}
		case agentstate.FieldBreakerState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_state", values[i])
			} else if value.Valid {
				_m.BreakerState = agentstate.BreakerState(value.String)
			}
		case agentstate.FieldBreakerConsecutiveErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_consecutive_errors", values[i])
			} else if value.Valid {
				_m.BreakerConsecutiveErrors = int(value.Int64)
			}
		case agentstate.FieldBreakerLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_last_error", values[i])
			} else if value.Valid {
				_m.BreakerLastError = new(string)
				*_m.BreakerLastError = value.String
			}
		case agentstate.FieldBreakerFirstFailureAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_first_failure_at", values[i])
			} else if value.Valid {
				_m.BreakerFirstFailureAt = new(time.Time)
				*_m.BreakerFirstFailureAt = value.Time
			}
		case agentstate.FieldBreakerCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_cooldown_until", values[i])
			} else if value.Valid {
				_m.BreakerCooldownUntil = new(time.Time)
				*_m.BreakerCooldownUntil = value.Time
			}
		case agentstate.FieldBreakerCooldownMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_cooldown_minutes", values[i])
			} else if value.Valid {
				_m.BreakerCooldownMinutes = int(value.Int64)
			}
		case agentstate.FieldProbeInFlight:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field probe_in_flight", values[i])
			} else if value.Valid {
				_m.ProbeInFlight = value.Bool
			}
		case agentstate.FieldMaxHourlyActions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_hourly_actions", values[i])
			} else if value.Valid {
				_m.MaxHourlyActions = int(value.Int64)
			}
		case agentstate.FieldMaxDailyActions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_daily_actions", values[i])
			} else if value.Valid {
				_m.MaxDailyActions = int(value.Int64)
			}
		case agentstate.FieldCooldownMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_minutes", values[i])
			} else if value.Valid {
				_m.CooldownMinutes = int(value.Int64)
			}
		case agentstate.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case agentstate.FieldCounterDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field counter_date", values[i])
			} else if value.Valid {
				_m.CounterDate = value.String
			}
		case agentstate.FieldActionsTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_taken", values[i])
			} else if value.Valid {
				_m.ActionsTaken = int(value.Int64)
			}
		case agentstate.FieldActionsSuccessful:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_successful", values[i])
			} else if value.Valid {
				_m.ActionsSuccessful = int(value.Int64)
			}
		case agentstate.FieldActionsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_failed", values[i])
			} else if value.Valid {
				_m.ActionsFailed = int(value.Int64)
			}
		case agentstate.FieldRevenueGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_generated", values[i])
			} else if value.Valid {
				_m.RevenueGenerated = value.Int64
			}
		case agentstate.FieldActionsByType:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actions_by_type", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionsByType); err != nil {
					return fmt.Errorf("unmarshal field actions_by_type: %w", err)
				}
			}
		case agentstate.FieldHourWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field hour_window_start", values[i])
			} else if value.Valid {
				_m.HourWindowStart = new(time.Time)
				*_m.HourWindowStart = value.Time
			}
		case agentstate.FieldHourWindowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hour_window_count", values[i])
			} else if value.Valid {
				_m.HourWindowCount = int(value.Int64)
			}
		case agentstate.FieldDayWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field day_window_start", values[i])
			} else if value.Valid {
				_m.DayWindowStart = new(time.Time)
				*_m.DayWindowStart = value.Time
			}
		case agentstate.FieldDayWindowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_window_count", values[i])
			} else if value.Valid {
				_m.DayWindowCount = int(value.Int64)
			}
		case agentstate.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case agentstate.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case agentstate.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = value.Float64
			}
		case agentstate.FieldAvgLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency_ms", values[i])
			} else if value.Valid {
				_m.AvgLatencyMs = value.Float64
			}
		case agentstate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case agentstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentState.
// This includes values selected through modifiers, order, etc.
func (_m *AgentState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentState.
// Note that you need to call AgentState.Unwrap() before calling this method if this AgentState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentState) Update() *AgentStateUpdateOne {
	return NewAgentStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentState) Unwrap() *AgentState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentState) String() string {
	var builder strings.Builder
	builder.WriteString("AgentState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastExecution; v != nil {
		builder.WriteString("last_execution=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextScheduled; v != nil {
		builder.WriteString("next_scheduled=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("breaker_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakerState))
	builder.WriteString(", ")
	builder.WriteString("breaker_consecutive_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakerConsecutiveErrors))
	builder.WriteString(", ")
	if v := _m.BreakerLastError; v != nil {
		builder.WriteString("breaker_last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BreakerFirstFailureAt; v != nil {
		builder.WriteString("breaker_first_failure_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BreakerCooldownUntil; v != nil {
		builder.WriteString("breaker_cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("breaker_cooldown_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakerCooldownMinutes))
	builder.WriteString(", ")
	builder.WriteString("probe_in_flight=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProbeInFlight))
	builder.WriteString(", ")
	builder.WriteString("max_hourly_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxHourlyActions))
	builder.WriteString(", ")
	builder.WriteString("max_daily_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDailyActions))
	builder.WriteString(", ")
	builder.WriteString("cooldown_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CooldownMinutes))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("counter_date=")
	builder.WriteString(_m.CounterDate)
	builder.WriteString(", ")
	builder.WriteString("actions_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsTaken))
	builder.WriteString(", ")
	builder.WriteString("actions_successful=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsSuccessful))
	builder.WriteString(", ")
	builder.WriteString("actions_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsFailed))
	builder.WriteString(", ")
	builder.WriteString("revenue_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevenueGenerated))
	builder.WriteString(", ")
	builder.WriteString("actions_by_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsByType))
	builder.WriteString(", ")
	if v := _m.HourWindowStart; v != nil {
		builder.WriteString("hour_window_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hour_window_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HourWindowCount))
	builder.WriteString(", ")
	if v := _m.DayWindowStart; v != nil {
		builder.WriteString("day_window_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("day_window_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayWindowCount))
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteString(", ")
	builder.WriteString("avg_latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgLatencyMs))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentStates is a parsable slice of AgentState.
type AgentStates []*AgentState
