// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/decision"
)

// Decision is the model entity for the Decision schema.
type Decision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind decision.Kind `json:"kind,omitempty"`
	// Autonomy holds the value of the "autonomy" field.
	Autonomy decision.Autonomy `json:"autonomy,omitempty"`
	// Id of the record that triggered the decision (e.g. gap id)
	TriggerID string `json:"trigger_id,omitempty"`
	// Kind of the triggering record (e.g. 'gap')
	TriggerKind string `json:"trigger_kind,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// StaffID holds the value of the "staff_id" field.
	StaffID string `json:"staff_id,omitempty"`
	// ServiceID holds the value of the "service_id" field.
	ServiceID string `json:"service_id,omitempty"`
	// Opaque reference to the schedule slot
	SlotRef string `json:"slot_ref,omitempty"`
	// ActionSummary holds the value of the "action_summary" field.
	ActionSummary string `json:"action_summary,omitempty"`
	// ActionDetail holds the value of the "action_detail" field.
	ActionDetail map[string]interface{} `json:"action_detail,omitempty"`
	// Fixed-precision minor currency units
	RevenuePotential int64 `json:"revenue_potential,omitempty"`
	// RevenueActual holds the value of the "revenue_actual" field.
	RevenueActual *int64 `json:"revenue_actual,omitempty"`
	// ApprovalRequired holds the value of the "approval_required" field.
	ApprovalRequired bool `json:"approval_required,omitempty"`
	// Mirror of the owned Approval record's status
	ApprovalStatus decision.ApprovalStatus `json:"approval_status,omitempty"`
	// ApprovalApprover holds the value of the "approval_approver" field.
	ApprovalApprover *string `json:"approval_approver,omitempty"`
	// ApprovalDecidedAt holds the value of the "approval_decided_at" field.
	ApprovalDecidedAt *time.Time `json:"approval_decided_at,omitempty"`
	// OutcomeStatus holds the value of the "outcome_status" field.
	OutcomeStatus decision.OutcomeStatus `json:"outcome_status,omitempty"`
	// OutcomeResult holds the value of the "outcome_result" field.
	OutcomeResult *string `json:"outcome_result,omitempty"`
	// OutcomeBookingID holds the value of the "outcome_booking_id" field.
	OutcomeBookingID *string `json:"outcome_booking_id,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Decision expires unless moved to a terminal outcome first
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Decision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decision.FieldActionDetail:
			values[i] = new([]byte)
		case decision.FieldApprovalRequired:
			values[i] = new(sql.NullBool)
		case decision.FieldRevenuePotential, decision.FieldRevenueActual:
			values[i] = new(sql.NullInt64)
		case decision.FieldID, decision.FieldTenantID, decision.FieldAgentName, decision.FieldKind, decision.FieldAutonomy, decision.FieldTriggerID, decision.FieldTriggerKind, decision.FieldCustomerID, decision.FieldStaffID, decision.FieldServiceID, decision.FieldSlotRef, decision.FieldActionSummary, decision.FieldApprovalStatus, decision.FieldApprovalApprover, decision.FieldOutcomeStatus, decision.FieldOutcomeResult, decision.FieldOutcomeBookingID:
			values[i] = new(sql.NullString)
		case decision.FieldApprovalDecidedAt, decision.FieldCompletedAt, decision.FieldCreatedAt, decision.FieldUpdatedAt, decision.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Decision fields.
func (_m *Decision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case decision.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case decision.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case decision.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = decision.Kind(value.String)
			}
		case decision.FieldAutonomy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field autonomy", values[i])
			} else if value.Valid {
				_m.Autonomy = decision.Autonomy(value.String)
			}
		case decision.FieldTriggerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_id", values[i])
			} else if value.Valid {
				_m.TriggerID = value.String
			}
		case decision.FieldTriggerKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_kind", values[i])
			} else if value.Valid {
				_m.TriggerKind = value.String
			}
		case decision.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = value.String
			}
		case decision.FieldStaffID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value.Valid {
				_m.StaffID = value.String
			}
		case decision.FieldServiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = value.String
			}
		case decision.FieldSlotRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot_ref", values[i])
			} else if value.Valid {
				_m.SlotRef = value.String
			}
		case decision.FieldActionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_summary", values[i])
			} else if value.Valid {
				_m.ActionSummary = value.String
			}
		case decision.FieldActionDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionDetail); err != nil {
					return fmt.Errorf("unmarshal field action_detail: %w", err)
				}
			}
		case decision.FieldRevenuePotential:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_potential", values[i])
			} else if value.Valid {
				_m.RevenuePotential = value.Int64
			}
		case decision.FieldRevenueActual:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_actual", values[i])
			} else if value.Valid {
				_m.RevenueActual = new(int64)
				*_m.RevenueActual = value.Int64
			}
		case decision.FieldApprovalRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approval_required", values[i])
			} else if value.Valid {
				_m.ApprovalRequired = value.Bool
			}
		case decision.FieldApprovalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_status", values[i])
			} else if value.Valid {
				_m.ApprovalStatus = decision.ApprovalStatus(value.String)
			}
		case decision.FieldApprovalApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_approver", values[i])
			} else if value.Valid {
				_m.ApprovalApprover = new(string)
				*_m.ApprovalApprover = value.String
			}
		case decision.FieldApprovalDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approval_decided_at", values[i])
			} else if value.Valid {
				_m.ApprovalDecidedAt = new(time.Time)
				*_m.ApprovalDecidedAt = value.Time
			}
		case decision.FieldOutcomeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_status", values[i])
			} else if value.Valid {
				_m.OutcomeStatus = decision.OutcomeStatus(value.String)
			}
		case decision.FieldOutcomeResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_result", values[i])
			} else if value.Valid {
				_m.OutcomeResult = new(string)
				*_m.OutcomeResult = value.String
			}
		case decision.FieldOutcomeBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_booking_id", values[i])
			} else if value.Valid {
				_m.OutcomeBookingID = new(string)
				*_m.OutcomeBookingID = value.String
			}
		case decision.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case decision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case decision.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case decision.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Decision.
// This includes values selected through modifiers, order, etc.
func (_m *Decision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Decision.
// Note that you need to call Decision.Unwrap() before calling this method if this Decision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Decision) Update() *DecisionUpdateOne {
	return NewDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Decision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Decision) Unwrap() *Decision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Decision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Decision) String() string {
	var builder strings.Builder
	builder.WriteString("Decision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("autonomy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Autonomy))
	builder.WriteString(", ")
	builder.WriteString("trigger_id=")
	builder.WriteString(_m.TriggerID)
	builder.WriteString(", ")
	builder.WriteString("trigger_kind=")
	builder.WriteString(_m.TriggerKind)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(_m.CustomerID)
	builder.WriteString(", ")
	builder.WriteString("staff_id=")
	builder.WriteString(_m.StaffID)
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(_m.ServiceID)
	builder.WriteString(", ")
	builder.WriteString("slot_ref=")
	builder.WriteString(_m.SlotRef)
	builder.WriteString(", ")
	builder.WriteString("action_summary=")
	builder.WriteString(_m.ActionSummary)
	builder.WriteString(", ")
	builder.WriteString("action_detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionDetail))
	builder.WriteString(", ")
	builder.WriteString("revenue_potential=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevenuePotential))
	builder.WriteString(", ")
	if v := _m.RevenueActual; v != nil {
		builder.WriteString("revenue_actual=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("approval_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalRequired))
	builder.WriteString(", ")
	builder.WriteString("approval_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalStatus))
	builder.WriteString(", ")
	if v := _m.ApprovalApprover; v != nil {
		builder.WriteString("approval_approver=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovalDecidedAt; v != nil {
		builder.WriteString("approval_decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("outcome_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeStatus))
	builder.WriteString(", ")
	if v := _m.OutcomeResult; v != nil {
		builder.WriteString("outcome_result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutcomeBookingID; v != nil {
		builder.WriteString("outcome_booking_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Decisions is a parsable slice of Decision.
type Decisions []*Decision
