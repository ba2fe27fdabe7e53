// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/approval"
)

// Approval is the model entity for the Approval schema.
type Approval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// DecisionID holds the value of the "decision_id" field.
	DecisionID string `json:"decision_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType string `json:"action_type,omitempty"`
	// ActionSummary holds the value of the "action_summary" field.
	ActionSummary string `json:"action_summary,omitempty"`
	// ActionDetail holds the value of the "action_detail" field.
	ActionDetail map[string]interface{} `json:"action_detail,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority approval.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status approval.Status `json:"status,omitempty"`
	// Channel → sent flag
	NotificationsSent map[string]bool `json:"notifications_sent,omitempty"`
	// ResponseAction holds the value of the "response_action" field.
	ResponseAction string `json:"response_action,omitempty"`
	// Responder holds the value of the "responder" field.
	Responder string `json:"responder,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt time.Time `json:"responded_at,omitempty"`
	// ResponseNotes holds the value of the "response_notes" field.
	ResponseNotes string `json:"response_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Derived from priority at creation unless overridden
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Approval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approval.FieldActionDetail, approval.FieldNotificationsSent:
			values[i] = new([]byte)
		case approval.FieldID, approval.FieldTenantID, approval.FieldDecisionID, approval.FieldAgentName, approval.FieldActionType, approval.FieldActionSummary, approval.FieldPriority, approval.FieldStatus, approval.FieldResponseAction, approval.FieldResponder, approval.FieldResponseNotes:
			values[i] = new(sql.NullString)
		case approval.FieldRespondedAt, approval.FieldCreatedAt, approval.FieldUpdatedAt, approval.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Approval fields.
func (_m *Approval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approval.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case approval.FieldDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_id", values[i])
			} else if value.Valid {
				_m.DecisionID = value.String
			}
		case approval.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case approval.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = value.String
			}
		case approval.FieldActionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_summary", values[i])
			} else if value.Valid {
				_m.ActionSummary = value.String
			}
		case approval.FieldActionDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionDetail); err != nil {
					return fmt.Errorf("unmarshal field action_detail: %w", err)
				}
			}
		case approval.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = approval.Priority(value.String)
			}
		case approval.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = approval.Status(value.String)
			}
		case approval.FieldNotificationsSent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notifications_sent", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotificationsSent); err != nil {
					return fmt.Errorf("unmarshal field notifications_sent: %w", err)
				}
			}
		case approval.FieldResponseAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_action", values[i])
			} else if value.Valid {
				_m.ResponseAction = value.String
			}
		case approval.FieldResponder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responder", values[i])
			} else if value.Valid {
				_m.Responder = value.String
			}
		case approval.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = value.Time
			}
		case approval.FieldResponseNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_notes", values[i])
			} else if value.Valid {
				_m.ResponseNotes = value.String
			}
		case approval.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approval.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case approval.FieldExpiresAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Approval.
// This includes values selected through modifiers, order, etc.
func (_m *Approval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Approval.
// Note that you need to call Approval.Unwrap() before calling this method if this Approval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Approval) Update() *ApprovalUpdateOne {
	return NewApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Approval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Approval) Unwrap() *Approval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Approval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Approval) String() string {
	var builder strings.Builder
	builder.WriteString("Approval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("decision_id=")
	builder.WriteString(_m.DecisionID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(_m.ActionType)
	builder.WriteString(", ")
	builder.WriteString("action_summary=")
	builder.WriteString(_m.ActionSummary)
	builder.WriteString(", ")
	builder.WriteString("action_detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionDetail))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("notifications_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationsSent))
	builder.WriteString(", ")
	builder.WriteString("response_action=")
	builder.WriteString(_m.ResponseAction)
	builder.WriteString(", ")
	builder.WriteString("responder=")
	builder.WriteString(_m.Responder)
	builder.WriteString(", ")
	builder.WriteString("responded_at=")
	builder.WriteString(_m.RespondedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("response_notes=")
	builder.WriteString(_m.ResponseNotes)
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

// Approvals is a parsable slice of Approval.
type Approvals []*Approval
