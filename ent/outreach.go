// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/outreach"
)

// Outreach is the model entity for the Outreach schema.
type Outreach struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerPhone holds the value of the "customer_phone" field.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// Outreach type (e.g. 'gap_fill_offer')
	Type string `json:"type,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel outreach.Channel `json:"channel,omitempty"`
	// Status holds the value of the "status" field.
	Status outreach.Status `json:"status,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// TriggerID holds the value of the "trigger_id" field.
	TriggerID string `json:"trigger_id,omitempty"`
	// TriggerKind holds the value of the "trigger_kind" field.
	TriggerKind string `json:"trigger_kind,omitempty"`
	// Offer detail presented to the customer
	Offer map[string]interface{} `json:"offer,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// LastAttemptAt holds the value of the "last_attempt_at" field.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// Provider-issued message id; O(1) webhook lookup
	ProviderMessageID *string `json:"provider_message_id,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	// ReadAt holds the value of the "read_at" field.
	ReadAt *time.Time `json:"read_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ResponseReceived holds the value of the "response_received" field.
	ResponseReceived bool `json:"response_received,omitempty"`
	// accept | decline | select_N
	ResponseAction *string `json:"response_action,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// ResponseBookingID holds the value of the "response_booking_id" field.
	ResponseBookingID *string `json:"response_booking_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Outreach) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outreach.FieldOffer:
			values[i] = new([]byte)
		case outreach.FieldResponseReceived:
			values[i] = new(sql.NullBool)
		case outreach.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case outreach.FieldID, outreach.FieldTenantID, outreach.FieldCustomerID, outreach.FieldCustomerName, outreach.FieldCustomerPhone, outreach.FieldType, outreach.FieldChannel, outreach.FieldStatus, outreach.FieldMessage, outreach.FieldTriggerID, outreach.FieldTriggerKind, outreach.FieldProviderMessageID, outreach.FieldLastError, outreach.FieldResponseAction, outreach.FieldResponseBookingID:
			values[i] = new(sql.NullString)
		case outreach.FieldLastAttemptAt, outreach.FieldSentAt, outreach.FieldDeliveredAt, outreach.FieldReadAt, outreach.FieldRespondedAt, outreach.FieldCreatedAt, outreach.FieldUpdatedAt, outreach.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Outreach fields.
func (_m *Outreach) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outreach.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outreach.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case outreach.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = value.String
			}
		case outreach.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case outreach.FieldCustomerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone", values[i])
			} else if value.Valid {
				_m.CustomerPhone = value.String
			}
		case outreach.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case outreach.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = outreach.Channel(value.String)
			}
		case outreach.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = outreach.Status(value.String)
			}
		case outreach.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case outreach.FieldTriggerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_id", values[i])
			} else if value.Valid {
				_m.TriggerID = value.String
			}
		case outreach.FieldTriggerKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_kind", values[i])
			} else if value.Valid {
				_m.TriggerKind = value.String
			}
		case outreach.FieldOffer:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field offer", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Offer); err != nil {
					return fmt.Errorf("unmarshal field offer: %w", err)
				}
			}
		case outreach.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case outreach.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = new(time.Time)
				*_m.LastAttemptAt = value.Time
			}
		case outreach.FieldProviderMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_message_id", values[i])
			} else if value.Valid {
				_m.ProviderMessageID = new(string)
				*_m.ProviderMessageID = value.String
			}
		case outreach.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case outreach.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		case outreach.FieldReadAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field read_at", values[i])
			} else if value.Valid {
				_m.ReadAt = new(time.Time)
				*_m.ReadAt = value.Time
			}
		case outreach.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case outreach.FieldResponseReceived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field response_received", values[i])
			} else if value.Valid {
				_m.ResponseReceived = value.Bool
			}
		case outreach.FieldResponseAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_action", values[i])
			} else if value.Valid {
				_m.ResponseAction = new(string)
				*_m.ResponseAction = value.String
			}
		case outreach.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		case outreach.FieldResponseBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_booking_id", values[i])
			} else if value.Valid {
				_m.ResponseBookingID = new(string)
				*_m.ResponseBookingID = value.String
			}
		case outreach.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case outreach.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case outreach.FieldExpiresAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Outreach.
// This includes values selected through modifiers, order, etc.
func (_m *Outreach) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Outreach.
// Note that you need to call Outreach.Unwrap() before calling this method if this Outreach
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Outreach) Update() *OutreachUpdateOne {
	return NewOutreachClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Outreach entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Outreach) Unwrap() *Outreach {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Outreach is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Outreach) String() string {
	var builder strings.Builder
	builder.WriteString("Outreach(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(_m.CustomerID)
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	builder.WriteString("customer_phone=")
	builder.WriteString(_m.CustomerPhone)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("trigger_id=")
	builder.WriteString(_m.TriggerID)
	builder.WriteString(", ")
	builder.WriteString("trigger_kind=")
	builder.WriteString(_m.TriggerKind)
	builder.WriteString(", ")
	builder.WriteString("offer=")
	builder.WriteString(fmt.Sprintf("%v", _m.Offer))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.LastAttemptAt; v != nil {
		builder.WriteString("last_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProviderMessageID; v != nil {
		builder.WriteString("provider_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReadAt; v != nil {
		builder.WriteString("read_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseReceived))
	builder.WriteString(", ")
	if v := _m.ResponseAction; v != nil {
		builder.WriteString("response_action=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResponseBookingID; v != nil {
		builder.WriteString("response_booking_id=")
		builder.WriteString(*v)
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

// Outreaches is a parsable slice of Outreach.
type Outreaches []*Outreach
