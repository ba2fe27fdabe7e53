// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/gap"
)

// Gap is the model entity for the Gap schema.
type Gap struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// StaffID holds the value of the "staff_id" field.
	StaffID string `json:"staff_id,omitempty"`
	// StaffName holds the value of the "staff_name" field.
	StaffName string `json:"staff_name,omitempty"`
	// Tenant-local day, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority gap.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status gap.Status `json:"status,omitempty"`
	// PotentialRevenue holds the value of the "potential_revenue" field.
	PotentialRevenue int64 `json:"potential_revenue,omitempty"`
	// FittableServiceIds holds the value of the "fittable_service_ids" field.
	FittableServiceIds []string `json:"fittable_service_ids,omitempty"`
	// FillAttempts holds the value of the "fill_attempts" field.
	FillAttempts int `json:"fill_attempts,omitempty"`
	// LastAttemptAt holds the value of the "last_attempt_at" field.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// FilledByBookingID holds the value of the "filled_by_booking_id" field.
	FilledByBookingID *string `json:"filled_by_booking_id,omitempty"`
	// FilledByCustomerID holds the value of the "filled_by_customer_id" field.
	FilledByCustomerID *string `json:"filled_by_customer_id,omitempty"`
	// FilledAt holds the value of the "filled_at" field.
	FilledAt *time.Time `json:"filled_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Gap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gap.FieldFittableServiceIds:
			values[i] = new([]byte)
		case gap.FieldDurationMinutes, gap.FieldPotentialRevenue, gap.FieldFillAttempts:
			values[i] = new(sql.NullInt64)
		case gap.FieldID, gap.FieldTenantID, gap.FieldStaffID, gap.FieldStaffName, gap.FieldDate, gap.FieldPriority, gap.FieldStatus, gap.FieldFilledByBookingID, gap.FieldFilledByCustomerID:
			values[i] = new(sql.NullString)
		case gap.FieldStartTime, gap.FieldEndTime, gap.FieldLastAttemptAt, gap.FieldFilledAt, gap.FieldCreatedAt, gap.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Gap fields.
func (_m *Gap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gap.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gap.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case gap.FieldStaffID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field staff_id", values[i])
			} else if value.Valid {
				_m.StaffID = value.String
			}
		case gap.FieldStaffName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field staff_name", values[i])
			} else if value.Valid {
				_m.StaffName = value.String
			}
		case gap.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case gap.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case gap.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case gap.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case gap.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = gap.Priority(value.String)
			}
		case gap.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = gap.Status(value.String)
			}
		case gap.FieldPotentialRevenue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field potential_revenue", values[i])
			} else if value.Valid {
				_m.PotentialRevenue = value.Int64
			}
		case gap.FieldFittableServiceIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fittable_service_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FittableServiceIds); err != nil {
					return fmt.Errorf("unmarshal field fittable_service_ids: %w", err)
				}
			}
		case gap.FieldFillAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fill_attempts", values[i])
			} else if value.Valid {
				_m.FillAttempts = int(value.Int64)
			}
		case gap.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = new(time.Time)
				*_m.LastAttemptAt = value.Time
			}
		case gap.FieldFilledByBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filled_by_booking_id", values[i])
			} else if value.Valid {
				_m.FilledByBookingID = new(string)
				*_m.FilledByBookingID = value.String
			}
		case gap.FieldFilledByCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filled_by_customer_id", values[i])
			} else if value.Valid {
				_m.FilledByCustomerID = new(string)
				*_m.FilledByCustomerID = value.String
			}
		case gap.FieldFilledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field filled_at", values[i])
			} else if value.Valid {
				_m.FilledAt = new(time.Time)
				*_m.FilledAt = value.Time
			}
		case gap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gap.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Gap.
// This includes values selected through modifiers, order, etc.
func (_m *Gap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Gap.
// Note that you need to call Gap.Unwrap() before calling this method if this Gap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Gap) Update() *GapUpdateOne {
	return NewGapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Gap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Gap) Unwrap() *Gap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Gap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Gap) String() string {
	var builder strings.Builder
	builder.WriteString("Gap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("staff_id=")
	builder.WriteString(_m.StaffID)
	builder.WriteString(", ")
	builder.WriteString("staff_name=")
	builder.WriteString(_m.StaffName)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("potential_revenue=")
	builder.WriteString(fmt.Sprintf("%v", _m.PotentialRevenue))
	builder.WriteString(", ")
	builder.WriteString("fittable_service_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.FittableServiceIds))
	builder.WriteString(", ")
	builder.WriteString("fill_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.FillAttempts))
	builder.WriteString(", ")
	if v := _m.LastAttemptAt; v != nil {
		builder.WriteString("last_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FilledByBookingID; v != nil {
		builder.WriteString("filled_by_booking_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilledByCustomerID; v != nil {
		builder.WriteString("filled_by_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilledAt; v != nil {
		builder.WriteString("filled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Gaps is a parsable slice of Gap.
type Gaps []*Gap
