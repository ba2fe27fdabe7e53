// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/customerscore"
)

// CustomerScore is the model entity for the CustomerScore schema.
type CustomerScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// LtvTotal holds the value of the "ltv_total" field.
	LtvTotal int64 `json:"ltv_total,omitempty"`
	// LtvProjected holds the value of the "ltv_projected" field.
	LtvProjected int64 `json:"ltv_projected,omitempty"`
	// AvgVisitValue holds the value of the "avg_visit_value" field.
	AvgVisitValue int64 `json:"avg_visit_value,omitempty"`
	// VisitFrequencyMonthly holds the value of the "visit_frequency_monthly" field.
	VisitFrequencyMonthly float64 `json:"visit_frequency_monthly,omitempty"`
	// EstLifespanMonths holds the value of the "est_lifespan_months" field.
	EstLifespanMonths float64 `json:"est_lifespan_months,omitempty"`
	// MembershipBonus holds the value of the "membership_bonus" field.
	MembershipBonus bool `json:"membership_bonus,omitempty"`
	// Engagement holds the value of the "engagement" field.
	Engagement map[string]interface{} `json:"engagement,omitempty"`
	// ChurnScore holds the value of the "churn_score" field.
	ChurnScore int `json:"churn_score,omitempty"`
	// ChurnLevel holds the value of the "churn_level" field.
	ChurnLevel customerscore.ChurnLevel `json:"churn_level,omitempty"`
	// ChurnFactors holds the value of the "churn_factors" field.
	ChurnFactors []string `json:"churn_factors,omitempty"`
	// Segment holds the value of the "segment" field.
	Segment customerscore.Segment `json:"segment,omitempty"`
	// LastVisitAt holds the value of the "last_visit_at" field.
	LastVisitAt *time.Time `json:"last_visit_at,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CustomerScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case customerscore.FieldEngagement, customerscore.FieldChurnFactors:
			values[i] = new([]byte)
		case customerscore.FieldMembershipBonus:
			values[i] = new(sql.NullBool)
		case customerscore.FieldVisitFrequencyMonthly, customerscore.FieldEstLifespanMonths:
			values[i] = new(sql.NullFloat64)
		case customerscore.FieldLtvTotal, customerscore.FieldLtvProjected, customerscore.FieldAvgVisitValue, customerscore.FieldChurnScore:
			values[i] = new(sql.NullInt64)
		case customerscore.FieldID, customerscore.FieldTenantID, customerscore.FieldCustomerID, customerscore.FieldChurnLevel, customerscore.FieldSegment:
			values[i] = new(sql.NullString)
		case customerscore.FieldLastVisitAt, customerscore.FieldComputedAt, customerscore.FieldCreatedAt, customerscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CustomerScore fields.
func (_m *CustomerScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case customerscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case customerscore.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case customerscore.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = value.String
			}
		case customerscore.FieldLtvTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ltv_total", values[i])
			} else if value.Valid {
				_m.LtvTotal = value.Int64
			}
		case customerscore.FieldLtvProjected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ltv_projected", values[i])
			} else if value.Valid {
				_m.LtvProjected = value.Int64
			}
		case customerscore.FieldAvgVisitValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_visit_value", values[i])
			} else if value.Valid {
				_m.AvgVisitValue = value.Int64
			}
		case customerscore.FieldVisitFrequencyMonthly:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field visit_frequency_monthly", values[i])
			} else if value.Valid {
				_m.VisitFrequencyMonthly = value.Float64
			}
		case customerscore.FieldEstLifespanMonths:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field est_lifespan_months", values[i])
			} else if value.Valid {
				_m.EstLifespanMonths = value.Float64
			}
		case customerscore.FieldMembershipBonus:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field membership_bonus", values[i])
			} else if value.Valid {
				_m.MembershipBonus = value.Bool
			}
		case customerscore.FieldEngagement:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field engagement", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Engagement); err != nil {
					return fmt.Errorf("unmarshal field engagement: %w", err)
				}
			}
		case customerscore.FieldChurnScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field churn_score", values[i])
			} else if value.Valid {
				_m.ChurnScore = int(value.Int64)
			}
		case customerscore.FieldChurnLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field churn_level", values[i])
			} else if value.Valid {
				_m.ChurnLevel = customerscore.ChurnLevel(value.String)
			}
		case customerscore.FieldChurnFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field churn_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChurnFactors); err != nil {
					return fmt.Errorf("unmarshal field churn_factors: %w", err)
				}
			}
		case customerscore.FieldSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment", values[i])
			} else if value.Valid {
				_m.Segment = customerscore.Segment(value.String)
			}
		case customerscore.FieldLastVisitAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_visit_at", values[i])
			} else if value.Valid {
				_m.LastVisitAt = new(time.Time)
				*_m.LastVisitAt = value.Time
			}
		case customerscore.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		case customerscore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case customerscore.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CustomerScore.
// This includes values selected through modifiers, order, etc.
func (_m *CustomerScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CustomerScore.
// Note that you need to call CustomerScore.Unwrap() before calling this method if this CustomerScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CustomerScore) Update() *CustomerScoreUpdateOne {
	return NewCustomerScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CustomerScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CustomerScore) Unwrap() *CustomerScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CustomerScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CustomerScore) String() string {
	var builder strings.Builder
	builder.WriteString("CustomerScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(_m.CustomerID)
	builder.WriteString(", ")
	builder.WriteString("ltv_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.LtvTotal))
	builder.WriteString(", ")
	builder.WriteString("ltv_projected=")
	builder.WriteString(fmt.Sprintf("%v", _m.LtvProjected))
	builder.WriteString(", ")
	builder.WriteString("avg_visit_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgVisitValue))
	builder.WriteString(", ")
	builder.WriteString("visit_frequency_monthly=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitFrequencyMonthly))
	builder.WriteString(", ")
	builder.WriteString("est_lifespan_months=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstLifespanMonths))
	builder.WriteString(", ")
	builder.WriteString("membership_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.MembershipBonus))
	builder.WriteString(", ")
	builder.WriteString("engagement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Engagement))
	builder.WriteString(", ")
	builder.WriteString("churn_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChurnScore))
	builder.WriteString(", ")
	builder.WriteString("churn_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChurnLevel))
	builder.WriteString(", ")
	builder.WriteString("churn_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChurnFactors))
	builder.WriteString(", ")
	builder.WriteString("segment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Segment))
	builder.WriteString(", ")
	if v := _m.LastVisitAt; v != nil {
		builder.WriteString("last_visit_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CustomerScores is a parsable slice of CustomerScore.
type CustomerScores []*CustomerScore
