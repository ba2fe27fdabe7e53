// Code generated by ent, DO NOT EDIT.

package customerscore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the customerscore type in the database.
	Label = "customer_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "score_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldLtvTotal holds the string denoting the ltv_total field in the database.
	FieldLtvTotal = "ltv_total"
	// FieldLtvProjected holds the string denoting the ltv_projected field in the database.
	FieldLtvProjected = "ltv_projected"
	// FieldAvgVisitValue holds the string denoting the avg_visit_value field in the database.
	FieldAvgVisitValue = "avg_visit_value"
	// FieldVisitFrequencyMonthly holds the string denoting the visit_frequency_monthly field in the database.
	FieldVisitFrequencyMonthly = "visit_frequency_monthly"
	// FieldEstLifespanMonths holds the string denoting the est_lifespan_months field in the database.
	FieldEstLifespanMonths = "est_lifespan_months"
	// FieldMembershipBonus holds the string denoting the membership_bonus field in the database.
	FieldMembershipBonus = "membership_bonus"
	// FieldEngagement holds the string denoting the engagement field in the database.
	FieldEngagement = "engagement"
	// FieldChurnScore holds the string denoting the churn_score field in the database.
	FieldChurnScore = "churn_score"
	// FieldChurnLevel holds the string denoting the churn_level field in the database.
	FieldChurnLevel = "churn_level"
	// FieldChurnFactors holds the string denoting the churn_factors field in the database.
	FieldChurnFactors = "churn_factors"
	// FieldSegment holds the string denoting the segment field in the database.
	FieldSegment = "segment"
	// FieldLastVisitAt holds the string denoting the last_visit_at field in the database.
	FieldLastVisitAt = "last_visit_at"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the customerscore in the database.
	Table = "customer_scores"
)

// Columns holds all SQL columns for customerscore fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCustomerID,
	FieldLtvTotal,
	FieldLtvProjected,
	FieldAvgVisitValue,
	FieldVisitFrequencyMonthly,
	FieldEstLifespanMonths,
	FieldMembershipBonus,
	FieldEngagement,
	FieldChurnScore,
	FieldChurnLevel,
	FieldChurnFactors,
	FieldSegment,
	FieldLastVisitAt,
	FieldComputedAt,
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
	// CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	CustomerIDValidator func(string) error
	// DefaultLtvTotal holds the default value on creation for the "ltv_total" field.
	DefaultLtvTotal int64
	// DefaultLtvProjected holds the default value on creation for the "ltv_projected" field.
	DefaultLtvProjected int64
	// DefaultAvgVisitValue holds the default value on creation for the "avg_visit_value" field.
	DefaultAvgVisitValue int64
	// DefaultVisitFrequencyMonthly holds the default value on creation for the "visit_frequency_monthly" field.
	DefaultVisitFrequencyMonthly float64
	// DefaultEstLifespanMonths holds the default value on creation for the "est_lifespan_months" field.
	DefaultEstLifespanMonths float64
	// DefaultMembershipBonus holds the default value on creation for the "membership_bonus" field.
	DefaultMembershipBonus bool
	// DefaultChurnScore holds the default value on creation for the "churn_score" field.
	DefaultChurnScore int
	// ChurnScoreValidator is a validator for the "churn_score" field. It is called by the builders before save.
	ChurnScoreValidator func(int) error
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ChurnLevel defines the type for the "churn_level" enum field.
type ChurnLevel string

// ChurnLevelLow is the default value of the ChurnLevel enum.
const DefaultChurnLevel = ChurnLevelLow

// ChurnLevel values.
const (
	ChurnLevelLow      ChurnLevel = "low"
	ChurnLevelMedium   ChurnLevel = "medium"
	ChurnLevelHigh     ChurnLevel = "high"
	ChurnLevelCritical ChurnLevel = "critical"
)

func (cl ChurnLevel) String() string {
	return string(cl)
}

// ChurnLevelValidator is a validator for the "churn_level" field enum values. It is called by the builders before save.
func ChurnLevelValidator(cl ChurnLevel) error {
	switch cl {
	case ChurnLevelLow, ChurnLevelMedium, ChurnLevelHigh, ChurnLevelCritical:
		return nil
	default:
		return fmt.Errorf("customerscore: invalid enum value for churn_level field: %q", cl)
	}
}

// Segment defines the type for the "segment" enum field.
type Segment string

// SegmentNew is the default value of the Segment enum.
const DefaultSegment = SegmentNew

// Segment values.
const (
	SegmentVip       Segment = "vip"
	SegmentHighValue Segment = "high_value"
	SegmentRegular   Segment = "regular"
	SegmentAtRisk    Segment = "at_risk"
	SegmentNew       Segment = "new"
	SegmentDormant   Segment = "dormant"
)

func (s Segment) String() string {
	return string(s)
}

// SegmentValidator is a validator for the "segment" field enum values. It is called by the builders before save.
func SegmentValidator(s Segment) error {
	switch s {
	case SegmentVip, SegmentHighValue, SegmentRegular, SegmentAtRisk, SegmentNew, SegmentDormant:
		return nil
	default:
		return fmt.Errorf("customerscore: invalid enum value for segment field: %q", s)
	}
}

// OrderOption defines the ordering options for the CustomerScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByLtvTotal orders the results by the ltv_total field.
func ByLtvTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLtvTotal, opts...).ToFunc()
}

// ByLtvProjected orders the results by the ltv_projected field.
func ByLtvProjected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLtvProjected, opts...).ToFunc()
}

// ByAvgVisitValue orders the results by the avg_visit_value field.
func ByAvgVisitValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgVisitValue, opts...).ToFunc()
}

// ByVisitFrequencyMonthly orders the results by the visit_frequency_monthly field.
func ByVisitFrequencyMonthly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitFrequencyMonthly, opts...).ToFunc()
}

// ByEstLifespanMonths orders the results by the est_lifespan_months field.
func ByEstLifespanMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstLifespanMonths, opts...).ToFunc()
}

// ByMembershipBonus orders the results by the membership_bonus field.
func ByMembershipBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMembershipBonus, opts...).ToFunc()
}

// ByChurnScore orders the results by the churn_score field.
func ByChurnScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChurnScore, opts...).ToFunc()
}

// ByChurnLevel orders the results by the churn_level field.
func ByChurnLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChurnLevel, opts...).ToFunc()
}

// BySegment orders the results by the segment field.
func BySegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegment, opts...).ToFunc()
}

// ByLastVisitAt orders the results by the last_visit_at field.
func ByLastVisitAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastVisitAt, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
