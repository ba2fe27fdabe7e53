// Code generated by ent, DO NOT EDIT.

package customerscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldTenantID, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldCustomerID, v))
}

// LtvTotal applies equality check predicate on the "ltv_total" field. It's identical to LtvTotalEQ.
func LtvTotal(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLtvTotal, v))
}

// LtvProjected applies equality check predicate on the "ltv_projected" field. It's identical to LtvProjectedEQ.
func LtvProjected(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLtvProjected, v))
}

// AvgVisitValue applies equality check predicate on the "avg_visit_value" field. It's identical to AvgVisitValueEQ.
func AvgVisitValue(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldAvgVisitValue, v))
}

// VisitFrequencyMonthly applies equality check predicate on the "visit_frequency_monthly" field. It's identical to VisitFrequencyMonthlyEQ.
func VisitFrequencyMonthly(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldVisitFrequencyMonthly, v))
}

// EstLifespanMonths applies equality check predicate on the "est_lifespan_months" field. It's identical to EstLifespanMonthsEQ.
func EstLifespanMonths(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldEstLifespanMonths, v))
}

// MembershipBonus applies equality check predicate on the "membership_bonus" field. It's identical to MembershipBonusEQ.
func MembershipBonus(v bool) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldMembershipBonus, v))
}

// ChurnScore applies equality check predicate on the "churn_score" field. It's identical to ChurnScoreEQ.
func ChurnScore(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldChurnScore, v))
}

// LastVisitAt applies equality check predicate on the "last_visit_at" field. It's identical to LastVisitAtEQ.
func LastVisitAt(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLastVisitAt, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldComputedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldContainsFold(FieldTenantID, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldContainsFold(FieldCustomerID, v))
}

// LtvTotalEQ applies the EQ predicate on the "ltv_total" field.
func LtvTotalEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLtvTotal, v))
}

// LtvTotalNEQ applies the NEQ predicate on the "ltv_total" field.
func LtvTotalNEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldLtvTotal, v))
}

// LtvTotalIn applies the In predicate on the "ltv_total" field.
func LtvTotalIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldLtvTotal, vs...))
}

// LtvTotalNotIn applies the NotIn predicate on the "ltv_total" field.
func LtvTotalNotIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldLtvTotal, vs...))
}

// LtvTotalGT applies the GT predicate on the "ltv_total" field.
func LtvTotalGT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldLtvTotal, v))
}

// LtvTotalGTE applies the GTE predicate on the "ltv_total" field.
func LtvTotalGTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldLtvTotal, v))
}

// LtvTotalLT applies the LT predicate on the "ltv_total" field.
func LtvTotalLT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldLtvTotal, v))
}

// LtvTotalLTE applies the LTE predicate on the "ltv_total" field.
func LtvTotalLTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldLtvTotal, v))
}

// LtvProjectedEQ applies the EQ predicate on the "ltv_projected" field.
func LtvProjectedEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLtvProjected, v))
}

// LtvProjectedNEQ applies the NEQ predicate on the "ltv_projected" field.
func LtvProjectedNEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldLtvProjected, v))
}

// LtvProjectedIn applies the In predicate on the "ltv_projected" field.
func LtvProjectedIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldLtvProjected, vs...))
}

// LtvProjectedNotIn applies the NotIn predicate on the "ltv_projected" field.
func LtvProjectedNotIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldLtvProjected, vs...))
}

// LtvProjectedGT applies the GT predicate on the "ltv_projected" field.
func LtvProjectedGT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldLtvProjected, v))
}

// LtvProjectedGTE applies the GTE predicate on the "ltv_projected" field.
func LtvProjectedGTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldLtvProjected, v))
}

// LtvProjectedLT applies the LT predicate on the "ltv_projected" field.
func LtvProjectedLT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldLtvProjected, v))
}

// LtvProjectedLTE applies the LTE predicate on the "ltv_projected" field.
func LtvProjectedLTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldLtvProjected, v))
}

// AvgVisitValueEQ applies the EQ predicate on the "avg_visit_value" field.
func AvgVisitValueEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldAvgVisitValue, v))
}

// AvgVisitValueNEQ applies the NEQ predicate on the "avg_visit_value" field.
func AvgVisitValueNEQ(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldAvgVisitValue, v))
}

// AvgVisitValueIn applies the In predicate on the "avg_visit_value" field.
func AvgVisitValueIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldAvgVisitValue, vs...))
}

// AvgVisitValueNotIn applies the NotIn predicate on the "avg_visit_value" field.
func AvgVisitValueNotIn(vs ...int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldAvgVisitValue, vs...))
}

// AvgVisitValueGT applies the GT predicate on the "avg_visit_value" field.
func AvgVisitValueGT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldAvgVisitValue, v))
}

// AvgVisitValueGTE applies the GTE predicate on the "avg_visit_value" field.
func AvgVisitValueGTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldAvgVisitValue, v))
}

// AvgVisitValueLT applies the LT predicate on the "avg_visit_value" field.
func AvgVisitValueLT(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldAvgVisitValue, v))
}

// AvgVisitValueLTE applies the LTE predicate on the "avg_visit_value" field.
func AvgVisitValueLTE(v int64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldAvgVisitValue, v))
}

// VisitFrequencyMonthlyEQ applies the EQ predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyEQ(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldVisitFrequencyMonthly, v))
}

// VisitFrequencyMonthlyNEQ applies the NEQ predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyNEQ(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldVisitFrequencyMonthly, v))
}

// VisitFrequencyMonthlyIn applies the In predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyIn(vs ...float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldVisitFrequencyMonthly, vs...))
}

// VisitFrequencyMonthlyNotIn applies the NotIn predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyNotIn(vs ...float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldVisitFrequencyMonthly, vs...))
}

// VisitFrequencyMonthlyGT applies the GT predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyGT(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldVisitFrequencyMonthly, v))
}

// VisitFrequencyMonthlyGTE applies the GTE predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyGTE(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldVisitFrequencyMonthly, v))
}

// VisitFrequencyMonthlyLT applies the LT predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyLT(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldVisitFrequencyMonthly, v))
}

// VisitFrequencyMonthlyLTE applies the LTE predicate on the "visit_frequency_monthly" field.
func VisitFrequencyMonthlyLTE(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldVisitFrequencyMonthly, v))
}

// EstLifespanMonthsEQ applies the EQ predicate on the "est_lifespan_months" field.
func EstLifespanMonthsEQ(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldEstLifespanMonths, v))
}

// EstLifespanMonthsNEQ applies the NEQ predicate on the "est_lifespan_months" field.
func EstLifespanMonthsNEQ(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldEstLifespanMonths, v))
}

// EstLifespanMonthsIn applies the In predicate on the "est_lifespan_months" field.
func EstLifespanMonthsIn(vs ...float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldEstLifespanMonths, vs...))
}

// EstLifespanMonthsNotIn applies the NotIn predicate on the "est_lifespan_months" field.
func EstLifespanMonthsNotIn(vs ...float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldEstLifespanMonths, vs...))
}

// EstLifespanMonthsGT applies the GT predicate on the "est_lifespan_months" field.
func EstLifespanMonthsGT(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldEstLifespanMonths, v))
}

// EstLifespanMonthsGTE applies the GTE predicate on the "est_lifespan_months" field.
func EstLifespanMonthsGTE(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldEstLifespanMonths, v))
}

// EstLifespanMonthsLT applies the LT predicate on the "est_lifespan_months" field.
func EstLifespanMonthsLT(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldEstLifespanMonths, v))
}

// EstLifespanMonthsLTE applies the LTE predicate on the "est_lifespan_months" field.
func EstLifespanMonthsLTE(v float64) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldEstLifespanMonths, v))
}

// MembershipBonusEQ applies the EQ predicate on the "membership_bonus" field.
func MembershipBonusEQ(v bool) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldMembershipBonus, v))
}

// MembershipBonusNEQ applies the NEQ predicate on the "membership_bonus" field.
func MembershipBonusNEQ(v bool) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldMembershipBonus, v))
}

// EngagementIsNil applies the IsNil predicate on the "engagement" field.
func EngagementIsNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIsNull(FieldEngagement))
}

// EngagementNotNil applies the NotNil predicate on the "engagement" field.
func EngagementNotNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotNull(FieldEngagement))
}

// ChurnScoreEQ applies the EQ predicate on the "churn_score" field.
func ChurnScoreEQ(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldChurnScore, v))
}

// ChurnScoreNEQ applies the NEQ predicate on the "churn_score" field.
func ChurnScoreNEQ(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldChurnScore, v))
}

// ChurnScoreIn applies the In predicate on the "churn_score" field.
func ChurnScoreIn(vs ...int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldChurnScore, vs...))
}

// ChurnScoreNotIn applies the NotIn predicate on the "churn_score" field.
func ChurnScoreNotIn(vs ...int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldChurnScore, vs...))
}

// ChurnScoreGT applies the GT predicate on the "churn_score" field.
func ChurnScoreGT(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldChurnScore, v))
}

// ChurnScoreGTE applies the GTE predicate on the "churn_score" field.
func ChurnScoreGTE(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldChurnScore, v))
}

// ChurnScoreLT applies the LT predicate on the "churn_score" field.
func ChurnScoreLT(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldChurnScore, v))
}

// ChurnScoreLTE applies the LTE predicate on the "churn_score" field.
func ChurnScoreLTE(v int) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldChurnScore, v))
}

// ChurnLevelEQ applies the EQ predicate on the "churn_level" field.
func ChurnLevelEQ(v ChurnLevel) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldChurnLevel, v))
}

// ChurnLevelNEQ applies the NEQ predicate on the "churn_level" field.
func ChurnLevelNEQ(v ChurnLevel) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldChurnLevel, v))
}

// ChurnLevelIn applies the In predicate on the "churn_level" field.
func ChurnLevelIn(vs ...ChurnLevel) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldChurnLevel, vs...))
}

// ChurnLevelNotIn applies the NotIn predicate on the "churn_level" field.
func ChurnLevelNotIn(vs ...ChurnLevel) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldChurnLevel, vs...))
}

// ChurnFactorsIsNil applies the IsNil predicate on the "churn_factors" field.
func ChurnFactorsIsNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIsNull(FieldChurnFactors))
}

// ChurnFactorsNotNil applies the NotNil predicate on the "churn_factors" field.
func ChurnFactorsNotNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotNull(FieldChurnFactors))
}

// SegmentEQ applies the EQ predicate on the "segment" field.
func SegmentEQ(v Segment) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldSegment, v))
}

// SegmentNEQ applies the NEQ predicate on the "segment" field.
func SegmentNEQ(v Segment) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldSegment, v))
}

// SegmentIn applies the In predicate on the "segment" field.
func SegmentIn(vs ...Segment) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldSegment, vs...))
}

// SegmentNotIn applies the NotIn predicate on the "segment" field.
func SegmentNotIn(vs ...Segment) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldSegment, vs...))
}

// LastVisitAtEQ applies the EQ predicate on the "last_visit_at" field.
func LastVisitAtEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldLastVisitAt, v))
}

// LastVisitAtNEQ applies the NEQ predicate on the "last_visit_at" field.
func LastVisitAtNEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldLastVisitAt, v))
}

// LastVisitAtIn applies the In predicate on the "last_visit_at" field.
func LastVisitAtIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldLastVisitAt, vs...))
}

// LastVisitAtNotIn applies the NotIn predicate on the "last_visit_at" field.
func LastVisitAtNotIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldLastVisitAt, vs...))
}

// LastVisitAtGT applies the GT predicate on the "last_visit_at" field.
func LastVisitAtGT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldLastVisitAt, v))
}

// LastVisitAtGTE applies the GTE predicate on the "last_visit_at" field.
func LastVisitAtGTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldLastVisitAt, v))
}

// LastVisitAtLT applies the LT predicate on the "last_visit_at" field.
func LastVisitAtLT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldLastVisitAt, v))
}

// LastVisitAtLTE applies the LTE predicate on the "last_visit_at" field.
func LastVisitAtLTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldLastVisitAt, v))
}

// LastVisitAtIsNil applies the IsNil predicate on the "last_visit_at" field.
func LastVisitAtIsNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIsNull(FieldLastVisitAt))
}

// LastVisitAtNotNil applies the NotNil predicate on the "last_visit_at" field.
func LastVisitAtNotNil() predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotNull(FieldLastVisitAt))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldComputedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CustomerScore {
	return predicate.CustomerScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CustomerScore) predicate.CustomerScore {
	return predicate.CustomerScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CustomerScore) predicate.CustomerScore {
	return predicate.CustomerScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CustomerScore) predicate.CustomerScore {
	return predicate.CustomerScore(sql.NotPredicates(p))
}
