// Code generated by ent, DO NOT EDIT.

package gap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldTenantID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStaffID, v))
}

// StaffName applies equality check predicate on the "staff_name" field. It's identical to StaffNameEQ.
func StaffName(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStaffName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldEndTime, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldDurationMinutes, v))
}

// PotentialRevenue applies equality check predicate on the "potential_revenue" field. It's identical to PotentialRevenueEQ.
func PotentialRevenue(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldPotentialRevenue, v))
}

// FillAttempts applies equality check predicate on the "fill_attempts" field. It's identical to FillAttemptsEQ.
func FillAttempts(v int) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFillAttempts, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldLastAttemptAt, v))
}

// FilledByBookingID applies equality check predicate on the "filled_by_booking_id" field. It's identical to FilledByBookingIDEQ.
func FilledByBookingID(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledByBookingID, v))
}

// FilledByCustomerID applies equality check predicate on the "filled_by_customer_id" field. It's identical to FilledByCustomerIDEQ.
func FilledByCustomerID(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledByCustomerID, v))
}

// FilledAt applies equality check predicate on the "filled_at" field. It's identical to FilledAtEQ.
func FilledAt(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldTenantID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldStaffID, v))
}

// StaffIDContains applies the Contains predicate on the "staff_id" field.
func StaffIDContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldStaffID, v))
}

// StaffIDHasPrefix applies the HasPrefix predicate on the "staff_id" field.
func StaffIDHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldStaffID, v))
}

// StaffIDHasSuffix applies the HasSuffix predicate on the "staff_id" field.
func StaffIDHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldStaffID, v))
}

// StaffIDEqualFold applies the EqualFold predicate on the "staff_id" field.
func StaffIDEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldStaffID, v))
}

// StaffIDContainsFold applies the ContainsFold predicate on the "staff_id" field.
func StaffIDContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldStaffID, v))
}

// StaffNameEQ applies the EQ predicate on the "staff_name" field.
func StaffNameEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStaffName, v))
}

// StaffNameNEQ applies the NEQ predicate on the "staff_name" field.
func StaffNameNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldStaffName, v))
}

// StaffNameIn applies the In predicate on the "staff_name" field.
func StaffNameIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldStaffName, vs...))
}

// StaffNameNotIn applies the NotIn predicate on the "staff_name" field.
func StaffNameNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldStaffName, vs...))
}

// StaffNameGT applies the GT predicate on the "staff_name" field.
func StaffNameGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldStaffName, v))
}

// StaffNameGTE applies the GTE predicate on the "staff_name" field.
func StaffNameGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldStaffName, v))
}

// StaffNameLT applies the LT predicate on the "staff_name" field.
func StaffNameLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldStaffName, v))
}

// StaffNameLTE applies the LTE predicate on the "staff_name" field.
func StaffNameLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldStaffName, v))
}

// StaffNameContains applies the Contains predicate on the "staff_name" field.
func StaffNameContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldStaffName, v))
}

// StaffNameHasPrefix applies the HasPrefix predicate on the "staff_name" field.
func StaffNameHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldStaffName, v))
}

// StaffNameHasSuffix applies the HasSuffix predicate on the "staff_name" field.
func StaffNameHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldStaffName, v))
}

// StaffNameIsNil applies the IsNil predicate on the "staff_name" field.
func StaffNameIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldStaffName))
}

// StaffNameNotNil applies the NotNil predicate on the "staff_name" field.
func StaffNameNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldStaffName))
}

// StaffNameEqualFold applies the EqualFold predicate on the "staff_name" field.
func StaffNameEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldStaffName, v))
}

// StaffNameContainsFold applies the ContainsFold predicate on the "staff_name" field.
func StaffNameContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldStaffName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldDate, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldEndTime, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldDurationMinutes, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldStatus, vs...))
}

// PotentialRevenueEQ applies the EQ predicate on the "potential_revenue" field.
func PotentialRevenueEQ(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldPotentialRevenue, v))
}

// PotentialRevenueNEQ applies the NEQ predicate on the "potential_revenue" field.
func PotentialRevenueNEQ(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldPotentialRevenue, v))
}

// PotentialRevenueIn applies the In predicate on the "potential_revenue" field.
func PotentialRevenueIn(vs ...int64) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldPotentialRevenue, vs...))
}

// PotentialRevenueNotIn applies the NotIn predicate on the "potential_revenue" field.
func PotentialRevenueNotIn(vs ...int64) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldPotentialRevenue, vs...))
}

// PotentialRevenueGT applies the GT predicate on the "potential_revenue" field.
func PotentialRevenueGT(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldPotentialRevenue, v))
}

// PotentialRevenueGTE applies the GTE predicate on the "potential_revenue" field.
func PotentialRevenueGTE(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldPotentialRevenue, v))
}

// PotentialRevenueLT applies the LT predicate on the "potential_revenue" field.
func PotentialRevenueLT(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldPotentialRevenue, v))
}

// PotentialRevenueLTE applies the LTE predicate on the "potential_revenue" field.
func PotentialRevenueLTE(v int64) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldPotentialRevenue, v))
}

// FittableServiceIdsIsNil applies the IsNil predicate on the "fittable_service_ids" field.
func FittableServiceIdsIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldFittableServiceIds))
}

// FittableServiceIdsNotNil applies the NotNil predicate on the "fittable_service_ids" field.
func FittableServiceIdsNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldFittableServiceIds))
}

// FillAttemptsEQ applies the EQ predicate on the "fill_attempts" field.
func FillAttemptsEQ(v int) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFillAttempts, v))
}

// FillAttemptsNEQ applies the NEQ predicate on the "fill_attempts" field.
func FillAttemptsNEQ(v int) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldFillAttempts, v))
}

// FillAttemptsIn applies the In predicate on the "fill_attempts" field.
func FillAttemptsIn(vs ...int) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldFillAttempts, vs...))
}

// FillAttemptsNotIn applies the NotIn predicate on the "fill_attempts" field.
func FillAttemptsNotIn(vs ...int) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldFillAttempts, vs...))
}

// FillAttemptsGT applies the GT predicate on the "fill_attempts" field.
func FillAttemptsGT(v int) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldFillAttempts, v))
}

// FillAttemptsGTE applies the GTE predicate on the "fill_attempts" field.
func FillAttemptsGTE(v int) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldFillAttempts, v))
}

// FillAttemptsLT applies the LT predicate on the "fill_attempts" field.
func FillAttemptsLT(v int) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldFillAttempts, v))
}

// FillAttemptsLTE applies the LTE predicate on the "fill_attempts" field.
func FillAttemptsLTE(v int) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldFillAttempts, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldLastAttemptAt))
}

// FilledByBookingIDEQ applies the EQ predicate on the "filled_by_booking_id" field.
func FilledByBookingIDEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledByBookingID, v))
}

// FilledByBookingIDNEQ applies the NEQ predicate on the "filled_by_booking_id" field.
func FilledByBookingIDNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldFilledByBookingID, v))
}

// FilledByBookingIDIn applies the In predicate on the "filled_by_booking_id" field.
func FilledByBookingIDIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldFilledByBookingID, vs...))
}

// FilledByBookingIDNotIn applies the NotIn predicate on the "filled_by_booking_id" field.
func FilledByBookingIDNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldFilledByBookingID, vs...))
}

// FilledByBookingIDGT applies the GT predicate on the "filled_by_booking_id" field.
func FilledByBookingIDGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldFilledByBookingID, v))
}

// FilledByBookingIDGTE applies the GTE predicate on the "filled_by_booking_id" field.
func FilledByBookingIDGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldFilledByBookingID, v))
}

// FilledByBookingIDLT applies the LT predicate on the "filled_by_booking_id" field.
func FilledByBookingIDLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldFilledByBookingID, v))
}

// FilledByBookingIDLTE applies the LTE predicate on the "filled_by_booking_id" field.
func FilledByBookingIDLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldFilledByBookingID, v))
}

// FilledByBookingIDContains applies the Contains predicate on the "filled_by_booking_id" field.
func FilledByBookingIDContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldFilledByBookingID, v))
}

// FilledByBookingIDHasPrefix applies the HasPrefix predicate on the "filled_by_booking_id" field.
func FilledByBookingIDHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldFilledByBookingID, v))
}

// FilledByBookingIDHasSuffix applies the HasSuffix predicate on the "filled_by_booking_id" field.
func FilledByBookingIDHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldFilledByBookingID, v))
}

// FilledByBookingIDIsNil applies the IsNil predicate on the "filled_by_booking_id" field.
func FilledByBookingIDIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldFilledByBookingID))
}

// FilledByBookingIDNotNil applies the NotNil predicate on the "filled_by_booking_id" field.
func FilledByBookingIDNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldFilledByBookingID))
}

// FilledByBookingIDEqualFold applies the EqualFold predicate on the "filled_by_booking_id" field.
func FilledByBookingIDEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldFilledByBookingID, v))
}

// FilledByBookingIDContainsFold applies the ContainsFold predicate on the "filled_by_booking_id" field.
func FilledByBookingIDContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldFilledByBookingID, v))
}

// FilledByCustomerIDEQ applies the EQ predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDNEQ applies the NEQ predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDNEQ(v string) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDIn applies the In predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldFilledByCustomerID, vs...))
}

// FilledByCustomerIDNotIn applies the NotIn predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDNotIn(vs ...string) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldFilledByCustomerID, vs...))
}

// FilledByCustomerIDGT applies the GT predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDGT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDGTE applies the GTE predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDGTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDLT applies the LT predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDLT(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDLTE applies the LTE predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDLTE(v string) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDContains applies the Contains predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDContains(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContains(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDHasPrefix applies the HasPrefix predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDHasPrefix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasPrefix(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDHasSuffix applies the HasSuffix predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDHasSuffix(v string) predicate.Gap {
	return predicate.Gap(sql.FieldHasSuffix(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDIsNil applies the IsNil predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldFilledByCustomerID))
}

// FilledByCustomerIDNotNil applies the NotNil predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldFilledByCustomerID))
}

// FilledByCustomerIDEqualFold applies the EqualFold predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDEqualFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldEqualFold(FieldFilledByCustomerID, v))
}

// FilledByCustomerIDContainsFold applies the ContainsFold predicate on the "filled_by_customer_id" field.
func FilledByCustomerIDContainsFold(v string) predicate.Gap {
	return predicate.Gap(sql.FieldContainsFold(FieldFilledByCustomerID, v))
}

// FilledAtEQ applies the EQ predicate on the "filled_at" field.
func FilledAtEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldFilledAt, v))
}

// FilledAtNEQ applies the NEQ predicate on the "filled_at" field.
func FilledAtNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldFilledAt, v))
}

// FilledAtIn applies the In predicate on the "filled_at" field.
func FilledAtIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldFilledAt, vs...))
}

// FilledAtNotIn applies the NotIn predicate on the "filled_at" field.
func FilledAtNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldFilledAt, vs...))
}

// FilledAtGT applies the GT predicate on the "filled_at" field.
func FilledAtGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldFilledAt, v))
}

// FilledAtGTE applies the GTE predicate on the "filled_at" field.
func FilledAtGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldFilledAt, v))
}

// FilledAtLT applies the LT predicate on the "filled_at" field.
func FilledAtLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldFilledAt, v))
}

// FilledAtLTE applies the LTE predicate on the "filled_at" field.
func FilledAtLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldFilledAt, v))
}

// FilledAtIsNil applies the IsNil predicate on the "filled_at" field.
func FilledAtIsNil() predicate.Gap {
	return predicate.Gap(sql.FieldIsNull(FieldFilledAt))
}

// FilledAtNotNil applies the NotNil predicate on the "filled_at" field.
func FilledAtNotNil() predicate.Gap {
	return predicate.Gap(sql.FieldNotNull(FieldFilledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Gap {
	return predicate.Gap(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Gap) predicate.Gap {
	return predicate.Gap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Gap) predicate.Gap {
	return predicate.Gap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Gap) predicate.Gap {
	return predicate.Gap(sql.NotPredicates(p))
}
