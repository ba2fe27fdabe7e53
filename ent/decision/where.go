// Code generated by ent, DO NOT EDIT.

package decision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTenantID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldAgentName, v))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerKind applies equality check predicate on the "trigger_kind" field. It's identical to TriggerKindEQ.
func TriggerKind(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTriggerKind, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCustomerID, v))
}

// StaffID applies equality check predicate on the "staff_id" field. It's identical to StaffIDEQ.
func StaffID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldStaffID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldServiceID, v))
}

// SlotRef applies equality check predicate on the "slot_ref" field. It's identical to SlotRefEQ.
func SlotRef(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSlotRef, v))
}

// ActionSummary applies equality check predicate on the "action_summary" field. It's identical to ActionSummaryEQ.
func ActionSummary(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldActionSummary, v))
}

// RevenuePotential applies equality check predicate on the "revenue_potential" field. It's identical to RevenuePotentialEQ.
func RevenuePotential(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRevenuePotential, v))
}

// RevenueActual applies equality check predicate on the "revenue_actual" field. It's identical to RevenueActualEQ.
func RevenueActual(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRevenueActual, v))
}

// ApprovalRequired applies equality check predicate on the "approval_required" field. It's identical to ApprovalRequiredEQ.
func ApprovalRequired(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalRequired, v))
}

// ApprovalApprover applies equality check predicate on the "approval_approver" field. It's identical to ApprovalApproverEQ.
func ApprovalApprover(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalApprover, v))
}

// ApprovalDecidedAt applies equality check predicate on the "approval_decided_at" field. It's identical to ApprovalDecidedAtEQ.
func ApprovalDecidedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalDecidedAt, v))
}

// OutcomeResult applies equality check predicate on the "outcome_result" field. It's identical to OutcomeResultEQ.
func OutcomeResult(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcomeResult, v))
}

// OutcomeBookingID applies equality check predicate on the "outcome_booking_id" field. It's identical to OutcomeBookingIDEQ.
func OutcomeBookingID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcomeBookingID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldExpiresAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldAgentName, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldKind, vs...))
}

// AutonomyEQ applies the EQ predicate on the "autonomy" field.
func AutonomyEQ(v Autonomy) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldAutonomy, v))
}

// AutonomyNEQ applies the NEQ predicate on the "autonomy" field.
func AutonomyNEQ(v Autonomy) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldAutonomy, v))
}

// AutonomyIn applies the In predicate on the "autonomy" field.
func AutonomyIn(vs ...Autonomy) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldAutonomy, vs...))
}

// AutonomyNotIn applies the NotIn predicate on the "autonomy" field.
func AutonomyNotIn(vs ...Autonomy) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldAutonomy, vs...))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldTriggerID, v))
}

// TriggerKindEQ applies the EQ predicate on the "trigger_kind" field.
func TriggerKindEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldTriggerKind, v))
}

// TriggerKindNEQ applies the NEQ predicate on the "trigger_kind" field.
func TriggerKindNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldTriggerKind, v))
}

// TriggerKindIn applies the In predicate on the "trigger_kind" field.
func TriggerKindIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldTriggerKind, vs...))
}

// TriggerKindNotIn applies the NotIn predicate on the "trigger_kind" field.
func TriggerKindNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldTriggerKind, vs...))
}

// TriggerKindGT applies the GT predicate on the "trigger_kind" field.
func TriggerKindGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldTriggerKind, v))
}

// TriggerKindGTE applies the GTE predicate on the "trigger_kind" field.
func TriggerKindGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldTriggerKind, v))
}

// TriggerKindLT applies the LT predicate on the "trigger_kind" field.
func TriggerKindLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldTriggerKind, v))
}

// TriggerKindLTE applies the LTE predicate on the "trigger_kind" field.
func TriggerKindLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldTriggerKind, v))
}

// TriggerKindContains applies the Contains predicate on the "trigger_kind" field.
func TriggerKindContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldTriggerKind, v))
}

// TriggerKindHasPrefix applies the HasPrefix predicate on the "trigger_kind" field.
func TriggerKindHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldTriggerKind, v))
}

// TriggerKindHasSuffix applies the HasSuffix predicate on the "trigger_kind" field.
func TriggerKindHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldTriggerKind, v))
}

// TriggerKindEqualFold applies the EqualFold predicate on the "trigger_kind" field.
func TriggerKindEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldTriggerKind, v))
}

// TriggerKindContainsFold applies the ContainsFold predicate on the "trigger_kind" field.
func TriggerKindContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldTriggerKind, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDIsNil applies the IsNil predicate on the "customer_id" field.
func CustomerIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldCustomerID))
}

// CustomerIDNotNil applies the NotNil predicate on the "customer_id" field.
func CustomerIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldCustomerID))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldCustomerID, v))
}

// StaffIDEQ applies the EQ predicate on the "staff_id" field.
func StaffIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldStaffID, v))
}

// StaffIDNEQ applies the NEQ predicate on the "staff_id" field.
func StaffIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldStaffID, v))
}

// StaffIDIn applies the In predicate on the "staff_id" field.
func StaffIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldStaffID, vs...))
}

// StaffIDNotIn applies the NotIn predicate on the "staff_id" field.
func StaffIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldStaffID, vs...))
}

// StaffIDGT applies the GT predicate on the "staff_id" field.
func StaffIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldStaffID, v))
}

// StaffIDGTE applies the GTE predicate on the "staff_id" field.
func StaffIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldStaffID, v))
}

// StaffIDLT applies the LT predicate on the "staff_id" field.
func StaffIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldStaffID, v))
}

// StaffIDLTE applies the LTE predicate on the "staff_id" field.
func StaffIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldStaffID, v))
}

// StaffIDContains applies the Contains predicate on the "staff_id" field.
func StaffIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldStaffID, v))
}

// StaffIDHasPrefix applies the HasPrefix predicate on the "staff_id" field.
func StaffIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldStaffID, v))
}

// StaffIDHasSuffix applies the HasSuffix predicate on the "staff_id" field.
func StaffIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldStaffID, v))
}

// StaffIDIsNil applies the IsNil predicate on the "staff_id" field.
func StaffIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldStaffID))
}

// StaffIDNotNil applies the NotNil predicate on the "staff_id" field.
func StaffIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldStaffID))
}

// StaffIDEqualFold applies the EqualFold predicate on the "staff_id" field.
func StaffIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldStaffID, v))
}

// StaffIDContainsFold applies the ContainsFold predicate on the "staff_id" field.
func StaffIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldStaffID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDIsNil applies the IsNil predicate on the "service_id" field.
func ServiceIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldServiceID))
}

// ServiceIDNotNil applies the NotNil predicate on the "service_id" field.
func ServiceIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldServiceID))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldServiceID, v))
}

// SlotRefEQ applies the EQ predicate on the "slot_ref" field.
func SlotRefEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSlotRef, v))
}

// SlotRefNEQ applies the NEQ predicate on the "slot_ref" field.
func SlotRefNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSlotRef, v))
}

// SlotRefIn applies the In predicate on the "slot_ref" field.
func SlotRefIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSlotRef, vs...))
}

// SlotRefNotIn applies the NotIn predicate on the "slot_ref" field.
func SlotRefNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSlotRef, vs...))
}

// SlotRefGT applies the GT predicate on the "slot_ref" field.
func SlotRefGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSlotRef, v))
}

// SlotRefGTE applies the GTE predicate on the "slot_ref" field.
func SlotRefGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSlotRef, v))
}

// SlotRefLT applies the LT predicate on the "slot_ref" field.
func SlotRefLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSlotRef, v))
}

// SlotRefLTE applies the LTE predicate on the "slot_ref" field.
func SlotRefLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSlotRef, v))
}

// SlotRefContains applies the Contains predicate on the "slot_ref" field.
func SlotRefContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldSlotRef, v))
}

// SlotRefHasPrefix applies the HasPrefix predicate on the "slot_ref" field.
func SlotRefHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldSlotRef, v))
}

// SlotRefHasSuffix applies the HasSuffix predicate on the "slot_ref" field.
func SlotRefHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldSlotRef, v))
}

// SlotRefIsNil applies the IsNil predicate on the "slot_ref" field.
func SlotRefIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldSlotRef))
}

// SlotRefNotNil applies the NotNil predicate on the "slot_ref" field.
func SlotRefNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldSlotRef))
}

// SlotRefEqualFold applies the EqualFold predicate on the "slot_ref" field.
func SlotRefEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldSlotRef, v))
}

// SlotRefContainsFold applies the ContainsFold predicate on the "slot_ref" field.
func SlotRefContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldSlotRef, v))
}

// ActionSummaryEQ applies the EQ predicate on the "action_summary" field.
func ActionSummaryEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldActionSummary, v))
}

// ActionSummaryNEQ applies the NEQ predicate on the "action_summary" field.
func ActionSummaryNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldActionSummary, v))
}

// ActionSummaryIn applies the In predicate on the "action_summary" field.
func ActionSummaryIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldActionSummary, vs...))
}

// ActionSummaryNotIn applies the NotIn predicate on the "action_summary" field.
func ActionSummaryNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldActionSummary, vs...))
}

// ActionSummaryGT applies the GT predicate on the "action_summary" field.
func ActionSummaryGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldActionSummary, v))
}

// ActionSummaryGTE applies the GTE predicate on the "action_summary" field.
func ActionSummaryGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldActionSummary, v))
}

// ActionSummaryLT applies the LT predicate on the "action_summary" field.
func ActionSummaryLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldActionSummary, v))
}

// ActionSummaryLTE applies the LTE predicate on the "action_summary" field.
func ActionSummaryLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldActionSummary, v))
}

// ActionSummaryContains applies the Contains predicate on the "action_summary" field.
func ActionSummaryContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldActionSummary, v))
}

// ActionSummaryHasPrefix applies the HasPrefix predicate on the "action_summary" field.
func ActionSummaryHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldActionSummary, v))
}

// ActionSummaryHasSuffix applies the HasSuffix predicate on the "action_summary" field.
func ActionSummaryHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldActionSummary, v))
}

// ActionSummaryEqualFold applies the EqualFold predicate on the "action_summary" field.
func ActionSummaryEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldActionSummary, v))
}

// ActionSummaryContainsFold applies the ContainsFold predicate on the "action_summary" field.
func ActionSummaryContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldActionSummary, v))
}

// ActionDetailIsNil applies the IsNil predicate on the "action_detail" field.
func ActionDetailIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldActionDetail))
}

// ActionDetailNotNil applies the NotNil predicate on the "action_detail" field.
func ActionDetailNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldActionDetail))
}

// RevenuePotentialEQ applies the EQ predicate on the "revenue_potential" field.
func RevenuePotentialEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRevenuePotential, v))
}

// RevenuePotentialNEQ applies the NEQ predicate on the "revenue_potential" field.
func RevenuePotentialNEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldRevenuePotential, v))
}

// RevenuePotentialIn applies the In predicate on the "revenue_potential" field.
func RevenuePotentialIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldRevenuePotential, vs...))
}

// RevenuePotentialNotIn applies the NotIn predicate on the "revenue_potential" field.
func RevenuePotentialNotIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldRevenuePotential, vs...))
}

// RevenuePotentialGT applies the GT predicate on the "revenue_potential" field.
func RevenuePotentialGT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldRevenuePotential, v))
}

// RevenuePotentialGTE applies the GTE predicate on the "revenue_potential" field.
func RevenuePotentialGTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldRevenuePotential, v))
}

// RevenuePotentialLT applies the LT predicate on the "revenue_potential" field.
func RevenuePotentialLT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldRevenuePotential, v))
}

// RevenuePotentialLTE applies the LTE predicate on the "revenue_potential" field.
func RevenuePotentialLTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldRevenuePotential, v))
}

// RevenueActualEQ applies the EQ predicate on the "revenue_actual" field.
func RevenueActualEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRevenueActual, v))
}

// RevenueActualNEQ applies the NEQ predicate on the "revenue_actual" field.
func RevenueActualNEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldRevenueActual, v))
}

// RevenueActualIn applies the In predicate on the "revenue_actual" field.
func RevenueActualIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldRevenueActual, vs...))
}

// RevenueActualNotIn applies the NotIn predicate on the "revenue_actual" field.
func RevenueActualNotIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldRevenueActual, vs...))
}

// RevenueActualGT applies the GT predicate on the "revenue_actual" field.
func RevenueActualGT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldRevenueActual, v))
}

// RevenueActualGTE applies the GTE predicate on the "revenue_actual" field.
func RevenueActualGTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldRevenueActual, v))
}

// RevenueActualLT applies the LT predicate on the "revenue_actual" field.
func RevenueActualLT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldRevenueActual, v))
}

// RevenueActualLTE applies the LTE predicate on the "revenue_actual" field.
func RevenueActualLTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldRevenueActual, v))
}

// RevenueActualIsNil applies the IsNil predicate on the "revenue_actual" field.
func RevenueActualIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldRevenueActual))
}

// RevenueActualNotNil applies the NotNil predicate on the "revenue_actual" field.
func RevenueActualNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldRevenueActual))
}

// ApprovalRequiredEQ applies the EQ predicate on the "approval_required" field.
func ApprovalRequiredEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalRequired, v))
}

// ApprovalRequiredNEQ applies the NEQ predicate on the "approval_required" field.
func ApprovalRequiredNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldApprovalRequired, v))
}

// ApprovalStatusEQ applies the EQ predicate on the "approval_status" field.
func ApprovalStatusEQ(v ApprovalStatus) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalStatus, v))
}

// ApprovalStatusNEQ applies the NEQ predicate on the "approval_status" field.
func ApprovalStatusNEQ(v ApprovalStatus) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldApprovalStatus, v))
}

// ApprovalStatusIn applies the In predicate on the "approval_status" field.
func ApprovalStatusIn(vs ...ApprovalStatus) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldApprovalStatus, vs...))
}

// ApprovalStatusNotIn applies the NotIn predicate on the "approval_status" field.
func ApprovalStatusNotIn(vs ...ApprovalStatus) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldApprovalStatus, vs...))
}

// ApprovalApproverEQ applies the EQ predicate on the "approval_approver" field.
func ApprovalApproverEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalApprover, v))
}

// ApprovalApproverNEQ applies the NEQ predicate on the "approval_approver" field.
func ApprovalApproverNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldApprovalApprover, v))
}

// ApprovalApproverIn applies the In predicate on the "approval_approver" field.
func ApprovalApproverIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldApprovalApprover, vs...))
}

// ApprovalApproverNotIn applies the NotIn predicate on the "approval_approver" field.
func ApprovalApproverNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldApprovalApprover, vs...))
}

// ApprovalApproverGT applies the GT predicate on the "approval_approver" field.
func ApprovalApproverGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldApprovalApprover, v))
}

// ApprovalApproverGTE applies the GTE predicate on the "approval_approver" field.
func ApprovalApproverGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldApprovalApprover, v))
}

// ApprovalApproverLT applies the LT predicate on the "approval_approver" field.
func ApprovalApproverLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldApprovalApprover, v))
}

// ApprovalApproverLTE applies the LTE predicate on the "approval_approver" field.
func ApprovalApproverLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldApprovalApprover, v))
}

// ApprovalApproverContains applies the Contains predicate on the "approval_approver" field.
func ApprovalApproverContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldApprovalApprover, v))
}

// ApprovalApproverHasPrefix applies the HasPrefix predicate on the "approval_approver" field.
func ApprovalApproverHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldApprovalApprover, v))
}

// ApprovalApproverHasSuffix applies the HasSuffix predicate on the "approval_approver" field.
func ApprovalApproverHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldApprovalApprover, v))
}

// ApprovalApproverIsNil applies the IsNil predicate on the "approval_approver" field.
func ApprovalApproverIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldApprovalApprover))
}

// ApprovalApproverNotNil applies the NotNil predicate on the "approval_approver" field.
func ApprovalApproverNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldApprovalApprover))
}

// ApprovalApproverEqualFold applies the EqualFold predicate on the "approval_approver" field.
func ApprovalApproverEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldApprovalApprover, v))
}

// ApprovalApproverContainsFold applies the ContainsFold predicate on the "approval_approver" field.
func ApprovalApproverContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldApprovalApprover, v))
}

// ApprovalDecidedAtEQ applies the EQ predicate on the "approval_decided_at" field.
func ApprovalDecidedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtNEQ applies the NEQ predicate on the "approval_decided_at" field.
func ApprovalDecidedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtIn applies the In predicate on the "approval_decided_at" field.
func ApprovalDecidedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldApprovalDecidedAt, vs...))
}

// ApprovalDecidedAtNotIn applies the NotIn predicate on the "approval_decided_at" field.
func ApprovalDecidedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldApprovalDecidedAt, vs...))
}

// ApprovalDecidedAtGT applies the GT predicate on the "approval_decided_at" field.
func ApprovalDecidedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtGTE applies the GTE predicate on the "approval_decided_at" field.
func ApprovalDecidedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtLT applies the LT predicate on the "approval_decided_at" field.
func ApprovalDecidedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtLTE applies the LTE predicate on the "approval_decided_at" field.
func ApprovalDecidedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldApprovalDecidedAt, v))
}

// ApprovalDecidedAtIsNil applies the IsNil predicate on the "approval_decided_at" field.
func ApprovalDecidedAtIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldApprovalDecidedAt))
}

// ApprovalDecidedAtNotNil applies the NotNil predicate on the "approval_decided_at" field.
func ApprovalDecidedAtNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldApprovalDecidedAt))
}

// OutcomeStatusEQ applies the EQ predicate on the "outcome_status" field.
func OutcomeStatusEQ(v OutcomeStatus) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcomeStatus, v))
}

// OutcomeStatusNEQ applies the NEQ predicate on the "outcome_status" field.
func OutcomeStatusNEQ(v OutcomeStatus) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOutcomeStatus, v))
}

// OutcomeStatusIn applies the In predicate on the "outcome_status" field.
func OutcomeStatusIn(vs ...OutcomeStatus) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOutcomeStatus, vs...))
}

// OutcomeStatusNotIn applies the NotIn predicate on the "outcome_status" field.
func OutcomeStatusNotIn(vs ...OutcomeStatus) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOutcomeStatus, vs...))
}

// OutcomeResultEQ applies the EQ predicate on the "outcome_result" field.
func OutcomeResultEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcomeResult, v))
}

// OutcomeResultNEQ applies the NEQ predicate on the "outcome_result" field.
func OutcomeResultNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOutcomeResult, v))
}

// OutcomeResultIn applies the In predicate on the "outcome_result" field.
func OutcomeResultIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOutcomeResult, vs...))
}

// OutcomeResultNotIn applies the NotIn predicate on the "outcome_result" field.
func OutcomeResultNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOutcomeResult, vs...))
}

// OutcomeResultGT applies the GT predicate on the "outcome_result" field.
func OutcomeResultGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldOutcomeResult, v))
}

// OutcomeResultGTE applies the GTE predicate on the "outcome_result" field.
func OutcomeResultGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldOutcomeResult, v))
}

// OutcomeResultLT applies the LT predicate on the "outcome_result" field.
func OutcomeResultLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldOutcomeResult, v))
}

// OutcomeResultLTE applies the LTE predicate on the "outcome_result" field.
func OutcomeResultLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldOutcomeResult, v))
}

// OutcomeResultContains applies the Contains predicate on the "outcome_result" field.
func OutcomeResultContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldOutcomeResult, v))
}

// OutcomeResultHasPrefix applies the HasPrefix predicate on the "outcome_result" field.
func OutcomeResultHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldOutcomeResult, v))
}

// OutcomeResultHasSuffix applies the HasSuffix predicate on the "outcome_result" field.
func OutcomeResultHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldOutcomeResult, v))
}

// OutcomeResultIsNil applies the IsNil predicate on the "outcome_result" field.
func OutcomeResultIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldOutcomeResult))
}

// OutcomeResultNotNil applies the NotNil predicate on the "outcome_result" field.
func OutcomeResultNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldOutcomeResult))
}

// OutcomeResultEqualFold applies the EqualFold predicate on the "outcome_result" field.
func OutcomeResultEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldOutcomeResult, v))
}

// OutcomeResultContainsFold applies the ContainsFold predicate on the "outcome_result" field.
func OutcomeResultContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldOutcomeResult, v))
}

// OutcomeBookingIDEQ applies the EQ predicate on the "outcome_booking_id" field.
func OutcomeBookingIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDNEQ applies the NEQ predicate on the "outcome_booking_id" field.
func OutcomeBookingIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDIn applies the In predicate on the "outcome_booking_id" field.
func OutcomeBookingIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOutcomeBookingID, vs...))
}

// OutcomeBookingIDNotIn applies the NotIn predicate on the "outcome_booking_id" field.
func OutcomeBookingIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOutcomeBookingID, vs...))
}

// OutcomeBookingIDGT applies the GT predicate on the "outcome_booking_id" field.
func OutcomeBookingIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDGTE applies the GTE predicate on the "outcome_booking_id" field.
func OutcomeBookingIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDLT applies the LT predicate on the "outcome_booking_id" field.
func OutcomeBookingIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDLTE applies the LTE predicate on the "outcome_booking_id" field.
func OutcomeBookingIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDContains applies the Contains predicate on the "outcome_booking_id" field.
func OutcomeBookingIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDHasPrefix applies the HasPrefix predicate on the "outcome_booking_id" field.
func OutcomeBookingIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDHasSuffix applies the HasSuffix predicate on the "outcome_booking_id" field.
func OutcomeBookingIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDIsNil applies the IsNil predicate on the "outcome_booking_id" field.
func OutcomeBookingIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldOutcomeBookingID))
}

// OutcomeBookingIDNotNil applies the NotNil predicate on the "outcome_booking_id" field.
func OutcomeBookingIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldOutcomeBookingID))
}

// OutcomeBookingIDEqualFold applies the EqualFold predicate on the "outcome_booking_id" field.
func OutcomeBookingIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldOutcomeBookingID, v))
}

// OutcomeBookingIDContainsFold applies the ContainsFold predicate on the "outcome_booking_id" field.
func OutcomeBookingIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldOutcomeBookingID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.NotPredicates(p))
}
