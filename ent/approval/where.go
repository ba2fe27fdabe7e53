// Code generated by ent, DO NOT EDIT.

package approval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTenantID, v))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecisionID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldAgentName, v))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionType, v))
}

// ActionSummary applies equality check predicate on the "action_summary" field. It's identical to ActionSummaryEQ.
func ActionSummary(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionSummary, v))
}

// ResponseAction applies equality check predicate on the "response_action" field. It's identical to ResponseActionEQ.
func ResponseAction(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponseAction, v))
}

// Responder applies equality check predicate on the "responder" field. It's identical to ResponderEQ.
func Responder(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponder, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRespondedAt, v))
}

// ResponseNotes applies equality check predicate on the "response_notes" field. It's identical to ResponseNotesEQ.
func ResponseNotes(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponseNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExpiresAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldTenantID, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldDecisionID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldAgentName, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldActionType, v))
}

// ActionSummaryEQ applies the EQ predicate on the "action_summary" field.
func ActionSummaryEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldActionSummary, v))
}

// ActionSummaryNEQ applies the NEQ predicate on the "action_summary" field.
func ActionSummaryNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldActionSummary, v))
}

// ActionSummaryIn applies the In predicate on the "action_summary" field.
func ActionSummaryIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldActionSummary, vs...))
}

// ActionSummaryNotIn applies the NotIn predicate on the "action_summary" field.
func ActionSummaryNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldActionSummary, vs...))
}

// ActionSummaryGT applies the GT predicate on the "action_summary" field.
func ActionSummaryGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldActionSummary, v))
}

// ActionSummaryGTE applies the GTE predicate on the "action_summary" field.
func ActionSummaryGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldActionSummary, v))
}

// ActionSummaryLT applies the LT predicate on the "action_summary" field.
func ActionSummaryLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldActionSummary, v))
}

// ActionSummaryLTE applies the LTE predicate on the "action_summary" field.
func ActionSummaryLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldActionSummary, v))
}

// ActionSummaryContains applies the Contains predicate on the "action_summary" field.
func ActionSummaryContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldActionSummary, v))
}

// ActionSummaryHasPrefix applies the HasPrefix predicate on the "action_summary" field.
func ActionSummaryHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldActionSummary, v))
}

// ActionSummaryHasSuffix applies the HasSuffix predicate on the "action_summary" field.
func ActionSummaryHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldActionSummary, v))
}

// ActionSummaryEqualFold applies the EqualFold predicate on the "action_summary" field.
func ActionSummaryEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldActionSummary, v))
}

// ActionSummaryContainsFold applies the ContainsFold predicate on the "action_summary" field.
func ActionSummaryContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldActionSummary, v))
}

// ActionDetailIsNil applies the IsNil predicate on the "action_detail" field.
func ActionDetailIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldActionDetail))
}

// ActionDetailNotNil applies the NotNil predicate on the "action_detail" field.
func ActionDetailNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldActionDetail))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldStatus, vs...))
}

// NotificationsSentIsNil applies the IsNil predicate on the "notifications_sent" field.
func NotificationsSentIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldNotificationsSent))
}

// NotificationsSentNotNil applies the NotNil predicate on the "notifications_sent" field.
func NotificationsSentNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldNotificationsSent))
}

// ResponseActionEQ applies the EQ predicate on the "response_action" field.
func ResponseActionEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponseAction, v))
}

// ResponseActionNEQ applies the NEQ predicate on the "response_action" field.
func ResponseActionNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldResponseAction, v))
}

// ResponseActionIn applies the In predicate on the "response_action" field.
func ResponseActionIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldResponseAction, vs...))
}

// ResponseActionNotIn applies the NotIn predicate on the "response_action" field.
func ResponseActionNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldResponseAction, vs...))
}

// ResponseActionGT applies the GT predicate on the "response_action" field.
func ResponseActionGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldResponseAction, v))
}

// ResponseActionGTE applies the GTE predicate on the "response_action" field.
func ResponseActionGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldResponseAction, v))
}

// ResponseActionLT applies the LT predicate on the "response_action" field.
func ResponseActionLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldResponseAction, v))
}

// ResponseActionLTE applies the LTE predicate on the "response_action" field.
func ResponseActionLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldResponseAction, v))
}

// ResponseActionContains applies the Contains predicate on the "response_action" field.
func ResponseActionContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldResponseAction, v))
}

// ResponseActionHasPrefix applies the HasPrefix predicate on the "response_action" field.
func ResponseActionHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldResponseAction, v))
}

// ResponseActionHasSuffix applies the HasSuffix predicate on the "response_action" field.
func ResponseActionHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldResponseAction, v))
}

// ResponseActionIsNil applies the IsNil predicate on the "response_action" field.
func ResponseActionIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldResponseAction))
}

// ResponseActionNotNil applies the NotNil predicate on the "response_action" field.
func ResponseActionNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldResponseAction))
}

// ResponseActionEqualFold applies the EqualFold predicate on the "response_action" field.
func ResponseActionEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldResponseAction, v))
}

// ResponseActionContainsFold applies the ContainsFold predicate on the "response_action" field.
func ResponseActionContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldResponseAction, v))
}

// ResponderEQ applies the EQ predicate on the "responder" field.
func ResponderEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponder, v))
}

// ResponderNEQ applies the NEQ predicate on the "responder" field.
func ResponderNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldResponder, v))
}

// ResponderIn applies the In predicate on the "responder" field.
func ResponderIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldResponder, vs...))
}

// ResponderNotIn applies the NotIn predicate on the "responder" field.
func ResponderNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldResponder, vs...))
}

// ResponderGT applies the GT predicate on the "responder" field.
func ResponderGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldResponder, v))
}

// ResponderGTE applies the GTE predicate on the "responder" field.
func ResponderGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldResponder, v))
}

// ResponderLT applies the LT predicate on the "responder" field.
func ResponderLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldResponder, v))
}

// ResponderLTE applies the LTE predicate on the "responder" field.
func ResponderLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldResponder, v))
}

// ResponderContains applies the Contains predicate on the "responder" field.
func ResponderContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldResponder, v))
}

// ResponderHasPrefix applies the HasPrefix predicate on the "responder" field.
func ResponderHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldResponder, v))
}

// ResponderHasSuffix applies the HasSuffix predicate on the "responder" field.
func ResponderHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldResponder, v))
}

// ResponderIsNil applies the IsNil predicate on the "responder" field.
func ResponderIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldResponder))
}

// ResponderNotNil applies the NotNil predicate on the "responder" field.
func ResponderNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldResponder))
}

// ResponderEqualFold applies the EqualFold predicate on the "responder" field.
func ResponderEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldResponder, v))
}

// ResponderContainsFold applies the ContainsFold predicate on the "responder" field.
func ResponderContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldResponder, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldRespondedAt))
}

// ResponseNotesEQ applies the EQ predicate on the "response_notes" field.
func ResponseNotesEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldResponseNotes, v))
}

// ResponseNotesNEQ applies the NEQ predicate on the "response_notes" field.
func ResponseNotesNEQ(v string) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldResponseNotes, v))
}

// ResponseNotesIn applies the In predicate on the "response_notes" field.
func ResponseNotesIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldResponseNotes, vs...))
}

// ResponseNotesNotIn applies the NotIn predicate on the "response_notes" field.
func ResponseNotesNotIn(vs ...string) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldResponseNotes, vs...))
}

// ResponseNotesGT applies the GT predicate on the "response_notes" field.
func ResponseNotesGT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldResponseNotes, v))
}

// ResponseNotesGTE applies the GTE predicate on the "response_notes" field.
func ResponseNotesGTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldResponseNotes, v))
}

// ResponseNotesLT applies the LT predicate on the "response_notes" field.
func ResponseNotesLT(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldResponseNotes, v))
}

// ResponseNotesLTE applies the LTE predicate on the "response_notes" field.
func ResponseNotesLTE(v string) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldResponseNotes, v))
}

// ResponseNotesContains applies the Contains predicate on the "response_notes" field.
func ResponseNotesContains(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContains(FieldResponseNotes, v))
}

// ResponseNotesHasPrefix applies the HasPrefix predicate on the "response_notes" field.
func ResponseNotesHasPrefix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasPrefix(FieldResponseNotes, v))
}

// ResponseNotesHasSuffix applies the HasSuffix predicate on the "response_notes" field.
func ResponseNotesHasSuffix(v string) predicate.Approval {
	return predicate.Approval(sql.FieldHasSuffix(FieldResponseNotes, v))
}

// ResponseNotesIsNil applies the IsNil predicate on the "response_notes" field.
func ResponseNotesIsNil() predicate.Approval {
	return predicate.Approval(sql.FieldIsNull(FieldResponseNotes))
}

// ResponseNotesNotNil applies the NotNil predicate on the "response_notes" field.
func ResponseNotesNotNil() predicate.Approval {
	return predicate.Approval(sql.FieldNotNull(FieldResponseNotes))
}

// ResponseNotesEqualFold applies the EqualFold predicate on the "response_notes" field.
func ResponseNotesEqualFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldEqualFold(FieldResponseNotes, v))
}

// ResponseNotesContainsFold applies the ContainsFold predicate on the "response_notes" field.
func ResponseNotesContainsFold(v string) predicate.Approval {
	return predicate.Approval(sql.FieldContainsFold(FieldResponseNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Approval {
	return predicate.Approval(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Approval) predicate.Approval {
	return predicate.Approval(sql.NotPredicates(p))
}
