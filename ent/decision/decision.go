// Code generated by ent, DO NOT EDIT.

package decision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decision type in the database.
	Label = "decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldAutonomy holds the string denoting the autonomy field in the database.
	FieldAutonomy = "autonomy"
	// FieldTriggerID holds the string denoting the trigger_id field in the database.
	FieldTriggerID = "trigger_id"
	// FieldTriggerKind holds the string denoting the trigger_kind field in the database.
	FieldTriggerKind = "trigger_kind"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldStaffID holds the string denoting the staff_id field in the database.
	FieldStaffID = "staff_id"
	// FieldServiceID holds the string denoting the service_id field in the database.
	FieldServiceID = "service_id"
	// FieldSlotRef holds the string denoting the slot_ref field in the database.
	FieldSlotRef = "slot_ref"
	// FieldActionSummary holds the string denoting the action_summary field in the database.
	FieldActionSummary = "action_summary"
	// FieldActionDetail holds the string denoting the action_detail field in the database.
	FieldActionDetail = "action_detail"
	// FieldRevenuePotential holds the string denoting the revenue_potential field in the database.
	FieldRevenuePotential = "revenue_potential"
	// FieldRevenueActual holds the string denoting the revenue_actual field in the database.
	FieldRevenueActual = "revenue_actual"
	// FieldApprovalRequired holds the string denoting the approval_required field in the database.
	FieldApprovalRequired = "approval_required"
	// FieldApprovalStatus holds the string denoting the approval_status field in the database.
	FieldApprovalStatus = "approval_status"
	// FieldApprovalApprover holds the string denoting the approval_approver field in the database.
	FieldApprovalApprover = "approval_approver"
	// FieldApprovalDecidedAt holds the string denoting the approval_decided_at field in the database.
	FieldApprovalDecidedAt = "approval_decided_at"
	// FieldOutcomeStatus holds the string denoting the outcome_status field in the database.
	FieldOutcomeStatus = "outcome_status"
	// FieldOutcomeResult holds the string denoting the outcome_result field in the database.
	FieldOutcomeResult = "outcome_result"
	// FieldOutcomeBookingID holds the string denoting the outcome_booking_id field in the database.
	FieldOutcomeBookingID = "outcome_booking_id"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the decision in the database.
	Table = "decisions"
)

// Columns holds all SQL columns for decision fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentName,
	FieldKind,
	FieldAutonomy,
	FieldTriggerID,
	FieldTriggerKind,
	FieldCustomerID,
	FieldStaffID,
	FieldServiceID,
	FieldSlotRef,
	FieldActionSummary,
	FieldActionDetail,
	FieldRevenuePotential,
	FieldRevenueActual,
	FieldApprovalRequired,
	FieldApprovalStatus,
	FieldApprovalApprover,
	FieldApprovalDecidedAt,
	FieldOutcomeStatus,
	FieldOutcomeResult,
	FieldOutcomeBookingID,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldExpiresAt,
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
	// AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	AgentNameValidator func(string) error
	// ActionSummaryValidator is a validator for the "action_summary" field. It is called by the builders before save.
	ActionSummaryValidator func(string) error
	// DefaultRevenuePotential holds the default value on creation for the "revenue_potential" field.
	DefaultRevenuePotential int64
	// DefaultApprovalRequired holds the default value on creation for the "approval_required" field.
	DefaultApprovalRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindGapFill           Kind = "gap_fill"
	KindNoShowPrevention  Kind = "no_show_prevention"
	KindWaitlistPromotion Kind = "waitlist_promotion"
	KindDiscountOffer     Kind = "discount_offer"
	KindDynamicPricing    Kind = "dynamic_pricing"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindGapFill, KindNoShowPrevention, KindWaitlistPromotion, KindDiscountOffer, KindDynamicPricing:
		return nil
	default:
		return fmt.Errorf("decision: invalid enum value for kind field: %q", k)
	}
}

// Autonomy defines the type for the "autonomy" enum field.
type Autonomy string

// Autonomy values.
const (
	AutonomyFullAuto   Autonomy = "full_auto"
	AutonomySupervised Autonomy = "supervised"
	AutonomyManualOnly Autonomy = "manual_only"
)

func (a Autonomy) String() string {
	return string(a)
}

// AutonomyValidator is a validator for the "autonomy" field enum values. It is called by the builders before save.
func AutonomyValidator(a Autonomy) error {
	switch a {
	case AutonomyFullAuto, AutonomySupervised, AutonomyManualOnly:
		return nil
	default:
		return fmt.Errorf("decision: invalid enum value for autonomy field: %q", a)
	}
}

// ApprovalStatus defines the type for the "approval_status" enum field.
type ApprovalStatus string

// ApprovalStatusNone is the default value of the ApprovalStatus enum.
const DefaultApprovalStatus = ApprovalStatusNone

// ApprovalStatus values.
const (
	ApprovalStatusNone      ApprovalStatus = "none"
	ApprovalStatusPending   ApprovalStatus = "pending"
	ApprovalStatusApproved  ApprovalStatus = "approved"
	ApprovalStatusRejected  ApprovalStatus = "rejected"
	ApprovalStatusExpired   ApprovalStatus = "expired"
	ApprovalStatusCancelled ApprovalStatus = "cancelled"
)

func (as ApprovalStatus) String() string {
	return string(as)
}

// ApprovalStatusValidator is a validator for the "approval_status" field enum values. It is called by the builders before save.
func ApprovalStatusValidator(as ApprovalStatus) error {
	switch as {
	case ApprovalStatusNone, ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusExpired, ApprovalStatusCancelled:
		return nil
	default:
		return fmt.Errorf("decision: invalid enum value for approval_status field: %q", as)
	}
}

// OutcomeStatus defines the type for the "outcome_status" enum field.
type OutcomeStatus string

// OutcomeStatusPending is the default value of the OutcomeStatus enum.
const DefaultOutcomeStatus = OutcomeStatusPending

// OutcomeStatus values.
const (
	OutcomeStatusPending  OutcomeStatus = "pending"
	OutcomeStatusSuccess  OutcomeStatus = "success"
	OutcomeStatusFailed   OutcomeStatus = "failed"
	OutcomeStatusExpired  OutcomeStatus = "expired"
	OutcomeStatusRejected OutcomeStatus = "rejected"
)

func (os OutcomeStatus) String() string {
	return string(os)
}

// OutcomeStatusValidator is a validator for the "outcome_status" field enum values. It is called by the builders before save.
func OutcomeStatusValidator(os OutcomeStatus) error {
	switch os {
	case OutcomeStatusPending, OutcomeStatusSuccess, OutcomeStatusFailed, OutcomeStatusExpired, OutcomeStatusRejected:
		return nil
	default:
		return fmt.Errorf("decision: invalid enum value for outcome_status field: %q", os)
	}
}

// OrderOption defines the ordering options for the Decision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByAutonomy orders the results by the autonomy field.
func ByAutonomy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutonomy, opts...).ToFunc()
}

// ByTriggerID orders the results by the trigger_id field.
func ByTriggerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerID, opts...).ToFunc()
}

// ByTriggerKind orders the results by the trigger_kind field.
func ByTriggerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerKind, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByStaffID orders the results by the staff_id field.
func ByStaffID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaffID, opts...).ToFunc()
}

// ByServiceID orders the results by the service_id field.
func ByServiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceID, opts...).ToFunc()
}

// BySlotRef orders the results by the slot_ref field.
func BySlotRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotRef, opts...).ToFunc()
}

// ByActionSummary orders the results by the action_summary field.
func ByActionSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionSummary, opts...).ToFunc()
}

// ByRevenuePotential orders the results by the revenue_potential field.
func ByRevenuePotential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenuePotential, opts...).ToFunc()
}

// ByRevenueActual orders the results by the revenue_actual field.
func ByRevenueActual(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenueActual, opts...).ToFunc()
}

// ByApprovalRequired orders the results by the approval_required field.
func ByApprovalRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalRequired, opts...).ToFunc()
}

// ByApprovalStatus orders the results by the approval_status field.
func ByApprovalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalStatus, opts...).ToFunc()
}

// ByApprovalApprover orders the results by the approval_approver field.
func ByApprovalApprover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalApprover, opts...).ToFunc()
}

// ByApprovalDecidedAt orders the results by the approval_decided_at field.
func ByApprovalDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalDecidedAt, opts...).ToFunc()
}

// ByOutcomeStatus orders the results by the outcome_status field.
func ByOutcomeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeStatus, opts...).ToFunc()
}

// ByOutcomeResult orders the results by the outcome_result field.
func ByOutcomeResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeResult, opts...).ToFunc()
}

// ByOutcomeBookingID orders the results by the outcome_booking_id field.
func ByOutcomeBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeBookingID, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
