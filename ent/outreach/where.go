// Code generated by ent, DO NOT EDIT.

package outreach

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTenantID, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerPhone applies equality check predicate on the "customer_phone" field. It's identical to CustomerPhoneEQ.
func CustomerPhone(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerPhone, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldMessage, v))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerKind applies equality check predicate on the "trigger_kind" field. It's identical to TriggerKindEQ.
func TriggerKind(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTriggerKind, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldAttempts, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldLastAttemptAt, v))
}

// ProviderMessageID applies equality check predicate on the "provider_message_id" field. It's identical to ProviderMessageIDEQ.
func ProviderMessageID(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldProviderMessageID, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldSentAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldDeliveredAt, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldReadAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldLastError, v))
}

// ResponseReceived applies equality check predicate on the "response_received" field. It's identical to ResponseReceivedEQ.
func ResponseReceived(v bool) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseReceived, v))
}

// ResponseAction applies equality check predicate on the "response_action" field. It's identical to ResponseActionEQ.
func ResponseAction(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseAction, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldRespondedAt, v))
}

// ResponseBookingID applies equality check predicate on the "response_booking_id" field. It's identical to ResponseBookingIDEQ.
func ResponseBookingID(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseBookingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldExpiresAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldTenantID, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldCustomerID, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldCustomerName, v))
}

// CustomerPhoneEQ applies the EQ predicate on the "customer_phone" field.
func CustomerPhoneEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerPhoneNEQ applies the NEQ predicate on the "customer_phone" field.
func CustomerPhoneNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldCustomerPhone, v))
}

// CustomerPhoneIn applies the In predicate on the "customer_phone" field.
func CustomerPhoneIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneNotIn applies the NotIn predicate on the "customer_phone" field.
func CustomerPhoneNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneGT applies the GT predicate on the "customer_phone" field.
func CustomerPhoneGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldCustomerPhone, v))
}

// CustomerPhoneGTE applies the GTE predicate on the "customer_phone" field.
func CustomerPhoneGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldCustomerPhone, v))
}

// CustomerPhoneLT applies the LT predicate on the "customer_phone" field.
func CustomerPhoneLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldCustomerPhone, v))
}

// CustomerPhoneLTE applies the LTE predicate on the "customer_phone" field.
func CustomerPhoneLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldCustomerPhone, v))
}

// CustomerPhoneContains applies the Contains predicate on the "customer_phone" field.
func CustomerPhoneContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldCustomerPhone, v))
}

// CustomerPhoneHasPrefix applies the HasPrefix predicate on the "customer_phone" field.
func CustomerPhoneHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldCustomerPhone, v))
}

// CustomerPhoneHasSuffix applies the HasSuffix predicate on the "customer_phone" field.
func CustomerPhoneHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldCustomerPhone, v))
}

// CustomerPhoneEqualFold applies the EqualFold predicate on the "customer_phone" field.
func CustomerPhoneEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldCustomerPhone, v))
}

// CustomerPhoneContainsFold applies the ContainsFold predicate on the "customer_phone" field.
func CustomerPhoneContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldCustomerPhone, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldType, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldChannel, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldStatus, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldMessage, v))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldTriggerID, v))
}

// TriggerKindEQ applies the EQ predicate on the "trigger_kind" field.
func TriggerKindEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldTriggerKind, v))
}

// TriggerKindNEQ applies the NEQ predicate on the "trigger_kind" field.
func TriggerKindNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldTriggerKind, v))
}

// TriggerKindIn applies the In predicate on the "trigger_kind" field.
func TriggerKindIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldTriggerKind, vs...))
}

// TriggerKindNotIn applies the NotIn predicate on the "trigger_kind" field.
func TriggerKindNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldTriggerKind, vs...))
}

// TriggerKindGT applies the GT predicate on the "trigger_kind" field.
func TriggerKindGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldTriggerKind, v))
}

// TriggerKindGTE applies the GTE predicate on the "trigger_kind" field.
func TriggerKindGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldTriggerKind, v))
}

// TriggerKindLT applies the LT predicate on the "trigger_kind" field.
func TriggerKindLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldTriggerKind, v))
}

// TriggerKindLTE applies the LTE predicate on the "trigger_kind" field.
func TriggerKindLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldTriggerKind, v))
}

// TriggerKindContains applies the Contains predicate on the "trigger_kind" field.
func TriggerKindContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldTriggerKind, v))
}

// TriggerKindHasPrefix applies the HasPrefix predicate on the "trigger_kind" field.
func TriggerKindHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldTriggerKind, v))
}

// TriggerKindHasSuffix applies the HasSuffix predicate on the "trigger_kind" field.
func TriggerKindHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldTriggerKind, v))
}

// TriggerKindEqualFold applies the EqualFold predicate on the "trigger_kind" field.
func TriggerKindEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldTriggerKind, v))
}

// TriggerKindContainsFold applies the ContainsFold predicate on the "trigger_kind" field.
func TriggerKindContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldTriggerKind, v))
}

// OfferIsNil applies the IsNil predicate on the "offer" field.
func OfferIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldOffer))
}

// OfferNotNil applies the NotNil predicate on the "offer" field.
func OfferNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldOffer))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldAttempts, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldLastAttemptAt))
}

// ProviderMessageIDEQ applies the EQ predicate on the "provider_message_id" field.
func ProviderMessageIDEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDNEQ applies the NEQ predicate on the "provider_message_id" field.
func ProviderMessageIDNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldProviderMessageID, v))
}

// ProviderMessageIDIn applies the In predicate on the "provider_message_id" field.
func ProviderMessageIDIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDNotIn applies the NotIn predicate on the "provider_message_id" field.
func ProviderMessageIDNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldProviderMessageID, vs...))
}

// ProviderMessageIDGT applies the GT predicate on the "provider_message_id" field.
func ProviderMessageIDGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldProviderMessageID, v))
}

// ProviderMessageIDGTE applies the GTE predicate on the "provider_message_id" field.
func ProviderMessageIDGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldProviderMessageID, v))
}

// ProviderMessageIDLT applies the LT predicate on the "provider_message_id" field.
func ProviderMessageIDLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldProviderMessageID, v))
}

// ProviderMessageIDLTE applies the LTE predicate on the "provider_message_id" field.
func ProviderMessageIDLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldProviderMessageID, v))
}

// ProviderMessageIDContains applies the Contains predicate on the "provider_message_id" field.
func ProviderMessageIDContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldProviderMessageID, v))
}

// ProviderMessageIDHasPrefix applies the HasPrefix predicate on the "provider_message_id" field.
func ProviderMessageIDHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldProviderMessageID, v))
}

// ProviderMessageIDHasSuffix applies the HasSuffix predicate on the "provider_message_id" field.
func ProviderMessageIDHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldProviderMessageID, v))
}

// ProviderMessageIDIsNil applies the IsNil predicate on the "provider_message_id" field.
func ProviderMessageIDIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldProviderMessageID))
}

// ProviderMessageIDNotNil applies the NotNil predicate on the "provider_message_id" field.
func ProviderMessageIDNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldProviderMessageID))
}

// ProviderMessageIDEqualFold applies the EqualFold predicate on the "provider_message_id" field.
func ProviderMessageIDEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldProviderMessageID, v))
}

// ProviderMessageIDContainsFold applies the ContainsFold predicate on the "provider_message_id" field.
func ProviderMessageIDContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldProviderMessageID, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldSentAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldDeliveredAt))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldReadAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldLastError, v))
}

// ResponseReceivedEQ applies the EQ predicate on the "response_received" field.
func ResponseReceivedEQ(v bool) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseReceived, v))
}

// ResponseReceivedNEQ applies the NEQ predicate on the "response_received" field.
func ResponseReceivedNEQ(v bool) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldResponseReceived, v))
}

// ResponseActionEQ applies the EQ predicate on the "response_action" field.
func ResponseActionEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseAction, v))
}

// ResponseActionNEQ applies the NEQ predicate on the "response_action" field.
func ResponseActionNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldResponseAction, v))
}

// ResponseActionIn applies the In predicate on the "response_action" field.
func ResponseActionIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldResponseAction, vs...))
}

// ResponseActionNotIn applies the NotIn predicate on the "response_action" field.
func ResponseActionNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldResponseAction, vs...))
}

// ResponseActionGT applies the GT predicate on the "response_action" field.
func ResponseActionGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldResponseAction, v))
}

// ResponseActionGTE applies the GTE predicate on the "response_action" field.
func ResponseActionGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldResponseAction, v))
}

// ResponseActionLT applies the LT predicate on the "response_action" field.
func ResponseActionLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldResponseAction, v))
}

// ResponseActionLTE applies the LTE predicate on the "response_action" field.
func ResponseActionLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldResponseAction, v))
}

// ResponseActionContains applies the Contains predicate on the "response_action" field.
func ResponseActionContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldResponseAction, v))
}

// ResponseActionHasPrefix applies the HasPrefix predicate on the "response_action" field.
func ResponseActionHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldResponseAction, v))
}

// ResponseActionHasSuffix applies the HasSuffix predicate on the "response_action" field.
func ResponseActionHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldResponseAction, v))
}

// ResponseActionIsNil applies the IsNil predicate on the "response_action" field.
func ResponseActionIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldResponseAction))
}

// ResponseActionNotNil applies the NotNil predicate on the "response_action" field.
func ResponseActionNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldResponseAction))
}

// ResponseActionEqualFold applies the EqualFold predicate on the "response_action" field.
func ResponseActionEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldResponseAction, v))
}

// ResponseActionContainsFold applies the ContainsFold predicate on the "response_action" field.
func ResponseActionContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldResponseAction, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldRespondedAt))
}

// ResponseBookingIDEQ applies the EQ predicate on the "response_booking_id" field.
func ResponseBookingIDEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldResponseBookingID, v))
}

// ResponseBookingIDNEQ applies the NEQ predicate on the "response_booking_id" field.
func ResponseBookingIDNEQ(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldResponseBookingID, v))
}

// ResponseBookingIDIn applies the In predicate on the "response_booking_id" field.
func ResponseBookingIDIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldResponseBookingID, vs...))
}

// ResponseBookingIDNotIn applies the NotIn predicate on the "response_booking_id" field.
func ResponseBookingIDNotIn(vs ...string) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldResponseBookingID, vs...))
}

// ResponseBookingIDGT applies the GT predicate on the "response_booking_id" field.
func ResponseBookingIDGT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldResponseBookingID, v))
}

// ResponseBookingIDGTE applies the GTE predicate on the "response_booking_id" field.
func ResponseBookingIDGTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldResponseBookingID, v))
}

// ResponseBookingIDLT applies the LT predicate on the "response_booking_id" field.
func ResponseBookingIDLT(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldResponseBookingID, v))
}

// ResponseBookingIDLTE applies the LTE predicate on the "response_booking_id" field.
func ResponseBookingIDLTE(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldResponseBookingID, v))
}

// ResponseBookingIDContains applies the Contains predicate on the "response_booking_id" field.
func ResponseBookingIDContains(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContains(FieldResponseBookingID, v))
}

// ResponseBookingIDHasPrefix applies the HasPrefix predicate on the "response_booking_id" field.
func ResponseBookingIDHasPrefix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasPrefix(FieldResponseBookingID, v))
}

// ResponseBookingIDHasSuffix applies the HasSuffix predicate on the "response_booking_id" field.
func ResponseBookingIDHasSuffix(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldHasSuffix(FieldResponseBookingID, v))
}

// ResponseBookingIDIsNil applies the IsNil predicate on the "response_booking_id" field.
func ResponseBookingIDIsNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldIsNull(FieldResponseBookingID))
}

// ResponseBookingIDNotNil applies the NotNil predicate on the "response_booking_id" field.
func ResponseBookingIDNotNil() predicate.Outreach {
	return predicate.Outreach(sql.FieldNotNull(FieldResponseBookingID))
}

// ResponseBookingIDEqualFold applies the EqualFold predicate on the "response_booking_id" field.
func ResponseBookingIDEqualFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldEqualFold(FieldResponseBookingID, v))
}

// ResponseBookingIDContainsFold applies the ContainsFold predicate on the "response_booking_id" field.
func ResponseBookingIDContainsFold(v string) predicate.Outreach {
	return predicate.Outreach(sql.FieldContainsFold(FieldResponseBookingID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Outreach {
	return predicate.Outreach(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Outreach) predicate.Outreach {
	return predicate.Outreach(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Outreach) predicate.Outreach {
	return predicate.Outreach(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Outreach) predicate.Outreach {
	return predicate.Outreach(sql.NotPredicates(p))
}
