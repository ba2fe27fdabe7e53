// Code generated by ent, DO NOT EDIT.

package outreach

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the outreach type in the database.
	Label = "outreach"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "outreach_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCustomerPhone holds the string denoting the customer_phone field in the database.
	FieldCustomerPhone = "customer_phone"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldTriggerID holds the string denoting the trigger_id field in the database.
	FieldTriggerID = "trigger_id"
	// FieldTriggerKind holds the string denoting the trigger_kind field in the database.
	FieldTriggerKind = "trigger_kind"
	// FieldOffer holds the string denoting the offer field in the database.
	FieldOffer = "offer"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldProviderMessageID holds the string denoting the provider_message_id field in the database.
	FieldProviderMessageID = "provider_message_id"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldReadAt holds the string denoting the read_at field in the database.
	FieldReadAt = "read_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldResponseReceived holds the string denoting the response_received field in the database.
	FieldResponseReceived = "response_received"
	// FieldResponseAction holds the string denoting the response_action field in the database.
	FieldResponseAction = "response_action"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// FieldResponseBookingID holds the string denoting the response_booking_id field in the database.
	FieldResponseBookingID = "response_booking_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the outreach in the database.
	Table = "outreaches"
)

// Columns holds all SQL columns for outreach fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCustomerID,
	FieldCustomerName,
	FieldCustomerPhone,
	FieldType,
	FieldChannel,
	FieldStatus,
	FieldMessage,
	FieldTriggerID,
	FieldTriggerKind,
	FieldOffer,
	FieldAttempts,
	FieldLastAttemptAt,
	FieldProviderMessageID,
	FieldSentAt,
	FieldDeliveredAt,
	FieldReadAt,
	FieldLastError,
	FieldResponseReceived,
	FieldResponseAction,
	FieldRespondedAt,
	FieldResponseBookingID,
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
	// CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	CustomerIDValidator func(string) error
	// CustomerPhoneValidator is a validator for the "customer_phone" field. It is called by the builders before save.
	CustomerPhoneValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// TriggerIDValidator is a validator for the "trigger_id" field. It is called by the builders before save.
	TriggerIDValidator func(string) error
	// TriggerKindValidator is a validator for the "trigger_kind" field. It is called by the builders before save.
	TriggerKindValidator func(string) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultResponseReceived holds the default value on creation for the "response_received" field.
	DefaultResponseReceived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Channel defines the type for the "channel" enum field.
type Channel string

// ChannelWhatsapp is the default value of the Channel enum.
const DefaultChannel = ChannelWhatsapp

// Channel values.
const (
	ChannelWhatsapp Channel = "whatsapp"
	ChannelSms      Channel = "sms"
	ChannelPush     Channel = "push"
	ChannelEmail    Channel = "email"
)

func (c Channel) String() string {
	return string(c)
}

// ChannelValidator is a validator for the "channel" field enum values. It is called by the builders before save.
func ChannelValidator(c Channel) error {
	switch c {
	case ChannelWhatsapp, ChannelSms, ChannelPush, ChannelEmail:
		return nil
	default:
		return fmt.Errorf("outreach: invalid enum value for channel field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
	StatusFailed    Status = "failed"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSent, StatusDelivered, StatusRead, StatusResponded, StatusFailed, StatusExpired:
		return nil
	default:
		return fmt.Errorf("outreach: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Outreach queries.
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

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByCustomerPhone orders the results by the customer_phone field.
func ByCustomerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerPhone, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByTriggerID orders the results by the trigger_id field.
func ByTriggerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerID, opts...).ToFunc()
}

// ByTriggerKind orders the results by the trigger_kind field.
func ByTriggerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerKind, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByProviderMessageID orders the results by the provider_message_id field.
func ByProviderMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderMessageID, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByReadAt orders the results by the read_at field.
func ByReadAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByResponseReceived orders the results by the response_received field.
func ByResponseReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseReceived, opts...).ToFunc()
}

// ByResponseAction orders the results by the response_action field.
func ByResponseAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseAction, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByResponseBookingID orders the results by the response_booking_id field.
func ByResponseBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseBookingID, opts...).ToFunc()
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
