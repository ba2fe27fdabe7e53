// Code generated by ent, DO NOT EDIT.

package gap

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gap type in the database.
	Label = "gap"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "gap_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldStaffID holds the string denoting the staff_id field in the database.
	FieldStaffID = "staff_id"
	// FieldStaffName holds the string denoting the staff_name field in the database.
	FieldStaffName = "staff_name"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPotentialRevenue holds the string denoting the potential_revenue field in the database.
	FieldPotentialRevenue = "potential_revenue"
	// FieldFittableServiceIds holds the string denoting the fittable_service_ids field in the database.
	FieldFittableServiceIds = "fittable_service_ids"
	// FieldFillAttempts holds the string denoting the fill_attempts field in the database.
	FieldFillAttempts = "fill_attempts"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldFilledByBookingID holds the string denoting the filled_by_booking_id field in the database.
	FieldFilledByBookingID = "filled_by_booking_id"
	// FieldFilledByCustomerID holds the string denoting the filled_by_customer_id field in the database.
	FieldFilledByCustomerID = "filled_by_customer_id"
	// FieldFilledAt holds the string denoting the filled_at field in the database.
	FieldFilledAt = "filled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the gap in the database.
	Table = "gaps"
)

// Columns holds all SQL columns for gap fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldStaffID,
	FieldStaffName,
	FieldDate,
	FieldStartTime,
	FieldEndTime,
	FieldDurationMinutes,
	FieldPriority,
	FieldStatus,
	FieldPotentialRevenue,
	FieldFittableServiceIds,
	FieldFillAttempts,
	FieldLastAttemptAt,
	FieldFilledByBookingID,
	FieldFilledByCustomerID,
	FieldFilledAt,
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
	// StaffIDValidator is a validator for the "staff_id" field. It is called by the builders before save.
	StaffIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	DurationMinutesValidator func(int) error
	// DefaultPotentialRevenue holds the default value on creation for the "potential_revenue" field.
	DefaultPotentialRevenue int64
	// DefaultFillAttempts holds the default value on creation for the "fill_attempts" field.
	DefaultFillAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Priority defines the type for the "priority" enum field.
type Priority string

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("gap: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen    Status = "open"
	StatusFilled  Status = "filled"
	StatusExpired Status = "expired"
	StatusIgnored Status = "ignored"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusFilled, StatusExpired, StatusIgnored:
		return nil
	default:
		return fmt.Errorf("gap: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Gap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStaffID orders the results by the staff_id field.
func ByStaffID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaffID, opts...).ToFunc()
}

// ByStaffName orders the results by the staff_name field.
func ByStaffName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaffName, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPotentialRevenue orders the results by the potential_revenue field.
func ByPotentialRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPotentialRevenue, opts...).ToFunc()
}

// ByFillAttempts orders the results by the fill_attempts field.
func ByFillAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFillAttempts, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByFilledByBookingID orders the results by the filled_by_booking_id field.
func ByFilledByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilledByBookingID, opts...).ToFunc()
}

// ByFilledByCustomerID orders the results by the filled_by_customer_id field.
func ByFilledByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilledByCustomerID, opts...).ToFunc()
}

// ByFilledAt orders the results by the filled_at field.
func ByFilledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
