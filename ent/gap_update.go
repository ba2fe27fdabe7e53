// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/gap"
	"github.com/bookflow/agentplane/ent/predicate"
)

// GapUpdate is the builder for updating Gap entities.
type GapUpdate struct {
	config
	hooks    []Hook
	mutation *GapMutation
}

// Where appends a list predicates to the GapUpdate builder.
func (_u *GapUpdate) Where(ps ...predicate.Gap) *GapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *GapUpdate) SetStaffID(v string) *GapUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *GapUpdate) SetNillableStaffID(v *string) *GapUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetStaffName sets the "staff_name" field.
func (_u *GapUpdate) SetStaffName(v string) *GapUpdate {
	_u.mutation.SetStaffName(v)
	return _u
}

// SetNillableStaffName sets the "staff_name" field if the given value is not nil.
func (_u *GapUpdate) SetNillableStaffName(v *string) *GapUpdate {
	if v != nil {
		_u.SetStaffName(*v)
	}
	return _u
}

// ClearStaffName clears the value of the "staff_name" field.
func (_u *GapUpdate) ClearStaffName() *GapUpdate {
	_u.mutation.ClearStaffName()
	return _u
}

// SetDate sets the "date" field.
func (_u *GapUpdate) SetDate(v string) *GapUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GapUpdate) SetNillableDate(v *string) *GapUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *GapUpdate) SetStartTime(v time.Time) *GapUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *GapUpdate) SetNillableStartTime(v *time.Time) *GapUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *GapUpdate) SetEndTime(v time.Time) *GapUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *GapUpdate) SetNillableEndTime(v *time.Time) *GapUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *GapUpdate) SetDurationMinutes(v int) *GapUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *GapUpdate) SetNillableDurationMinutes(v *int) *GapUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *GapUpdate) AddDurationMinutes(v int) *GapUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *GapUpdate) SetPriority(v gap.Priority) *GapUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *GapUpdate) SetNillablePriority(v *gap.Priority) *GapUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapUpdate) SetStatus(v gap.Status) *GapUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapUpdate) SetNillableStatus(v *gap.Status) *GapUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPotentialRevenue sets the "potential_revenue" field.
func (_u *GapUpdate) SetPotentialRevenue(v int64) *GapUpdate {
	_u.mutation.ResetPotentialRevenue()
	_u.mutation.SetPotentialRevenue(v)
	return _u
}

// SetNillablePotentialRevenue sets the "potential_revenue" field if the given value is not nil.
func (_u *GapUpdate) SetNillablePotentialRevenue(v *int64) *GapUpdate {
	if v != nil {
		_u.SetPotentialRevenue(*v)
	}
	return _u
}

// AddPotentialRevenue adds value to the "potential_revenue" field.
func (_u *GapUpdate) AddPotentialRevenue(v int64) *GapUpdate {
	_u.mutation.AddPotentialRevenue(v)
	return _u
}

// SetFittableServiceIds sets the "fittable_service_ids" field.
func (_u *GapUpdate) SetFittableServiceIds(v []string) *GapUpdate {
	_u.mutation.SetFittableServiceIds(v)
	return _u
}

// AppendFittableServiceIds appends value to the "fittable_service_ids" field.
func (_u *GapUpdate) AppendFittableServiceIds(v []string) *GapUpdate {
	_u.mutation.AppendFittableServiceIds(v)
	return _u
}

// ClearFittableServiceIds clears the value of the "fittable_service_ids" field.
func (_u *GapUpdate) ClearFittableServiceIds() *GapUpdate {
	_u.mutation.ClearFittableServiceIds()
	return _u
}

// SetFillAttempts sets the "fill_attempts" field.
func (_u *GapUpdate) SetFillAttempts(v int) *GapUpdate {
	_u.mutation.ResetFillAttempts()
	_u.mutation.SetFillAttempts(v)
	return _u
}

// SetNillableFillAttempts sets the "fill_attempts" field if the given value is not nil.
func (_u *GapUpdate) SetNillableFillAttempts(v *int) *GapUpdate {
	if v != nil {
		_u.SetFillAttempts(*v)
	}
	return _u
}

// AddFillAttempts adds value to the "fill_attempts" field.
func (_u *GapUpdate) AddFillAttempts(v int) *GapUpdate {
	_u.mutation.AddFillAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *GapUpdate) SetLastAttemptAt(v time.Time) *GapUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *GapUpdate) SetNillableLastAttemptAt(v *time.Time) *GapUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *GapUpdate) ClearLastAttemptAt() *GapUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetFilledByBookingID sets the "filled_by_booking_id" field.
func (_u *GapUpdate) SetFilledByBookingID(v string) *GapUpdate {
	_u.mutation.SetFilledByBookingID(v)
	return _u
}

// SetNillableFilledByBookingID sets the "filled_by_booking_id" field if the given value is not nil.
func (_u *GapUpdate) SetNillableFilledByBookingID(v *string) *GapUpdate {
	if v != nil {
		_u.SetFilledByBookingID(*v)
	}
	return _u
}

// ClearFilledByBookingID clears the value of the "filled_by_booking_id" field.
func (_u *GapUpdate) ClearFilledByBookingID() *GapUpdate {
	_u.mutation.ClearFilledByBookingID()
	return _u
}

// SetFilledByCustomerID sets the "filled_by_customer_id" field.
func (_u *GapUpdate) SetFilledByCustomerID(v string) *GapUpdate {
	_u.mutation.SetFilledByCustomerID(v)
	return _u
}

// SetNillableFilledByCustomerID sets the "filled_by_customer_id" field if the given value is not nil.
func (_u *GapUpdate) SetNillableFilledByCustomerID(v *string) *GapUpdate {
	if v != nil {
		_u.SetFilledByCustomerID(*v)
	}
	return _u
}

// ClearFilledByCustomerID clears the value of the "filled_by_customer_id" field.
func (_u *GapUpdate) ClearFilledByCustomerID() *GapUpdate {
	_u.mutation.ClearFilledByCustomerID()
	return _u
}

// SetFilledAt sets the "filled_at" field.
func (_u *GapUpdate) SetFilledAt(v time.Time) *GapUpdate {
	_u.mutation.SetFilledAt(v)
	return _u
}

// SetNillableFilledAt sets the "filled_at" field if the given value is not nil.
func (_u *GapUpdate) SetNillableFilledAt(v *time.Time) *GapUpdate {
	if v != nil {
		_u.SetFilledAt(*v)
	}
	return _u
}

// ClearFilledAt clears the value of the "filled_at" field.
func (_u *GapUpdate) ClearFilledAt() *GapUpdate {
	_u.mutation.ClearFilledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GapUpdate) SetUpdatedAt(v time.Time) *GapUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GapMutation object of the builder.
func (_u *GapUpdate) Mutation() *GapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GapUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapUpdate) check() error {
	if v, ok := _u.mutation.StaffID(); ok {
		if err := gap.StaffIDValidator(v); err != nil {
			return &ValidationError{Name: "staff_id", err: fmt.Errorf(`ent: validator failed for field "Gap.staff_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := gap.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Gap.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := gap.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Gap.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := gap.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Gap.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gap.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Gap.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gap.Table, gap.Columns, sqlgraph.NewFieldSpec(gap.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(gap.FieldStaffID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StaffName(); ok {
		_spec.SetField(gap.FieldStaffName, field.TypeString, value)
	}
	if _u.mutation.StaffNameCleared() {
		_spec.ClearField(gap.FieldStaffName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(gap.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(gap.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(gap.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(gap.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(gap.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(gap.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gap.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PotentialRevenue(); ok {
		_spec.SetField(gap.FieldPotentialRevenue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPotentialRevenue(); ok {
		_spec.AddField(gap.FieldPotentialRevenue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FittableServiceIds(); ok {
		_spec.SetField(gap.FieldFittableServiceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFittableServiceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gap.FieldFittableServiceIds, value)
		})
	}
	if _u.mutation.FittableServiceIdsCleared() {
		_spec.ClearField(gap.FieldFittableServiceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FillAttempts(); ok {
		_spec.SetField(gap.FieldFillAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillAttempts(); ok {
		_spec.AddField(gap.FieldFillAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(gap.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(gap.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FilledByBookingID(); ok {
		_spec.SetField(gap.FieldFilledByBookingID, field.TypeString, value)
	}
	if _u.mutation.FilledByBookingIDCleared() {
		_spec.ClearField(gap.FieldFilledByBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.FilledByCustomerID(); ok {
		_spec.SetField(gap.FieldFilledByCustomerID, field.TypeString, value)
	}
	if _u.mutation.FilledByCustomerIDCleared() {
		_spec.ClearField(gap.FieldFilledByCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.FilledAt(); ok {
		_spec.SetField(gap.FieldFilledAt, field.TypeTime, value)
	}
	if _u.mutation.FilledAtCleared() {
		_spec.ClearField(gap.FieldFilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gap.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapUpdateOne is the builder for updating a single Gap entity.
type GapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapMutation
}

// SetStaffID sets the "staff_id" field.
func (_u *GapUpdateOne) SetStaffID(v string) *GapUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableStaffID(v *string) *GapUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetStaffName sets the "staff_name" field.
func (_u *GapUpdateOne) SetStaffName(v string) *GapUpdateOne {
	_u.mutation.SetStaffName(v)
	return _u
}

// SetNillableStaffName sets the "staff_name" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableStaffName(v *string) *GapUpdateOne {
	if v != nil {
		_u.SetStaffName(*v)
	}
	return _u
}

// ClearStaffName clears the value of the "staff_name" field.
func (_u *GapUpdateOne) ClearStaffName() *GapUpdateOne {
	_u.mutation.ClearStaffName()
	return _u
}

// SetDate sets the "date" field.
func (_u *GapUpdateOne) SetDate(v string) *GapUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableDate(v *string) *GapUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *GapUpdateOne) SetStartTime(v time.Time) *GapUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableStartTime(v *time.Time) *GapUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *GapUpdateOne) SetEndTime(v time.Time) *GapUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableEndTime(v *time.Time) *GapUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *GapUpdateOne) SetDurationMinutes(v int) *GapUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableDurationMinutes(v *int) *GapUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *GapUpdateOne) AddDurationMinutes(v int) *GapUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *GapUpdateOne) SetPriority(v gap.Priority) *GapUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillablePriority(v *gap.Priority) *GapUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapUpdateOne) SetStatus(v gap.Status) *GapUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableStatus(v *gap.Status) *GapUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPotentialRevenue sets the "potential_revenue" field.
func (_u *GapUpdateOne) SetPotentialRevenue(v int64) *GapUpdateOne {
	_u.mutation.ResetPotentialRevenue()
	_u.mutation.SetPotentialRevenue(v)
	return _u
}

// SetNillablePotentialRevenue sets the "potential_revenue" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillablePotentialRevenue(v *int64) *GapUpdateOne {
	if v != nil {
		_u.SetPotentialRevenue(*v)
	}
	return _u
}

// AddPotentialRevenue adds value to the "potential_revenue" field.
func (_u *GapUpdateOne) AddPotentialRevenue(v int64) *GapUpdateOne {
	_u.mutation.AddPotentialRevenue(v)
	return _u
}

// SetFittableServiceIds sets the "fittable_service_ids" field.
func (_u *GapUpdateOne) SetFittableServiceIds(v []string) *GapUpdateOne {
	_u.mutation.SetFittableServiceIds(v)
	return _u
}

// AppendFittableServiceIds appends value to the "fittable_service_ids" field.
func (_u *GapUpdateOne) AppendFittableServiceIds(v []string) *GapUpdateOne {
	_u.mutation.AppendFittableServiceIds(v)
	return _u
}

// ClearFittableServiceIds clears the value of the "fittable_service_ids" field.
func (_u *GapUpdateOne) ClearFittableServiceIds() *GapUpdateOne {
	_u.mutation.ClearFittableServiceIds()
	return _u
}

// SetFillAttempts sets the "fill_attempts" field.
func (_u *GapUpdateOne) SetFillAttempts(v int) *GapUpdateOne {
	_u.mutation.ResetFillAttempts()
	_u.mutation.SetFillAttempts(v)
	return _u
}

// SetNillableFillAttempts sets the "fill_attempts" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableFillAttempts(v *int) *GapUpdateOne {
	if v != nil {
		_u.SetFillAttempts(*v)
	}
	return _u
}

// AddFillAttempts adds value to the "fill_attempts" field.
func (_u *GapUpdateOne) AddFillAttempts(v int) *GapUpdateOne {
	_u.mutation.AddFillAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *GapUpdateOne) SetLastAttemptAt(v time.Time) *GapUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableLastAttemptAt(v *time.Time) *GapUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *GapUpdateOne) ClearLastAttemptAt() *GapUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetFilledByBookingID sets the "filled_by_booking_id" field.
func (_u *GapUpdateOne) SetFilledByBookingID(v string) *GapUpdateOne {
	_u.mutation.SetFilledByBookingID(v)
	return _u
}

// SetNillableFilledByBookingID sets the "filled_by_booking_id" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableFilledByBookingID(v *string) *GapUpdateOne {
	if v != nil {
		_u.SetFilledByBookingID(*v)
	}
	return _u
}

// ClearFilledByBookingID clears the value of the "filled_by_booking_id" field.
func (_u *GapUpdateOne) ClearFilledByBookingID() *GapUpdateOne {
	_u.mutation.ClearFilledByBookingID()
	return _u
}

// SetFilledByCustomerID sets the "filled_by_customer_id" field.
func (_u *GapUpdateOne) SetFilledByCustomerID(v string) *GapUpdateOne {
	_u.mutation.SetFilledByCustomerID(v)
	return _u
}

// SetNillableFilledByCustomerID sets the "filled_by_customer_id" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableFilledByCustomerID(v *string) *GapUpdateOne {
	if v != nil {
		_u.SetFilledByCustomerID(*v)
	}
	return _u
}

// ClearFilledByCustomerID clears the value of the "filled_by_customer_id" field.
func (_u *GapUpdateOne) ClearFilledByCustomerID() *GapUpdateOne {
	_u.mutation.ClearFilledByCustomerID()
	return _u
}

// SetFilledAt sets the "filled_at" field.
func (_u *GapUpdateOne) SetFilledAt(v time.Time) *GapUpdateOne {
	_u.mutation.SetFilledAt(v)
	return _u
}

// SetNillableFilledAt sets the "filled_at" field if the given value is not nil.
func (_u *GapUpdateOne) SetNillableFilledAt(v *time.Time) *GapUpdateOne {
	if v != nil {
		_u.SetFilledAt(*v)
	}
	return _u
}

// ClearFilledAt clears the value of the "filled_at" field.
func (_u *GapUpdateOne) ClearFilledAt() *GapUpdateOne {
	_u.mutation.ClearFilledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GapUpdateOne) SetUpdatedAt(v time.Time) *GapUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GapMutation object of the builder.
func (_u *GapUpdateOne) Mutation() *GapMutation {
	return _u.mutation
}

// Where appends a list predicates to the GapUpdate builder.
func (_u *GapUpdateOne) Where(ps ...predicate.Gap) *GapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapUpdateOne) Select(field string, fields ...string) *GapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Gap entity.
func (_u *GapUpdateOne) Save(ctx context.Context) (*Gap, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapUpdateOne) SaveX(ctx context.Context) *Gap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GapUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapUpdateOne) check() error {
	if v, ok := _u.mutation.StaffID(); ok {
		if err := gap.StaffIDValidator(v); err != nil {
			return &ValidationError{Name: "staff_id", err: fmt.Errorf(`ent: validator failed for field "Gap.staff_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := gap.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Gap.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := gap.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Gap.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := gap.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Gap.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gap.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Gap.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapUpdateOne) sqlSave(ctx context.Context) (_node *Gap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gap.Table, gap.Columns, sqlgraph.NewFieldSpec(gap.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Gap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gap.FieldID)
		for _, f := range fields {
			if !gap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(gap.FieldStaffID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StaffName(); ok {
		_spec.SetField(gap.FieldStaffName, field.TypeString, value)
	}
	if _u.mutation.StaffNameCleared() {
		_spec.ClearField(gap.FieldStaffName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(gap.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(gap.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(gap.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(gap.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(gap.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(gap.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gap.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PotentialRevenue(); ok {
		_spec.SetField(gap.FieldPotentialRevenue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPotentialRevenue(); ok {
		_spec.AddField(gap.FieldPotentialRevenue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FittableServiceIds(); ok {
		_spec.SetField(gap.FieldFittableServiceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFittableServiceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gap.FieldFittableServiceIds, value)
		})
	}
	if _u.mutation.FittableServiceIdsCleared() {
		_spec.ClearField(gap.FieldFittableServiceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FillAttempts(); ok {
		_spec.SetField(gap.FieldFillAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillAttempts(); ok {
		_spec.AddField(gap.FieldFillAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(gap.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(gap.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FilledByBookingID(); ok {
		_spec.SetField(gap.FieldFilledByBookingID, field.TypeString, value)
	}
	if _u.mutation.FilledByBookingIDCleared() {
		_spec.ClearField(gap.FieldFilledByBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.FilledByCustomerID(); ok {
		_spec.SetField(gap.FieldFilledByCustomerID, field.TypeString, value)
	}
	if _u.mutation.FilledByCustomerIDCleared() {
		_spec.ClearField(gap.FieldFilledByCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.FilledAt(); ok {
		_spec.SetField(gap.FieldFilledAt, field.TypeTime, value)
	}
	if _u.mutation.FilledAtCleared() {
		_spec.ClearField(gap.FieldFilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gap.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Gap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
