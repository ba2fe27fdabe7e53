// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/gap"
)

// GapCreate is the builder for creating a Gap entity.
type GapCreate struct {
	config
	mutation *GapMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *GapCreate) SetTenantID(v string) *GapCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *GapCreate) SetStaffID(v string) *GapCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetStaffName sets the "staff_name" field.
func (_c *GapCreate) SetStaffName(v string) *GapCreate {
	_c.mutation.SetStaffName(v)
	return _c
}

// SetNillableStaffName sets the "staff_name" field if the given value is not nil.
func (_c *GapCreate) SetNillableStaffName(v *string) *GapCreate {
	if v != nil {
		_c.SetStaffName(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *GapCreate) SetDate(v string) *GapCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *GapCreate) SetStartTime(v time.Time) *GapCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *GapCreate) SetEndTime(v time.Time) *GapCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *GapCreate) SetDurationMinutes(v int) *GapCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *GapCreate) SetPriority(v gap.Priority) *GapCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GapCreate) SetStatus(v gap.Status) *GapCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GapCreate) SetNillableStatus(v *gap.Status) *GapCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPotentialRevenue sets the "potential_revenue" field.
func (_c *GapCreate) SetPotentialRevenue(v int64) *GapCreate {
	_c.mutation.SetPotentialRevenue(v)
	return _c
}

// SetNillablePotentialRevenue sets the "potential_revenue" field if the given value is not nil.
func (_c *GapCreate) SetNillablePotentialRevenue(v *int64) *GapCreate {
	if v != nil {
		_c.SetPotentialRevenue(*v)
	}
	return _c
}

// SetFittableServiceIds sets the "fittable_service_ids" field.
func (_c *GapCreate) SetFittableServiceIds(v []string) *GapCreate {
	_c.mutation.SetFittableServiceIds(v)
	return _c
}

// SetFillAttempts sets the "fill_attempts" field.
func (_c *GapCreate) SetFillAttempts(v int) *GapCreate {
	_c.mutation.SetFillAttempts(v)
	return _c
}

// SetNillableFillAttempts sets the "fill_attempts" field if the given value is not nil.
func (_c *GapCreate) SetNillableFillAttempts(v *int) *GapCreate {
	if v != nil {
		_c.SetFillAttempts(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *GapCreate) SetLastAttemptAt(v time.Time) *GapCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *GapCreate) SetNillableLastAttemptAt(v *time.Time) *GapCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetFilledByBookingID sets the "filled_by_booking_id" field.
func (_c *GapCreate) SetFilledByBookingID(v string) *GapCreate {
	_c.mutation.SetFilledByBookingID(v)
	return _c
}

// SetNillableFilledByBookingID sets the "filled_by_booking_id" field if the given value is not nil.
func (_c *GapCreate) SetNillableFilledByBookingID(v *string) *GapCreate {
	if v != nil {
		_c.SetFilledByBookingID(*v)
	}
	return _c
}

// SetFilledByCustomerID sets the "filled_by_customer_id" field.
func (_c *GapCreate) SetFilledByCustomerID(v string) *GapCreate {
	_c.mutation.SetFilledByCustomerID(v)
	return _c
}

// SetNillableFilledByCustomerID sets the "filled_by_customer_id" field if the given value is not nil.
func (_c *GapCreate) SetNillableFilledByCustomerID(v *string) *GapCreate {
	if v != nil {
		_c.SetFilledByCustomerID(*v)
	}
	return _c
}

// SetFilledAt sets the "filled_at" field.
func (_c *GapCreate) SetFilledAt(v time.Time) *GapCreate {
	_c.mutation.SetFilledAt(v)
	return _c
}

// SetNillableFilledAt sets the "filled_at" field if the given value is not nil.
func (_c *GapCreate) SetNillableFilledAt(v *time.Time) *GapCreate {
	if v != nil {
		_c.SetFilledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GapCreate) SetCreatedAt(v time.Time) *GapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GapCreate) SetNillableCreatedAt(v *time.Time) *GapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GapCreate) SetUpdatedAt(v time.Time) *GapCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GapCreate) SetNillableUpdatedAt(v *time.Time) *GapCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GapCreate) SetID(v string) *GapCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GapMutation object of the builder.
func (_c *GapCreate) Mutation() *GapMutation {
	return _c.mutation
}

// Save creates the Gap in the database.
func (_c *GapCreate) Save(ctx context.Context) (*Gap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapCreate) SaveX(ctx context.Context) *Gap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := gap.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PotentialRevenue(); !ok {
		v := gap.DefaultPotentialRevenue
		_c.mutation.SetPotentialRevenue(v)
	}
	if _, ok := _c.mutation.FillAttempts(); !ok {
		v := gap.DefaultFillAttempts
		_c.mutation.SetFillAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gap.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Gap.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := gap.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Gap.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StaffID(); !ok {
		return &ValidationError{Name: "staff_id", err: errors.New(`ent: missing required field "Gap.staff_id"`)}
	}
	if v, ok := _c.mutation.StaffID(); ok {
		if err := gap.StaffIDValidator(v); err != nil {
			return &ValidationError{Name: "staff_id", err: fmt.Errorf(`ent: validator failed for field "Gap.staff_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Gap.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := gap.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Gap.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Gap.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Gap.end_time"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Gap.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := gap.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Gap.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Gap.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := gap.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Gap.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Gap.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := gap.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Gap.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PotentialRevenue(); !ok {
		return &ValidationError{Name: "potential_revenue", err: errors.New(`ent: missing required field "Gap.potential_revenue"`)}
	}
	if _, ok := _c.mutation.FillAttempts(); !ok {
		return &ValidationError{Name: "fill_attempts", err: errors.New(`ent: missing required field "Gap.fill_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Gap.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Gap.updated_at"`)}
	}
	return nil
}

func (_c *GapCreate) sqlSave(ctx context.Context) (*Gap, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Gap.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GapCreate) createSpec() (*Gap, *sqlgraph.CreateSpec) {
	var (
		_node = &Gap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gap.Table, sqlgraph.NewFieldSpec(gap.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(gap.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(gap.FieldStaffID, field.TypeString, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.StaffName(); ok {
		_spec.SetField(gap.FieldStaffName, field.TypeString, value)
		_node.StaffName = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(gap.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(gap.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(gap.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(gap.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(gap.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gap.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PotentialRevenue(); ok {
		_spec.SetField(gap.FieldPotentialRevenue, field.TypeInt64, value)
		_node.PotentialRevenue = value
	}
	if value, ok := _c.mutation.FittableServiceIds(); ok {
		_spec.SetField(gap.FieldFittableServiceIds, field.TypeJSON, value)
		_node.FittableServiceIds = value
	}
	if value, ok := _c.mutation.FillAttempts(); ok {
		_spec.SetField(gap.FieldFillAttempts, field.TypeInt, value)
		_node.FillAttempts = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(gap.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.FilledByBookingID(); ok {
		_spec.SetField(gap.FieldFilledByBookingID, field.TypeString, value)
		_node.FilledByBookingID = &value
	}
	if value, ok := _c.mutation.FilledByCustomerID(); ok {
		_spec.SetField(gap.FieldFilledByCustomerID, field.TypeString, value)
		_node.FilledByCustomerID = &value
	}
	if value, ok := _c.mutation.FilledAt(); ok {
		_spec.SetField(gap.FieldFilledAt, field.TypeTime, value)
		_node.FilledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gap.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// GapCreateBulk is the builder for creating many Gap entities in bulk.
type GapCreateBulk struct {
	config
	err      error
	builders []*GapCreate
}

// Save creates the Gap entities in the database.
func (_c *GapCreateBulk) Save(ctx context.Context) ([]*Gap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Gap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GapCreateBulk) SaveX(ctx context.Context) []*Gap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
