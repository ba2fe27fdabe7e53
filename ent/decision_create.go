// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/decision"
)

// DecisionCreate is the builder for creating a Decision entity.
type DecisionCreate struct {
	config
	mutation *DecisionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *DecisionCreate) SetTenantID(v string) *DecisionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *DecisionCreate) SetAgentName(v string) *DecisionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *DecisionCreate) SetKind(v decision.Kind) *DecisionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAutonomy sets the "autonomy" field.
func (_c *DecisionCreate) SetAutonomy(v decision.Autonomy) *DecisionCreate {
	_c.mutation.SetAutonomy(v)
	return _c
}

// SetTriggerID sets the "trigger_id" field.
func (_c *DecisionCreate) SetTriggerID(v string) *DecisionCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetTriggerKind sets the "trigger_kind" field.
func (_c *DecisionCreate) SetTriggerKind(v string) *DecisionCreate {
	_c.mutation.SetTriggerKind(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *DecisionCreate) SetCustomerID(v string) *DecisionCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableCustomerID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetCustomerID(*v)
	}
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *DecisionCreate) SetStaffID(v string) *DecisionCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableStaffID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetStaffID(*v)
	}
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *DecisionCreate) SetServiceID(v string) *DecisionCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableServiceID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetSlotRef sets the "slot_ref" field.
func (_c *DecisionCreate) SetSlotRef(v string) *DecisionCreate {
	_c.mutation.SetSlotRef(v)
	return _c
}

// SetNillableSlotRef sets the "slot_ref" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableSlotRef(v *string) *DecisionCreate {
	if v != nil {
		_c.SetSlotRef(*v)
	}
	return _c
}

// SetActionSummary sets the "action_summary" field.
func (_c *DecisionCreate) SetActionSummary(v string) *DecisionCreate {
	_c.mutation.SetActionSummary(v)
	return _c
}

// SetActionDetail sets the "action_detail" field.
func (_c *DecisionCreate) SetActionDetail(v map[string]interface{}) *DecisionCreate {
	_c.mutation.SetActionDetail(v)
	return _c
}

// SetRevenuePotential sets the "revenue_potential" field.
func (_c *DecisionCreate) SetRevenuePotential(v int64) *DecisionCreate {
	_c.mutation.SetRevenuePotential(v)
	return _c
}

// SetNillableRevenuePotential sets the "revenue_potential" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableRevenuePotential(v *int64) *DecisionCreate {
	if v != nil {
		_c.SetRevenuePotential(*v)
	}
	return _c
}

// SetRevenueActual sets the "revenue_actual" field.
func (_c *DecisionCreate) SetRevenueActual(v int64) *DecisionCreate {
	_c.mutation.SetRevenueActual(v)
	return _c
}

// SetNillableRevenueActual sets the "revenue_actual" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableRevenueActual(v *int64) *DecisionCreate {
	if v != nil {
		_c.SetRevenueActual(*v)
	}
	return _c
}

// SetApprovalRequired sets the "approval_required" field.
func (_c *DecisionCreate) SetApprovalRequired(v bool) *DecisionCreate {
	_c.mutation.SetApprovalRequired(v)
	return _c
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableApprovalRequired(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetApprovalRequired(*v)
	}
	return _c
}

// SetApprovalStatus sets the "approval_status" field.
func (_c *DecisionCreate) SetApprovalStatus(v decision.ApprovalStatus) *DecisionCreate {
	_c.mutation.SetApprovalStatus(v)
	return _c
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableApprovalStatus(v *decision.ApprovalStatus) *DecisionCreate {
	if v != nil {
		_c.SetApprovalStatus(*v)
	}
	return _c
}

// SetApprovalApprover sets the "approval_approver" field.
func (_c *DecisionCreate) SetApprovalApprover(v string) *DecisionCreate {
	_c.mutation.SetApprovalApprover(v)
	return _c
}

// SetNillableApprovalApprover sets the "approval_approver" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableApprovalApprover(v *string) *DecisionCreate {
	if v != nil {
		_c.SetApprovalApprover(*v)
	}
	return _c
}

// SetApprovalDecidedAt sets the "approval_decided_at" field.
func (_c *DecisionCreate) SetApprovalDecidedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetApprovalDecidedAt(v)
	return _c
}

// SetNillableApprovalDecidedAt sets the "approval_decided_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableApprovalDecidedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetApprovalDecidedAt(*v)
	}
	return _c
}

// SetOutcomeStatus sets the "outcome_status" field.
func (_c *DecisionCreate) SetOutcomeStatus(v decision.OutcomeStatus) *DecisionCreate {
	_c.mutation.SetOutcomeStatus(v)
	return _c
}

// SetNillableOutcomeStatus sets the "outcome_status" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableOutcomeStatus(v *decision.OutcomeStatus) *DecisionCreate {
	if v != nil {
		_c.SetOutcomeStatus(*v)
	}
	return _c
}

// SetOutcomeResult sets the "outcome_result" field.
func (_c *DecisionCreate) SetOutcomeResult(v string) *DecisionCreate {
	_c.mutation.SetOutcomeResult(v)
	return _c
}

// SetNillableOutcomeResult sets the "outcome_result" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableOutcomeResult(v *string) *DecisionCreate {
	if v != nil {
		_c.SetOutcomeResult(*v)
	}
	return _c
}

// SetOutcomeBookingID sets the "outcome_booking_id" field.
func (_c *DecisionCreate) SetOutcomeBookingID(v string) *DecisionCreate {
	_c.mutation.SetOutcomeBookingID(v)
	return _c
}

// SetNillableOutcomeBookingID sets the "outcome_booking_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableOutcomeBookingID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetOutcomeBookingID(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DecisionCreate) SetCompletedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableCompletedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DecisionCreate) SetCreatedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableCreatedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DecisionCreate) SetUpdatedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableUpdatedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *DecisionCreate) SetExpiresAt(v time.Time) *DecisionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionCreate) SetID(v string) *DecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DecisionMutation object of the builder.
func (_c *DecisionCreate) Mutation() *DecisionMutation {
	return _c.mutation
}

// Save creates the Decision in the database.
func (_c *DecisionCreate) Save(ctx context.Context) (*Decision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionCreate) SaveX(ctx context.Context) *Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionCreate) defaults() {
	if _, ok := _c.mutation.RevenuePotential(); !ok {
		v := decision.DefaultRevenuePotential
		_c.mutation.SetRevenuePotential(v)
	}
	if _, ok := _c.mutation.ApprovalRequired(); !ok {
		v := decision.DefaultApprovalRequired
		_c.mutation.SetApprovalRequired(v)
	}
	if _, ok := _c.mutation.ApprovalStatus(); !ok {
		v := decision.DefaultApprovalStatus
		_c.mutation.SetApprovalStatus(v)
	}
	if _, ok := _c.mutation.OutcomeStatus(); !ok {
		v := decision.DefaultOutcomeStatus
		_c.mutation.SetOutcomeStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := decision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := decision.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Decision.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := decision.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Decision.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Decision.agent_name"`)}
	}
	if v, ok := _c.mutation.AgentName(); ok {
		if err := decision.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Decision.agent_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Decision.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := decision.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Decision.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Autonomy(); !ok {
		return &ValidationError{Name: "autonomy", err: errors.New(`ent: missing required field "Decision.autonomy"`)}
	}
	if v, ok := _c.mutation.Autonomy(); ok {
		if err := decision.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Decision.autonomy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "Decision.trigger_id"`)}
	}
	if _, ok := _c.mutation.TriggerKind(); !ok {
		return &ValidationError{Name: "trigger_kind", err: errors.New(`ent: missing required field "Decision.trigger_kind"`)}
	}
	if _, ok := _c.mutation.ActionSummary(); !ok {
		return &ValidationError{Name: "action_summary", err: errors.New(`ent: missing required field "Decision.action_summary"`)}
	}
	if v, ok := _c.mutation.ActionSummary(); ok {
		if err := decision.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Decision.action_summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RevenuePotential(); !ok {
		return &ValidationError{Name: "revenue_potential", err: errors.New(`ent: missing required field "Decision.revenue_potential"`)}
	}
	if _, ok := _c.mutation.ApprovalRequired(); !ok {
		return &ValidationError{Name: "approval_required", err: errors.New(`ent: missing required field "Decision.approval_required"`)}
	}
	if _, ok := _c.mutation.ApprovalStatus(); !ok {
		return &ValidationError{Name: "approval_status", err: errors.New(`ent: missing required field "Decision.approval_status"`)}
	}
	if v, ok := _c.mutation.ApprovalStatus(); ok {
		if err := decision.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Decision.approval_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutcomeStatus(); !ok {
		return &ValidationError{Name: "outcome_status", err: errors.New(`ent: missing required field "Decision.outcome_status"`)}
	}
	if v, ok := _c.mutation.OutcomeStatus(); ok {
		if err := decision.OutcomeStatusValidator(v); err != nil {
			return &ValidationError{Name: "outcome_status", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Decision.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Decision.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Decision.expires_at"`)}
	}
	return nil
}

func (_c *DecisionCreate) sqlSave(ctx context.Context) (*Decision, error) {
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
			return nil, fmt.Errorf("unexpected Decision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionCreate) createSpec() (*Decision, *sqlgraph.CreateSpec) {
	var (
		_node = &Decision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decision.Table, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(decision.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(decision.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(decision.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Autonomy(); ok {
		_spec.SetField(decision.FieldAutonomy, field.TypeEnum, value)
		_node.Autonomy = value
	}
	if value, ok := _c.mutation.TriggerID(); ok {
		_spec.SetField(decision.FieldTriggerID, field.TypeString, value)
		_node.TriggerID = value
	}
	if value, ok := _c.mutation.TriggerKind(); ok {
		_spec.SetField(decision.FieldTriggerKind, field.TypeString, value)
		_node.TriggerKind = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(decision.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(decision.FieldStaffID, field.TypeString, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(decision.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.SlotRef(); ok {
		_spec.SetField(decision.FieldSlotRef, field.TypeString, value)
		_node.SlotRef = value
	}
	if value, ok := _c.mutation.ActionSummary(); ok {
		_spec.SetField(decision.FieldActionSummary, field.TypeString, value)
		_node.ActionSummary = value
	}
	if value, ok := _c.mutation.ActionDetail(); ok {
		_spec.SetField(decision.FieldActionDetail, field.TypeJSON, value)
		_node.ActionDetail = value
	}
	if value, ok := _c.mutation.RevenuePotential(); ok {
		_spec.SetField(decision.FieldRevenuePotential, field.TypeInt64, value)
		_node.RevenuePotential = value
	}
	if value, ok := _c.mutation.RevenueActual(); ok {
		_spec.SetField(decision.FieldRevenueActual, field.TypeInt64, value)
		_node.RevenueActual = &value
	}
	if value, ok := _c.mutation.ApprovalRequired(); ok {
		_spec.SetField(decision.FieldApprovalRequired, field.TypeBool, value)
		_node.ApprovalRequired = value
	}
	if value, ok := _c.mutation.ApprovalStatus(); ok {
		_spec.SetField(decision.FieldApprovalStatus, field.TypeEnum, value)
		_node.ApprovalStatus = value
	}
	if value, ok := _c.mutation.ApprovalApprover(); ok {
		_spec.SetField(decision.FieldApprovalApprover, field.TypeString, value)
		_node.ApprovalApprover = &value
	}
	if value, ok := _c.mutation.ApprovalDecidedAt(); ok {
		_spec.SetField(decision.FieldApprovalDecidedAt, field.TypeTime, value)
		_node.ApprovalDecidedAt = &value
	}
	if value, ok := _c.mutation.OutcomeStatus(); ok {
		_spec.SetField(decision.FieldOutcomeStatus, field.TypeEnum, value)
		_node.OutcomeStatus = value
	}
	if value, ok := _c.mutation.OutcomeResult(); ok {
		_spec.SetField(decision.FieldOutcomeResult, field.TypeString, value)
		_node.OutcomeResult = &value
	}
	if value, ok := _c.mutation.OutcomeBookingID(); ok {
		_spec.SetField(decision.FieldOutcomeBookingID, field.TypeString, value)
		_node.OutcomeBookingID = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(decision.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(decision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(decision.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// DecisionCreateBulk is the builder for creating many Decision entities in bulk.
type DecisionCreateBulk struct {
	config
	err      error
	builders []*DecisionCreate
}

// Save creates the Decision entities in the database.
func (_c *DecisionCreateBulk) Save(ctx context.Context) ([]*Decision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Decision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionMutation)
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
func (_c *DecisionCreateBulk) SaveX(ctx context.Context) []*Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
