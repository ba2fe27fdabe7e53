// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ApprovalCreate) SetTenantID(v string) *ApprovalCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDecisionID sets the "decision_id" field.
func (_c *ApprovalCreate) SetDecisionID(v string) *ApprovalCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *ApprovalCreate) SetAgentName(v string) *ApprovalCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ApprovalCreate) SetActionType(v string) *ApprovalCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetActionSummary sets the "action_summary" field.
func (_c *ApprovalCreate) SetActionSummary(v string) *ApprovalCreate {
	_c.mutation.SetActionSummary(v)
	return _c
}

// SetActionDetail sets the "action_detail" field.
func (_c *ApprovalCreate) SetActionDetail(v map[string]interface{}) *ApprovalCreate {
	_c.mutation.SetActionDetail(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ApprovalCreate) SetPriority(v approval.Priority) *ApprovalCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillablePriority(v *approval.Priority) *ApprovalCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_c *ApprovalCreate) SetNotificationsSent(v map[string]bool) *ApprovalCreate {
	_c.mutation.SetNotificationsSent(v)
	return _c
}

// SetResponseAction sets the "response_action" field.
func (_c *ApprovalCreate) SetResponseAction(v string) *ApprovalCreate {
	_c.mutation.SetResponseAction(v)
	return _c
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableResponseAction(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetResponseAction(*v)
	}
	return _c
}

// SetResponder sets the "responder" field.
func (_c *ApprovalCreate) SetResponder(v string) *ApprovalCreate {
	_c.mutation.SetResponder(v)
	return _c
}

// SetNillableResponder sets the "responder" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableResponder(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetResponder(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *ApprovalCreate) SetRespondedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableRespondedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetResponseNotes sets the "response_notes" field.
func (_c *ApprovalCreate) SetResponseNotes(v string) *ApprovalCreate {
	_c.mutation.SetResponseNotes(v)
	return _c
}

// SetNillableResponseNotes sets the "response_notes" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableResponseNotes(v *string) *ApprovalCreate {
	if v != nil {
		_c.SetResponseNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalCreate) SetCreatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableCreatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalCreate) SetUpdatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalCreate) SetExpiresAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := approval.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approval.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Approval.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := approval.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Approval.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "Approval.decision_id"`)}
	}
	if v, ok := _c.mutation.DecisionID(); ok {
		if err := approval.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "Approval.decision_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Approval.agent_name"`)}
	}
	if v, ok := _c.mutation.AgentName(); ok {
		if err := approval.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Approval.agent_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "Approval.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := approval.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Approval.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionSummary(); !ok {
		return &ValidationError{Name: "action_summary", err: errors.New(`ent: missing required field "Approval.action_summary"`)}
	}
	if v, ok := _c.mutation.ActionSummary(); ok {
		if err := approval.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Approval.action_summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Approval.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := approval.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Approval.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Approval.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Approval.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Approval.expires_at"`)}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
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
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(approval.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(approval.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(approval.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ActionSummary(); ok {
		_spec.SetField(approval.FieldActionSummary, field.TypeString, value)
		_node.ActionSummary = value
	}
	if value, ok := _c.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeJSON, value)
		_node.ActionDetail = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(approval.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NotificationsSent(); ok {
		_spec.SetField(approval.FieldNotificationsSent, field.TypeJSON, value)
		_node.NotificationsSent = value
	}
	if value, ok := _c.mutation.ResponseAction(); ok {
		_spec.SetField(approval.FieldResponseAction, field.TypeString, value)
		_node.ResponseAction = value
	}
	if value, ok := _c.mutation.Responder(); ok {
		_spec.SetField(approval.FieldResponder, field.TypeString, value)
		_node.Responder = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(approval.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = value
	}
	if value, ok := _c.mutation.ResponseNotes(); ok {
		_spec.SetField(approval.FieldResponseNotes, field.TypeString, value)
		_node.ResponseNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
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
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
