// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/outreach"
)

// OutreachCreate is the builder for creating a Outreach entity.
type OutreachCreate struct {
	config
	mutation *OutreachMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *OutreachCreate) SetTenantID(v string) *OutreachCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *OutreachCreate) SetCustomerID(v string) *OutreachCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OutreachCreate) SetCustomerName(v string) *OutreachCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableCustomerName(v *string) *OutreachCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *OutreachCreate) SetCustomerPhone(v string) *OutreachCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetType sets the "type" field.
func (_c *OutreachCreate) SetType(v string) *OutreachCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *OutreachCreate) SetChannel(v outreach.Channel) *OutreachCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableChannel(v *outreach.Channel) *OutreachCreate {
	if v != nil {
		_c.SetChannel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutreachCreate) SetStatus(v outreach.Status) *OutreachCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableStatus(v *outreach.Status) *OutreachCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *OutreachCreate) SetMessage(v string) *OutreachCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetTriggerID sets the "trigger_id" field.
func (_c *OutreachCreate) SetTriggerID(v string) *OutreachCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetTriggerKind sets the "trigger_kind" field.
func (_c *OutreachCreate) SetTriggerKind(v string) *OutreachCreate {
	_c.mutation.SetTriggerKind(v)
	return _c
}

// SetOffer sets the "offer" field.
func (_c *OutreachCreate) SetOffer(v map[string]interface{}) *OutreachCreate {
	_c.mutation.SetOffer(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OutreachCreate) SetAttempts(v int) *OutreachCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableAttempts(v *int) *OutreachCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *OutreachCreate) SetLastAttemptAt(v time.Time) *OutreachCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableLastAttemptAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_c *OutreachCreate) SetProviderMessageID(v string) *OutreachCreate {
	_c.mutation.SetProviderMessageID(v)
	return _c
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableProviderMessageID(v *string) *OutreachCreate {
	if v != nil {
		_c.SetProviderMessageID(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *OutreachCreate) SetSentAt(v time.Time) *OutreachCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableSentAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *OutreachCreate) SetDeliveredAt(v time.Time) *OutreachCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableDeliveredAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *OutreachCreate) SetReadAt(v time.Time) *OutreachCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableReadAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OutreachCreate) SetLastError(v string) *OutreachCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableLastError(v *string) *OutreachCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetResponseReceived sets the "response_received" field.
func (_c *OutreachCreate) SetResponseReceived(v bool) *OutreachCreate {
	_c.mutation.SetResponseReceived(v)
	return _c
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableResponseReceived(v *bool) *OutreachCreate {
	if v != nil {
		_c.SetResponseReceived(*v)
	}
	return _c
}

// SetResponseAction sets the "response_action" field.
func (_c *OutreachCreate) SetResponseAction(v string) *OutreachCreate {
	_c.mutation.SetResponseAction(v)
	return _c
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableResponseAction(v *string) *OutreachCreate {
	if v != nil {
		_c.SetResponseAction(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *OutreachCreate) SetRespondedAt(v time.Time) *OutreachCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableRespondedAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetResponseBookingID sets the "response_booking_id" field.
func (_c *OutreachCreate) SetResponseBookingID(v string) *OutreachCreate {
	_c.mutation.SetResponseBookingID(v)
	return _c
}

// SetNillableResponseBookingID sets the "response_booking_id" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableResponseBookingID(v *string) *OutreachCreate {
	if v != nil {
		_c.SetResponseBookingID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutreachCreate) SetCreatedAt(v time.Time) *OutreachCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableCreatedAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OutreachCreate) SetUpdatedAt(v time.Time) *OutreachCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OutreachCreate) SetNillableUpdatedAt(v *time.Time) *OutreachCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *OutreachCreate) SetExpiresAt(v time.Time) *OutreachCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OutreachCreate) SetID(v string) *OutreachCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OutreachMutation object of the builder.
func (_c *OutreachCreate) Mutation() *OutreachMutation {
	return _c.mutation
}

// Save creates the Outreach in the database.
func (_c *OutreachCreate) Save(ctx context.Context) (*Outreach, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutreachCreate) SaveX(ctx context.Context) *Outreach {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutreachCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutreachCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutreachCreate) defaults() {
	if _, ok := _c.mutation.Channel(); !ok {
		v := outreach.DefaultChannel
		_c.mutation.SetChannel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := outreach.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := outreach.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.ResponseReceived(); !ok {
		v := outreach.DefaultResponseReceived
		_c.mutation.SetResponseReceived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outreach.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := outreach.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutreachCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Outreach.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := outreach.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "Outreach.customer_id"`)}
	}
	if v, ok := _c.mutation.CustomerID(); ok {
		if err := outreach.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerPhone(); !ok {
		return &ValidationError{Name: "customer_phone", err: errors.New(`ent: missing required field "Outreach.customer_phone"`)}
	}
	if v, ok := _c.mutation.CustomerPhone(); ok {
		if err := outreach.CustomerPhoneValidator(v); err != nil {
			return &ValidationError{Name: "customer_phone", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Outreach.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := outreach.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Outreach.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "Outreach.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := outreach.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Outreach.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Outreach.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outreach.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Outreach.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Outreach.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := outreach.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Outreach.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "Outreach.trigger_id"`)}
	}
	if v, ok := _c.mutation.TriggerID(); ok {
		if err := outreach.TriggerIDValidator(v); err != nil {
			return &ValidationError{Name: "trigger_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerKind(); !ok {
		return &ValidationError{Name: "trigger_kind", err: errors.New(`ent: missing required field "Outreach.trigger_kind"`)}
	}
	if v, ok := _c.mutation.TriggerKind(); ok {
		if err := outreach.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Outreach.attempts"`)}
	}
	if _, ok := _c.mutation.ResponseReceived(); !ok {
		return &ValidationError{Name: "response_received", err: errors.New(`ent: missing required field "Outreach.response_received"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Outreach.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Outreach.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Outreach.expires_at"`)}
	}
	return nil
}

func (_c *OutreachCreate) sqlSave(ctx context.Context) (*Outreach, error) {
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
			return nil, fmt.Errorf("unexpected Outreach.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutreachCreate) createSpec() (*Outreach, *sqlgraph.CreateSpec) {
	var (
		_node = &Outreach{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outreach.Table, sqlgraph.NewFieldSpec(outreach.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(outreach.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(outreach.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(outreach.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(outreach.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(outreach.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(outreach.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outreach.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(outreach.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.TriggerID(); ok {
		_spec.SetField(outreach.FieldTriggerID, field.TypeString, value)
		_node.TriggerID = value
	}
	if value, ok := _c.mutation.TriggerKind(); ok {
		_spec.SetField(outreach.FieldTriggerKind, field.TypeString, value)
		_node.TriggerKind = value
	}
	if value, ok := _c.mutation.Offer(); ok {
		_spec.SetField(outreach.FieldOffer, field.TypeJSON, value)
		_node.Offer = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(outreach.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(outreach.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.ProviderMessageID(); ok {
		_spec.SetField(outreach.FieldProviderMessageID, field.TypeString, value)
		_node.ProviderMessageID = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(outreach.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(outreach.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(outreach.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(outreach.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ResponseReceived(); ok {
		_spec.SetField(outreach.FieldResponseReceived, field.TypeBool, value)
		_node.ResponseReceived = value
	}
	if value, ok := _c.mutation.ResponseAction(); ok {
		_spec.SetField(outreach.FieldResponseAction, field.TypeString, value)
		_node.ResponseAction = &value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(outreach.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if value, ok := _c.mutation.ResponseBookingID(); ok {
		_spec.SetField(outreach.FieldResponseBookingID, field.TypeString, value)
		_node.ResponseBookingID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outreach.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(outreach.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(outreach.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OutreachCreateBulk is the builder for creating many Outreach entities in bulk.
type OutreachCreateBulk struct {
	config
	err      error
	builders []*OutreachCreate
}

// Save creates the Outreach entities in the database.
func (_c *OutreachCreateBulk) Save(ctx context.Context) ([]*Outreach, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Outreach, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutreachMutation)
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
func (_c *OutreachCreateBulk) SaveX(ctx context.Context) []*Outreach {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutreachCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutreachCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
