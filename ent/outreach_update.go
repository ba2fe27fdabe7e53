// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/ent/predicate"
)

// OutreachUpdate is the builder for updating Outreach entities.
type OutreachUpdate struct {
	config
	hooks    []Hook
	mutation *OutreachMutation
}

// Where appends a list predicates to the OutreachUpdate builder.
func (_u *OutreachUpdate) Where(ps ...predicate.Outreach) *OutreachUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *OutreachUpdate) SetCustomerID(v string) *OutreachUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableCustomerID(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OutreachUpdate) SetCustomerName(v string) *OutreachUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableCustomerName(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OutreachUpdate) ClearCustomerName() *OutreachUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OutreachUpdate) SetCustomerPhone(v string) *OutreachUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableCustomerPhone(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OutreachUpdate) SetType(v string) *OutreachUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableType(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *OutreachUpdate) SetChannel(v outreach.Channel) *OutreachUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableChannel(v *outreach.Channel) *OutreachUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutreachUpdate) SetStatus(v outreach.Status) *OutreachUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableStatus(v *outreach.Status) *OutreachUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OutreachUpdate) SetMessage(v string) *OutreachUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableMessage(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *OutreachUpdate) SetTriggerID(v string) *OutreachUpdate {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableTriggerID(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *OutreachUpdate) SetTriggerKind(v string) *OutreachUpdate {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableTriggerKind(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetOffer sets the "offer" field.
func (_u *OutreachUpdate) SetOffer(v map[string]interface{}) *OutreachUpdate {
	_u.mutation.SetOffer(v)
	return _u
}

// ClearOffer clears the value of the "offer" field.
func (_u *OutreachUpdate) ClearOffer() *OutreachUpdate {
	_u.mutation.ClearOffer()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutreachUpdate) SetAttempts(v int) *OutreachUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableAttempts(v *int) *OutreachUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutreachUpdate) AddAttempts(v int) *OutreachUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *OutreachUpdate) SetLastAttemptAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableLastAttemptAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *OutreachUpdate) ClearLastAttemptAt() *OutreachUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *OutreachUpdate) SetProviderMessageID(v string) *OutreachUpdate {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableProviderMessageID(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *OutreachUpdate) ClearProviderMessageID() *OutreachUpdate {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *OutreachUpdate) SetSentAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableSentAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *OutreachUpdate) ClearSentAt() *OutreachUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *OutreachUpdate) SetDeliveredAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableDeliveredAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *OutreachUpdate) ClearDeliveredAt() *OutreachUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *OutreachUpdate) SetReadAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableReadAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *OutreachUpdate) ClearReadAt() *OutreachUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutreachUpdate) SetLastError(v string) *OutreachUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableLastError(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutreachUpdate) ClearLastError() *OutreachUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetResponseReceived sets the "response_received" field.
func (_u *OutreachUpdate) SetResponseReceived(v bool) *OutreachUpdate {
	_u.mutation.SetResponseReceived(v)
	return _u
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableResponseReceived(v *bool) *OutreachUpdate {
	if v != nil {
		_u.SetResponseReceived(*v)
	}
	return _u
}

// SetResponseAction sets the "response_action" field.
func (_u *OutreachUpdate) SetResponseAction(v string) *OutreachUpdate {
	_u.mutation.SetResponseAction(v)
	return _u
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableResponseAction(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetResponseAction(*v)
	}
	return _u
}

// ClearResponseAction clears the value of the "response_action" field.
func (_u *OutreachUpdate) ClearResponseAction() *OutreachUpdate {
	_u.mutation.ClearResponseAction()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *OutreachUpdate) SetRespondedAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableRespondedAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *OutreachUpdate) ClearRespondedAt() *OutreachUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetResponseBookingID sets the "response_booking_id" field.
func (_u *OutreachUpdate) SetResponseBookingID(v string) *OutreachUpdate {
	_u.mutation.SetResponseBookingID(v)
	return _u
}

// SetNillableResponseBookingID sets the "response_booking_id" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableResponseBookingID(v *string) *OutreachUpdate {
	if v != nil {
		_u.SetResponseBookingID(*v)
	}
	return _u
}

// ClearResponseBookingID clears the value of the "response_booking_id" field.
func (_u *OutreachUpdate) ClearResponseBookingID() *OutreachUpdate {
	_u.mutation.ClearResponseBookingID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutreachUpdate) SetUpdatedAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OutreachUpdate) SetExpiresAt(v time.Time) *OutreachUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OutreachUpdate) SetNillableExpiresAt(v *time.Time) *OutreachUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the OutreachMutation object of the builder.
func (_u *OutreachUpdate) Mutation() *OutreachMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutreachUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutreachUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutreachUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutreachUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutreachUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outreach.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutreachUpdate) check() error {
	if v, ok := _u.mutation.CustomerID(); ok {
		if err := outreach.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerPhone(); ok {
		if err := outreach.CustomerPhoneValidator(v); err != nil {
			return &ValidationError{Name: "customer_phone", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := outreach.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Outreach.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := outreach.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Outreach.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outreach.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Outreach.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := outreach.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Outreach.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerID(); ok {
		if err := outreach.TriggerIDValidator(v); err != nil {
			return &ValidationError{Name: "trigger_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerKind(); ok {
		if err := outreach.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *OutreachUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outreach.Table, outreach.Columns, sqlgraph.NewFieldSpec(outreach.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(outreach.FieldCustomerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(outreach.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(outreach.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(outreach.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(outreach.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(outreach.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outreach.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(outreach.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(outreach.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(outreach.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offer(); ok {
		_spec.SetField(outreach.FieldOffer, field.TypeJSON, value)
	}
	if _u.mutation.OfferCleared() {
		_spec.ClearField(outreach.FieldOffer, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outreach.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outreach.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(outreach.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(outreach.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(outreach.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(outreach.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(outreach.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(outreach.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(outreach.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(outreach.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(outreach.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(outreach.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outreach.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outreach.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseReceived(); ok {
		_spec.SetField(outreach.FieldResponseReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseAction(); ok {
		_spec.SetField(outreach.FieldResponseAction, field.TypeString, value)
	}
	if _u.mutation.ResponseActionCleared() {
		_spec.ClearField(outreach.FieldResponseAction, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(outreach.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(outreach.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseBookingID(); ok {
		_spec.SetField(outreach.FieldResponseBookingID, field.TypeString, value)
	}
	if _u.mutation.ResponseBookingIDCleared() {
		_spec.ClearField(outreach.FieldResponseBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outreach.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(outreach.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outreach.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutreachUpdateOne is the builder for updating a single Outreach entity.
type OutreachUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutreachMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *OutreachUpdateOne) SetCustomerID(v string) *OutreachUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableCustomerID(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OutreachUpdateOne) SetCustomerName(v string) *OutreachUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableCustomerName(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OutreachUpdateOne) ClearCustomerName() *OutreachUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OutreachUpdateOne) SetCustomerPhone(v string) *OutreachUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableCustomerPhone(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OutreachUpdateOne) SetType(v string) *OutreachUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableType(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *OutreachUpdateOne) SetChannel(v outreach.Channel) *OutreachUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableChannel(v *outreach.Channel) *OutreachUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutreachUpdateOne) SetStatus(v outreach.Status) *OutreachUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableStatus(v *outreach.Status) *OutreachUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *OutreachUpdateOne) SetMessage(v string) *OutreachUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableMessage(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *OutreachUpdateOne) SetTriggerID(v string) *OutreachUpdateOne {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableTriggerID(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *OutreachUpdateOne) SetTriggerKind(v string) *OutreachUpdateOne {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableTriggerKind(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetOffer sets the "offer" field.
func (_u *OutreachUpdateOne) SetOffer(v map[string]interface{}) *OutreachUpdateOne {
	_u.mutation.SetOffer(v)
	return _u
}

// ClearOffer clears the value of the "offer" field.
func (_u *OutreachUpdateOne) ClearOffer() *OutreachUpdateOne {
	_u.mutation.ClearOffer()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutreachUpdateOne) SetAttempts(v int) *OutreachUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableAttempts(v *int) *OutreachUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutreachUpdateOne) AddAttempts(v int) *OutreachUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *OutreachUpdateOne) SetLastAttemptAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableLastAttemptAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *OutreachUpdateOne) ClearLastAttemptAt() *OutreachUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *OutreachUpdateOne) SetProviderMessageID(v string) *OutreachUpdateOne {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableProviderMessageID(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *OutreachUpdateOne) ClearProviderMessageID() *OutreachUpdateOne {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *OutreachUpdateOne) SetSentAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableSentAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *OutreachUpdateOne) ClearSentAt() *OutreachUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *OutreachUpdateOne) SetDeliveredAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableDeliveredAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *OutreachUpdateOne) ClearDeliveredAt() *OutreachUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *OutreachUpdateOne) SetReadAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableReadAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *OutreachUpdateOne) ClearReadAt() *OutreachUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutreachUpdateOne) SetLastError(v string) *OutreachUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableLastError(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutreachUpdateOne) ClearLastError() *OutreachUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetResponseReceived sets the "response_received" field.
func (_u *OutreachUpdateOne) SetResponseReceived(v bool) *OutreachUpdateOne {
	_u.mutation.SetResponseReceived(v)
	return _u
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableResponseReceived(v *bool) *OutreachUpdateOne {
	if v != nil {
		_u.SetResponseReceived(*v)
	}
	return _u
}

// SetResponseAction sets the "response_action" field.
func (_u *OutreachUpdateOne) SetResponseAction(v string) *OutreachUpdateOne {
	_u.mutation.SetResponseAction(v)
	return _u
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableResponseAction(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetResponseAction(*v)
	}
	return _u
}

// ClearResponseAction clears the value of the "response_action" field.
func (_u *OutreachUpdateOne) ClearResponseAction() *OutreachUpdateOne {
	_u.mutation.ClearResponseAction()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *OutreachUpdateOne) SetRespondedAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableRespondedAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *OutreachUpdateOne) ClearRespondedAt() *OutreachUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetResponseBookingID sets the "response_booking_id" field.
func (_u *OutreachUpdateOne) SetResponseBookingID(v string) *OutreachUpdateOne {
	_u.mutation.SetResponseBookingID(v)
	return _u
}

// SetNillableResponseBookingID sets the "response_booking_id" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableResponseBookingID(v *string) *OutreachUpdateOne {
	if v != nil {
		_u.SetResponseBookingID(*v)
	}
	return _u
}

// ClearResponseBookingID clears the value of the "response_booking_id" field.
func (_u *OutreachUpdateOne) ClearResponseBookingID() *OutreachUpdateOne {
	_u.mutation.ClearResponseBookingID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutreachUpdateOne) SetUpdatedAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OutreachUpdateOne) SetExpiresAt(v time.Time) *OutreachUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OutreachUpdateOne) SetNillableExpiresAt(v *time.Time) *OutreachUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the OutreachMutation object of the builder.
func (_u *OutreachUpdateOne) Mutation() *OutreachMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutreachUpdate builder.
func (_u *OutreachUpdateOne) Where(ps ...predicate.Outreach) *OutreachUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutreachUpdateOne) Select(field string, fields ...string) *OutreachUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Outreach entity.
func (_u *OutreachUpdateOne) Save(ctx context.Context) (*Outreach, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutreachUpdateOne) SaveX(ctx context.Context) *Outreach {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutreachUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutreachUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutreachUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outreach.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutreachUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerID(); ok {
		if err := outreach.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerPhone(); ok {
		if err := outreach.CustomerPhoneValidator(v); err != nil {
			return &ValidationError{Name: "customer_phone", err: fmt.Errorf(`ent: validator failed for field "Outreach.customer_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := outreach.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Outreach.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := outreach.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Outreach.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outreach.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Outreach.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := outreach.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Outreach.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerID(); ok {
		if err := outreach.TriggerIDValidator(v); err != nil {
			return &ValidationError{Name: "trigger_id", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerKind(); ok {
		if err := outreach.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Outreach.trigger_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *OutreachUpdateOne) sqlSave(ctx context.Context) (_node *Outreach, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outreach.Table, outreach.Columns, sqlgraph.NewFieldSpec(outreach.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Outreach.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outreach.FieldID)
		for _, f := range fields {
			if !outreach.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outreach.FieldID {
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
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(outreach.FieldCustomerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(outreach.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(outreach.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(outreach.FieldCustomerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(outreach.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(outreach.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outreach.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(outreach.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(outreach.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(outreach.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offer(); ok {
		_spec.SetField(outreach.FieldOffer, field.TypeJSON, value)
	}
	if _u.mutation.OfferCleared() {
		_spec.ClearField(outreach.FieldOffer, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outreach.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outreach.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(outreach.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(outreach.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(outreach.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(outreach.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(outreach.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(outreach.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(outreach.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(outreach.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(outreach.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(outreach.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outreach.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outreach.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseReceived(); ok {
		_spec.SetField(outreach.FieldResponseReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseAction(); ok {
		_spec.SetField(outreach.FieldResponseAction, field.TypeString, value)
	}
	if _u.mutation.ResponseActionCleared() {
		_spec.ClearField(outreach.FieldResponseAction, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(outreach.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(outreach.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseBookingID(); ok {
		_spec.SetField(outreach.FieldResponseBookingID, field.TypeString, value)
	}
	if _u.mutation.ResponseBookingIDCleared() {
		_spec.ClearField(outreach.FieldResponseBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outreach.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(outreach.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Outreach{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outreach.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
