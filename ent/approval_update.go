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
	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *ApprovalUpdate) SetAgentName(v string) *ApprovalUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableAgentName(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ApprovalUpdate) SetActionType(v string) *ApprovalUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableActionType(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionSummary sets the "action_summary" field.
func (_u *ApprovalUpdate) SetActionSummary(v string) *ApprovalUpdate {
	_u.mutation.SetActionSummary(v)
	return _u
}

// SetNillableActionSummary sets the "action_summary" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableActionSummary(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetActionSummary(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *ApprovalUpdate) SetActionDetail(v map[string]interface{}) *ApprovalUpdate {
	_u.mutation.SetActionDetail(v)
	return _u
}

// ClearActionDetail clears the value of the "action_detail" field.
func (_u *ApprovalUpdate) ClearActionDetail() *ApprovalUpdate {
	_u.mutation.ClearActionDetail()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ApprovalUpdate) SetPriority(v approval.Priority) *ApprovalUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillablePriority(v *approval.Priority) *ApprovalUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_u *ApprovalUpdate) SetNotificationsSent(v map[string]bool) *ApprovalUpdate {
	_u.mutation.SetNotificationsSent(v)
	return _u
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (_u *ApprovalUpdate) ClearNotificationsSent() *ApprovalUpdate {
	_u.mutation.ClearNotificationsSent()
	return _u
}

// SetResponseAction sets the "response_action" field.
func (_u *ApprovalUpdate) SetResponseAction(v string) *ApprovalUpdate {
	_u.mutation.SetResponseAction(v)
	return _u
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableResponseAction(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetResponseAction(*v)
	}
	return _u
}

// ClearResponseAction clears the value of the "response_action" field.
func (_u *ApprovalUpdate) ClearResponseAction() *ApprovalUpdate {
	_u.mutation.ClearResponseAction()
	return _u
}

// SetResponder sets the "responder" field.
func (_u *ApprovalUpdate) SetResponder(v string) *ApprovalUpdate {
	_u.mutation.SetResponder(v)
	return _u
}

// SetNillableResponder sets the "responder" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableResponder(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetResponder(*v)
	}
	return _u
}

// ClearResponder clears the value of the "responder" field.
func (_u *ApprovalUpdate) ClearResponder() *ApprovalUpdate {
	_u.mutation.ClearResponder()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalUpdate) SetRespondedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRespondedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalUpdate) ClearRespondedAt() *ApprovalUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetResponseNotes sets the "response_notes" field.
func (_u *ApprovalUpdate) SetResponseNotes(v string) *ApprovalUpdate {
	_u.mutation.SetResponseNotes(v)
	return _u
}

// SetNillableResponseNotes sets the "response_notes" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableResponseNotes(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetResponseNotes(*v)
	}
	return _u
}

// ClearResponseNotes clears the value of the "response_notes" field.
func (_u *ApprovalUpdate) ClearResponseNotes() *ApprovalUpdate {
	_u.mutation.ClearResponseNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdate) SetUpdatedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalUpdate) SetExpiresAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.AgentName(); ok {
		if err := approval.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Approval.agent_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := approval.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Approval.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionSummary(); ok {
		if err := approval.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Approval.action_summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := approval.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Approval.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(approval.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionSummary(); ok {
		_spec.SetField(approval.FieldActionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeJSON, value)
	}
	if _u.mutation.ActionDetailCleared() {
		_spec.ClearField(approval.FieldActionDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(approval.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotificationsSent(); ok {
		_spec.SetField(approval.FieldNotificationsSent, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsSentCleared() {
		_spec.ClearField(approval.FieldNotificationsSent, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseAction(); ok {
		_spec.SetField(approval.FieldResponseAction, field.TypeString, value)
	}
	if _u.mutation.ResponseActionCleared() {
		_spec.ClearField(approval.FieldResponseAction, field.TypeString)
	}
	if value, ok := _u.mutation.Responder(); ok {
		_spec.SetField(approval.FieldResponder, field.TypeString, value)
	}
	if _u.mutation.ResponderCleared() {
		_spec.ClearField(approval.FieldResponder, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approval.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approval.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseNotes(); ok {
		_spec.SetField(approval.FieldResponseNotes, field.TypeString, value)
	}
	if _u.mutation.ResponseNotesCleared() {
		_spec.ClearField(approval.FieldResponseNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *ApprovalUpdateOne) SetAgentName(v string) *ApprovalUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableAgentName(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ApprovalUpdateOne) SetActionType(v string) *ApprovalUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableActionType(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionSummary sets the "action_summary" field.
func (_u *ApprovalUpdateOne) SetActionSummary(v string) *ApprovalUpdateOne {
	_u.mutation.SetActionSummary(v)
	return _u
}

// SetNillableActionSummary sets the "action_summary" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableActionSummary(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetActionSummary(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *ApprovalUpdateOne) SetActionDetail(v map[string]interface{}) *ApprovalUpdateOne {
	_u.mutation.SetActionDetail(v)
	return _u
}

// ClearActionDetail clears the value of the "action_detail" field.
func (_u *ApprovalUpdateOne) ClearActionDetail() *ApprovalUpdateOne {
	_u.mutation.ClearActionDetail()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ApprovalUpdateOne) SetPriority(v approval.Priority) *ApprovalUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillablePriority(v *approval.Priority) *ApprovalUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotificationsSent sets the "notifications_sent" field.
func (_u *ApprovalUpdateOne) SetNotificationsSent(v map[string]bool) *ApprovalUpdateOne {
	_u.mutation.SetNotificationsSent(v)
	return _u
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (_u *ApprovalUpdateOne) ClearNotificationsSent() *ApprovalUpdateOne {
	_u.mutation.ClearNotificationsSent()
	return _u
}

// SetResponseAction sets the "response_action" field.
func (_u *ApprovalUpdateOne) SetResponseAction(v string) *ApprovalUpdateOne {
	_u.mutation.SetResponseAction(v)
	return _u
}

// SetNillableResponseAction sets the "response_action" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableResponseAction(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetResponseAction(*v)
	}
	return _u
}

// ClearResponseAction clears the value of the "response_action" field.
func (_u *ApprovalUpdateOne) ClearResponseAction() *ApprovalUpdateOne {
	_u.mutation.ClearResponseAction()
	return _u
}

// SetResponder sets the "responder" field.
func (_u *ApprovalUpdateOne) SetResponder(v string) *ApprovalUpdateOne {
	_u.mutation.SetResponder(v)
	return _u
}

// SetNillableResponder sets the "responder" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableResponder(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetResponder(*v)
	}
	return _u
}

// ClearResponder clears the value of the "responder" field.
func (_u *ApprovalUpdateOne) ClearResponder() *ApprovalUpdateOne {
	_u.mutation.ClearResponder()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalUpdateOne) SetRespondedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRespondedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalUpdateOne) ClearRespondedAt() *ApprovalUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetResponseNotes sets the "response_notes" field.
func (_u *ApprovalUpdateOne) SetResponseNotes(v string) *ApprovalUpdateOne {
	_u.mutation.SetResponseNotes(v)
	return _u
}

// SetNillableResponseNotes sets the "response_notes" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableResponseNotes(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetResponseNotes(*v)
	}
	return _u
}

// ClearResponseNotes clears the value of the "response_notes" field.
func (_u *ApprovalUpdateOne) ClearResponseNotes() *ApprovalUpdateOne {
	_u.mutation.ClearResponseNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalUpdateOne) SetUpdatedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalUpdateOne) SetExpiresAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.AgentName(); ok {
		if err := approval.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Approval.agent_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := approval.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Approval.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionSummary(); ok {
		if err := approval.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Approval.action_summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := approval.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Approval.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(approval.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(approval.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionSummary(); ok {
		_spec.SetField(approval.FieldActionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(approval.FieldActionDetail, field.TypeJSON, value)
	}
	if _u.mutation.ActionDetailCleared() {
		_spec.ClearField(approval.FieldActionDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(approval.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotificationsSent(); ok {
		_spec.SetField(approval.FieldNotificationsSent, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsSentCleared() {
		_spec.ClearField(approval.FieldNotificationsSent, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseAction(); ok {
		_spec.SetField(approval.FieldResponseAction, field.TypeString, value)
	}
	if _u.mutation.ResponseActionCleared() {
		_spec.ClearField(approval.FieldResponseAction, field.TypeString)
	}
	if value, ok := _u.mutation.Responder(); ok {
		_spec.SetField(approval.FieldResponder, field.TypeString, value)
	}
	if _u.mutation.ResponderCleared() {
		_spec.ClearField(approval.FieldResponder, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approval.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approval.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseNotes(); ok {
		_spec.SetField(approval.FieldResponseNotes, field.TypeString, value)
	}
	if _u.mutation.ResponseNotesCleared() {
		_spec.ClearField(approval.FieldResponseNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approval.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
