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
	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/ent/predicate"
)

// DecisionUpdate is the builder for updating Decision entities.
type DecisionUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionMutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdate) Where(ps ...predicate.Decision) *DecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *DecisionUpdate) SetAgentName(v string) *DecisionUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableAgentName(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DecisionUpdate) SetKind(v decision.Kind) *DecisionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableKind(v *decision.Kind) *DecisionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAutonomy sets the "autonomy" field.
func (_u *DecisionUpdate) SetAutonomy(v decision.Autonomy) *DecisionUpdate {
	_u.mutation.SetAutonomy(v)
	return _u
}

// SetNillableAutonomy sets the "autonomy" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableAutonomy(v *decision.Autonomy) *DecisionUpdate {
	if v != nil {
		_u.SetAutonomy(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *DecisionUpdate) SetTriggerID(v string) *DecisionUpdate {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableTriggerID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *DecisionUpdate) SetTriggerKind(v string) *DecisionUpdate {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableTriggerKind(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *DecisionUpdate) SetCustomerID(v string) *DecisionUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableCustomerID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *DecisionUpdate) ClearCustomerID() *DecisionUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *DecisionUpdate) SetStaffID(v string) *DecisionUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableStaffID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// ClearStaffID clears the value of the "staff_id" field.
func (_u *DecisionUpdate) ClearStaffID() *DecisionUpdate {
	_u.mutation.ClearStaffID()
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *DecisionUpdate) SetServiceID(v string) *DecisionUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableServiceID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *DecisionUpdate) ClearServiceID() *DecisionUpdate {
	_u.mutation.ClearServiceID()
	return _u
}

// SetSlotRef sets the "slot_ref" field.
func (_u *DecisionUpdate) SetSlotRef(v string) *DecisionUpdate {
	_u.mutation.SetSlotRef(v)
	return _u
}

// SetNillableSlotRef sets the "slot_ref" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableSlotRef(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetSlotRef(*v)
	}
	return _u
}

// ClearSlotRef clears the value of the "slot_ref" field.
func (_u *DecisionUpdate) ClearSlotRef() *DecisionUpdate {
	_u.mutation.ClearSlotRef()
	return _u
}

// SetActionSummary sets the "action_summary" field.
func (_u *DecisionUpdate) SetActionSummary(v string) *DecisionUpdate {
	_u.mutation.SetActionSummary(v)
	return _u
}

// SetNillableActionSummary sets the "action_summary" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableActionSummary(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetActionSummary(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *DecisionUpdate) SetActionDetail(v map[string]interface{}) *DecisionUpdate {
	_u.mutation.SetActionDetail(v)
	return _u
}

// ClearActionDetail clears the value of the "action_detail" field.
func (_u *DecisionUpdate) ClearActionDetail() *DecisionUpdate {
	_u.mutation.ClearActionDetail()
	return _u
}

// SetRevenuePotential sets the "revenue_potential" field.
func (_u *DecisionUpdate) SetRevenuePotential(v int64) *DecisionUpdate {
	_u.mutation.ResetRevenuePotential()
	_u.mutation.SetRevenuePotential(v)
	return _u
}

// SetNillableRevenuePotential sets the "revenue_potential" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableRevenuePotential(v *int64) *DecisionUpdate {
	if v != nil {
		_u.SetRevenuePotential(*v)
	}
	return _u
}

// AddRevenuePotential adds value to the "revenue_potential" field.
func (_u *DecisionUpdate) AddRevenuePotential(v int64) *DecisionUpdate {
	_u.mutation.AddRevenuePotential(v)
	return _u
}

// SetRevenueActual sets the "revenue_actual" field.
func (_u *DecisionUpdate) SetRevenueActual(v int64) *DecisionUpdate {
	_u.mutation.ResetRevenueActual()
	_u.mutation.SetRevenueActual(v)
	return _u
}

// SetNillableRevenueActual sets the "revenue_actual" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableRevenueActual(v *int64) *DecisionUpdate {
	if v != nil {
		_u.SetRevenueActual(*v)
	}
	return _u
}

// AddRevenueActual adds value to the "revenue_actual" field.
func (_u *DecisionUpdate) AddRevenueActual(v int64) *DecisionUpdate {
	_u.mutation.AddRevenueActual(v)
	return _u
}

// ClearRevenueActual clears the value of the "revenue_actual" field.
func (_u *DecisionUpdate) ClearRevenueActual() *DecisionUpdate {
	_u.mutation.ClearRevenueActual()
	return _u
}

// SetApprovalRequired sets the "approval_required" field.
func (_u *DecisionUpdate) SetApprovalRequired(v bool) *DecisionUpdate {
	_u.mutation.SetApprovalRequired(v)
	return _u
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableApprovalRequired(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetApprovalRequired(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *DecisionUpdate) SetApprovalStatus(v decision.ApprovalStatus) *DecisionUpdate {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableApprovalStatus(v *decision.ApprovalStatus) *DecisionUpdate {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetApprovalApprover sets the "approval_approver" field.
func (_u *DecisionUpdate) SetApprovalApprover(v string) *DecisionUpdate {
	_u.mutation.SetApprovalApprover(v)
	return _u
}

// SetNillableApprovalApprover sets the "approval_approver" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableApprovalApprover(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetApprovalApprover(*v)
	}
	return _u
}

// ClearApprovalApprover clears the value of the "approval_approver" field.
func (_u *DecisionUpdate) ClearApprovalApprover() *DecisionUpdate {
	_u.mutation.ClearApprovalApprover()
	return _u
}

// SetApprovalDecidedAt sets the "approval_decided_at" field.
func (_u *DecisionUpdate) SetApprovalDecidedAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetApprovalDecidedAt(v)
	return _u
}

// SetNillableApprovalDecidedAt sets the "approval_decided_at" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableApprovalDecidedAt(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetApprovalDecidedAt(*v)
	}
	return _u
}

// ClearApprovalDecidedAt clears the value of the "approval_decided_at" field.
func (_u *DecisionUpdate) ClearApprovalDecidedAt() *DecisionUpdate {
	_u.mutation.ClearApprovalDecidedAt()
	return _u
}

// SetOutcomeStatus sets the "outcome_status" field.
func (_u *DecisionUpdate) SetOutcomeStatus(v decision.OutcomeStatus) *DecisionUpdate {
	_u.mutation.SetOutcomeStatus(v)
	return _u
}

// SetNillableOutcomeStatus sets the "outcome_status" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOutcomeStatus(v *decision.OutcomeStatus) *DecisionUpdate {
	if v != nil {
		_u.SetOutcomeStatus(*v)
	}
	return _u
}

// SetOutcomeResult sets the "outcome_result" field.
func (_u *DecisionUpdate) SetOutcomeResult(v string) *DecisionUpdate {
	_u.mutation.SetOutcomeResult(v)
	return _u
}

// SetNillableOutcomeResult sets the "outcome_result" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOutcomeResult(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetOutcomeResult(*v)
	}
	return _u
}

// ClearOutcomeResult clears the value of the "outcome_result" field.
func (_u *DecisionUpdate) ClearOutcomeResult() *DecisionUpdate {
	_u.mutation.ClearOutcomeResult()
	return _u
}

// SetOutcomeBookingID sets the "outcome_booking_id" field.
func (_u *DecisionUpdate) SetOutcomeBookingID(v string) *DecisionUpdate {
	_u.mutation.SetOutcomeBookingID(v)
	return _u
}

// SetNillableOutcomeBookingID sets the "outcome_booking_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOutcomeBookingID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetOutcomeBookingID(*v)
	}
	return _u
}

// ClearOutcomeBookingID clears the value of the "outcome_booking_id" field.
func (_u *DecisionUpdate) ClearOutcomeBookingID() *DecisionUpdate {
	_u.mutation.ClearOutcomeBookingID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DecisionUpdate) SetCompletedAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableCompletedAt(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DecisionUpdate) ClearCompletedAt() *DecisionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DecisionUpdate) SetUpdatedAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DecisionUpdate) SetExpiresAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableExpiresAt(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdate) Mutation() *DecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DecisionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := decision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdate) check() error {
	if v, ok := _u.mutation.AgentName(); ok {
		if err := decision.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Decision.agent_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := decision.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Decision.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Autonomy(); ok {
		if err := decision.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Decision.autonomy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionSummary(); ok {
		if err := decision.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Decision.action_summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := decision.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Decision.approval_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutcomeStatus(); ok {
		if err := decision.OutcomeStatusValidator(v); err != nil {
			return &ValidationError{Name: "outcome_status", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(decision.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(decision.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Autonomy(); ok {
		_spec.SetField(decision.FieldAutonomy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(decision.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(decision.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(decision.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(decision.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(decision.FieldStaffID, field.TypeString, value)
	}
	if _u.mutation.StaffIDCleared() {
		_spec.ClearField(decision.FieldStaffID, field.TypeString)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(decision.FieldServiceID, field.TypeString, value)
	}
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(decision.FieldServiceID, field.TypeString)
	}
	if value, ok := _u.mutation.SlotRef(); ok {
		_spec.SetField(decision.FieldSlotRef, field.TypeString, value)
	}
	if _u.mutation.SlotRefCleared() {
		_spec.ClearField(decision.FieldSlotRef, field.TypeString)
	}
	if value, ok := _u.mutation.ActionSummary(); ok {
		_spec.SetField(decision.FieldActionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(decision.FieldActionDetail, field.TypeJSON, value)
	}
	if _u.mutation.ActionDetailCleared() {
		_spec.ClearField(decision.FieldActionDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevenuePotential(); ok {
		_spec.SetField(decision.FieldRevenuePotential, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenuePotential(); ok {
		_spec.AddField(decision.FieldRevenuePotential, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RevenueActual(); ok {
		_spec.SetField(decision.FieldRevenueActual, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenueActual(); ok {
		_spec.AddField(decision.FieldRevenueActual, field.TypeInt64, value)
	}
	if _u.mutation.RevenueActualCleared() {
		_spec.ClearField(decision.FieldRevenueActual, field.TypeInt64)
	}
	if value, ok := _u.mutation.ApprovalRequired(); ok {
		_spec.SetField(decision.FieldApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(decision.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovalApprover(); ok {
		_spec.SetField(decision.FieldApprovalApprover, field.TypeString, value)
	}
	if _u.mutation.ApprovalApproverCleared() {
		_spec.ClearField(decision.FieldApprovalApprover, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalDecidedAt(); ok {
		_spec.SetField(decision.FieldApprovalDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovalDecidedAtCleared() {
		_spec.ClearField(decision.FieldApprovalDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutcomeStatus(); ok {
		_spec.SetField(decision.FieldOutcomeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutcomeResult(); ok {
		_spec.SetField(decision.FieldOutcomeResult, field.TypeString, value)
	}
	if _u.mutation.OutcomeResultCleared() {
		_spec.ClearField(decision.FieldOutcomeResult, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeBookingID(); ok {
		_spec.SetField(decision.FieldOutcomeBookingID, field.TypeString, value)
	}
	if _u.mutation.OutcomeBookingIDCleared() {
		_spec.ClearField(decision.FieldOutcomeBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(decision.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(decision.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(decision.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionUpdateOne is the builder for updating a single Decision entity.
type DecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *DecisionUpdateOne) SetAgentName(v string) *DecisionUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableAgentName(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DecisionUpdateOne) SetKind(v decision.Kind) *DecisionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableKind(v *decision.Kind) *DecisionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAutonomy sets the "autonomy" field.
func (_u *DecisionUpdateOne) SetAutonomy(v decision.Autonomy) *DecisionUpdateOne {
	_u.mutation.SetAutonomy(v)
	return _u
}

// SetNillableAutonomy sets the "autonomy" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableAutonomy(v *decision.Autonomy) *DecisionUpdateOne {
	if v != nil {
		_u.SetAutonomy(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *DecisionUpdateOne) SetTriggerID(v string) *DecisionUpdateOne {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableTriggerID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *DecisionUpdateOne) SetTriggerKind(v string) *DecisionUpdateOne {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableTriggerKind(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *DecisionUpdateOne) SetCustomerID(v string) *DecisionUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableCustomerID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *DecisionUpdateOne) ClearCustomerID() *DecisionUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *DecisionUpdateOne) SetStaffID(v string) *DecisionUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableStaffID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// ClearStaffID clears the value of the "staff_id" field.
func (_u *DecisionUpdateOne) ClearStaffID() *DecisionUpdateOne {
	_u.mutation.ClearStaffID()
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *DecisionUpdateOne) SetServiceID(v string) *DecisionUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableServiceID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *DecisionUpdateOne) ClearServiceID() *DecisionUpdateOne {
	_u.mutation.ClearServiceID()
	return _u
}

// SetSlotRef sets the "slot_ref" field.
func (_u *DecisionUpdateOne) SetSlotRef(v string) *DecisionUpdateOne {
	_u.mutation.SetSlotRef(v)
	return _u
}

// SetNillableSlotRef sets the "slot_ref" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableSlotRef(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetSlotRef(*v)
	}
	return _u
}

// ClearSlotRef clears the value of the "slot_ref" field.
func (_u *DecisionUpdateOne) ClearSlotRef() *DecisionUpdateOne {
	_u.mutation.ClearSlotRef()
	return _u
}

// SetActionSummary sets the "action_summary" field.
func (_u *DecisionUpdateOne) SetActionSummary(v string) *DecisionUpdateOne {
	_u.mutation.SetActionSummary(v)
	return _u
}

// SetNillableActionSummary sets the "action_summary" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableActionSummary(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetActionSummary(*v)
	}
	return _u
}

// SetActionDetail sets the "action_detail" field.
func (_u *DecisionUpdateOne) SetActionDetail(v map[string]interface{}) *DecisionUpdateOne {
	_u.mutation.SetActionDetail(v)
	return _u
}

// ClearActionDetail clears the value of the "action_detail" field.
func (_u *DecisionUpdateOne) ClearActionDetail() *DecisionUpdateOne {
	_u.mutation.ClearActionDetail()
	return _u
}

// SetRevenuePotential sets the "revenue_potential" field.
func (_u *DecisionUpdateOne) SetRevenuePotential(v int64) *DecisionUpdateOne {
	_u.mutation.ResetRevenuePotential()
	_u.mutation.SetRevenuePotential(v)
	return _u
}

// SetNillableRevenuePotential sets the "revenue_potential" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableRevenuePotential(v *int64) *DecisionUpdateOne {
	if v != nil {
		_u.SetRevenuePotential(*v)
	}
	return _u
}

// AddRevenuePotential adds value to the "revenue_potential" field.
func (_u *DecisionUpdateOne) AddRevenuePotential(v int64) *DecisionUpdateOne {
	_u.mutation.AddRevenuePotential(v)
	return _u
}

// SetRevenueActual sets the "revenue_actual" field.
func (_u *DecisionUpdateOne) SetRevenueActual(v int64) *DecisionUpdateOne {
	_u.mutation.ResetRevenueActual()
	_u.mutation.SetRevenueActual(v)
	return _u
}

// SetNillableRevenueActual sets the "revenue_actual" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableRevenueActual(v *int64) *DecisionUpdateOne {
	if v != nil {
		_u.SetRevenueActual(*v)
	}
	return _u
}

// AddRevenueActual adds value to the "revenue_actual" field.
func (_u *DecisionUpdateOne) AddRevenueActual(v int64) *DecisionUpdateOne {
	_u.mutation.AddRevenueActual(v)
	return _u
}

// ClearRevenueActual clears the value of the "revenue_actual" field.
func (_u *DecisionUpdateOne) ClearRevenueActual() *DecisionUpdateOne {
	_u.mutation.ClearRevenueActual()
	return _u
}

// SetApprovalRequired sets the "approval_required" field.
func (_u *DecisionUpdateOne) SetApprovalRequired(v bool) *DecisionUpdateOne {
	_u.mutation.SetApprovalRequired(v)
	return _u
}

// SetNillableApprovalRequired sets the "approval_required" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableApprovalRequired(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetApprovalRequired(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *DecisionUpdateOne) SetApprovalStatus(v decision.ApprovalStatus) *DecisionUpdateOne {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableApprovalStatus(v *decision.ApprovalStatus) *DecisionUpdateOne {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetApprovalApprover sets the "approval_approver" field.
func (_u *DecisionUpdateOne) SetApprovalApprover(v string) *DecisionUpdateOne {
	_u.mutation.SetApprovalApprover(v)
	return _u
}

// SetNillableApprovalApprover sets the "approval_approver" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableApprovalApprover(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetApprovalApprover(*v)
	}
	return _u
}

// ClearApprovalApprover clears the value of the "approval_approver" field.
func (_u *DecisionUpdateOne) ClearApprovalApprover() *DecisionUpdateOne {
	_u.mutation.ClearApprovalApprover()
	return _u
}

// SetApprovalDecidedAt sets the "approval_decided_at" field.
func (_u *DecisionUpdateOne) SetApprovalDecidedAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetApprovalDecidedAt(v)
	return _u
}

// SetNillableApprovalDecidedAt sets the "approval_decided_at" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableApprovalDecidedAt(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetApprovalDecidedAt(*v)
	}
	return _u
}

// ClearApprovalDecidedAt clears the value of the "approval_decided_at" field.
func (_u *DecisionUpdateOne) ClearApprovalDecidedAt() *DecisionUpdateOne {
	_u.mutation.ClearApprovalDecidedAt()
	return _u
}

// SetOutcomeStatus sets the "outcome_status" field.
func (_u *DecisionUpdateOne) SetOutcomeStatus(v decision.OutcomeStatus) *DecisionUpdateOne {
	_u.mutation.SetOutcomeStatus(v)
	return _u
}

// SetNillableOutcomeStatus sets the "outcome_status" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOutcomeStatus(v *decision.OutcomeStatus) *DecisionUpdateOne {
	if v != nil {
		_u.SetOutcomeStatus(*v)
	}
	return _u
}

// SetOutcomeResult sets the "outcome_result" field.
func (_u *DecisionUpdateOne) SetOutcomeResult(v string) *DecisionUpdateOne {
	_u.mutation.SetOutcomeResult(v)
	return _u
}

// SetNillableOutcomeResult sets the "outcome_result" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOutcomeResult(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetOutcomeResult(*v)
	}
	return _u
}

// ClearOutcomeResult clears the value of the "outcome_result" field.
func (_u *DecisionUpdateOne) ClearOutcomeResult() *DecisionUpdateOne {
	_u.mutation.ClearOutcomeResult()
	return _u
}

// SetOutcomeBookingID sets the "outcome_booking_id" field.
func (_u *DecisionUpdateOne) SetOutcomeBookingID(v string) *DecisionUpdateOne {
	_u.mutation.SetOutcomeBookingID(v)
	return _u
}

// SetNillableOutcomeBookingID sets the "outcome_booking_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOutcomeBookingID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetOutcomeBookingID(*v)
	}
	return _u
}

// ClearOutcomeBookingID clears the value of the "outcome_booking_id" field.
func (_u *DecisionUpdateOne) ClearOutcomeBookingID() *DecisionUpdateOne {
	_u.mutation.ClearOutcomeBookingID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DecisionUpdateOne) SetCompletedAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableCompletedAt(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DecisionUpdateOne) ClearCompletedAt() *DecisionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DecisionUpdateOne) SetUpdatedAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DecisionUpdateOne) SetExpiresAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableExpiresAt(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdateOne) Mutation() *DecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdateOne) Where(ps ...predicate.Decision) *DecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionUpdateOne) Select(field string, fields ...string) *DecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Decision entity.
func (_u *DecisionUpdateOne) Save(ctx context.Context) (*Decision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdateOne) SaveX(ctx context.Context) *Decision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DecisionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := decision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdateOne) check() error {
	if v, ok := _u.mutation.AgentName(); ok {
		if err := decision.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "Decision.agent_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := decision.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Decision.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Autonomy(); ok {
		if err := decision.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Decision.autonomy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionSummary(); ok {
		if err := decision.ActionSummaryValidator(v); err != nil {
			return &ValidationError{Name: "action_summary", err: fmt.Errorf(`ent: validator failed for field "Decision.action_summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := decision.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Decision.approval_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutcomeStatus(); ok {
		if err := decision.OutcomeStatusValidator(v); err != nil {
			return &ValidationError{Name: "outcome_status", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdateOne) sqlSave(ctx context.Context) (_node *Decision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Decision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decision.FieldID)
		for _, f := range fields {
			if !decision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decision.FieldID {
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
		_spec.SetField(decision.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(decision.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Autonomy(); ok {
		_spec.SetField(decision.FieldAutonomy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(decision.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(decision.FieldTriggerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(decision.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(decision.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(decision.FieldStaffID, field.TypeString, value)
	}
	if _u.mutation.StaffIDCleared() {
		_spec.ClearField(decision.FieldStaffID, field.TypeString)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(decision.FieldServiceID, field.TypeString, value)
	}
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(decision.FieldServiceID, field.TypeString)
	}
	if value, ok := _u.mutation.SlotRef(); ok {
		_spec.SetField(decision.FieldSlotRef, field.TypeString, value)
	}
	if _u.mutation.SlotRefCleared() {
		_spec.ClearField(decision.FieldSlotRef, field.TypeString)
	}
	if value, ok := _u.mutation.ActionSummary(); ok {
		_spec.SetField(decision.FieldActionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetail(); ok {
		_spec.SetField(decision.FieldActionDetail, field.TypeJSON, value)
	}
	if _u.mutation.ActionDetailCleared() {
		_spec.ClearField(decision.FieldActionDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevenuePotential(); ok {
		_spec.SetField(decision.FieldRevenuePotential, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenuePotential(); ok {
		_spec.AddField(decision.FieldRevenuePotential, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RevenueActual(); ok {
		_spec.SetField(decision.FieldRevenueActual, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevenueActual(); ok {
		_spec.AddField(decision.FieldRevenueActual, field.TypeInt64, value)
	}
	if _u.mutation.RevenueActualCleared() {
		_spec.ClearField(decision.FieldRevenueActual, field.TypeInt64)
	}
	if value, ok := _u.mutation.ApprovalRequired(); ok {
		_spec.SetField(decision.FieldApprovalRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(decision.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovalApprover(); ok {
		_spec.SetField(decision.FieldApprovalApprover, field.TypeString, value)
	}
	if _u.mutation.ApprovalApproverCleared() {
		_spec.ClearField(decision.FieldApprovalApprover, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalDecidedAt(); ok {
		_spec.SetField(decision.FieldApprovalDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovalDecidedAtCleared() {
		_spec.ClearField(decision.FieldApprovalDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutcomeStatus(); ok {
		_spec.SetField(decision.FieldOutcomeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutcomeResult(); ok {
		_spec.SetField(decision.FieldOutcomeResult, field.TypeString, value)
	}
	if _u.mutation.OutcomeResultCleared() {
		_spec.ClearField(decision.FieldOutcomeResult, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeBookingID(); ok {
		_spec.SetField(decision.FieldOutcomeBookingID, field.TypeString, value)
	}
	if _u.mutation.OutcomeBookingIDCleared() {
		_spec.ClearField(decision.FieldOutcomeBookingID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(decision.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(decision.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(decision.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Decision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
