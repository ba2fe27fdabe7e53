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
	"github.com/bookflow/agentplane/ent/customerscore"
	"github.com/bookflow/agentplane/ent/predicate"
)

// CustomerScoreUpdate is the builder for updating CustomerScore entities.
type CustomerScoreUpdate struct {
	config
	hooks    []Hook
	mutation *CustomerScoreMutation
}

// Where appends a list predicates to the CustomerScoreUpdate builder.
func (_u *CustomerScoreUpdate) Where(ps ...predicate.CustomerScore) *CustomerScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLtvTotal sets the "ltv_total" field.
func (_u *CustomerScoreUpdate) SetLtvTotal(v int64) *CustomerScoreUpdate {
	_u.mutation.ResetLtvTotal()
	_u.mutation.SetLtvTotal(v)
	return _u
}

// SetNillableLtvTotal sets the "ltv_total" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableLtvTotal(v *int64) *CustomerScoreUpdate {
	if v != nil {
		_u.SetLtvTotal(*v)
	}
	return _u
}

// AddLtvTotal adds value to the "ltv_total" field.
func (_u *CustomerScoreUpdate) AddLtvTotal(v int64) *CustomerScoreUpdate {
	_u.mutation.AddLtvTotal(v)
	return _u
}

// SetLtvProjected sets the "ltv_projected" field.
func (_u *CustomerScoreUpdate) SetLtvProjected(v int64) *CustomerScoreUpdate {
	_u.mutation.ResetLtvProjected()
	_u.mutation.SetLtvProjected(v)
	return _u
}

// SetNillableLtvProjected sets the "ltv_projected" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableLtvProjected(v *int64) *CustomerScoreUpdate {
	if v != nil {
		_u.SetLtvProjected(*v)
	}
	return _u
}

// AddLtvProjected adds value to the "ltv_projected" field.
func (_u *CustomerScoreUpdate) AddLtvProjected(v int64) *CustomerScoreUpdate {
	_u.mutation.AddLtvProjected(v)
	return _u
}

// SetAvgVisitValue sets the "avg_visit_value" field.
func (_u *CustomerScoreUpdate) SetAvgVisitValue(v int64) *CustomerScoreUpdate {
	_u.mutation.ResetAvgVisitValue()
	_u.mutation.SetAvgVisitValue(v)
	return _u
}

// SetNillableAvgVisitValue sets the "avg_visit_value" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableAvgVisitValue(v *int64) *CustomerScoreUpdate {
	if v != nil {
		_u.SetAvgVisitValue(*v)
	}
	return _u
}

// AddAvgVisitValue adds value to the "avg_visit_value" field.
func (_u *CustomerScoreUpdate) AddAvgVisitValue(v int64) *CustomerScoreUpdate {
	_u.mutation.AddAvgVisitValue(v)
	return _u
}

// SetVisitFrequencyMonthly sets the "visit_frequency_monthly" field.
func (_u *CustomerScoreUpdate) SetVisitFrequencyMonthly(v float64) *CustomerScoreUpdate {
	_u.mutation.ResetVisitFrequencyMonthly()
	_u.mutation.SetVisitFrequencyMonthly(v)
	return _u
}

// SetNillableVisitFrequencyMonthly sets the "visit_frequency_monthly" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableVisitFrequencyMonthly(v *float64) *CustomerScoreUpdate {
	if v != nil {
		_u.SetVisitFrequencyMonthly(*v)
	}
	return _u
}

// AddVisitFrequencyMonthly adds value to the "visit_frequency_monthly" field.
func (_u *CustomerScoreUpdate) AddVisitFrequencyMonthly(v float64) *CustomerScoreUpdate {
	_u.mutation.AddVisitFrequencyMonthly(v)
	return _u
}

// SetEstLifespanMonths sets the "est_lifespan_months" field.
func (_u *CustomerScoreUpdate) SetEstLifespanMonths(v float64) *CustomerScoreUpdate {
	_u.mutation.ResetEstLifespanMonths()
	_u.mutation.SetEstLifespanMonths(v)
	return _u
}

// SetNillableEstLifespanMonths sets the "est_lifespan_months" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableEstLifespanMonths(v *float64) *CustomerScoreUpdate {
	if v != nil {
		_u.SetEstLifespanMonths(*v)
	}
	return _u
}

// AddEstLifespanMonths adds value to the "est_lifespan_months" field.
func (_u *CustomerScoreUpdate) AddEstLifespanMonths(v float64) *CustomerScoreUpdate {
	_u.mutation.AddEstLifespanMonths(v)
	return _u
}

// SetMembershipBonus sets the "membership_bonus" field.
func (_u *CustomerScoreUpdate) SetMembershipBonus(v bool) *CustomerScoreUpdate {
	_u.mutation.SetMembershipBonus(v)
	return _u
}

// SetNillableMembershipBonus sets the "membership_bonus" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableMembershipBonus(v *bool) *CustomerScoreUpdate {
	if v != nil {
		_u.SetMembershipBonus(*v)
	}
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *CustomerScoreUpdate) SetEngagement(v map[string]interface{}) *CustomerScoreUpdate {
	_u.mutation.SetEngagement(v)
	return _u
}

// ClearEngagement clears the value of the "engagement" field.
func (_u *CustomerScoreUpdate) ClearEngagement() *CustomerScoreUpdate {
	_u.mutation.ClearEngagement()
	return _u
}

// SetChurnScore sets the "churn_score" field.
func (_u *CustomerScoreUpdate) SetChurnScore(v int) *CustomerScoreUpdate {
	_u.mutation.ResetChurnScore()
	_u.mutation.SetChurnScore(v)
	return _u
}

// SetNillableChurnScore sets the "churn_score" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableChurnScore(v *int) *CustomerScoreUpdate {
	if v != nil {
		_u.SetChurnScore(*v)
	}
	return _u
}

// AddChurnScore adds value to the "churn_score" field.
func (_u *CustomerScoreUpdate) AddChurnScore(v int) *CustomerScoreUpdate {
	_u.mutation.AddChurnScore(v)
	return _u
}

// SetChurnLevel sets the "churn_level" field.
func (_u *CustomerScoreUpdate) SetChurnLevel(v customerscore.ChurnLevel) *CustomerScoreUpdate {
	_u.mutation.SetChurnLevel(v)
	return _u
}

// SetNillableChurnLevel sets the "churn_level" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableChurnLevel(v *customerscore.ChurnLevel) *CustomerScoreUpdate {
	if v != nil {
		_u.SetChurnLevel(*v)
	}
	return _u
}

// SetChurnFactors sets the "churn_factors" field.
func (_u *CustomerScoreUpdate) SetChurnFactors(v []string) *CustomerScoreUpdate {
	_u.mutation.SetChurnFactors(v)
	return _u
}

// AppendChurnFactors appends value to the "churn_factors" field.
func (_u *CustomerScoreUpdate) AppendChurnFactors(v []string) *CustomerScoreUpdate {
	_u.mutation.AppendChurnFactors(v)
	return _u
}

// ClearChurnFactors clears the value of the "churn_factors" field.
func (_u *CustomerScoreUpdate) ClearChurnFactors() *CustomerScoreUpdate {
	_u.mutation.ClearChurnFactors()
	return _u
}

// SetSegment sets the "segment" field.
func (_u *CustomerScoreUpdate) SetSegment(v customerscore.Segment) *CustomerScoreUpdate {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableSegment(v *customerscore.Segment) *CustomerScoreUpdate {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetLastVisitAt sets the "last_visit_at" field.
func (_u *CustomerScoreUpdate) SetLastVisitAt(v time.Time) *CustomerScoreUpdate {
	_u.mutation.SetLastVisitAt(v)
	return _u
}

// SetNillableLastVisitAt sets the "last_visit_at" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableLastVisitAt(v *time.Time) *CustomerScoreUpdate {
	if v != nil {
		_u.SetLastVisitAt(*v)
	}
	return _u
}

// ClearLastVisitAt clears the value of the "last_visit_at" field.
func (_u *CustomerScoreUpdate) ClearLastVisitAt() *CustomerScoreUpdate {
	_u.mutation.ClearLastVisitAt()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CustomerScoreUpdate) SetComputedAt(v time.Time) *CustomerScoreUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CustomerScoreUpdate) SetNillableComputedAt(v *time.Time) *CustomerScoreUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomerScoreUpdate) SetUpdatedAt(v time.Time) *CustomerScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomerScoreMutation object of the builder.
func (_u *CustomerScoreUpdate) Mutation() *CustomerScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomerScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomerScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomerScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomerScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomerScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customerscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomerScoreUpdate) check() error {
	if v, ok := _u.mutation.ChurnScore(); ok {
		if err := customerscore.ChurnScoreValidator(v); err != nil {
			return &ValidationError{Name: "churn_score", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChurnLevel(); ok {
		if err := customerscore.ChurnLevelValidator(v); err != nil {
			return &ValidationError{Name: "churn_level", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := customerscore.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.segment": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomerScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customerscore.Table, customerscore.Columns, sqlgraph.NewFieldSpec(customerscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LtvTotal(); ok {
		_spec.SetField(customerscore.FieldLtvTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLtvTotal(); ok {
		_spec.AddField(customerscore.FieldLtvTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LtvProjected(); ok {
		_spec.SetField(customerscore.FieldLtvProjected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLtvProjected(); ok {
		_spec.AddField(customerscore.FieldLtvProjected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgVisitValue(); ok {
		_spec.SetField(customerscore.FieldAvgVisitValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgVisitValue(); ok {
		_spec.AddField(customerscore.FieldAvgVisitValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VisitFrequencyMonthly(); ok {
		_spec.SetField(customerscore.FieldVisitFrequencyMonthly, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVisitFrequencyMonthly(); ok {
		_spec.AddField(customerscore.FieldVisitFrequencyMonthly, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstLifespanMonths(); ok {
		_spec.SetField(customerscore.FieldEstLifespanMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstLifespanMonths(); ok {
		_spec.AddField(customerscore.FieldEstLifespanMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MembershipBonus(); ok {
		_spec.SetField(customerscore.FieldMembershipBonus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(customerscore.FieldEngagement, field.TypeJSON, value)
	}
	if _u.mutation.EngagementCleared() {
		_spec.ClearField(customerscore.FieldEngagement, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChurnScore(); ok {
		_spec.SetField(customerscore.FieldChurnScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChurnScore(); ok {
		_spec.AddField(customerscore.FieldChurnScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChurnLevel(); ok {
		_spec.SetField(customerscore.FieldChurnLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChurnFactors(); ok {
		_spec.SetField(customerscore.FieldChurnFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChurnFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, customerscore.FieldChurnFactors, value)
		})
	}
	if _u.mutation.ChurnFactorsCleared() {
		_spec.ClearField(customerscore.FieldChurnFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(customerscore.FieldSegment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastVisitAt(); ok {
		_spec.SetField(customerscore.FieldLastVisitAt, field.TypeTime, value)
	}
	if _u.mutation.LastVisitAtCleared() {
		_spec.ClearField(customerscore.FieldLastVisitAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(customerscore.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customerscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customerscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomerScoreUpdateOne is the builder for updating a single CustomerScore entity.
type CustomerScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomerScoreMutation
}

// SetLtvTotal sets the "ltv_total" field.
func (_u *CustomerScoreUpdateOne) SetLtvTotal(v int64) *CustomerScoreUpdateOne {
	_u.mutation.ResetLtvTotal()
	_u.mutation.SetLtvTotal(v)
	return _u
}

// SetNillableLtvTotal sets the "ltv_total" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableLtvTotal(v *int64) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetLtvTotal(*v)
	}
	return _u
}

// AddLtvTotal adds value to the "ltv_total" field.
func (_u *CustomerScoreUpdateOne) AddLtvTotal(v int64) *CustomerScoreUpdateOne {
	_u.mutation.AddLtvTotal(v)
	return _u
}

// SetLtvProjected sets the "ltv_projected" field.
func (_u *CustomerScoreUpdateOne) SetLtvProjected(v int64) *CustomerScoreUpdateOne {
	_u.mutation.ResetLtvProjected()
	_u.mutation.SetLtvProjected(v)
	return _u
}

// SetNillableLtvProjected sets the "ltv_projected" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableLtvProjected(v *int64) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetLtvProjected(*v)
	}
	return _u
}

// AddLtvProjected adds value to the "ltv_projected" field.
func (_u *CustomerScoreUpdateOne) AddLtvProjected(v int64) *CustomerScoreUpdateOne {
	_u.mutation.AddLtvProjected(v)
	return _u
}

// SetAvgVisitValue sets the "avg_visit_value" field.
func (_u *CustomerScoreUpdateOne) SetAvgVisitValue(v int64) *CustomerScoreUpdateOne {
	_u.mutation.ResetAvgVisitValue()
	_u.mutation.SetAvgVisitValue(v)
	return _u
}

// SetNillableAvgVisitValue sets the "avg_visit_value" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableAvgVisitValue(v *int64) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetAvgVisitValue(*v)
	}
	return _u
}

// AddAvgVisitValue adds value to the "avg_visit_value" field.
func (_u *CustomerScoreUpdateOne) AddAvgVisitValue(v int64) *CustomerScoreUpdateOne {
	_u.mutation.AddAvgVisitValue(v)
	return _u
}

// SetVisitFrequencyMonthly sets the "visit_frequency_monthly" field.
func (_u *CustomerScoreUpdateOne) SetVisitFrequencyMonthly(v float64) *CustomerScoreUpdateOne {
	_u.mutation.ResetVisitFrequencyMonthly()
	_u.mutation.SetVisitFrequencyMonthly(v)
	return _u
}

// SetNillableVisitFrequencyMonthly sets the "visit_frequency_monthly" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableVisitFrequencyMonthly(v *float64) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetVisitFrequencyMonthly(*v)
	}
	return _u
}

// AddVisitFrequencyMonthly adds value to the "visit_frequency_monthly" field.
func (_u *CustomerScoreUpdateOne) AddVisitFrequencyMonthly(v float64) *CustomerScoreUpdateOne {
	_u.mutation.AddVisitFrequencyMonthly(v)
	return _u
}

// SetEstLifespanMonths sets the "est_lifespan_months" field.
func (_u *CustomerScoreUpdateOne) SetEstLifespanMonths(v float64) *CustomerScoreUpdateOne {
	_u.mutation.ResetEstLifespanMonths()
	_u.mutation.SetEstLifespanMonths(v)
	return _u
}

// SetNillableEstLifespanMonths sets the "est_lifespan_months" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableEstLifespanMonths(v *float64) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetEstLifespanMonths(*v)
	}
	return _u
}

// AddEstLifespanMonths adds value to the "est_lifespan_months" field.
func (_u *CustomerScoreUpdateOne) AddEstLifespanMonths(v float64) *CustomerScoreUpdateOne {
	_u.mutation.AddEstLifespanMonths(v)
	return _u
}

// SetMembershipBonus sets the "membership_bonus" field.
func (_u *CustomerScoreUpdateOne) SetMembershipBonus(v bool) *CustomerScoreUpdateOne {
	_u.mutation.SetMembershipBonus(v)
	return _u
}

// SetNillableMembershipBonus sets the "membership_bonus" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableMembershipBonus(v *bool) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetMembershipBonus(*v)
	}
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *CustomerScoreUpdateOne) SetEngagement(v map[string]interface{}) *CustomerScoreUpdateOne {
	_u.mutation.SetEngagement(v)
	return _u
}

// ClearEngagement clears the value of the "engagement" field.
func (_u *CustomerScoreUpdateOne) ClearEngagement() *CustomerScoreUpdateOne {
	_u.mutation.ClearEngagement()
	return _u
}

// SetChurnScore sets the "churn_score" field.
func (_u *CustomerScoreUpdateOne) SetChurnScore(v int) *CustomerScoreUpdateOne {
	_u.mutation.ResetChurnScore()
	_u.mutation.SetChurnScore(v)
	return _u
}

// SetNillableChurnScore sets the "churn_score" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableChurnScore(v *int) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetChurnScore(*v)
	}
	return _u
}

// AddChurnScore adds value to the "churn_score" field.
func (_u *CustomerScoreUpdateOne) AddChurnScore(v int) *CustomerScoreUpdateOne {
	_u.mutation.AddChurnScore(v)
	return _u
}

// SetChurnLevel sets the "churn_level" field.
func (_u *CustomerScoreUpdateOne) SetChurnLevel(v customerscore.ChurnLevel) *CustomerScoreUpdateOne {
	_u.mutation.SetChurnLevel(v)
	return _u
}

// SetNillableChurnLevel sets the "churn_level" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableChurnLevel(v *customerscore.ChurnLevel) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetChurnLevel(*v)
	}
	return _u
}

// SetChurnFactors sets the "churn_factors" field.
func (_u *CustomerScoreUpdateOne) SetChurnFactors(v []string) *CustomerScoreUpdateOne {
	_u.mutation.SetChurnFactors(v)
	return _u
}

// AppendChurnFactors appends value to the "churn_factors" field.
func (_u *CustomerScoreUpdateOne) AppendChurnFactors(v []string) *CustomerScoreUpdateOne {
	_u.mutation.AppendChurnFactors(v)
	return _u
}

// ClearChurnFactors clears the value of the "churn_factors" field.
func (_u *CustomerScoreUpdateOne) ClearChurnFactors() *CustomerScoreUpdateOne {
	_u.mutation.ClearChurnFactors()
	return _u
}

// SetSegment sets the "segment" field.
func (_u *CustomerScoreUpdateOne) SetSegment(v customerscore.Segment) *CustomerScoreUpdateOne {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableSegment(v *customerscore.Segment) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetLastVisitAt sets the "last_visit_at" field.
func (_u *CustomerScoreUpdateOne) SetLastVisitAt(v time.Time) *CustomerScoreUpdateOne {
	_u.mutation.SetLastVisitAt(v)
	return _u
}

// SetNillableLastVisitAt sets the "last_visit_at" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableLastVisitAt(v *time.Time) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetLastVisitAt(*v)
	}
	return _u
}

// ClearLastVisitAt clears the value of the "last_visit_at" field.
func (_u *CustomerScoreUpdateOne) ClearLastVisitAt() *CustomerScoreUpdateOne {
	_u.mutation.ClearLastVisitAt()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *CustomerScoreUpdateOne) SetComputedAt(v time.Time) *CustomerScoreUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *CustomerScoreUpdateOne) SetNillableComputedAt(v *time.Time) *CustomerScoreUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomerScoreUpdateOne) SetUpdatedAt(v time.Time) *CustomerScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomerScoreMutation object of the builder.
func (_u *CustomerScoreUpdateOne) Mutation() *CustomerScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomerScoreUpdate builder.
func (_u *CustomerScoreUpdateOne) Where(ps ...predicate.CustomerScore) *CustomerScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomerScoreUpdateOne) Select(field string, fields ...string) *CustomerScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CustomerScore entity.
func (_u *CustomerScoreUpdateOne) Save(ctx context.Context) (*CustomerScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomerScoreUpdateOne) SaveX(ctx context.Context) *CustomerScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomerScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomerScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomerScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customerscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomerScoreUpdateOne) check() error {
	if v, ok := _u.mutation.ChurnScore(); ok {
		if err := customerscore.ChurnScoreValidator(v); err != nil {
			return &ValidationError{Name: "churn_score", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChurnLevel(); ok {
		if err := customerscore.ChurnLevelValidator(v); err != nil {
			return &ValidationError{Name: "churn_level", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := customerscore.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.segment": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomerScoreUpdateOne) sqlSave(ctx context.Context) (_node *CustomerScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customerscore.Table, customerscore.Columns, sqlgraph.NewFieldSpec(customerscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CustomerScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customerscore.FieldID)
		for _, f := range fields {
			if !customerscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != customerscore.FieldID {
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
	if value, ok := _u.mutation.LtvTotal(); ok {
		_spec.SetField(customerscore.FieldLtvTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLtvTotal(); ok {
		_spec.AddField(customerscore.FieldLtvTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LtvProjected(); ok {
		_spec.SetField(customerscore.FieldLtvProjected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLtvProjected(); ok {
		_spec.AddField(customerscore.FieldLtvProjected, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgVisitValue(); ok {
		_spec.SetField(customerscore.FieldAvgVisitValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgVisitValue(); ok {
		_spec.AddField(customerscore.FieldAvgVisitValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VisitFrequencyMonthly(); ok {
		_spec.SetField(customerscore.FieldVisitFrequencyMonthly, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVisitFrequencyMonthly(); ok {
		_spec.AddField(customerscore.FieldVisitFrequencyMonthly, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstLifespanMonths(); ok {
		_spec.SetField(customerscore.FieldEstLifespanMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstLifespanMonths(); ok {
		_spec.AddField(customerscore.FieldEstLifespanMonths, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MembershipBonus(); ok {
		_spec.SetField(customerscore.FieldMembershipBonus, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(customerscore.FieldEngagement, field.TypeJSON, value)
	}
	if _u.mutation.EngagementCleared() {
		_spec.ClearField(customerscore.FieldEngagement, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChurnScore(); ok {
		_spec.SetField(customerscore.FieldChurnScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChurnScore(); ok {
		_spec.AddField(customerscore.FieldChurnScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChurnLevel(); ok {
		_spec.SetField(customerscore.FieldChurnLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChurnFactors(); ok {
		_spec.SetField(customerscore.FieldChurnFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChurnFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, customerscore.FieldChurnFactors, value)
		})
	}
	if _u.mutation.ChurnFactorsCleared() {
		_spec.ClearField(customerscore.FieldChurnFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(customerscore.FieldSegment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastVisitAt(); ok {
		_spec.SetField(customerscore.FieldLastVisitAt, field.TypeTime, value)
	}
	if _u.mutation.LastVisitAtCleared() {
		_spec.ClearField(customerscore.FieldLastVisitAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(customerscore.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customerscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CustomerScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customerscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
