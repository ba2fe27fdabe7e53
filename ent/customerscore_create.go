// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bookflow/agentplane/ent/customerscore"
)

// CustomerScoreCreate is the builder for creating a CustomerScore entity.
type CustomerScoreCreate struct {
	config
	mutation *CustomerScoreMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CustomerScoreCreate) SetTenantID(v string) *CustomerScoreCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *CustomerScoreCreate) SetCustomerID(v string) *CustomerScoreCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetLtvTotal sets the "ltv_total" field.
func (_c *CustomerScoreCreate) SetLtvTotal(v int64) *CustomerScoreCreate {
	_c.mutation.SetLtvTotal(v)
	return _c
}

// SetNillableLtvTotal sets the "ltv_total" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableLtvTotal(v *int64) *CustomerScoreCreate {
	if v != nil {
		_c.SetLtvTotal(*v)
	}
	return _c
}

// SetLtvProjected sets the "ltv_projected" field.
func (_c *CustomerScoreCreate) SetLtvProjected(v int64) *CustomerScoreCreate {
	_c.mutation.SetLtvProjected(v)
	return _c
}

// SetNillableLtvProjected sets the "ltv_projected" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableLtvProjected(v *int64) *CustomerScoreCreate {
	if v != nil {
		_c.SetLtvProjected(*v)
	}
	return _c
}

// SetAvgVisitValue sets the "avg_visit_value" field.
func (_c *CustomerScoreCreate) SetAvgVisitValue(v int64) *CustomerScoreCreate {
	_c.mutation.SetAvgVisitValue(v)
	return _c
}

// SetNillableAvgVisitValue sets the "avg_visit_value" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableAvgVisitValue(v *int64) *CustomerScoreCreate {
	if v != nil {
		_c.SetAvgVisitValue(*v)
	}
	return _c
}

// SetVisitFrequencyMonthly sets the "visit_frequency_monthly" field.
func (_c *CustomerScoreCreate) SetVisitFrequencyMonthly(v float64) *CustomerScoreCreate {
	_c.mutation.SetVisitFrequencyMonthly(v)
	return _c
}

// SetNillableVisitFrequencyMonthly sets the "visit_frequency_monthly" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableVisitFrequencyMonthly(v *float64) *CustomerScoreCreate {
	if v != nil {
		_c.SetVisitFrequencyMonthly(*v)
	}
	return _c
}

// SetEstLifespanMonths sets the "est_lifespan_months" field.
func (_c *CustomerScoreCreate) SetEstLifespanMonths(v float64) *CustomerScoreCreate {
	_c.mutation.SetEstLifespanMonths(v)
	return _c
}

// SetNillableEstLifespanMonths sets the "est_lifespan_months" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableEstLifespanMonths(v *float64) *CustomerScoreCreate {
	if v != nil {
		_c.SetEstLifespanMonths(*v)
	}
	return _c
}

// SetMembershipBonus sets the "membership_bonus" field.
func (_c *CustomerScoreCreate) SetMembershipBonus(v bool) *CustomerScoreCreate {
	_c.mutation.SetMembershipBonus(v)
	return _c
}

// SetNillableMembershipBonus sets the "membership_bonus" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableMembershipBonus(v *bool) *CustomerScoreCreate {
	if v != nil {
		_c.SetMembershipBonus(*v)
	}
	return _c
}

// SetEngagement sets the "engagement" field.
func (_c *CustomerScoreCreate) SetEngagement(v map[string]interface{}) *CustomerScoreCreate {
	_c.mutation.SetEngagement(v)
	return _c
}

// SetChurnScore sets the "churn_score" field.
func (_c *CustomerScoreCreate) SetChurnScore(v int) *CustomerScoreCreate {
	_c.mutation.SetChurnScore(v)
	return _c
}

// SetNillableChurnScore sets the "churn_score" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableChurnScore(v *int) *CustomerScoreCreate {
	if v != nil {
		_c.SetChurnScore(*v)
	}
	return _c
}

// SetChurnLevel sets the "churn_level" field.
func (_c *CustomerScoreCreate) SetChurnLevel(v customerscore.ChurnLevel) *CustomerScoreCreate {
	_c.mutation.SetChurnLevel(v)
	return _c
}

// SetNillableChurnLevel sets the "churn_level" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableChurnLevel(v *customerscore.ChurnLevel) *CustomerScoreCreate {
	if v != nil {
		_c.SetChurnLevel(*v)
	}
	return _c
}

// SetChurnFactors sets the "churn_factors" field.
func (_c *CustomerScoreCreate) SetChurnFactors(v []string) *CustomerScoreCreate {
	_c.mutation.SetChurnFactors(v)
	return _c
}

// SetSegment sets the "segment" field.
func (_c *CustomerScoreCreate) SetSegment(v customerscore.Segment) *CustomerScoreCreate {
	_c.mutation.SetSegment(v)
	return _c
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableSegment(v *customerscore.Segment) *CustomerScoreCreate {
	if v != nil {
		_c.SetSegment(*v)
	}
	return _c
}

// SetLastVisitAt sets the "last_visit_at" field.
func (_c *CustomerScoreCreate) SetLastVisitAt(v time.Time) *CustomerScoreCreate {
	_c.mutation.SetLastVisitAt(v)
	return _c
}

// SetNillableLastVisitAt sets the "last_visit_at" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableLastVisitAt(v *time.Time) *CustomerScoreCreate {
	if v != nil {
		_c.SetLastVisitAt(*v)
	}
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *CustomerScoreCreate) SetComputedAt(v time.Time) *CustomerScoreCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableComputedAt(v *time.Time) *CustomerScoreCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CustomerScoreCreate) SetCreatedAt(v time.Time) *CustomerScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableCreatedAt(v *time.Time) *CustomerScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CustomerScoreCreate) SetUpdatedAt(v time.Time) *CustomerScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CustomerScoreCreate) SetNillableUpdatedAt(v *time.Time) *CustomerScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CustomerScoreCreate) SetID(v string) *CustomerScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CustomerScoreMutation object of the builder.
func (_c *CustomerScoreCreate) Mutation() *CustomerScoreMutation {
	return _c.mutation
}

// Save creates the CustomerScore in the database.
func (_c *CustomerScoreCreate) Save(ctx context.Context) (*CustomerScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomerScoreCreate) SaveX(ctx context.Context) *CustomerScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomerScoreCreate) defaults() {
	if _, ok := _c.mutation.LtvTotal(); !ok {
		v := customerscore.DefaultLtvTotal
		_c.mutation.SetLtvTotal(v)
	}
	if _, ok := _c.mutation.LtvProjected(); !ok {
		v := customerscore.DefaultLtvProjected
		_c.mutation.SetLtvProjected(v)
	}
	if _, ok := _c.mutation.AvgVisitValue(); !ok {
		v := customerscore.DefaultAvgVisitValue
		_c.mutation.SetAvgVisitValue(v)
	}
	if _, ok := _c.mutation.VisitFrequencyMonthly(); !ok {
		v := customerscore.DefaultVisitFrequencyMonthly
		_c.mutation.SetVisitFrequencyMonthly(v)
	}
	if _, ok := _c.mutation.EstLifespanMonths(); !ok {
		v := customerscore.DefaultEstLifespanMonths
		_c.mutation.SetEstLifespanMonths(v)
	}
	if _, ok := _c.mutation.MembershipBonus(); !ok {
		v := customerscore.DefaultMembershipBonus
		_c.mutation.SetMembershipBonus(v)
	}
	if _, ok := _c.mutation.ChurnScore(); !ok {
		v := customerscore.DefaultChurnScore
		_c.mutation.SetChurnScore(v)
	}
	if _, ok := _c.mutation.ChurnLevel(); !ok {
		v := customerscore.DefaultChurnLevel
		_c.mutation.SetChurnLevel(v)
	}
	if _, ok := _c.mutation.Segment(); !ok {
		v := customerscore.DefaultSegment
		_c.mutation.SetSegment(v)
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := customerscore.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := customerscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := customerscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomerScoreCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CustomerScore.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := customerscore.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "CustomerScore.customer_id"`)}
	}
	if v, ok := _c.mutation.CustomerID(); ok {
		if err := customerscore.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.customer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LtvTotal(); !ok {
		return &ValidationError{Name: "ltv_total", err: errors.New(`ent: missing required field "CustomerScore.ltv_total"`)}
	}
	if _, ok := _c.mutation.LtvProjected(); !ok {
		return &ValidationError{Name: "ltv_projected", err: errors.New(`ent: missing required field "CustomerScore.ltv_projected"`)}
	}
	if _, ok := _c.mutation.AvgVisitValue(); !ok {
		return &ValidationError{Name: "avg_visit_value", err: errors.New(`ent: missing required field "CustomerScore.avg_visit_value"`)}
	}
	if _, ok := _c.mutation.VisitFrequencyMonthly(); !ok {
		return &ValidationError{Name: "visit_frequency_monthly", err: errors.New(`ent: missing required field "CustomerScore.visit_frequency_monthly"`)}
	}
	if _, ok := _c.mutation.EstLifespanMonths(); !ok {
		return &ValidationError{Name: "est_lifespan_months", err: errors.New(`ent: missing required field "CustomerScore.est_lifespan_months"`)}
	}
	if _, ok := _c.mutation.MembershipBonus(); !ok {
		return &ValidationError{Name: "membership_bonus", err: errors.New(`ent: missing required field "CustomerScore.membership_bonus"`)}
	}
	if _, ok := _c.mutation.ChurnScore(); !ok {
		return &ValidationError{Name: "churn_score", err: errors.New(`ent: missing required field "CustomerScore.churn_score"`)}
	}
	if v, ok := _c.mutation.ChurnScore(); ok {
		if err := customerscore.ChurnScoreValidator(v); err != nil {
			return &ValidationError{Name: "churn_score", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChurnLevel(); !ok {
		return &ValidationError{Name: "churn_level", err: errors.New(`ent: missing required field "CustomerScore.churn_level"`)}
	}
	if v, ok := _c.mutation.ChurnLevel(); ok {
		if err := customerscore.ChurnLevelValidator(v); err != nil {
			return &ValidationError{Name: "churn_level", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.churn_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Segment(); !ok {
		return &ValidationError{Name: "segment", err: errors.New(`ent: missing required field "CustomerScore.segment"`)}
	}
	if v, ok := _c.mutation.Segment(); ok {
		if err := customerscore.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "CustomerScore.segment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "CustomerScore.computed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CustomerScore.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CustomerScore.updated_at"`)}
	}
	return nil
}

func (_c *CustomerScoreCreate) sqlSave(ctx context.Context) (*CustomerScore, error) {
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
			return nil, fmt.Errorf("unexpected CustomerScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomerScoreCreate) createSpec() (*CustomerScore, *sqlgraph.CreateSpec) {
	var (
		_node = &CustomerScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customerscore.Table, sqlgraph.NewFieldSpec(customerscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(customerscore.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(customerscore.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.LtvTotal(); ok {
		_spec.SetField(customerscore.FieldLtvTotal, field.TypeInt64, value)
		_node.LtvTotal = value
	}
	if value, ok := _c.mutation.LtvProjected(); ok {
		_spec.SetField(customerscore.FieldLtvProjected, field.TypeInt64, value)
		_node.LtvProjected = value
	}
	if value, ok := _c.mutation.AvgVisitValue(); ok {
		_spec.SetField(customerscore.FieldAvgVisitValue, field.TypeInt64, value)
		_node.AvgVisitValue = value
	}
	if value, ok := _c.mutation.VisitFrequencyMonthly(); ok {
		_spec.SetField(customerscore.FieldVisitFrequencyMonthly, field.TypeFloat64, value)
		_node.VisitFrequencyMonthly = value
	}
	if value, ok := _c.mutation.EstLifespanMonths(); ok {
		_spec.SetField(customerscore.FieldEstLifespanMonths, field.TypeFloat64, value)
		_node.EstLifespanMonths = value
	}
	if value, ok := _c.mutation.MembershipBonus(); ok {
		_spec.SetField(customerscore.FieldMembershipBonus, field.TypeBool, value)
		_node.MembershipBonus = value
	}
	if value, ok := _c.mutation.Engagement(); ok {
		_spec.SetField(customerscore.FieldEngagement, field.TypeJSON, value)
		_node.Engagement = value
	}
	if value, ok := _c.mutation.ChurnScore(); ok {
		_spec.SetField(customerscore.FieldChurnScore, field.TypeInt, value)
		_node.ChurnScore = value
	}
	if value, ok := _c.mutation.ChurnLevel(); ok {
		_spec.SetField(customerscore.FieldChurnLevel, field.TypeEnum, value)
		_node.ChurnLevel = value
	}
	if value, ok := _c.mutation.ChurnFactors(); ok {
		_spec.SetField(customerscore.FieldChurnFactors, field.TypeJSON, value)
		_node.ChurnFactors = value
	}
	if value, ok := _c.mutation.Segment(); ok {
		_spec.SetField(customerscore.FieldSegment, field.TypeEnum, value)
		_node.Segment = value
	}
	if value, ok := _c.mutation.LastVisitAt(); ok {
		_spec.SetField(customerscore.FieldLastVisitAt, field.TypeTime, value)
		_node.LastVisitAt = &value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(customerscore.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(customerscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(customerscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CustomerScoreCreateBulk is the builder for creating many CustomerScore entities in bulk.
type CustomerScoreCreateBulk struct {
	config
	err      error
	builders []*CustomerScoreCreate
}

// Save creates the CustomerScore entities in the database.
func (_c *CustomerScoreCreateBulk) Save(ctx context.Context) ([]*CustomerScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CustomerScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomerScoreMutation)
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
func (_c *CustomerScoreCreateBulk) SaveX(ctx context.Context) []*CustomerScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
