// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/auditlog"
	"github.com/bookflow/agentplane/ent/customerscore"
	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/ent/event"
	"github.com/bookflow/agentplane/ent/gap"
	"github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/ent/predicate"
	"github.com/bookflow/agentplane/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentState    = "AgentState"
	TypeApproval      = "Approval"
	TypeAuditLog      = "AuditLog"
	TypeCustomerScore = "CustomerScore"
	TypeDecision      = "Decision"
	TypeEvent         = "Event"
	TypeGap           = "Gap"
	TypeOutreach      = "Outreach"
	TypeTask          = "Task"
)

// AgentStateMutation represents an operation that mutates the AgentState nodes in the graph.
type AgentStateMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	tenant_id                     *string
	agent_name                    *string
	status                        *agentstate.Status
	last_execution                *time.Time
	next_scheduled                *time.Time
	breaker_state                 *agentstate.BreakerState
	breaker_consecutive_errors    *int
	addbreaker_consecutive_errors *int
	breaker_last_error            *string
	breaker_first_failure_at      *time.Time
	breaker_cooldown_until        *time.Time
	breaker_cooldown_minutes      *int
	addbreaker_cooldown_minutes   *int
	probe_in_flight               *bool
	max_hourly_actions            *int
	addmax_hourly_actions         *int
	max_daily_actions             *int
	addmax_daily_actions          *int
	cooldown_minutes              *int
	addcooldown_minutes           *int
	_config                       *map[string]interface{}
	counter_date                  *string
	actions_taken                 *int
	addactions_taken              *int
	actions_successful            *int
	addactions_successful         *int
	actions_failed                *int
	addactions_failed             *int
	revenue_generated             *int64
	addrevenue_generated          *int64
	actions_by_type               *map[string]int
	hour_window_start             *time.Time
	hour_window_count             *int
	addhour_window_count          *int
	day_window_start              *time.Time
	day_window_count              *int
	addday_window_count           *int
	last_heartbeat                *time.Time
	consecutive_failures          *int
	addconsecutive_failures       *int
	success_rate                  *float64
	addsuccess_rate               *float64
	avg_latency_ms                *float64
	addavg_latency_ms             *float64
	version                       *int64
	addversion                    *int64
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*AgentState, error)
	predicates                    []predicate.AgentState
}

var _ ent.Mutation = (*AgentStateMutation)(nil)

// agentstateOption allows management of the mutation configuration using functional options.
type agentstateOption func(*AgentStateMutation)

// newAgentStateMutation creates new mutation for the AgentState entity.
func newAgentStateMutation(c config, op Op, opts ...agentstateOption) *AgentStateMutation {
	m := &AgentStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStateID sets the ID field of the mutation.
func withAgentStateID(id string) agentstateOption {
	return func(m *AgentStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentState
		)
		m.oldValue = func(ctx context.Context) (*AgentState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentState sets the old AgentState of the mutation.
func withAgentState(node *AgentState) agentstateOption {
	return func(m *AgentStateMutation) {
		m.oldValue = func(context.Context) (*AgentState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentState entities.
func (m *AgentStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentStateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentStateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentStateMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentStateMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentStateMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentStateMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetStatus sets the "status" field.
func (m *AgentStateMutation) SetStatus(a agentstate.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStateMutation) Status() (r agentstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStatus(ctx context.Context) (v agentstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStateMutation) ResetStatus() {
	m.status = nil
}

// SetLastExecution sets the "last_execution" field.
func (m *AgentStateMutation) SetLastExecution(t time.Time) {
	m.last_execution = &t
}

// LastExecution returns the value of the "last_execution" field in the mutation.
func (m *AgentStateMutation) LastExecution() (r time.Time, exists bool) {
	v := m.last_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExecution returns the old "last_execution" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastExecution(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExecution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExecution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExecution: %w", err)
	}
	return oldValue.LastExecution, nil
}

// ClearLastExecution clears the value of the "last_execution" field.
func (m *AgentStateMutation) ClearLastExecution() {
	m.last_execution = nil
	m.clearedFields[agentstate.FieldLastExecution] = struct{}{}
}

// LastExecutionCleared returns if the "last_execution" field was cleared in this mutation.
func (m *AgentStateMutation) LastExecutionCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldLastExecution]
	return ok
}

// ResetLastExecution resets all changes to the "last_execution" field.
func (m *AgentStateMutation) ResetLastExecution() {
	m.last_execution = nil
	delete(m.clearedFields, agentstate.FieldLastExecution)
}

// SetNextScheduled sets the "next_scheduled" field.
func (m *AgentStateMutation) SetNextScheduled(t time.Time) {
	m.next_scheduled = &t
}

// NextScheduled returns the value of the "next_scheduled" field in the mutation.
func (m *AgentStateMutation) NextScheduled() (r time.Time, exists bool) {
	v := m.next_scheduled
	if v == nil {
		return
	}
	return *v, true
}

// OldNextScheduled returns the old "next_scheduled" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldNextScheduled(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextScheduled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextScheduled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextScheduled: %w", err)
	}
	return oldValue.NextScheduled, nil
}

// ClearNextScheduled clears the value of the "next_scheduled" field.
func (m *AgentStateMutation) ClearNextScheduled() {
	m.next_scheduled = nil
	m.clearedFields[agentstate.FieldNextScheduled] = struct{}{}
}

// NextScheduledCleared returns if the "next_scheduled" field was cleared in this mutation.
func (m *AgentStateMutation) NextScheduledCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldNextScheduled]
	return ok
}

// ResetNextScheduled resets all changes to the "next_scheduled" field.
func (m *AgentStateMutation) ResetNextScheduled() {
	m.next_scheduled = nil
	delete(m.clearedFields, agentstate.FieldNextScheduled)
}

// SetBreakerState sets the "breaker_state" field.
func (m *AgentStateMutation) SetBreakerState(as agentstate.BreakerState) {
	m.breaker_state = &as
}

// BreakerState returns the value of the "breaker_state" field in the mutation.
func (m *AgentStateMutation) BreakerState() (r agentstate.BreakerState, exists bool) {
	v := m.breaker_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerState returns the old "breaker_state" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerState(ctx context.Context) (v agentstate.BreakerState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerState: %w", err)
	}
	return oldValue.BreakerState, nil
}

// ResetBreakerState resets all changes to the "breaker_state" field.
func (m *AgentStateMutation) ResetBreakerState() {
	m.breaker_state = nil
}

// SetBreakerConsecutiveErrors sets the "breaker_consecutive_errors" field.
func (m *AgentStateMutation) SetBreakerConsecutiveErrors(i int) {
	m.breaker_consecutive_errors = &i
	m.addbreaker_consecutive_errors = nil
}

// BreakerConsecutiveErrors returns the value of the "breaker_consecutive_errors" field in the mutation.
func (m *AgentStateMutation) BreakerConsecutiveErrors() (r int, exists bool) {
	v := m.breaker_consecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerConsecutiveErrors returns the old "breaker_consecutive_errors" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerConsecutiveErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerConsecutiveErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerConsecutiveErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerConsecutiveErrors: %w", err)
	}
	return oldValue.BreakerConsecutiveErrors, nil
}

// AddBreakerConsecutiveErrors adds i to the "breaker_consecutive_errors" field.
func (m *AgentStateMutation) AddBreakerConsecutiveErrors(i int) {
	if m.addbreaker_consecutive_errors != nil {
		*m.addbreaker_consecutive_errors += i
	} else {
		m.addbreaker_consecutive_errors = &i
	}
}

// AddedBreakerConsecutiveErrors returns the value that was added to the "breaker_consecutive_errors" field in this mutation.
func (m *AgentStateMutation) AddedBreakerConsecutiveErrors() (r int, exists bool) {
	v := m.addbreaker_consecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// ResetBreakerConsecutiveErrors resets all changes to the "breaker_consecutive_errors" field.
func (m *AgentStateMutation) ResetBreakerConsecutiveErrors() {
	m.breaker_consecutive_errors = nil
	m.addbreaker_consecutive_errors = nil
}

// SetBreakerLastError sets the "breaker_last_error" field.
func (m *AgentStateMutation) SetBreakerLastError(s string) {
	m.breaker_last_error = &s
}

// BreakerLastError returns the value of the "breaker_last_error" field in the mutation.
func (m *AgentStateMutation) BreakerLastError() (r string, exists bool) {
	v := m.breaker_last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerLastError returns the old "breaker_last_error" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerLastError: %w", err)
	}
	return oldValue.BreakerLastError, nil
}

// ClearBreakerLastError clears the value of the "breaker_last_error" field.
func (m *AgentStateMutation) ClearBreakerLastError() {
	m.breaker_last_error = nil
	m.clearedFields[agentstate.FieldBreakerLastError] = struct{}{}
}

// BreakerLastErrorCleared returns if the "breaker_last_error" field was cleared in this mutation.
func (m *AgentStateMutation) BreakerLastErrorCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldBreakerLastError]
	return ok
}

// ResetBreakerLastError resets all changes to the "breaker_last_error" field.
func (m *AgentStateMutation) ResetBreakerLastError() {
	m.breaker_last_error = nil
	delete(m.clearedFields, agentstate.FieldBreakerLastError)
}

// SetBreakerFirstFailureAt sets the "breaker_first_failure_at" field.
func (m *AgentStateMutation) SetBreakerFirstFailureAt(t time.Time) {
	m.breaker_first_failure_at = &t
}

// BreakerFirstFailureAt returns the value of the "breaker_first_failure_at" field in the mutation.
func (m *AgentStateMutation) BreakerFirstFailureAt() (r time.Time, exists bool) {
	v := m.breaker_first_failure_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerFirstFailureAt returns the old "breaker_first_failure_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerFirstFailureAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerFirstFailureAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerFirstFailureAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerFirstFailureAt: %w", err)
	}
	return oldValue.BreakerFirstFailureAt, nil
}

// ClearBreakerFirstFailureAt clears the value of the "breaker_first_failure_at" field.
func (m *AgentStateMutation) ClearBreakerFirstFailureAt() {
	m.breaker_first_failure_at = nil
	m.clearedFields[agentstate.FieldBreakerFirstFailureAt] = struct{}{}
}

// BreakerFirstFailureAtCleared returns if the "breaker_first_failure_at" field was cleared in this mutation.
func (m *AgentStateMutation) BreakerFirstFailureAtCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldBreakerFirstFailureAt]
	return ok
}

// ResetBreakerFirstFailureAt resets all changes to the "breaker_first_failure_at" field.
func (m *AgentStateMutation) ResetBreakerFirstFailureAt() {
	m.breaker_first_failure_at = nil
	delete(m.clearedFields, agentstate.FieldBreakerFirstFailureAt)
}

// SetBreakerCooldownUntil sets the "breaker_cooldown_until" field.
func (m *AgentStateMutation) SetBreakerCooldownUntil(t time.Time) {
	m.breaker_cooldown_until = &t
}

// BreakerCooldownUntil returns the value of the "breaker_cooldown_until" field in the mutation.
func (m *AgentStateMutation) BreakerCooldownUntil() (r time.Time, exists bool) {
	v := m.breaker_cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerCooldownUntil returns the old "breaker_cooldown_until" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerCooldownUntil: %w", err)
	}
	return oldValue.BreakerCooldownUntil, nil
}

// ClearBreakerCooldownUntil clears the value of the "breaker_cooldown_until" field.
func (m *AgentStateMutation) ClearBreakerCooldownUntil() {
	m.breaker_cooldown_until = nil
	m.clearedFields[agentstate.FieldBreakerCooldownUntil] = struct{}{}
}

// BreakerCooldownUntilCleared returns if the "breaker_cooldown_until" field was cleared in this mutation.
func (m *AgentStateMutation) BreakerCooldownUntilCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldBreakerCooldownUntil]
	return ok
}

// ResetBreakerCooldownUntil resets all changes to the "breaker_cooldown_until" field.
func (m *AgentStateMutation) ResetBreakerCooldownUntil() {
	m.breaker_cooldown_until = nil
	delete(m.clearedFields, agentstate.FieldBreakerCooldownUntil)
}

// SetBreakerCooldownMinutes sets the "breaker_cooldown_minutes" field.
func (m *AgentStateMutation) SetBreakerCooldownMinutes(i int) {
	m.breaker_cooldown_minutes = &i
	m.addbreaker_cooldown_minutes = nil
}

// BreakerCooldownMinutes returns the value of the "breaker_cooldown_minutes" field in the mutation.
func (m *AgentStateMutation) BreakerCooldownMinutes() (r int, exists bool) {
	v := m.breaker_cooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakerCooldownMinutes returns the old "breaker_cooldown_minutes" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldBreakerCooldownMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakerCooldownMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakerCooldownMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakerCooldownMinutes: %w", err)
	}
	return oldValue.BreakerCooldownMinutes, nil
}

// AddBreakerCooldownMinutes adds i to the "breaker_cooldown_minutes" field.
func (m *AgentStateMutation) AddBreakerCooldownMinutes(i int) {
	if m.addbreaker_cooldown_minutes != nil {
		*m.addbreaker_cooldown_minutes += i
	} else {
		m.addbreaker_cooldown_minutes = &i
	}
}

// AddedBreakerCooldownMinutes returns the value that was added to the "breaker_cooldown_minutes" field in this mutation.
func (m *AgentStateMutation) AddedBreakerCooldownMinutes() (r int, exists bool) {
	v := m.addbreaker_cooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBreakerCooldownMinutes resets all changes to the "breaker_cooldown_minutes" field.
func (m *AgentStateMutation) ResetBreakerCooldownMinutes() {
	m.breaker_cooldown_minutes = nil
	m.addbreaker_cooldown_minutes = nil
}

// SetProbeInFlight sets the "probe_in_flight" field.
func (m *AgentStateMutation) SetProbeInFlight(b bool) {
	m.probe_in_flight = &b
}

// ProbeInFlight returns the value of the "probe_in_flight" field in the mutation.
func (m *AgentStateMutation) ProbeInFlight() (r bool, exists bool) {
	v := m.probe_in_flight
	if v == nil {
		return
	}
	return *v, true
}

// OldProbeInFlight returns the old "probe_in_flight" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldProbeInFlight(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbeInFlight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbeInFlight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbeInFlight: %w", err)
	}
	return oldValue.ProbeInFlight, nil
}

// ResetProbeInFlight resets all changes to the "probe_in_flight" field.
func (m *AgentStateMutation) ResetProbeInFlight() {
	m.probe_in_flight = nil
}

// SetMaxHourlyActions sets the "max_hourly_actions" field.
func (m *AgentStateMutation) SetMaxHourlyActions(i int) {
	m.max_hourly_actions = &i
	m.addmax_hourly_actions = nil
}

// MaxHourlyActions returns the value of the "max_hourly_actions" field in the mutation.
func (m *AgentStateMutation) MaxHourlyActions() (r int, exists bool) {
	v := m.max_hourly_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxHourlyActions returns the old "max_hourly_actions" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldMaxHourlyActions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxHourlyActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxHourlyActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxHourlyActions: %w", err)
	}
	return oldValue.MaxHourlyActions, nil
}

// AddMaxHourlyActions adds i to the "max_hourly_actions" field.
func (m *AgentStateMutation) AddMaxHourlyActions(i int) {
	if m.addmax_hourly_actions != nil {
		*m.addmax_hourly_actions += i
	} else {
		m.addmax_hourly_actions = &i
	}
}

// AddedMaxHourlyActions returns the value that was added to the "max_hourly_actions" field in this mutation.
func (m *AgentStateMutation) AddedMaxHourlyActions() (r int, exists bool) {
	v := m.addmax_hourly_actions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxHourlyActions resets all changes to the "max_hourly_actions" field.
func (m *AgentStateMutation) ResetMaxHourlyActions() {
	m.max_hourly_actions = nil
	m.addmax_hourly_actions = nil
}

// SetMaxDailyActions sets the "max_daily_actions" field.
func (m *AgentStateMutation) SetMaxDailyActions(i int) {
	m.max_daily_actions = &i
	m.addmax_daily_actions = nil
}

// MaxDailyActions returns the value of the "max_daily_actions" field in the mutation.
func (m *AgentStateMutation) MaxDailyActions() (r int, exists bool) {
	v := m.max_daily_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDailyActions returns the old "max_daily_actions" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldMaxDailyActions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDailyActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDailyActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDailyActions: %w", err)
	}
	return oldValue.MaxDailyActions, nil
}

// AddMaxDailyActions adds i to the "max_daily_actions" field.
func (m *AgentStateMutation) AddMaxDailyActions(i int) {
	if m.addmax_daily_actions != nil {
		*m.addmax_daily_actions += i
	} else {
		m.addmax_daily_actions = &i
	}
}

// AddedMaxDailyActions returns the value that was added to the "max_daily_actions" field in this mutation.
func (m *AgentStateMutation) AddedMaxDailyActions() (r int, exists bool) {
	v := m.addmax_daily_actions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDailyActions resets all changes to the "max_daily_actions" field.
func (m *AgentStateMutation) ResetMaxDailyActions() {
	m.max_daily_actions = nil
	m.addmax_daily_actions = nil
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (m *AgentStateMutation) SetCooldownMinutes(i int) {
	m.cooldown_minutes = &i
	m.addcooldown_minutes = nil
}

// CooldownMinutes returns the value of the "cooldown_minutes" field in the mutation.
func (m *AgentStateMutation) CooldownMinutes() (r int, exists bool) {
	v := m.cooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownMinutes returns the old "cooldown_minutes" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCooldownMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownMinutes: %w", err)
	}
	return oldValue.CooldownMinutes, nil
}

// AddCooldownMinutes adds i to the "cooldown_minutes" field.
func (m *AgentStateMutation) AddCooldownMinutes(i int) {
	if m.addcooldown_minutes != nil {
		*m.addcooldown_minutes += i
	} else {
		m.addcooldown_minutes = &i
	}
}

// AddedCooldownMinutes returns the value that was added to the "cooldown_minutes" field in this mutation.
func (m *AgentStateMutation) AddedCooldownMinutes() (r int, exists bool) {
	v := m.addcooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCooldownMinutes resets all changes to the "cooldown_minutes" field.
func (m *AgentStateMutation) ResetCooldownMinutes() {
	m.cooldown_minutes = nil
	m.addcooldown_minutes = nil
}

// SetConfig sets the "config" field.
func (m *AgentStateMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentStateMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentStateMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agentstate.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentStateMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentStateMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agentstate.FieldConfig)
}

// SetCounterDate sets the "counter_date" field.
func (m *AgentStateMutation) SetCounterDate(s string) {
	m.counter_date = &s
}

// CounterDate returns the value of the "counter_date" field in the mutation.
func (m *AgentStateMutation) CounterDate() (r string, exists bool) {
	v := m.counter_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCounterDate returns the old "counter_date" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCounterDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounterDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounterDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounterDate: %w", err)
	}
	return oldValue.CounterDate, nil
}

// ResetCounterDate resets all changes to the "counter_date" field.
func (m *AgentStateMutation) ResetCounterDate() {
	m.counter_date = nil
}

// SetActionsTaken sets the "actions_taken" field.
func (m *AgentStateMutation) SetActionsTaken(i int) {
	m.actions_taken = &i
	m.addactions_taken = nil
}

// ActionsTaken returns the value of the "actions_taken" field in the mutation.
func (m *AgentStateMutation) ActionsTaken() (r int, exists bool) {
	v := m.actions_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsTaken returns the old "actions_taken" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldActionsTaken(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsTaken: %w", err)
	}
	return oldValue.ActionsTaken, nil
}

// AddActionsTaken adds i to the "actions_taken" field.
func (m *AgentStateMutation) AddActionsTaken(i int) {
	if m.addactions_taken != nil {
		*m.addactions_taken += i
	} else {
		m.addactions_taken = &i
	}
}

// AddedActionsTaken returns the value that was added to the "actions_taken" field in this mutation.
func (m *AgentStateMutation) AddedActionsTaken() (r int, exists bool) {
	v := m.addactions_taken
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsTaken resets all changes to the "actions_taken" field.
func (m *AgentStateMutation) ResetActionsTaken() {
	m.actions_taken = nil
	m.addactions_taken = nil
}

// SetActionsSuccessful sets the "actions_successful" field.
func (m *AgentStateMutation) SetActionsSuccessful(i int) {
	m.actions_successful = &i
	m.addactions_successful = nil
}

// ActionsSuccessful returns the value of the "actions_successful" field in the mutation.
func (m *AgentStateMutation) ActionsSuccessful() (r int, exists bool) {
	v := m.actions_successful
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsSuccessful returns the old "actions_successful" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldActionsSuccessful(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsSuccessful is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsSuccessful requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsSuccessful: %w", err)
	}
	return oldValue.ActionsSuccessful, nil
}

// AddActionsSuccessful adds i to the "actions_successful" field.
func (m *AgentStateMutation) AddActionsSuccessful(i int) {
	if m.addactions_successful != nil {
		*m.addactions_successful += i
	} else {
		m.addactions_successful = &i
	}
}

// AddedActionsSuccessful returns the value that was added to the "actions_successful" field in this mutation.
func (m *AgentStateMutation) AddedActionsSuccessful() (r int, exists bool) {
	v := m.addactions_successful
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsSuccessful resets all changes to the "actions_successful" field.
func (m *AgentStateMutation) ResetActionsSuccessful() {
	m.actions_successful = nil
	m.addactions_successful = nil
}

// SetActionsFailed sets the "actions_failed" field.
func (m *AgentStateMutation) SetActionsFailed(i int) {
	m.actions_failed = &i
	m.addactions_failed = nil
}

// ActionsFailed returns the value of the "actions_failed" field in the mutation.
func (m *AgentStateMutation) ActionsFailed() (r int, exists bool) {
	v := m.actions_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsFailed returns the old "actions_failed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldActionsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsFailed: %w", err)
	}
	return oldValue.ActionsFailed, nil
}

// AddActionsFailed adds i to the "actions_failed" field.
func (m *AgentStateMutation) AddActionsFailed(i int) {
	if m.addactions_failed != nil {
		*m.addactions_failed += i
	} else {
		m.addactions_failed = &i
	}
}

// AddedActionsFailed returns the value that was added to the "actions_failed" field in this mutation.
func (m *AgentStateMutation) AddedActionsFailed() (r int, exists bool) {
	v := m.addactions_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsFailed resets all changes to the "actions_failed" field.
func (m *AgentStateMutation) ResetActionsFailed() {
	m.actions_failed = nil
	m.addactions_failed = nil
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (m *AgentStateMutation) SetRevenueGenerated(i int64) {
	m.revenue_generated = &i
	m.addrevenue_generated = nil
}

// RevenueGenerated returns the value of the "revenue_generated" field in the mutation.
func (m *AgentStateMutation) RevenueGenerated() (r int64, exists bool) {
	v := m.revenue_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenueGenerated returns the old "revenue_generated" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldRevenueGenerated(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenueGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenueGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenueGenerated: %w", err)
	}
	return oldValue.RevenueGenerated, nil
}

// AddRevenueGenerated adds i to the "revenue_generated" field.
func (m *AgentStateMutation) AddRevenueGenerated(i int64) {
	if m.addrevenue_generated != nil {
		*m.addrevenue_generated += i
	} else {
		m.addrevenue_generated = &i
	}
}

// AddedRevenueGenerated returns the value that was added to the "revenue_generated" field in this mutation.
func (m *AgentStateMutation) AddedRevenueGenerated() (r int64, exists bool) {
	v := m.addrevenue_generated
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenueGenerated resets all changes to the "revenue_generated" field.
func (m *AgentStateMutation) ResetRevenueGenerated() {
	m.revenue_generated = nil
	m.addrevenue_generated = nil
}

// SetActionsByType sets the "actions_by_type" field.
func (m *AgentStateMutation) SetActionsByType(value map[string]int) {
	m.actions_by_type = &value
}

// ActionsByType returns the value of the "actions_by_type" field in the mutation.
func (m *AgentStateMutation) ActionsByType() (r map[string]int, exists bool) {
	v := m.actions_by_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsByType returns the old "actions_by_type" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldActionsByType(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsByType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsByType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsByType: %w", err)
	}
	return oldValue.ActionsByType, nil
}

// ClearActionsByType clears the value of the "actions_by_type" field.
func (m *AgentStateMutation) ClearActionsByType() {
	m.actions_by_type = nil
	m.clearedFields[agentstate.FieldActionsByType] = struct{}{}
}

// ActionsByTypeCleared returns if the "actions_by_type" field was cleared in this mutation.
func (m *AgentStateMutation) ActionsByTypeCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldActionsByType]
	return ok
}

// ResetActionsByType resets all changes to the "actions_by_type" field.
func (m *AgentStateMutation) ResetActionsByType() {
	m.actions_by_type = nil
	delete(m.clearedFields, agentstate.FieldActionsByType)
}

// SetHourWindowStart sets the "hour_window_start" field.
func (m *AgentStateMutation) SetHourWindowStart(t time.Time) {
	m.hour_window_start = &t
}

// HourWindowStart returns the value of the "hour_window_start" field in the mutation.
func (m *AgentStateMutation) HourWindowStart() (r time.Time, exists bool) {
	v := m.hour_window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldHourWindowStart returns the old "hour_window_start" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldHourWindowStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHourWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHourWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHourWindowStart: %w", err)
	}
	return oldValue.HourWindowStart, nil
}

// ClearHourWindowStart clears the value of the "hour_window_start" field.
func (m *AgentStateMutation) ClearHourWindowStart() {
	m.hour_window_start = nil
	m.clearedFields[agentstate.FieldHourWindowStart] = struct{}{}
}

// HourWindowStartCleared returns if the "hour_window_start" field was cleared in this mutation.
func (m *AgentStateMutation) HourWindowStartCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldHourWindowStart]
	return ok
}

// ResetHourWindowStart resets all changes to the "hour_window_start" field.
func (m *AgentStateMutation) ResetHourWindowStart() {
	m.hour_window_start = nil
	delete(m.clearedFields, agentstate.FieldHourWindowStart)
}

// SetHourWindowCount sets the "hour_window_count" field.
func (m *AgentStateMutation) SetHourWindowCount(i int) {
	m.hour_window_count = &i
	m.addhour_window_count = nil
}

// HourWindowCount returns the value of the "hour_window_count" field in the mutation.
func (m *AgentStateMutation) HourWindowCount() (r int, exists bool) {
	v := m.hour_window_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHourWindowCount returns the old "hour_window_count" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldHourWindowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHourWindowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHourWindowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHourWindowCount: %w", err)
	}
	return oldValue.HourWindowCount, nil
}

// AddHourWindowCount adds i to the "hour_window_count" field.
func (m *AgentStateMutation) AddHourWindowCount(i int) {
	if m.addhour_window_count != nil {
		*m.addhour_window_count += i
	} else {
		m.addhour_window_count = &i
	}
}

// AddedHourWindowCount returns the value that was added to the "hour_window_count" field in this mutation.
func (m *AgentStateMutation) AddedHourWindowCount() (r int, exists bool) {
	v := m.addhour_window_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHourWindowCount resets all changes to the "hour_window_count" field.
func (m *AgentStateMutation) ResetHourWindowCount() {
	m.hour_window_count = nil
	m.addhour_window_count = nil
}

// SetDayWindowStart sets the "day_window_start" field.
func (m *AgentStateMutation) SetDayWindowStart(t time.Time) {
	m.day_window_start = &t
}

// DayWindowStart returns the value of the "day_window_start" field in the mutation.
func (m *AgentStateMutation) DayWindowStart() (r time.Time, exists bool) {
	v := m.day_window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldDayWindowStart returns the old "day_window_start" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldDayWindowStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayWindowStart: %w", err)
	}
	return oldValue.DayWindowStart, nil
}

// ClearDayWindowStart clears the value of the "day_window_start" field.
func (m *AgentStateMutation) ClearDayWindowStart() {
	m.day_window_start = nil
	m.clearedFields[agentstate.FieldDayWindowStart] = struct{}{}
}

// DayWindowStartCleared returns if the "day_window_start" field was cleared in this mutation.
func (m *AgentStateMutation) DayWindowStartCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldDayWindowStart]
	return ok
}

// ResetDayWindowStart resets all changes to the "day_window_start" field.
func (m *AgentStateMutation) ResetDayWindowStart() {
	m.day_window_start = nil
	delete(m.clearedFields, agentstate.FieldDayWindowStart)
}

// SetDayWindowCount sets the "day_window_count" field.
func (m *AgentStateMutation) SetDayWindowCount(i int) {
	m.day_window_count = &i
	m.addday_window_count = nil
}

// DayWindowCount returns the value of the "day_window_count" field in the mutation.
func (m *AgentStateMutation) DayWindowCount() (r int, exists bool) {
	v := m.day_window_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDayWindowCount returns the old "day_window_count" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldDayWindowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayWindowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayWindowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayWindowCount: %w", err)
	}
	return oldValue.DayWindowCount, nil
}

// AddDayWindowCount adds i to the "day_window_count" field.
func (m *AgentStateMutation) AddDayWindowCount(i int) {
	if m.addday_window_count != nil {
		*m.addday_window_count += i
	} else {
		m.addday_window_count = &i
	}
}

// AddedDayWindowCount returns the value that was added to the "day_window_count" field in this mutation.
func (m *AgentStateMutation) AddedDayWindowCount() (r int, exists bool) {
	v := m.addday_window_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayWindowCount resets all changes to the "day_window_count" field.
func (m *AgentStateMutation) ResetDayWindowCount() {
	m.day_window_count = nil
	m.addday_window_count = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *AgentStateMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *AgentStateMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *AgentStateMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[agentstate.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *AgentStateMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *AgentStateMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, agentstate.FieldLastHeartbeat)
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *AgentStateMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *AgentStateMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *AgentStateMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *AgentStateMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *AgentStateMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetSuccessRate sets the "success_rate" field.
func (m *AgentStateMutation) SetSuccessRate(f float64) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *AgentStateMutation) SuccessRate() (r float64, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldSuccessRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRate: %w", err)
	}
	return oldValue.SuccessRate, nil
}

// AddSuccessRate adds f to the "success_rate" field.
func (m *AgentStateMutation) AddSuccessRate(f float64) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *AgentStateMutation) AddedSuccessRate() (r float64, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *AgentStateMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (m *AgentStateMutation) SetAvgLatencyMs(f float64) {
	m.avg_latency_ms = &f
	m.addavg_latency_ms = nil
}

// AvgLatencyMs returns the value of the "avg_latency_ms" field in the mutation.
func (m *AgentStateMutation) AvgLatencyMs() (r float64, exists bool) {
	v := m.avg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatencyMs returns the old "avg_latency_ms" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAvgLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatencyMs: %w", err)
	}
	return oldValue.AvgLatencyMs, nil
}

// AddAvgLatencyMs adds f to the "avg_latency_ms" field.
func (m *AgentStateMutation) AddAvgLatencyMs(f float64) {
	if m.addavg_latency_ms != nil {
		*m.addavg_latency_ms += f
	} else {
		m.addavg_latency_ms = &f
	}
}

// AddedAvgLatencyMs returns the value that was added to the "avg_latency_ms" field in this mutation.
func (m *AgentStateMutation) AddedAvgLatencyMs() (r float64, exists bool) {
	v := m.addavg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatencyMs resets all changes to the "avg_latency_ms" field.
func (m *AgentStateMutation) ResetAvgLatencyMs() {
	m.avg_latency_ms = nil
	m.addavg_latency_ms = nil
}

// SetVersion sets the "version" field.
func (m *AgentStateMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentStateMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentStateMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentStateMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentStateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentStateMutation builder.
func (m *AgentStateMutation) Where(ps ...predicate.AgentState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentState).
func (m *AgentStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStateMutation) Fields() []string {
	fields := make([]string, 0, 33)
	if m.tenant_id != nil {
		fields = append(fields, agentstate.FieldTenantID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentstate.FieldAgentName)
	}
	if m.status != nil {
		fields = append(fields, agentstate.FieldStatus)
	}
	if m.last_execution != nil {
		fields = append(fields, agentstate.FieldLastExecution)
	}
	if m.next_scheduled != nil {
		fields = append(fields, agentstate.FieldNextScheduled)
	}
	if m.breaker_state != nil {
		fields = append(fields, agentstate.FieldBreakerState)
	}
	if m.breaker_consecutive_errors != nil {
		fields = append(fields, agentstate.FieldBreakerConsecutiveErrors)
	}
	if m.breaker_last_error != nil {
		fields = append(fields, agentstate.FieldBreakerLastError)
	}
	if m.breaker_first_failure_at != nil {
		fields = append(fields, agentstate.FieldBreakerFirstFailureAt)
	}
	if m.breaker_cooldown_until != nil {
		fields = append(fields, agentstate.FieldBreakerCooldownUntil)
	}
	if m.breaker_cooldown_minutes != nil {
		fields = append(fields, agentstate.FieldBreakerCooldownMinutes)
	}
	if m.probe_in_flight != nil {
		fields = append(fields, agentstate.FieldProbeInFlight)
	}
	if m.max_hourly_actions != nil {
		fields = append(fields, agentstate.FieldMaxHourlyActions)
	}
	if m.max_daily_actions != nil {
		fields = append(fields, agentstate.FieldMaxDailyActions)
	}
	if m.cooldown_minutes != nil {
		fields = append(fields, agentstate.FieldCooldownMinutes)
	}
	if m._config != nil {
		fields = append(fields, agentstate.FieldConfig)
	}
	if m.counter_date != nil {
		fields = append(fields, agentstate.FieldCounterDate)
	}
	if m.actions_taken != nil {
		fields = append(fields, agentstate.FieldActionsTaken)
	}
	if m.actions_successful != nil {
		fields = append(fields, agentstate.FieldActionsSuccessful)
	}
	if m.actions_failed != nil {
		fields = append(fields, agentstate.FieldActionsFailed)
	}
	if m.revenue_generated != nil {
		fields = append(fields, agentstate.FieldRevenueGenerated)
	}
	if m.actions_by_type != nil {
		fields = append(fields, agentstate.FieldActionsByType)
	}
	if m.hour_window_start != nil {
		fields = append(fields, agentstate.FieldHourWindowStart)
	}
	if m.hour_window_count != nil {
		fields = append(fields, agentstate.FieldHourWindowCount)
	}
	if m.day_window_start != nil {
		fields = append(fields, agentstate.FieldDayWindowStart)
	}
	if m.day_window_count != nil {
		fields = append(fields, agentstate.FieldDayWindowCount)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, agentstate.FieldLastHeartbeat)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, agentstate.FieldConsecutiveFailures)
	}
	if m.success_rate != nil {
		fields = append(fields, agentstate.FieldSuccessRate)
	}
	if m.avg_latency_ms != nil {
		fields = append(fields, agentstate.FieldAvgLatencyMs)
	}
	if m.version != nil {
		fields = append(fields, agentstate.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, agentstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldTenantID:
		return m.TenantID()
	case agentstate.FieldAgentName:
		return m.AgentName()
	case agentstate.FieldStatus:
		return m.Status()
	case agentstate.FieldLastExecution:
		return m.LastExecution()
	case agentstate.FieldNextScheduled:
		return m.NextScheduled()
	case agentstate.FieldBreakerState:
		return m.BreakerState()
	case agentstate.FieldBreakerConsecutiveErrors:
		return m.BreakerConsecutiveErrors()
	case agentstate.FieldBreakerLastError:
		return m.BreakerLastError()
	case agentstate.FieldBreakerFirstFailureAt:
		return m.BreakerFirstFailureAt()
	case agentstate.FieldBreakerCooldownUntil:
		return m.BreakerCooldownUntil()
	case agentstate.FieldBreakerCooldownMinutes:
		return m.BreakerCooldownMinutes()
	case agentstate.FieldProbeInFlight:
		return m.ProbeInFlight()
	case agentstate.FieldMaxHourlyActions:
		return m.MaxHourlyActions()
	case agentstate.FieldMaxDailyActions:
		return m.MaxDailyActions()
	case agentstate.FieldCooldownMinutes:
		return m.CooldownMinutes()
	case agentstate.FieldConfig:
		return m.Config()
	case agentstate.FieldCounterDate:
		return m.CounterDate()
	case agentstate.FieldActionsTaken:
		return m.ActionsTaken()
	case agentstate.FieldActionsSuccessful:
		return m.ActionsSuccessful()
	case agentstate.FieldActionsFailed:
		return m.ActionsFailed()
	case agentstate.FieldRevenueGenerated:
		return m.RevenueGenerated()
	case agentstate.FieldActionsByType:
		return m.ActionsByType()
	case agentstate.FieldHourWindowStart:
		return m.HourWindowStart()
	case agentstate.FieldHourWindowCount:
		return m.HourWindowCount()
	case agentstate.FieldDayWindowStart:
		return m.DayWindowStart()
	case agentstate.FieldDayWindowCount:
		return m.DayWindowCount()
	case agentstate.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case agentstate.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case agentstate.FieldSuccessRate:
		return m.SuccessRate()
	case agentstate.FieldAvgLatencyMs:
		return m.AvgLatencyMs()
	case agentstate.FieldVersion:
		return m.Version()
	case agentstate.FieldCreatedAt:
		return m.CreatedAt()
	case agentstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstate.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentstate.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentstate.FieldStatus:
		return m.OldStatus(ctx)
	case agentstate.FieldLastExecution:
		return m.OldLastExecution(ctx)
	case agentstate.FieldNextScheduled:
		return m.OldNextScheduled(ctx)
	case agentstate.FieldBreakerState:
		return m.OldBreakerState(ctx)
	case agentstate.FieldBreakerConsecutiveErrors:
		return m.OldBreakerConsecutiveErrors(ctx)
	case agentstate.FieldBreakerLastError:
		return m.OldBreakerLastError(ctx)
	case agentstate.FieldBreakerFirstFailureAt:
		return m.OldBreakerFirstFailureAt(ctx)
	case agentstate.FieldBreakerCooldownUntil:
		return m.OldBreakerCooldownUntil(ctx)
	case agentstate.FieldBreakerCooldownMinutes:
		return m.OldBreakerCooldownMinutes(ctx)
	case agentstate.FieldProbeInFlight:
		return m.OldProbeInFlight(ctx)
	case agentstate.FieldMaxHourlyActions:
		return m.OldMaxHourlyActions(ctx)
	case agentstate.FieldMaxDailyActions:
		return m.OldMaxDailyActions(ctx)
	case agentstate.FieldCooldownMinutes:
		return m.OldCooldownMinutes(ctx)
	case agentstate.FieldConfig:
		return m.OldConfig(ctx)
	case agentstate.FieldCounterDate:
		return m.OldCounterDate(ctx)
	case agentstate.FieldActionsTaken:
		return m.OldActionsTaken(ctx)
	case agentstate.FieldActionsSuccessful:
		return m.OldActionsSuccessful(ctx)
	case agentstate.FieldActionsFailed:
		return m.OldActionsFailed(ctx)
	case agentstate.FieldRevenueGenerated:
		return m.OldRevenueGenerated(ctx)
	case agentstate.FieldActionsByType:
		return m.OldActionsByType(ctx)
	case agentstate.FieldHourWindowStart:
		return m.OldHourWindowStart(ctx)
	case agentstate.FieldHourWindowCount:
		return m.OldHourWindowCount(ctx)
	case agentstate.FieldDayWindowStart:
		return m.OldDayWindowStart(ctx)
	case agentstate.FieldDayWindowCount:
		return m.OldDayWindowCount(ctx)
	case agentstate.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case agentstate.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case agentstate.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	case agentstate.FieldAvgLatencyMs:
		return m.OldAvgLatencyMs(ctx)
	case agentstate.FieldVersion:
		return m.OldVersion(ctx)
	case agentstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentstate.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentstate.FieldStatus:
		v, ok := value.(agentstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstate.FieldLastExecution:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExecution(v)
		return nil
	case agentstate.FieldNextScheduled:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextScheduled(v)
		return nil
	case agentstate.FieldBreakerState:
		v, ok := value.(agentstate.BreakerState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerState(v)
		return nil
	case agentstate.FieldBreakerConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerConsecutiveErrors(v)
		return nil
	case agentstate.FieldBreakerLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerLastError(v)
		return nil
	case agentstate.FieldBreakerFirstFailureAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerFirstFailureAt(v)
		return nil
	case agentstate.FieldBreakerCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerCooldownUntil(v)
		return nil
	case agentstate.FieldBreakerCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakerCooldownMinutes(v)
		return nil
	case agentstate.FieldProbeInFlight:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbeInFlight(v)
		return nil
	case agentstate.FieldMaxHourlyActions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxHourlyActions(v)
		return nil
	case agentstate.FieldMaxDailyActions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDailyActions(v)
		return nil
	case agentstate.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownMinutes(v)
		return nil
	case agentstate.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agentstate.FieldCounterDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounterDate(v)
		return nil
	case agentstate.FieldActionsTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsTaken(v)
		return nil
	case agentstate.FieldActionsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsSuccessful(v)
		return nil
	case agentstate.FieldActionsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsFailed(v)
		return nil
	case agentstate.FieldRevenueGenerated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenueGenerated(v)
		return nil
	case agentstate.FieldActionsByType:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsByType(v)
		return nil
	case agentstate.FieldHourWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHourWindowStart(v)
		return nil
	case agentstate.FieldHourWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHourWindowCount(v)
		return nil
	case agentstate.FieldDayWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayWindowStart(v)
		return nil
	case agentstate.FieldDayWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayWindowCount(v)
		return nil
	case agentstate.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case agentstate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case agentstate.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	case agentstate.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatencyMs(v)
		return nil
	case agentstate.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStateMutation) AddedFields() []string {
	var fields []string
	if m.addbreaker_consecutive_errors != nil {
		fields = append(fields, agentstate.FieldBreakerConsecutiveErrors)
	}
	if m.addbreaker_cooldown_minutes != nil {
		fields = append(fields, agentstate.FieldBreakerCooldownMinutes)
	}
	if m.addmax_hourly_actions != nil {
		fields = append(fields, agentstate.FieldMaxHourlyActions)
	}
	if m.addmax_daily_actions != nil {
		fields = append(fields, agentstate.FieldMaxDailyActions)
	}
	if m.addcooldown_minutes != nil {
		fields = append(fields, agentstate.FieldCooldownMinutes)
	}
	if m.addactions_taken != nil {
		fields = append(fields, agentstate.FieldActionsTaken)
	}
	if m.addactions_successful != nil {
		fields = append(fields, agentstate.FieldActionsSuccessful)
	}
	if m.addactions_failed != nil {
		fields = append(fields, agentstate.FieldActionsFailed)
	}
	if m.addrevenue_generated != nil {
		fields = append(fields, agentstate.FieldRevenueGenerated)
	}
	if m.addhour_window_count != nil {
		fields = append(fields, agentstate.FieldHourWindowCount)
	}
	if m.addday_window_count != nil {
		fields = append(fields, agentstate.FieldDayWindowCount)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, agentstate.FieldConsecutiveFailures)
	}
	if m.addsuccess_rate != nil {
		fields = append(fields, agentstate.FieldSuccessRate)
	}
	if m.addavg_latency_ms != nil {
		fields = append(fields, agentstate.FieldAvgLatencyMs)
	}
	if m.addversion != nil {
		fields = append(fields, agentstate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldBreakerConsecutiveErrors:
		return m.AddedBreakerConsecutiveErrors()
	case agentstate.FieldBreakerCooldownMinutes:
		return m.AddedBreakerCooldownMinutes()
	case agentstate.FieldMaxHourlyActions:
		return m.AddedMaxHourlyActions()
	case agentstate.FieldMaxDailyActions:
		return m.AddedMaxDailyActions()
	case agentstate.FieldCooldownMinutes:
		return m.AddedCooldownMinutes()
	case agentstate.FieldActionsTaken:
		return m.AddedActionsTaken()
	case agentstate.FieldActionsSuccessful:
		return m.AddedActionsSuccessful()
	case agentstate.FieldActionsFailed:
		return m.AddedActionsFailed()
	case agentstate.FieldRevenueGenerated:
		return m.AddedRevenueGenerated()
	case agentstate.FieldHourWindowCount:
		return m.AddedHourWindowCount()
	case agentstate.FieldDayWindowCount:
		return m.AddedDayWindowCount()
	case agentstate.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	case agentstate.FieldSuccessRate:
		return m.AddedSuccessRate()
	case agentstate.FieldAvgLatencyMs:
		return m.AddedAvgLatencyMs()
	case agentstate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldBreakerConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBreakerConsecutiveErrors(v)
		return nil
	case agentstate.FieldBreakerCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBreakerCooldownMinutes(v)
		return nil
	case agentstate.FieldMaxHourlyActions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxHourlyActions(v)
		return nil
	case agentstate.FieldMaxDailyActions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDailyActions(v)
		return nil
	case agentstate.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCooldownMinutes(v)
		return nil
	case agentstate.FieldActionsTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsTaken(v)
		return nil
	case agentstate.FieldActionsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsSuccessful(v)
		return nil
	case agentstate.FieldActionsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsFailed(v)
		return nil
	case agentstate.FieldRevenueGenerated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenueGenerated(v)
		return nil
	case agentstate.FieldHourWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHourWindowCount(v)
		return nil
	case agentstate.FieldDayWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayWindowCount(v)
		return nil
	case agentstate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	case agentstate.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	case agentstate.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatencyMs(v)
		return nil
	case agentstate.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstate.FieldLastExecution) {
		fields = append(fields, agentstate.FieldLastExecution)
	}
	if m.FieldCleared(agentstate.FieldNextScheduled) {
		fields = append(fields, agentstate.FieldNextScheduled)
	}
	if m.FieldCleared(agentstate.FieldBreakerLastError) {
		fields = append(fields, agentstate.FieldBreakerLastError)
	}
	if m.FieldCleared(agentstate.FieldBreakerFirstFailureAt) {
		fields = append(fields, agentstate.FieldBreakerFirstFailureAt)
	}
	if m.FieldCleared(agentstate.FieldBreakerCooldownUntil) {
		fields = append(fields, agentstate.FieldBreakerCooldownUntil)
	}
	if m.FieldCleared(agentstate.FieldConfig) {
		fields = append(fields, agentstate.FieldConfig)
	}
	if m.FieldCleared(agentstate.FieldActionsByType) {
		fields = append(fields, agentstate.FieldActionsByType)
	}
	if m.FieldCleared(agentstate.FieldHourWindowStart) {
		fields = append(fields, agentstate.FieldHourWindowStart)
	}
	if m.FieldCleared(agentstate.FieldDayWindowStart) {
		fields = append(fields, agentstate.FieldDayWindowStart)
	}
	if m.FieldCleared(agentstate.FieldLastHeartbeat) {
		fields = append(fields, agentstate.FieldLastHeartbeat)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStateMutation) ClearField(name string) error {
	switch name {
	case agentstate.FieldLastExecution:
		m.ClearLastExecution()
		return nil
	case agentstate.FieldNextScheduled:
		m.ClearNextScheduled()
		return nil
	case agentstate.FieldBreakerLastError:
		m.ClearBreakerLastError()
		return nil
	case agentstate.FieldBreakerFirstFailureAt:
		m.ClearBreakerFirstFailureAt()
		return nil
	case agentstate.FieldBreakerCooldownUntil:
		m.ClearBreakerCooldownUntil()
		return nil
	case agentstate.FieldConfig:
		m.ClearConfig()
		return nil
	case agentstate.FieldActionsByType:
		m.ClearActionsByType()
		return nil
	case agentstate.FieldHourWindowStart:
		m.ClearHourWindowStart()
		return nil
	case agentstate.FieldDayWindowStart:
		m.ClearDayWindowStart()
		return nil
	case agentstate.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown AgentState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStateMutation) ResetField(name string) error {
	switch name {
	case agentstate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentstate.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentstate.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstate.FieldLastExecution:
		m.ResetLastExecution()
		return nil
	case agentstate.FieldNextScheduled:
		m.ResetNextScheduled()
		return nil
	case agentstate.FieldBreakerState:
		m.ResetBreakerState()
		return nil
	case agentstate.FieldBreakerConsecutiveErrors:
		m.ResetBreakerConsecutiveErrors()
		return nil
	case agentstate.FieldBreakerLastError:
		m.ResetBreakerLastError()
		return nil
	case agentstate.FieldBreakerFirstFailureAt:
		m.ResetBreakerFirstFailureAt()
		return nil
	case agentstate.FieldBreakerCooldownUntil:
		m.ResetBreakerCooldownUntil()
		return nil
	case agentstate.FieldBreakerCooldownMinutes:
		m.ResetBreakerCooldownMinutes()
		return nil
	case agentstate.FieldProbeInFlight:
		m.ResetProbeInFlight()
		return nil
	case agentstate.FieldMaxHourlyActions:
		m.ResetMaxHourlyActions()
		return nil
	case agentstate.FieldMaxDailyActions:
		m.ResetMaxDailyActions()
		return nil
	case agentstate.FieldCooldownMinutes:
		m.ResetCooldownMinutes()
		return nil
	case agentstate.FieldConfig:
		m.ResetConfig()
		return nil
	case agentstate.FieldCounterDate:
		m.ResetCounterDate()
		return nil
	case agentstate.FieldActionsTaken:
		m.ResetActionsTaken()
		return nil
	case agentstate.FieldActionsSuccessful:
		m.ResetActionsSuccessful()
		return nil
	case agentstate.FieldActionsFailed:
		m.ResetActionsFailed()
		return nil
	case agentstate.FieldRevenueGenerated:
		m.ResetRevenueGenerated()
		return nil
	case agentstate.FieldActionsByType:
		m.ResetActionsByType()
		return nil
	case agentstate.FieldHourWindowStart:
		m.ResetHourWindowStart()
		return nil
	case agentstate.FieldHourWindowCount:
		m.ResetHourWindowCount()
		return nil
	case agentstate.FieldDayWindowStart:
		m.ResetDayWindowStart()
		return nil
	case agentstate.FieldDayWindowCount:
		m.ResetDayWindowCount()
		return nil
	case agentstate.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case agentstate.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case agentstate.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	case agentstate.FieldAvgLatencyMs:
		m.ResetAvgLatencyMs()
		return nil
	case agentstate.FieldVersion:
		m.ResetVersion()
		return nil
	case agentstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentState edge %s", name)
}

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	decision_id        *string
	agent_name         *string
	action_type        *string
	action_summary     *string
	action_detail      *map[string]interface{}
	priority           *approval.Priority
	status             *approval.Status
	notifications_sent *map[string]bool
	response_action    *string
	responder          *string
	responded_at       *time.Time
	response_notes     *string
	created_at         *time.Time
	updated_at         *time.Time
	expires_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Approval, error)
	predicates         []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ApprovalMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ApprovalMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ApprovalMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDecisionID sets the "decision_id" field.
func (m *ApprovalMutation) SetDecisionID(s string) {
	m.decision_id = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *ApprovalMutation) DecisionID() (r string, exists bool) {
	v := m.decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *ApprovalMutation) ResetDecisionID() {
	m.decision_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *ApprovalMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ApprovalMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ApprovalMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetActionType sets the "action_type" field.
func (m *ApprovalMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *ApprovalMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *ApprovalMutation) ResetActionType() {
	m.action_type = nil
}

// SetActionSummary sets the "action_summary" field.
func (m *ApprovalMutation) SetActionSummary(s string) {
	m.action_summary = &s
}

// ActionSummary returns the value of the "action_summary" field in the mutation.
func (m *ApprovalMutation) ActionSummary() (r string, exists bool) {
	v := m.action_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldActionSummary returns the old "action_summary" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldActionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionSummary: %w", err)
	}
	return oldValue.ActionSummary, nil
}

// ResetActionSummary resets all changes to the "action_summary" field.
func (m *ApprovalMutation) ResetActionSummary() {
	m.action_summary = nil
}

// SetActionDetail sets the "action_detail" field.
func (m *ApprovalMutation) SetActionDetail(value map[string]interface{}) {
	m.action_detail = &value
}

// ActionDetail returns the value of the "action_detail" field in the mutation.
func (m *ApprovalMutation) ActionDetail() (r map[string]interface{}, exists bool) {
	v := m.action_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldActionDetail returns the old "action_detail" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldActionDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionDetail: %w", err)
	}
	return oldValue.ActionDetail, nil
}

// ClearActionDetail clears the value of the "action_detail" field.
func (m *ApprovalMutation) ClearActionDetail() {
	m.action_detail = nil
	m.clearedFields[approval.FieldActionDetail] = struct{}{}
}

// ActionDetailCleared returns if the "action_detail" field was cleared in this mutation.
func (m *ApprovalMutation) ActionDetailCleared() bool {
	_, ok := m.clearedFields[approval.FieldActionDetail]
	return ok
}

// ResetActionDetail resets all changes to the "action_detail" field.
func (m *ApprovalMutation) ResetActionDetail() {
	m.action_detail = nil
	delete(m.clearedFields, approval.FieldActionDetail)
}

// SetPriority sets the "priority" field.
func (m *ApprovalMutation) SetPriority(a approval.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ApprovalMutation) Priority() (r approval.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldPriority(ctx context.Context) (v approval.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ApprovalMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalMutation) SetStatus(a approval.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalMutation) Status() (r approval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStatus(ctx context.Context) (v approval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetNotificationsSent sets the "notifications_sent" field.
func (m *ApprovalMutation) SetNotificationsSent(value map[string]bool) {
	m.notifications_sent = &value
}

// NotificationsSent returns the value of the "notifications_sent" field in the mutation.
func (m *ApprovalMutation) NotificationsSent() (r map[string]bool, exists bool) {
	v := m.notifications_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationsSent returns the old "notifications_sent" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldNotificationsSent(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationsSent: %w", err)
	}
	return oldValue.NotificationsSent, nil
}

// ClearNotificationsSent clears the value of the "notifications_sent" field.
func (m *ApprovalMutation) ClearNotificationsSent() {
	m.notifications_sent = nil
	m.clearedFields[approval.FieldNotificationsSent] = struct{}{}
}

// NotificationsSentCleared returns if the "notifications_sent" field was cleared in this mutation.
func (m *ApprovalMutation) NotificationsSentCleared() bool {
	_, ok := m.clearedFields[approval.FieldNotificationsSent]
	return ok
}

// ResetNotificationsSent resets all changes to the "notifications_sent" field.
func (m *ApprovalMutation) ResetNotificationsSent() {
	m.notifications_sent = nil
	delete(m.clearedFields, approval.FieldNotificationsSent)
}

// SetResponseAction sets the "response_action" field.
func (m *ApprovalMutation) SetResponseAction(s string) {
	m.response_action = &s
}

// ResponseAction returns the value of the "response_action" field in the mutation.
func (m *ApprovalMutation) ResponseAction() (r string, exists bool) {
	v := m.response_action
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseAction returns the old "response_action" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldResponseAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseAction: %w", err)
	}
	return oldValue.ResponseAction, nil
}

// ClearResponseAction clears the value of the "response_action" field.
func (m *ApprovalMutation) ClearResponseAction() {
	m.response_action = nil
	m.clearedFields[approval.FieldResponseAction] = struct{}{}
}

// ResponseActionCleared returns if the "response_action" field was cleared in this mutation.
func (m *ApprovalMutation) ResponseActionCleared() bool {
	_, ok := m.clearedFields[approval.FieldResponseAction]
	return ok
}

// ResetResponseAction resets all changes to the "response_action" field.
func (m *ApprovalMutation) ResetResponseAction() {
	m.response_action = nil
	delete(m.clearedFields, approval.FieldResponseAction)
}

// SetResponder sets the "responder" field.
func (m *ApprovalMutation) SetResponder(s string) {
	m.responder = &s
}

// Responder returns the value of the "responder" field in the mutation.
func (m *ApprovalMutation) Responder() (r string, exists bool) {
	v := m.responder
	if v == nil {
		return
	}
	return *v, true
}

// OldResponder returns the old "responder" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldResponder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponder: %w", err)
	}
	return oldValue.Responder, nil
}

// ClearResponder clears the value of the "responder" field.
func (m *ApprovalMutation) ClearResponder() {
	m.responder = nil
	m.clearedFields[approval.FieldResponder] = struct{}{}
}

// ResponderCleared returns if the "responder" field was cleared in this mutation.
func (m *ApprovalMutation) ResponderCleared() bool {
	_, ok := m.clearedFields[approval.FieldResponder]
	return ok
}

// ResetResponder resets all changes to the "responder" field.
func (m *ApprovalMutation) ResetResponder() {
	m.responder = nil
	delete(m.clearedFields, approval.FieldResponder)
}

// SetRespondedAt sets the "responded_at" field.
func (m *ApprovalMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *ApprovalMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRespondedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *ApprovalMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[approval.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *ApprovalMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[approval.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *ApprovalMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, approval.FieldRespondedAt)
}

// SetResponseNotes sets the "response_notes" field.
func (m *ApprovalMutation) SetResponseNotes(s string) {
	m.response_notes = &s
}

// ResponseNotes returns the value of the "response_notes" field in the mutation.
func (m *ApprovalMutation) ResponseNotes() (r string, exists bool) {
	v := m.response_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseNotes returns the old "response_notes" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldResponseNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseNotes: %w", err)
	}
	return oldValue.ResponseNotes, nil
}

// ClearResponseNotes clears the value of the "response_notes" field.
func (m *ApprovalMutation) ClearResponseNotes() {
	m.response_notes = nil
	m.clearedFields[approval.FieldResponseNotes] = struct{}{}
}

// ResponseNotesCleared returns if the "response_notes" field was cleared in this mutation.
func (m *ApprovalMutation) ResponseNotesCleared() bool {
	_, ok := m.clearedFields[approval.FieldResponseNotes]
	return ok
}

// ResetResponseNotes resets all changes to the "response_notes" field.
func (m *ApprovalMutation) ResetResponseNotes() {
	m.response_notes = nil
	delete(m.clearedFields, approval.FieldResponseNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApprovalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApprovalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApprovalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant_id != nil {
		fields = append(fields, approval.FieldTenantID)
	}
	if m.decision_id != nil {
		fields = append(fields, approval.FieldDecisionID)
	}
	if m.agent_name != nil {
		fields = append(fields, approval.FieldAgentName)
	}
	if m.action_type != nil {
		fields = append(fields, approval.FieldActionType)
	}
	if m.action_summary != nil {
		fields = append(fields, approval.FieldActionSummary)
	}
	if m.action_detail != nil {
		fields = append(fields, approval.FieldActionDetail)
	}
	if m.priority != nil {
		fields = append(fields, approval.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, approval.FieldStatus)
	}
	if m.notifications_sent != nil {
		fields = append(fields, approval.FieldNotificationsSent)
	}
	if m.response_action != nil {
		fields = append(fields, approval.FieldResponseAction)
	}
	if m.responder != nil {
		fields = append(fields, approval.FieldResponder)
	}
	if m.responded_at != nil {
		fields = append(fields, approval.FieldRespondedAt)
	}
	if m.response_notes != nil {
		fields = append(fields, approval.FieldResponseNotes)
	}
	if m.created_at != nil {
		fields = append(fields, approval.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, approval.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, approval.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldTenantID:
		return m.TenantID()
	case approval.FieldDecisionID:
		return m.DecisionID()
	case approval.FieldAgentName:
		return m.AgentName()
	case approval.FieldActionType:
		return m.ActionType()
	case approval.FieldActionSummary:
		return m.ActionSummary()
	case approval.FieldActionDetail:
		return m.ActionDetail()
	case approval.FieldPriority:
		return m.Priority()
	case approval.FieldStatus:
		return m.Status()
	case approval.FieldNotificationsSent:
		return m.NotificationsSent()
	case approval.FieldResponseAction:
		return m.ResponseAction()
	case approval.FieldResponder:
		return m.Responder()
	case approval.FieldRespondedAt:
		return m.RespondedAt()
	case approval.FieldResponseNotes:
		return m.ResponseNotes()
	case approval.FieldCreatedAt:
		return m.CreatedAt()
	case approval.FieldUpdatedAt:
		return m.UpdatedAt()
	case approval.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldTenantID:
		return m.OldTenantID(ctx)
	case approval.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case approval.FieldAgentName:
		return m.OldAgentName(ctx)
	case approval.FieldActionType:
		return m.OldActionType(ctx)
	case approval.FieldActionSummary:
		return m.OldActionSummary(ctx)
	case approval.FieldActionDetail:
		return m.OldActionDetail(ctx)
	case approval.FieldPriority:
		return m.OldPriority(ctx)
	case approval.FieldStatus:
		return m.OldStatus(ctx)
	case approval.FieldNotificationsSent:
		return m.OldNotificationsSent(ctx)
	case approval.FieldResponseAction:
		return m.OldResponseAction(ctx)
	case approval.FieldResponder:
		return m.OldResponder(ctx)
	case approval.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case approval.FieldResponseNotes:
		return m.OldResponseNotes(ctx)
	case approval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approval.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case approval.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case approval.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case approval.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case approval.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case approval.FieldActionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionSummary(v)
		return nil
	case approval.FieldActionDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionDetail(v)
		return nil
	case approval.FieldPriority:
		v, ok := value.(approval.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case approval.FieldStatus:
		v, ok := value.(approval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approval.FieldNotificationsSent:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationsSent(v)
		return nil
	case approval.FieldResponseAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseAction(v)
		return nil
	case approval.FieldResponder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponder(v)
		return nil
	case approval.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case approval.FieldResponseNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseNotes(v)
		return nil
	case approval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approval.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case approval.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldActionDetail) {
		fields = append(fields, approval.FieldActionDetail)
	}
	if m.FieldCleared(approval.FieldNotificationsSent) {
		fields = append(fields, approval.FieldNotificationsSent)
	}
	if m.FieldCleared(approval.FieldResponseAction) {
		fields = append(fields, approval.FieldResponseAction)
	}
	if m.FieldCleared(approval.FieldResponder) {
		fields = append(fields, approval.FieldResponder)
	}
	if m.FieldCleared(approval.FieldRespondedAt) {
		fields = append(fields, approval.FieldRespondedAt)
	}
	if m.FieldCleared(approval.FieldResponseNotes) {
		fields = append(fields, approval.FieldResponseNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldActionDetail:
		m.ClearActionDetail()
		return nil
	case approval.FieldNotificationsSent:
		m.ClearNotificationsSent()
		return nil
	case approval.FieldResponseAction:
		m.ClearResponseAction()
		return nil
	case approval.FieldResponder:
		m.ClearResponder()
		return nil
	case approval.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case approval.FieldResponseNotes:
		m.ClearResponseNotes()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldTenantID:
		m.ResetTenantID()
		return nil
	case approval.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case approval.FieldAgentName:
		m.ResetAgentName()
		return nil
	case approval.FieldActionType:
		m.ResetActionType()
		return nil
	case approval.FieldActionSummary:
		m.ResetActionSummary()
		return nil
	case approval.FieldActionDetail:
		m.ResetActionDetail()
		return nil
	case approval.FieldPriority:
		m.ResetPriority()
		return nil
	case approval.FieldStatus:
		m.ResetStatus()
		return nil
	case approval.FieldNotificationsSent:
		m.ResetNotificationsSent()
		return nil
	case approval.FieldResponseAction:
		m.ResetResponseAction()
		return nil
	case approval.FieldResponder:
		m.ResetResponder()
		return nil
	case approval.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case approval.FieldResponseNotes:
		m.ResetResponseNotes()
		return nil
	case approval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approval.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case approval.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Approval edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	tenant_id     *string
	event_type    *string
	severity      *auditlog.Severity
	actor         *string
	resource_type *string
	resource_id   *string
	details       *map[string]interface{}
	trace_id      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int64) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetEventType sets the "event_type" field.
func (m *AuditLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetSeverity sets the "severity" field.
func (m *AuditLogMutation) SetSeverity(a auditlog.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditLogMutation) Severity() (r auditlog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSeverity(ctx context.Context) (v auditlog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AuditLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *AuditLogMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[auditlog.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, auditlog.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetTraceID sets the "trace_id" field.
func (m *AuditLogMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *AuditLogMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *AuditLogMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[auditlog.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *AuditLogMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *AuditLogMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, auditlog.FieldTraceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, auditlog.FieldTenantID)
	}
	if m.event_type != nil {
		fields = append(fields, auditlog.FieldEventType)
	}
	if m.severity != nil {
		fields = append(fields, auditlog.FieldSeverity)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.trace_id != nil {
		fields = append(fields, auditlog.FieldTraceID)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldTenantID:
		return m.TenantID()
	case auditlog.FieldEventType:
		return m.EventType()
	case auditlog.FieldSeverity:
		return m.Severity()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldTraceID:
		return m.TraceID()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditlog.FieldEventType:
		return m.OldEventType(ctx)
	case auditlog.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldTraceID:
		return m.OldTraceID(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditlog.FieldSeverity:
		v, ok := value.(auditlog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldResourceType) {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.FieldCleared(auditlog.FieldTraceID) {
		fields = append(fields, auditlog.FieldTraceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldResourceType:
		m.ClearResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	case auditlog.FieldTraceID:
		m.ClearTraceID()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditlog.FieldEventType:
		m.ResetEventType()
		return nil
	case auditlog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldTraceID:
		m.ResetTraceID()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CustomerScoreMutation represents an operation that mutates the CustomerScore nodes in the graph.
type CustomerScoreMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	customer_id                *string
	ltv_total                  *int64
	addltv_total               *int64
	ltv_projected              *int64
	addltv_projected           *int64
	avg_visit_value            *int64
	addavg_visit_value         *int64
	visit_frequency_monthly    *float64
	addvisit_frequency_monthly *float64
	est_lifespan_months        *float64
	addest_lifespan_months     *float64
	membership_bonus           *bool
	engagement                 *map[string]interface{}
	churn_score                *int
	addchurn_score             *int
	churn_level                *customerscore.ChurnLevel
	churn_factors              *[]string
	appendchurn_factors        []string
	segment                    *customerscore.Segment
	last_visit_at              *time.Time
	computed_at                *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*CustomerScore, error)
	predicates                 []predicate.CustomerScore
}

var _ ent.Mutation = (*CustomerScoreMutation)(nil)

// customerscoreOption allows management of the mutation configuration using functional options.
type customerscoreOption func(*CustomerScoreMutation)

// newCustomerScoreMutation creates new mutation for the CustomerScore entity.
func newCustomerScoreMutation(c config, op Op, opts ...customerscoreOption) *CustomerScoreMutation {
	m := &CustomerScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomerScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerScoreID sets the ID field of the mutation.
func withCustomerScoreID(id string) customerscoreOption {
	return func(m *CustomerScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *CustomerScore
		)
		m.oldValue = func(ctx context.Context) (*CustomerScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CustomerScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomerScore sets the old CustomerScore of the mutation.
func withCustomerScore(node *CustomerScore) customerscoreOption {
	return func(m *CustomerScoreMutation) {
		m.oldValue = func(context.Context) (*CustomerScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CustomerScore entities.
func (m *CustomerScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CustomerScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CustomerScoreMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CustomerScoreMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CustomerScoreMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *CustomerScoreMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *CustomerScoreMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *CustomerScoreMutation) ResetCustomerID() {
	m.customer_id = nil
}

// SetLtvTotal sets the "ltv_total" field.
func (m *CustomerScoreMutation) SetLtvTotal(i int64) {
	m.ltv_total = &i
	m.addltv_total = nil
}

// LtvTotal returns the value of the "ltv_total" field in the mutation.
func (m *CustomerScoreMutation) LtvTotal() (r int64, exists bool) {
	v := m.ltv_total
	if v == nil {
		return
	}
	return *v, true
}

// OldLtvTotal returns the old "ltv_total" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldLtvTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLtvTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLtvTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLtvTotal: %w", err)
	}
	return oldValue.LtvTotal, nil
}

// AddLtvTotal adds i to the "ltv_total" field.
func (m *CustomerScoreMutation) AddLtvTotal(i int64) {
	if m.addltv_total != nil {
		*m.addltv_total += i
	} else {
		m.addltv_total = &i
	}
}

// AddedLtvTotal returns the value that was added to the "ltv_total" field in this mutation.
func (m *CustomerScoreMutation) AddedLtvTotal() (r int64, exists bool) {
	v := m.addltv_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetLtvTotal resets all changes to the "ltv_total" field.
func (m *CustomerScoreMutation) ResetLtvTotal() {
	m.ltv_total = nil
	m.addltv_total = nil
}

// SetLtvProjected sets the "ltv_projected" field.
func (m *CustomerScoreMutation) SetLtvProjected(i int64) {
	m.ltv_projected = &i
	m.addltv_projected = nil
}

// LtvProjected returns the value of the "ltv_projected" field in the mutation.
func (m *CustomerScoreMutation) LtvProjected() (r int64, exists bool) {
	v := m.ltv_projected
	if v == nil {
		return
	}
	return *v, true
}

// OldLtvProjected returns the old "ltv_projected" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldLtvProjected(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLtvProjected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLtvProjected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLtvProjected: %w", err)
	}
	return oldValue.LtvProjected, nil
}

// AddLtvProjected adds i to the "ltv_projected" field.
func (m *CustomerScoreMutation) AddLtvProjected(i int64) {
	if m.addltv_projected != nil {
		*m.addltv_projected += i
	} else {
		m.addltv_projected = &i
	}
}

// AddedLtvProjected returns the value that was added to the "ltv_projected" field in this mutation.
func (m *CustomerScoreMutation) AddedLtvProjected() (r int64, exists bool) {
	v := m.addltv_projected
	if v == nil {
		return
	}
	return *v, true
}

// ResetLtvProjected resets all changes to the "ltv_projected" field.
func (m *CustomerScoreMutation) ResetLtvProjected() {
	m.ltv_projected = nil
	m.addltv_projected = nil
}

// SetAvgVisitValue sets the "avg_visit_value" field.
func (m *CustomerScoreMutation) SetAvgVisitValue(i int64) {
	m.avg_visit_value = &i
	m.addavg_visit_value = nil
}

// AvgVisitValue returns the value of the "avg_visit_value" field in the mutation.
func (m *CustomerScoreMutation) AvgVisitValue() (r int64, exists bool) {
	v := m.avg_visit_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgVisitValue returns the old "avg_visit_value" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldAvgVisitValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgVisitValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgVisitValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgVisitValue: %w", err)
	}
	return oldValue.AvgVisitValue, nil
}

// AddAvgVisitValue adds i to the "avg_visit_value" field.
func (m *CustomerScoreMutation) AddAvgVisitValue(i int64) {
	if m.addavg_visit_value != nil {
		*m.addavg_visit_value += i
	} else {
		m.addavg_visit_value = &i
	}
}

// AddedAvgVisitValue returns the value that was added to the "avg_visit_value" field in this mutation.
func (m *CustomerScoreMutation) AddedAvgVisitValue() (r int64, exists bool) {
	v := m.addavg_visit_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgVisitValue resets all changes to the "avg_visit_value" field.
func (m *CustomerScoreMutation) ResetAvgVisitValue() {
	m.avg_visit_value = nil
	m.addavg_visit_value = nil
}

// SetVisitFrequencyMonthly sets the "visit_frequency_monthly" field.
func (m *CustomerScoreMutation) SetVisitFrequencyMonthly(f float64) {
	m.visit_frequency_monthly = &f
	m.addvisit_frequency_monthly = nil
}

// VisitFrequencyMonthly returns the value of the "visit_frequency_monthly" field in the mutation.
func (m *CustomerScoreMutation) VisitFrequencyMonthly() (r float64, exists bool) {
	v := m.visit_frequency_monthly
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitFrequencyMonthly returns the old "visit_frequency_monthly" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldVisitFrequencyMonthly(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitFrequencyMonthly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitFrequencyMonthly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitFrequencyMonthly: %w", err)
	}
	return oldValue.VisitFrequencyMonthly, nil
}

// AddVisitFrequencyMonthly adds f to the "visit_frequency_monthly" field.
func (m *CustomerScoreMutation) AddVisitFrequencyMonthly(f float64) {
	if m.addvisit_frequency_monthly != nil {
		*m.addvisit_frequency_monthly += f
	} else {
		m.addvisit_frequency_monthly = &f
	}
}

// AddedVisitFrequencyMonthly returns the value that was added to the "visit_frequency_monthly" field in this mutation.
func (m *CustomerScoreMutation) AddedVisitFrequencyMonthly() (r float64, exists bool) {
	v := m.addvisit_frequency_monthly
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitFrequencyMonthly resets all changes to the "visit_frequency_monthly" field.
func (m *CustomerScoreMutation) ResetVisitFrequencyMonthly() {
	m.visit_frequency_monthly = nil
	m.addvisit_frequency_monthly = nil
}

// SetEstLifespanMonths sets the "est_lifespan_months" field.
func (m *CustomerScoreMutation) SetEstLifespanMonths(f float64) {
	m.est_lifespan_months = &f
	m.addest_lifespan_months = nil
}

// EstLifespanMonths returns the value of the "est_lifespan_months" field in the mutation.
func (m *CustomerScoreMutation) EstLifespanMonths() (r float64, exists bool) {
	v := m.est_lifespan_months
	if v == nil {
		return
	}
	return *v, true
}

// OldEstLifespanMonths returns the old "est_lifespan_months" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldEstLifespanMonths(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstLifespanMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstLifespanMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstLifespanMonths: %w", err)
	}
	return oldValue.EstLifespanMonths, nil
}

// AddEstLifespanMonths adds f to the "est_lifespan_months" field.
func (m *CustomerScoreMutation) AddEstLifespanMonths(f float64) {
	if m.addest_lifespan_months != nil {
		*m.addest_lifespan_months += f
	} else {
		m.addest_lifespan_months = &f
	}
}

// AddedEstLifespanMonths returns the value that was added to the "est_lifespan_months" field in this mutation.
func (m *CustomerScoreMutation) AddedEstLifespanMonths() (r float64, exists bool) {
	v := m.addest_lifespan_months
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstLifespanMonths resets all changes to the "est_lifespan_months" field.
func (m *CustomerScoreMutation) ResetEstLifespanMonths() {
	m.est_lifespan_months = nil
	m.addest_lifespan_months = nil
}

// SetMembershipBonus sets the "membership_bonus" field.
func (m *CustomerScoreMutation) SetMembershipBonus(b bool) {
	m.membership_bonus = &b
}

// MembershipBonus returns the value of the "membership_bonus" field in the mutation.
func (m *CustomerScoreMutation) MembershipBonus() (r bool, exists bool) {
	v := m.membership_bonus
	if v == nil {
		return
	}
	return *v, true
}

// OldMembershipBonus returns the old "membership_bonus" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldMembershipBonus(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembershipBonus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembershipBonus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembershipBonus: %w", err)
	}
	return oldValue.MembershipBonus, nil
}

// ResetMembershipBonus resets all changes to the "membership_bonus" field.
func (m *CustomerScoreMutation) ResetMembershipBonus() {
	m.membership_bonus = nil
}

// SetEngagement sets the "engagement" field.
func (m *CustomerScoreMutation) SetEngagement(value map[string]interface{}) {
	m.engagement = &value
}

// Engagement returns the value of the "engagement" field in the mutation.
func (m *CustomerScoreMutation) Engagement() (r map[string]interface{}, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagement returns the old "engagement" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldEngagement(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagement: %w", err)
	}
	return oldValue.Engagement, nil
}

// ClearEngagement clears the value of the "engagement" field.
func (m *CustomerScoreMutation) ClearEngagement() {
	m.engagement = nil
	m.clearedFields[customerscore.FieldEngagement] = struct{}{}
}

// EngagementCleared returns if the "engagement" field was cleared in this mutation.
func (m *CustomerScoreMutation) EngagementCleared() bool {
	_, ok := m.clearedFields[customerscore.FieldEngagement]
	return ok
}

// ResetEngagement resets all changes to the "engagement" field.
func (m *CustomerScoreMutation) ResetEngagement() {
	m.engagement = nil
	delete(m.clearedFields, customerscore.FieldEngagement)
}

// SetChurnScore sets the "churn_score" field.
func (m *CustomerScoreMutation) SetChurnScore(i int) {
	m.churn_score = &i
	m.addchurn_score = nil
}

// ChurnScore returns the value of the "churn_score" field in the mutation.
func (m *CustomerScoreMutation) ChurnScore() (r int, exists bool) {
	v := m.churn_score
	if v == nil {
		return
	}
	return *v, true
}

// OldChurnScore returns the old "churn_score" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldChurnScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChurnScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChurnScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChurnScore: %w", err)
	}
	return oldValue.ChurnScore, nil
}

// AddChurnScore adds i to the "churn_score" field.
func (m *CustomerScoreMutation) AddChurnScore(i int) {
	if m.addchurn_score != nil {
		*m.addchurn_score += i
	} else {
		m.addchurn_score = &i
	}
}

// AddedChurnScore returns the value that was added to the "churn_score" field in this mutation.
func (m *CustomerScoreMutation) AddedChurnScore() (r int, exists bool) {
	v := m.addchurn_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetChurnScore resets all changes to the "churn_score" field.
func (m *CustomerScoreMutation) ResetChurnScore() {
	m.churn_score = nil
	m.addchurn_score = nil
}

// SetChurnLevel sets the "churn_level" field.
func (m *CustomerScoreMutation) SetChurnLevel(cl customerscore.ChurnLevel) {
	m.churn_level = &cl
}

// ChurnLevel returns the value of the "churn_level" field in the mutation.
func (m *CustomerScoreMutation) ChurnLevel() (r customerscore.ChurnLevel, exists bool) {
	v := m.churn_level
	if v == nil {
		return
	}
	return *v, true
}

// OldChurnLevel returns the old "churn_level" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldChurnLevel(ctx context.Context) (v customerscore.ChurnLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChurnLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChurnLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChurnLevel: %w", err)
	}
	return oldValue.ChurnLevel, nil
}

// ResetChurnLevel resets all changes to the "churn_level" field.
func (m *CustomerScoreMutation) ResetChurnLevel() {
	m.churn_level = nil
}

// SetChurnFactors sets the "churn_factors" field.
func (m *CustomerScoreMutation) SetChurnFactors(s []string) {
	m.churn_factors = &s
	m.appendchurn_factors = nil
}

// ChurnFactors returns the value of the "churn_factors" field in the mutation.
func (m *CustomerScoreMutation) ChurnFactors() (r []string, exists bool) {
	v := m.churn_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldChurnFactors returns the old "churn_factors" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldChurnFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChurnFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChurnFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChurnFactors: %w", err)
	}
	return oldValue.ChurnFactors, nil
}

// AppendChurnFactors adds s to the "churn_factors" field.
func (m *CustomerScoreMutation) AppendChurnFactors(s []string) {
	m.appendchurn_factors = append(m.appendchurn_factors, s...)
}

// AppendedChurnFactors returns the list of values that were appended to the "churn_factors" field in this mutation.
func (m *CustomerScoreMutation) AppendedChurnFactors() ([]string, bool) {
	if len(m.appendchurn_factors) == 0 {
		return nil, false
	}
	return m.appendchurn_factors, true
}

// ClearChurnFactors clears the value of the "churn_factors" field.
func (m *CustomerScoreMutation) ClearChurnFactors() {
	m.churn_factors = nil
	m.appendchurn_factors = nil
	m.clearedFields[customerscore.FieldChurnFactors] = struct{}{}
}

// ChurnFactorsCleared returns if the "churn_factors" field was cleared in this mutation.
func (m *CustomerScoreMutation) ChurnFactorsCleared() bool {
	_, ok := m.clearedFields[customerscore.FieldChurnFactors]
	return ok
}

// ResetChurnFactors resets all changes to the "churn_factors" field.
func (m *CustomerScoreMutation) ResetChurnFactors() {
	m.churn_factors = nil
	m.appendchurn_factors = nil
	delete(m.clearedFields, customerscore.FieldChurnFactors)
}

// SetSegment sets the "segment" field.
func (m *CustomerScoreMutation) SetSegment(c customerscore.Segment) {
	m.segment = &c
}

// Segment returns the value of the "segment" field in the mutation.
func (m *CustomerScoreMutation) Segment() (r customerscore.Segment, exists bool) {
	v := m.segment
	if v == nil {
		return
	}
	return *v, true
}

// OldSegment returns the old "segment" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldSegment(ctx context.Context) (v customerscore.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegment: %w", err)
	}
	return oldValue.Segment, nil
}

// ResetSegment resets all changes to the "segment" field.
func (m *CustomerScoreMutation) ResetSegment() {
	m.segment = nil
}

// SetLastVisitAt sets the "last_visit_at" field.
func (m *CustomerScoreMutation) SetLastVisitAt(t time.Time) {
	m.last_visit_at = &t
}

// LastVisitAt returns the value of the "last_visit_at" field in the mutation.
func (m *CustomerScoreMutation) LastVisitAt() (r time.Time, exists bool) {
	v := m.last_visit_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastVisitAt returns the old "last_visit_at" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldLastVisitAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastVisitAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastVisitAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastVisitAt: %w", err)
	}
	return oldValue.LastVisitAt, nil
}

// ClearLastVisitAt clears the value of the "last_visit_at" field.
func (m *CustomerScoreMutation) ClearLastVisitAt() {
	m.last_visit_at = nil
	m.clearedFields[customerscore.FieldLastVisitAt] = struct{}{}
}

// LastVisitAtCleared returns if the "last_visit_at" field was cleared in this mutation.
func (m *CustomerScoreMutation) LastVisitAtCleared() bool {
	_, ok := m.clearedFields[customerscore.FieldLastVisitAt]
	return ok
}

// ResetLastVisitAt resets all changes to the "last_visit_at" field.
func (m *CustomerScoreMutation) ResetLastVisitAt() {
	m.last_visit_at = nil
	delete(m.clearedFields, customerscore.FieldLastVisitAt)
}

// SetComputedAt sets the "computed_at" field.
func (m *CustomerScoreMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *CustomerScoreMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *CustomerScoreMutation) ResetComputedAt() {
	m.computed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CustomerScore entity.
// If the CustomerScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomerScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CustomerScoreMutation builder.
func (m *CustomerScoreMutation) Where(ps ...predicate.CustomerScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CustomerScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CustomerScore).
func (m *CustomerScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerScoreMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, customerscore.FieldTenantID)
	}
	if m.customer_id != nil {
		fields = append(fields, customerscore.FieldCustomerID)
	}
	if m.ltv_total != nil {
		fields = append(fields, customerscore.FieldLtvTotal)
	}
	if m.ltv_projected != nil {
		fields = append(fields, customerscore.FieldLtvProjected)
	}
	if m.avg_visit_value != nil {
		fields = append(fields, customerscore.FieldAvgVisitValue)
	}
	if m.visit_frequency_monthly != nil {
		fields = append(fields, customerscore.FieldVisitFrequencyMonthly)
	}
	if m.est_lifespan_months != nil {
		fields = append(fields, customerscore.FieldEstLifespanMonths)
	}
	if m.membership_bonus != nil {
		fields = append(fields, customerscore.FieldMembershipBonus)
	}
	if m.engagement != nil {
		fields = append(fields, customerscore.FieldEngagement)
	}
	if m.churn_score != nil {
		fields = append(fields, customerscore.FieldChurnScore)
	}
	if m.churn_level != nil {
		fields = append(fields, customerscore.FieldChurnLevel)
	}
	if m.churn_factors != nil {
		fields = append(fields, customerscore.FieldChurnFactors)
	}
	if m.segment != nil {
		fields = append(fields, customerscore.FieldSegment)
	}
	if m.last_visit_at != nil {
		fields = append(fields, customerscore.FieldLastVisitAt)
	}
	if m.computed_at != nil {
		fields = append(fields, customerscore.FieldComputedAt)
	}
	if m.created_at != nil {
		fields = append(fields, customerscore.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customerscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customerscore.FieldTenantID:
		return m.TenantID()
	case customerscore.FieldCustomerID:
		return m.CustomerID()
	case customerscore.FieldLtvTotal:
		return m.LtvTotal()
	case customerscore.FieldLtvProjected:
		return m.LtvProjected()
	case customerscore.FieldAvgVisitValue:
		return m.AvgVisitValue()
	case customerscore.FieldVisitFrequencyMonthly:
		return m.VisitFrequencyMonthly()
	case customerscore.FieldEstLifespanMonths:
		return m.EstLifespanMonths()
	case customerscore.FieldMembershipBonus:
		return m.MembershipBonus()
	case customerscore.FieldEngagement:
		return m.Engagement()
	case customerscore.FieldChurnScore:
		return m.ChurnScore()
	case customerscore.FieldChurnLevel:
		return m.ChurnLevel()
	case customerscore.FieldChurnFactors:
		return m.ChurnFactors()
	case customerscore.FieldSegment:
		return m.Segment()
	case customerscore.FieldLastVisitAt:
		return m.LastVisitAt()
	case customerscore.FieldComputedAt:
		return m.ComputedAt()
	case customerscore.FieldCreatedAt:
		return m.CreatedAt()
	case customerscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customerscore.FieldTenantID:
		return m.OldTenantID(ctx)
	case customerscore.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case customerscore.FieldLtvTotal:
		return m.OldLtvTotal(ctx)
	case customerscore.FieldLtvProjected:
		return m.OldLtvProjected(ctx)
	case customerscore.FieldAvgVisitValue:
		return m.OldAvgVisitValue(ctx)
	case customerscore.FieldVisitFrequencyMonthly:
		return m.OldVisitFrequencyMonthly(ctx)
	case customerscore.FieldEstLifespanMonths:
		return m.OldEstLifespanMonths(ctx)
	case customerscore.FieldMembershipBonus:
		return m.OldMembershipBonus(ctx)
	case customerscore.FieldEngagement:
		return m.OldEngagement(ctx)
	case customerscore.FieldChurnScore:
		return m.OldChurnScore(ctx)
	case customerscore.FieldChurnLevel:
		return m.OldChurnLevel(ctx)
	case customerscore.FieldChurnFactors:
		return m.OldChurnFactors(ctx)
	case customerscore.FieldSegment:
		return m.OldSegment(ctx)
	case customerscore.FieldLastVisitAt:
		return m.OldLastVisitAt(ctx)
	case customerscore.FieldComputedAt:
		return m.OldComputedAt(ctx)
	case customerscore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customerscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CustomerScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customerscore.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case customerscore.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case customerscore.FieldLtvTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLtvTotal(v)
		return nil
	case customerscore.FieldLtvProjected:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLtvProjected(v)
		return nil
	case customerscore.FieldAvgVisitValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgVisitValue(v)
		return nil
	case customerscore.FieldVisitFrequencyMonthly:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitFrequencyMonthly(v)
		return nil
	case customerscore.FieldEstLifespanMonths:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstLifespanMonths(v)
		return nil
	case customerscore.FieldMembershipBonus:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembershipBonus(v)
		return nil
	case customerscore.FieldEngagement:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagement(v)
		return nil
	case customerscore.FieldChurnScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChurnScore(v)
		return nil
	case customerscore.FieldChurnLevel:
		v, ok := value.(customerscore.ChurnLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChurnLevel(v)
		return nil
	case customerscore.FieldChurnFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChurnFactors(v)
		return nil
	case customerscore.FieldSegment:
		v, ok := value.(customerscore.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegment(v)
		return nil
	case customerscore.FieldLastVisitAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastVisitAt(v)
		return nil
	case customerscore.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	case customerscore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customerscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CustomerScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerScoreMutation) AddedFields() []string {
	var fields []string
	if m.addltv_total != nil {
		fields = append(fields, customerscore.FieldLtvTotal)
	}
	if m.addltv_projected != nil {
		fields = append(fields, customerscore.FieldLtvProjected)
	}
	if m.addavg_visit_value != nil {
		fields = append(fields, customerscore.FieldAvgVisitValue)
	}
	if m.addvisit_frequency_monthly != nil {
		fields = append(fields, customerscore.FieldVisitFrequencyMonthly)
	}
	if m.addest_lifespan_months != nil {
		fields = append(fields, customerscore.FieldEstLifespanMonths)
	}
	if m.addchurn_score != nil {
		fields = append(fields, customerscore.FieldChurnScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case customerscore.FieldLtvTotal:
		return m.AddedLtvTotal()
	case customerscore.FieldLtvProjected:
		return m.AddedLtvProjected()
	case customerscore.FieldAvgVisitValue:
		return m.AddedAvgVisitValue()
	case customerscore.FieldVisitFrequencyMonthly:
		return m.AddedVisitFrequencyMonthly()
	case customerscore.FieldEstLifespanMonths:
		return m.AddedEstLifespanMonths()
	case customerscore.FieldChurnScore:
		return m.AddedChurnScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case customerscore.FieldLtvTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLtvTotal(v)
		return nil
	case customerscore.FieldLtvProjected:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLtvProjected(v)
		return nil
	case customerscore.FieldAvgVisitValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgVisitValue(v)
		return nil
	case customerscore.FieldVisitFrequencyMonthly:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitFrequencyMonthly(v)
		return nil
	case customerscore.FieldEstLifespanMonths:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstLifespanMonths(v)
		return nil
	case customerscore.FieldChurnScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChurnScore(v)
		return nil
	}
	return fmt.Errorf("unknown CustomerScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customerscore.FieldEngagement) {
		fields = append(fields, customerscore.FieldEngagement)
	}
	if m.FieldCleared(customerscore.FieldChurnFactors) {
		fields = append(fields, customerscore.FieldChurnFactors)
	}
	if m.FieldCleared(customerscore.FieldLastVisitAt) {
		fields = append(fields, customerscore.FieldLastVisitAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerScoreMutation) ClearField(name string) error {
	switch name {
	case customerscore.FieldEngagement:
		m.ClearEngagement()
		return nil
	case customerscore.FieldChurnFactors:
		m.ClearChurnFactors()
		return nil
	case customerscore.FieldLastVisitAt:
		m.ClearLastVisitAt()
		return nil
	}
	return fmt.Errorf("unknown CustomerScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerScoreMutation) ResetField(name string) error {
	switch name {
	case customerscore.FieldTenantID:
		m.ResetTenantID()
		return nil
	case customerscore.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case customerscore.FieldLtvTotal:
		m.ResetLtvTotal()
		return nil
	case customerscore.FieldLtvProjected:
		m.ResetLtvProjected()
		return nil
	case customerscore.FieldAvgVisitValue:
		m.ResetAvgVisitValue()
		return nil
	case customerscore.FieldVisitFrequencyMonthly:
		m.ResetVisitFrequencyMonthly()
		return nil
	case customerscore.FieldEstLifespanMonths:
		m.ResetEstLifespanMonths()
		return nil
	case customerscore.FieldMembershipBonus:
		m.ResetMembershipBonus()
		return nil
	case customerscore.FieldEngagement:
		m.ResetEngagement()
		return nil
	case customerscore.FieldChurnScore:
		m.ResetChurnScore()
		return nil
	case customerscore.FieldChurnLevel:
		m.ResetChurnLevel()
		return nil
	case customerscore.FieldChurnFactors:
		m.ResetChurnFactors()
		return nil
	case customerscore.FieldSegment:
		m.ResetSegment()
		return nil
	case customerscore.FieldLastVisitAt:
		m.ResetLastVisitAt()
		return nil
	case customerscore.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	case customerscore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customerscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CustomerScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CustomerScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CustomerScore edge %s", name)
}

// DecisionMutation represents an operation that mutates the Decision nodes in the graph.
type DecisionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	agent_name           *string
	kind                 *decision.Kind
	autonomy             *decision.Autonomy
	trigger_id           *string
	trigger_kind         *string
	customer_id          *string
	staff_id             *string
	service_id           *string
	slot_ref             *string
	action_summary       *string
	action_detail        *map[string]interface{}
	revenue_potential    *int64
	addrevenue_potential *int64
	revenue_actual       *int64
	addrevenue_actual    *int64
	approval_required    *bool
	approval_status      *decision.ApprovalStatus
	approval_approver    *string
	approval_decided_at  *time.Time
	outcome_status       *decision.OutcomeStatus
	outcome_result       *string
	outcome_booking_id   *string
	completed_at         *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	expires_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Decision, error)
	predicates           []predicate.Decision
}

var _ ent.Mutation = (*DecisionMutation)(nil)

// decisionOption allows management of the mutation configuration using functional options.
type decisionOption func(*DecisionMutation)

// newDecisionMutation creates new mutation for the Decision entity.
func newDecisionMutation(c config, op Op, opts ...decisionOption) *DecisionMutation {
	m := &DecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionID sets the ID field of the mutation.
func withDecisionID(id string) decisionOption {
	return func(m *DecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Decision
		)
		m.oldValue = func(ctx context.Context) (*Decision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Decision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecision sets the old Decision of the mutation.
func withDecision(node *Decision) decisionOption {
	return func(m *DecisionMutation) {
		m.oldValue = func(context.Context) (*Decision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Decision entities.
func (m *DecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Decision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DecisionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DecisionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DecisionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *DecisionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *DecisionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *DecisionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetKind sets the "kind" field.
func (m *DecisionMutation) SetKind(d decision.Kind) {
	m.kind = &d
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DecisionMutation) Kind() (r decision.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldKind(ctx context.Context) (v decision.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DecisionMutation) ResetKind() {
	m.kind = nil
}

// SetAutonomy sets the "autonomy" field.
func (m *DecisionMutation) SetAutonomy(d decision.Autonomy) {
	m.autonomy = &d
}

// Autonomy returns the value of the "autonomy" field in the mutation.
func (m *DecisionMutation) Autonomy() (r decision.Autonomy, exists bool) {
	v := m.autonomy
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomy returns the old "autonomy" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldAutonomy(ctx context.Context) (v decision.Autonomy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomy: %w", err)
	}
	return oldValue.Autonomy, nil
}

// ResetAutonomy resets all changes to the "autonomy" field.
func (m *DecisionMutation) ResetAutonomy() {
	m.autonomy = nil
}

// SetTriggerID sets the "trigger_id" field.
func (m *DecisionMutation) SetTriggerID(s string) {
	m.trigger_id = &s
}

// TriggerID returns the value of the "trigger_id" field in the mutation.
func (m *DecisionMutation) TriggerID() (r string, exists bool) {
	v := m.trigger_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerID returns the old "trigger_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldTriggerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerID: %w", err)
	}
	return oldValue.TriggerID, nil
}

// ResetTriggerID resets all changes to the "trigger_id" field.
func (m *DecisionMutation) ResetTriggerID() {
	m.trigger_id = nil
}

// SetTriggerKind sets the "trigger_kind" field.
func (m *DecisionMutation) SetTriggerKind(s string) {
	m.trigger_kind = &s
}

// TriggerKind returns the value of the "trigger_kind" field in the mutation.
func (m *DecisionMutation) TriggerKind() (r string, exists bool) {
	v := m.trigger_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerKind returns the old "trigger_kind" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldTriggerKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerKind: %w", err)
	}
	return oldValue.TriggerKind, nil
}

// ResetTriggerKind resets all changes to the "trigger_kind" field.
func (m *DecisionMutation) ResetTriggerKind() {
	m.trigger_kind = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *DecisionMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *DecisionMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ClearCustomerID clears the value of the "customer_id" field.
func (m *DecisionMutation) ClearCustomerID() {
	m.customer_id = nil
	m.clearedFields[decision.FieldCustomerID] = struct{}{}
}

// CustomerIDCleared returns if the "customer_id" field was cleared in this mutation.
func (m *DecisionMutation) CustomerIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldCustomerID]
	return ok
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *DecisionMutation) ResetCustomerID() {
	m.customer_id = nil
	delete(m.clearedFields, decision.FieldCustomerID)
}

// SetStaffID sets the "staff_id" field.
func (m *DecisionMutation) SetStaffID(s string) {
	m.staff_id = &s
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *DecisionMutation) StaffID() (r string, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldStaffID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ClearStaffID clears the value of the "staff_id" field.
func (m *DecisionMutation) ClearStaffID() {
	m.staff_id = nil
	m.clearedFields[decision.FieldStaffID] = struct{}{}
}

// StaffIDCleared returns if the "staff_id" field was cleared in this mutation.
func (m *DecisionMutation) StaffIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldStaffID]
	return ok
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *DecisionMutation) ResetStaffID() {
	m.staff_id = nil
	delete(m.clearedFields, decision.FieldStaffID)
}

// SetServiceID sets the "service_id" field.
func (m *DecisionMutation) SetServiceID(s string) {
	m.service_id = &s
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *DecisionMutation) ServiceID() (r string, exists bool) {
	v := m.service_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldServiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ClearServiceID clears the value of the "service_id" field.
func (m *DecisionMutation) ClearServiceID() {
	m.service_id = nil
	m.clearedFields[decision.FieldServiceID] = struct{}{}
}

// ServiceIDCleared returns if the "service_id" field was cleared in this mutation.
func (m *DecisionMutation) ServiceIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldServiceID]
	return ok
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *DecisionMutation) ResetServiceID() {
	m.service_id = nil
	delete(m.clearedFields, decision.FieldServiceID)
}

// SetSlotRef sets the "slot_ref" field.
func (m *DecisionMutation) SetSlotRef(s string) {
	m.slot_ref = &s
}

// SlotRef returns the value of the "slot_ref" field in the mutation.
func (m *DecisionMutation) SlotRef() (r string, exists bool) {
	v := m.slot_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotRef returns the old "slot_ref" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSlotRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotRef: %w", err)
	}
	return oldValue.SlotRef, nil
}

// ClearSlotRef clears the value of the "slot_ref" field.
func (m *DecisionMutation) ClearSlotRef() {
	m.slot_ref = nil
	m.clearedFields[decision.FieldSlotRef] = struct{}{}
}

// SlotRefCleared returns if the "slot_ref" field was cleared in this mutation.
func (m *DecisionMutation) SlotRefCleared() bool {
	_, ok := m.clearedFields[decision.FieldSlotRef]
	return ok
}

// ResetSlotRef resets all changes to the "slot_ref" field.
func (m *DecisionMutation) ResetSlotRef() {
	m.slot_ref = nil
	delete(m.clearedFields, decision.FieldSlotRef)
}

// SetActionSummary sets the "action_summary" field.
func (m *DecisionMutation) SetActionSummary(s string) {
	m.action_summary = &s
}

// ActionSummary returns the value of the "action_summary" field in the mutation.
func (m *DecisionMutation) ActionSummary() (r string, exists bool) {
	v := m.action_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldActionSummary returns the old "action_summary" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldActionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionSummary: %w", err)
	}
	return oldValue.ActionSummary, nil
}

// ResetActionSummary resets all changes to the "action_summary" field.
func (m *DecisionMutation) ResetActionSummary() {
	m.action_summary = nil
}

// SetActionDetail sets the "action_detail" field.
func (m *DecisionMutation) SetActionDetail(value map[string]interface{}) {
	m.action_detail = &value
}

// ActionDetail returns the value of the "action_detail" field in the mutation.
func (m *DecisionMutation) ActionDetail() (r map[string]interface{}, exists bool) {
	v := m.action_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldActionDetail returns the old "action_detail" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldActionDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionDetail: %w", err)
	}
	return oldValue.ActionDetail, nil
}

// ClearActionDetail clears the value of the "action_detail" field.
func (m *DecisionMutation) ClearActionDetail() {
	m.action_detail = nil
	m.clearedFields[decision.FieldActionDetail] = struct{}{}
}

// ActionDetailCleared returns if the "action_detail" field was cleared in this mutation.
func (m *DecisionMutation) ActionDetailCleared() bool {
	_, ok := m.clearedFields[decision.FieldActionDetail]
	return ok
}

// ResetActionDetail resets all changes to the "action_detail" field.
func (m *DecisionMutation) ResetActionDetail() {
	m.action_detail = nil
	delete(m.clearedFields, decision.FieldActionDetail)
}

// SetRevenuePotential sets the "revenue_potential" field.
func (m *DecisionMutation) SetRevenuePotential(i int64) {
	m.revenue_potential = &i
	m.addrevenue_potential = nil
}

// RevenuePotential returns the value of the "revenue_potential" field in the mutation.
func (m *DecisionMutation) RevenuePotential() (r int64, exists bool) {
	v := m.revenue_potential
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenuePotential returns the old "revenue_potential" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldRevenuePotential(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenuePotential is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenuePotential requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenuePotential: %w", err)
	}
	return oldValue.RevenuePotential, nil
}

// AddRevenuePotential adds i to the "revenue_potential" field.
func (m *DecisionMutation) AddRevenuePotential(i int64) {
	if m.addrevenue_potential != nil {
		*m.addrevenue_potential += i
	} else {
		m.addrevenue_potential = &i
	}
}

// AddedRevenuePotential returns the value that was added to the "revenue_potential" field in this mutation.
func (m *DecisionMutation) AddedRevenuePotential() (r int64, exists bool) {
	v := m.addrevenue_potential
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenuePotential resets all changes to the "revenue_potential" field.
func (m *DecisionMutation) ResetRevenuePotential() {
	m.revenue_potential = nil
	m.addrevenue_potential = nil
}

// SetRevenueActual sets the "revenue_actual" field.
func (m *DecisionMutation) SetRevenueActual(i int64) {
	m.revenue_actual = &i
	m.addrevenue_actual = nil
}

// RevenueActual returns the value of the "revenue_actual" field in the mutation.
func (m *DecisionMutation) RevenueActual() (r int64, exists bool) {
	v := m.revenue_actual
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenueActual returns the old "revenue_actual" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldRevenueActual(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenueActual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenueActual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenueActual: %w", err)
	}
	return oldValue.RevenueActual, nil
}

// AddRevenueActual adds i to the "revenue_actual" field.
func (m *DecisionMutation) AddRevenueActual(i int64) {
	if m.addrevenue_actual != nil {
		*m.addrevenue_actual += i
	} else {
		m.addrevenue_actual = &i
	}
}

// AddedRevenueActual returns the value that was added to the "revenue_actual" field in this mutation.
func (m *DecisionMutation) AddedRevenueActual() (r int64, exists bool) {
	v := m.addrevenue_actual
	if v == nil {
		return
	}
	return *v, true
}

// ClearRevenueActual clears the value of the "revenue_actual" field.
func (m *DecisionMutation) ClearRevenueActual() {
	m.revenue_actual = nil
	m.addrevenue_actual = nil
	m.clearedFields[decision.FieldRevenueActual] = struct{}{}
}

// RevenueActualCleared returns if the "revenue_actual" field was cleared in this mutation.
func (m *DecisionMutation) RevenueActualCleared() bool {
	_, ok := m.clearedFields[decision.FieldRevenueActual]
	return ok
}

// ResetRevenueActual resets all changes to the "revenue_actual" field.
func (m *DecisionMutation) ResetRevenueActual() {
	m.revenue_actual = nil
	m.addrevenue_actual = nil
	delete(m.clearedFields, decision.FieldRevenueActual)
}

// SetApprovalRequired sets the "approval_required" field.
func (m *DecisionMutation) SetApprovalRequired(b bool) {
	m.approval_required = &b
}

// ApprovalRequired returns the value of the "approval_required" field in the mutation.
func (m *DecisionMutation) ApprovalRequired() (r bool, exists bool) {
	v := m.approval_required
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalRequired returns the old "approval_required" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldApprovalRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalRequired: %w", err)
	}
	return oldValue.ApprovalRequired, nil
}

// ResetApprovalRequired resets all changes to the "approval_required" field.
func (m *DecisionMutation) ResetApprovalRequired() {
	m.approval_required = nil
}

// SetApprovalStatus sets the "approval_status" field.
func (m *DecisionMutation) SetApprovalStatus(ds decision.ApprovalStatus) {
	m.approval_status = &ds
}

// ApprovalStatus returns the value of the "approval_status" field in the mutation.
func (m *DecisionMutation) ApprovalStatus() (r decision.ApprovalStatus, exists bool) {
	v := m.approval_status
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalStatus returns the old "approval_status" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldApprovalStatus(ctx context.Context) (v decision.ApprovalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalStatus: %w", err)
	}
	return oldValue.ApprovalStatus, nil
}

// ResetApprovalStatus resets all changes to the "approval_status" field.
func (m *DecisionMutation) ResetApprovalStatus() {
	m.approval_status = nil
}

// SetApprovalApprover sets the "approval_approver" field.
func (m *DecisionMutation) SetApprovalApprover(s string) {
	m.approval_approver = &s
}

// ApprovalApprover returns the value of the "approval_approver" field in the mutation.
func (m *DecisionMutation) ApprovalApprover() (r string, exists bool) {
	v := m.approval_approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalApprover returns the old "approval_approver" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldApprovalApprover(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalApprover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalApprover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalApprover: %w", err)
	}
	return oldValue.ApprovalApprover, nil
}

// ClearApprovalApprover clears the value of the "approval_approver" field.
func (m *DecisionMutation) ClearApprovalApprover() {
	m.approval_approver = nil
	m.clearedFields[decision.FieldApprovalApprover] = struct{}{}
}

// ApprovalApproverCleared returns if the "approval_approver" field was cleared in this mutation.
func (m *DecisionMutation) ApprovalApproverCleared() bool {
	_, ok := m.clearedFields[decision.FieldApprovalApprover]
	return ok
}

// ResetApprovalApprover resets all changes to the "approval_approver" field.
func (m *DecisionMutation) ResetApprovalApprover() {
	m.approval_approver = nil
	delete(m.clearedFields, decision.FieldApprovalApprover)
}

// SetApprovalDecidedAt sets the "approval_decided_at" field.
func (m *DecisionMutation) SetApprovalDecidedAt(t time.Time) {
	m.approval_decided_at = &t
}

// ApprovalDecidedAt returns the value of the "approval_decided_at" field in the mutation.
func (m *DecisionMutation) ApprovalDecidedAt() (r time.Time, exists bool) {
	v := m.approval_decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalDecidedAt returns the old "approval_decided_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldApprovalDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalDecidedAt: %w", err)
	}
	return oldValue.ApprovalDecidedAt, nil
}

// ClearApprovalDecidedAt clears the value of the "approval_decided_at" field.
func (m *DecisionMutation) ClearApprovalDecidedAt() {
	m.approval_decided_at = nil
	m.clearedFields[decision.FieldApprovalDecidedAt] = struct{}{}
}

// ApprovalDecidedAtCleared returns if the "approval_decided_at" field was cleared in this mutation.
func (m *DecisionMutation) ApprovalDecidedAtCleared() bool {
	_, ok := m.clearedFields[decision.FieldApprovalDecidedAt]
	return ok
}

// ResetApprovalDecidedAt resets all changes to the "approval_decided_at" field.
func (m *DecisionMutation) ResetApprovalDecidedAt() {
	m.approval_decided_at = nil
	delete(m.clearedFields, decision.FieldApprovalDecidedAt)
}

// SetOutcomeStatus sets the "outcome_status" field.
func (m *DecisionMutation) SetOutcomeStatus(ds decision.OutcomeStatus) {
	m.outcome_status = &ds
}

// OutcomeStatus returns the value of the "outcome_status" field in the mutation.
func (m *DecisionMutation) OutcomeStatus() (r decision.OutcomeStatus, exists bool) {
	v := m.outcome_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeStatus returns the old "outcome_status" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOutcomeStatus(ctx context.Context) (v decision.OutcomeStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeStatus: %w", err)
	}
	return oldValue.OutcomeStatus, nil
}

// ResetOutcomeStatus resets all changes to the "outcome_status" field.
func (m *DecisionMutation) ResetOutcomeStatus() {
	m.outcome_status = nil
}

// SetOutcomeResult sets the "outcome_result" field.
func (m *DecisionMutation) SetOutcomeResult(s string) {
	m.outcome_result = &s
}

// OutcomeResult returns the value of the "outcome_result" field in the mutation.
func (m *DecisionMutation) OutcomeResult() (r string, exists bool) {
	v := m.outcome_result
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeResult returns the old "outcome_result" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOutcomeResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeResult: %w", err)
	}
	return oldValue.OutcomeResult, nil
}

// ClearOutcomeResult clears the value of the "outcome_result" field.
func (m *DecisionMutation) ClearOutcomeResult() {
	m.outcome_result = nil
	m.clearedFields[decision.FieldOutcomeResult] = struct{}{}
}

// OutcomeResultCleared returns if the "outcome_result" field was cleared in this mutation.
func (m *DecisionMutation) OutcomeResultCleared() bool {
	_, ok := m.clearedFields[decision.FieldOutcomeResult]
	return ok
}

// ResetOutcomeResult resets all changes to the "outcome_result" field.
func (m *DecisionMutation) ResetOutcomeResult() {
	m.outcome_result = nil
	delete(m.clearedFields, decision.FieldOutcomeResult)
}

// SetOutcomeBookingID sets the "outcome_booking_id" field.
func (m *DecisionMutation) SetOutcomeBookingID(s string) {
	m.outcome_booking_id = &s
}

// OutcomeBookingID returns the value of the "outcome_booking_id" field in the mutation.
func (m *DecisionMutation) OutcomeBookingID() (r string, exists bool) {
	v := m.outcome_booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeBookingID returns the old "outcome_booking_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOutcomeBookingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeBookingID: %w", err)
	}
	return oldValue.OutcomeBookingID, nil
}

// ClearOutcomeBookingID clears the value of the "outcome_booking_id" field.
func (m *DecisionMutation) ClearOutcomeBookingID() {
	m.outcome_booking_id = nil
	m.clearedFields[decision.FieldOutcomeBookingID] = struct{}{}
}

// OutcomeBookingIDCleared returns if the "outcome_booking_id" field was cleared in this mutation.
func (m *DecisionMutation) OutcomeBookingIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldOutcomeBookingID]
	return ok
}

// ResetOutcomeBookingID resets all changes to the "outcome_booking_id" field.
func (m *DecisionMutation) ResetOutcomeBookingID() {
	m.outcome_booking_id = nil
	delete(m.clearedFields, decision.FieldOutcomeBookingID)
}

// SetCompletedAt sets the "completed_at" field.
func (m *DecisionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DecisionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DecisionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[decision.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DecisionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[decision.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DecisionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, decision.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DecisionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DecisionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DecisionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *DecisionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *DecisionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *DecisionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the DecisionMutation builder.
func (m *DecisionMutation) Where(ps ...predicate.Decision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Decision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Decision).
func (m *DecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.tenant_id != nil {
		fields = append(fields, decision.FieldTenantID)
	}
	if m.agent_name != nil {
		fields = append(fields, decision.FieldAgentName)
	}
	if m.kind != nil {
		fields = append(fields, decision.FieldKind)
	}
	if m.autonomy != nil {
		fields = append(fields, decision.FieldAutonomy)
	}
	if m.trigger_id != nil {
		fields = append(fields, decision.FieldTriggerID)
	}
	if m.trigger_kind != nil {
		fields = append(fields, decision.FieldTriggerKind)
	}
	if m.customer_id != nil {
		fields = append(fields, decision.FieldCustomerID)
	}
	if m.staff_id != nil {
		fields = append(fields, decision.FieldStaffID)
	}
	if m.service_id != nil {
		fields = append(fields, decision.FieldServiceID)
	}
	if m.slot_ref != nil {
		fields = append(fields, decision.FieldSlotRef)
	}
	if m.action_summary != nil {
		fields = append(fields, decision.FieldActionSummary)
	}
	if m.action_detail != nil {
		fields = append(fields, decision.FieldActionDetail)
	}
	if m.revenue_potential != nil {
		fields = append(fields, decision.FieldRevenuePotential)
	}
	if m.revenue_actual != nil {
		fields = append(fields, decision.FieldRevenueActual)
	}
	if m.approval_required != nil {
		fields = append(fields, decision.FieldApprovalRequired)
	}
	if m.approval_status != nil {
		fields = append(fields, decision.FieldApprovalStatus)
	}
	if m.approval_approver != nil {
		fields = append(fields, decision.FieldApprovalApprover)
	}
	if m.approval_decided_at != nil {
		fields = append(fields, decision.FieldApprovalDecidedAt)
	}
	if m.outcome_status != nil {
		fields = append(fields, decision.FieldOutcomeStatus)
	}
	if m.outcome_result != nil {
		fields = append(fields, decision.FieldOutcomeResult)
	}
	if m.outcome_booking_id != nil {
		fields = append(fields, decision.FieldOutcomeBookingID)
	}
	if m.completed_at != nil {
		fields = append(fields, decision.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, decision.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, decision.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, decision.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldTenantID:
		return m.TenantID()
	case decision.FieldAgentName:
		return m.AgentName()
	case decision.FieldKind:
		return m.Kind()
	case decision.FieldAutonomy:
		return m.Autonomy()
	case decision.FieldTriggerID:
		return m.TriggerID()
	case decision.FieldTriggerKind:
		return m.TriggerKind()
	case decision.FieldCustomerID:
		return m.CustomerID()
	case decision.FieldStaffID:
		return m.StaffID()
	case decision.FieldServiceID:
		return m.ServiceID()
	case decision.FieldSlotRef:
		return m.SlotRef()
	case decision.FieldActionSummary:
		return m.ActionSummary()
	case decision.FieldActionDetail:
		return m.ActionDetail()
	case decision.FieldRevenuePotential:
		return m.RevenuePotential()
	case decision.FieldRevenueActual:
		return m.RevenueActual()
	case decision.FieldApprovalRequired:
		return m.ApprovalRequired()
	case decision.FieldApprovalStatus:
		return m.ApprovalStatus()
	case decision.FieldApprovalApprover:
		return m.ApprovalApprover()
	case decision.FieldApprovalDecidedAt:
		return m.ApprovalDecidedAt()
	case decision.FieldOutcomeStatus:
		return m.OutcomeStatus()
	case decision.FieldOutcomeResult:
		return m.OutcomeResult()
	case decision.FieldOutcomeBookingID:
		return m.OutcomeBookingID()
	case decision.FieldCompletedAt:
		return m.CompletedAt()
	case decision.FieldCreatedAt:
		return m.CreatedAt()
	case decision.FieldUpdatedAt:
		return m.UpdatedAt()
	case decision.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decision.FieldTenantID:
		return m.OldTenantID(ctx)
	case decision.FieldAgentName:
		return m.OldAgentName(ctx)
	case decision.FieldKind:
		return m.OldKind(ctx)
	case decision.FieldAutonomy:
		return m.OldAutonomy(ctx)
	case decision.FieldTriggerID:
		return m.OldTriggerID(ctx)
	case decision.FieldTriggerKind:
		return m.OldTriggerKind(ctx)
	case decision.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case decision.FieldStaffID:
		return m.OldStaffID(ctx)
	case decision.FieldServiceID:
		return m.OldServiceID(ctx)
	case decision.FieldSlotRef:
		return m.OldSlotRef(ctx)
	case decision.FieldActionSummary:
		return m.OldActionSummary(ctx)
	case decision.FieldActionDetail:
		return m.OldActionDetail(ctx)
	case decision.FieldRevenuePotential:
		return m.OldRevenuePotential(ctx)
	case decision.FieldRevenueActual:
		return m.OldRevenueActual(ctx)
	case decision.FieldApprovalRequired:
		return m.OldApprovalRequired(ctx)
	case decision.FieldApprovalStatus:
		return m.OldApprovalStatus(ctx)
	case decision.FieldApprovalApprover:
		return m.OldApprovalApprover(ctx)
	case decision.FieldApprovalDecidedAt:
		return m.OldApprovalDecidedAt(ctx)
	case decision.FieldOutcomeStatus:
		return m.OldOutcomeStatus(ctx)
	case decision.FieldOutcomeResult:
		return m.OldOutcomeResult(ctx)
	case decision.FieldOutcomeBookingID:
		return m.OldOutcomeBookingID(ctx)
	case decision.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case decision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case decision.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case decision.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Decision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decision.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case decision.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case decision.FieldKind:
		v, ok := value.(decision.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case decision.FieldAutonomy:
		v, ok := value.(decision.Autonomy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomy(v)
		return nil
	case decision.FieldTriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerID(v)
		return nil
	case decision.FieldTriggerKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerKind(v)
		return nil
	case decision.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case decision.FieldStaffID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case decision.FieldServiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case decision.FieldSlotRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotRef(v)
		return nil
	case decision.FieldActionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionSummary(v)
		return nil
	case decision.FieldActionDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionDetail(v)
		return nil
	case decision.FieldRevenuePotential:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenuePotential(v)
		return nil
	case decision.FieldRevenueActual:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenueActual(v)
		return nil
	case decision.FieldApprovalRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalRequired(v)
		return nil
	case decision.FieldApprovalStatus:
		v, ok := value.(decision.ApprovalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalStatus(v)
		return nil
	case decision.FieldApprovalApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalApprover(v)
		return nil
	case decision.FieldApprovalDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalDecidedAt(v)
		return nil
	case decision.FieldOutcomeStatus:
		v, ok := value.(decision.OutcomeStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeStatus(v)
		return nil
	case decision.FieldOutcomeResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeResult(v)
		return nil
	case decision.FieldOutcomeBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeBookingID(v)
		return nil
	case decision.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case decision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case decision.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case decision.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionMutation) AddedFields() []string {
	var fields []string
	if m.addrevenue_potential != nil {
		fields = append(fields, decision.FieldRevenuePotential)
	}
	if m.addrevenue_actual != nil {
		fields = append(fields, decision.FieldRevenueActual)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldRevenuePotential:
		return m.AddedRevenuePotential()
	case decision.FieldRevenueActual:
		return m.AddedRevenueActual()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decision.FieldRevenuePotential:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenuePotential(v)
		return nil
	case decision.FieldRevenueActual:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenueActual(v)
		return nil
	}
	return fmt.Errorf("unknown Decision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decision.FieldCustomerID) {
		fields = append(fields, decision.FieldCustomerID)
	}
	if m.FieldCleared(decision.FieldStaffID) {
		fields = append(fields, decision.FieldStaffID)
	}
	if m.FieldCleared(decision.FieldServiceID) {
		fields = append(fields, decision.FieldServiceID)
	}
	if m.FieldCleared(decision.FieldSlotRef) {
		fields = append(fields, decision.FieldSlotRef)
	}
	if m.FieldCleared(decision.FieldActionDetail) {
		fields = append(fields, decision.FieldActionDetail)
	}
	if m.FieldCleared(decision.FieldRevenueActual) {
		fields = append(fields, decision.FieldRevenueActual)
	}
	if m.FieldCleared(decision.FieldApprovalApprover) {
		fields = append(fields, decision.FieldApprovalApprover)
	}
	if m.FieldCleared(decision.FieldApprovalDecidedAt) {
		fields = append(fields, decision.FieldApprovalDecidedAt)
	}
	if m.FieldCleared(decision.FieldOutcomeResult) {
		fields = append(fields, decision.FieldOutcomeResult)
	}
	if m.FieldCleared(decision.FieldOutcomeBookingID) {
		fields = append(fields, decision.FieldOutcomeBookingID)
	}
	if m.FieldCleared(decision.FieldCompletedAt) {
		fields = append(fields, decision.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionMutation) ClearField(name string) error {
	switch name {
	case decision.FieldCustomerID:
		m.ClearCustomerID()
		return nil
	case decision.FieldStaffID:
		m.ClearStaffID()
		return nil
	case decision.FieldServiceID:
		m.ClearServiceID()
		return nil
	case decision.FieldSlotRef:
		m.ClearSlotRef()
		return nil
	case decision.FieldActionDetail:
		m.ClearActionDetail()
		return nil
	case decision.FieldRevenueActual:
		m.ClearRevenueActual()
		return nil
	case decision.FieldApprovalApprover:
		m.ClearApprovalApprover()
		return nil
	case decision.FieldApprovalDecidedAt:
		m.ClearApprovalDecidedAt()
		return nil
	case decision.FieldOutcomeResult:
		m.ClearOutcomeResult()
		return nil
	case decision.FieldOutcomeBookingID:
		m.ClearOutcomeBookingID()
		return nil
	case decision.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Decision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionMutation) ResetField(name string) error {
	switch name {
	case decision.FieldTenantID:
		m.ResetTenantID()
		return nil
	case decision.FieldAgentName:
		m.ResetAgentName()
		return nil
	case decision.FieldKind:
		m.ResetKind()
		return nil
	case decision.FieldAutonomy:
		m.ResetAutonomy()
		return nil
	case decision.FieldTriggerID:
		m.ResetTriggerID()
		return nil
	case decision.FieldTriggerKind:
		m.ResetTriggerKind()
		return nil
	case decision.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case decision.FieldStaffID:
		m.ResetStaffID()
		return nil
	case decision.FieldServiceID:
		m.ResetServiceID()
		return nil
	case decision.FieldSlotRef:
		m.ResetSlotRef()
		return nil
	case decision.FieldActionSummary:
		m.ResetActionSummary()
		return nil
	case decision.FieldActionDetail:
		m.ResetActionDetail()
		return nil
	case decision.FieldRevenuePotential:
		m.ResetRevenuePotential()
		return nil
	case decision.FieldRevenueActual:
		m.ResetRevenueActual()
		return nil
	case decision.FieldApprovalRequired:
		m.ResetApprovalRequired()
		return nil
	case decision.FieldApprovalStatus:
		m.ResetApprovalStatus()
		return nil
	case decision.FieldApprovalApprover:
		m.ResetApprovalApprover()
		return nil
	case decision.FieldApprovalDecidedAt:
		m.ResetApprovalDecidedAt()
		return nil
	case decision.FieldOutcomeStatus:
		m.ResetOutcomeStatus()
		return nil
	case decision.FieldOutcomeResult:
		m.ResetOutcomeResult()
		return nil
	case decision.FieldOutcomeBookingID:
		m.ResetOutcomeBookingID()
		return nil
	case decision.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case decision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case decision.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case decision.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Decision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Decision edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	tenant_id     *string
	event_type    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, event.FieldTenantID)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTenantID:
		return m.TenantID()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTenantID:
		return m.OldTenantID(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTenantID:
		m.ResetTenantID()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// GapMutation represents an operation that mutates the Gap nodes in the graph.
type GapMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	staff_id                   *string
	staff_name                 *string
	date                       *string
	start_time                 *time.Time
	end_time                   *time.Time
	duration_minutes           *int
	addduration_minutes        *int
	priority                   *gap.Priority
	status                     *gap.Status
	potential_revenue          *int64
	addpotential_revenue       *int64
	fittable_service_ids       *[]string
	appendfittable_service_ids []string
	fill_attempts              *int
	addfill_attempts           *int
	last_attempt_at            *time.Time
	filled_by_booking_id       *string
	filled_by_customer_id      *string
	filled_at                  *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Gap, error)
	predicates                 []predicate.Gap
}

var _ ent.Mutation = (*GapMutation)(nil)

// gapOption allows management of the mutation configuration using functional options.
type gapOption func(*GapMutation)

// newGapMutation creates new mutation for the Gap entity.
func newGapMutation(c config, op Op, opts ...gapOption) *GapMutation {
	m := &GapMutation{
		config:        c,
		op:            op,
		typ:           TypeGap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGapID sets the ID field of the mutation.
func withGapID(id string) gapOption {
	return func(m *GapMutation) {
		var (
			err   error
			once  sync.Once
			value *Gap
		)
		m.oldValue = func(ctx context.Context) (*Gap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Gap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGap sets the old Gap of the mutation.
func withGap(node *Gap) gapOption {
	return func(m *GapMutation) {
		m.oldValue = func(context.Context) (*Gap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Gap entities.
func (m *GapMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GapMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GapMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Gap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *GapMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *GapMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *GapMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *GapMutation) SetStaffID(s string) {
	m.staff_id = &s
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *GapMutation) StaffID() (r string, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldStaffID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *GapMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetStaffName sets the "staff_name" field.
func (m *GapMutation) SetStaffName(s string) {
	m.staff_name = &s
}

// StaffName returns the value of the "staff_name" field in the mutation.
func (m *GapMutation) StaffName() (r string, exists bool) {
	v := m.staff_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffName returns the old "staff_name" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldStaffName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffName: %w", err)
	}
	return oldValue.StaffName, nil
}

// ClearStaffName clears the value of the "staff_name" field.
func (m *GapMutation) ClearStaffName() {
	m.staff_name = nil
	m.clearedFields[gap.FieldStaffName] = struct{}{}
}

// StaffNameCleared returns if the "staff_name" field was cleared in this mutation.
func (m *GapMutation) StaffNameCleared() bool {
	_, ok := m.clearedFields[gap.FieldStaffName]
	return ok
}

// ResetStaffName resets all changes to the "staff_name" field.
func (m *GapMutation) ResetStaffName() {
	m.staff_name = nil
	delete(m.clearedFields, gap.FieldStaffName)
}

// SetDate sets the "date" field.
func (m *GapMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *GapMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *GapMutation) ResetDate() {
	m.date = nil
}

// SetStartTime sets the "start_time" field.
func (m *GapMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *GapMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *GapMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *GapMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *GapMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *GapMutation) ResetEndTime() {
	m.end_time = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *GapMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *GapMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *GapMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *GapMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *GapMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetPriority sets the "priority" field.
func (m *GapMutation) SetPriority(ga gap.Priority) {
	m.priority = &ga
}

// Priority returns the value of the "priority" field in the mutation.
func (m *GapMutation) Priority() (r gap.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldPriority(ctx context.Context) (v gap.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *GapMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *GapMutation) SetStatus(ga gap.Status) {
	m.status = &ga
}

// Status returns the value of the "status" field in the mutation.
func (m *GapMutation) Status() (r gap.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldStatus(ctx context.Context) (v gap.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GapMutation) ResetStatus() {
	m.status = nil
}

// SetPotentialRevenue sets the "potential_revenue" field.
func (m *GapMutation) SetPotentialRevenue(i int64) {
	m.potential_revenue = &i
	m.addpotential_revenue = nil
}

// PotentialRevenue returns the value of the "potential_revenue" field in the mutation.
func (m *GapMutation) PotentialRevenue() (r int64, exists bool) {
	v := m.potential_revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldPotentialRevenue returns the old "potential_revenue" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldPotentialRevenue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotentialRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotentialRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotentialRevenue: %w", err)
	}
	return oldValue.PotentialRevenue, nil
}

// AddPotentialRevenue adds i to the "potential_revenue" field.
func (m *GapMutation) AddPotentialRevenue(i int64) {
	if m.addpotential_revenue != nil {
		*m.addpotential_revenue += i
	} else {
		m.addpotential_revenue = &i
	}
}

// AddedPotentialRevenue returns the value that was added to the "potential_revenue" field in this mutation.
func (m *GapMutation) AddedPotentialRevenue() (r int64, exists bool) {
	v := m.addpotential_revenue
	if v == nil {
		return
	}
	return *v, true
}

// ResetPotentialRevenue resets all changes to the "potential_revenue" field.
func (m *GapMutation) ResetPotentialRevenue() {
	m.potential_revenue = nil
	m.addpotential_revenue = nil
}

// SetFittableServiceIds sets the "fittable_service_ids" field.
func (m *GapMutation) SetFittableServiceIds(s []string) {
	m.fittable_service_ids = &s
	m.appendfittable_service_ids = nil
}

// FittableServiceIds returns the value of the "fittable_service_ids" field in the mutation.
func (m *GapMutation) FittableServiceIds() (r []string, exists bool) {
	v := m.fittable_service_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFittableServiceIds returns the old "fittable_service_ids" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldFittableServiceIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFittableServiceIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFittableServiceIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFittableServiceIds: %w", err)
	}
	return oldValue.FittableServiceIds, nil
}

// AppendFittableServiceIds adds s to the "fittable_service_ids" field.
func (m *GapMutation) AppendFittableServiceIds(s []string) {
	m.appendfittable_service_ids = append(m.appendfittable_service_ids, s...)
}

// AppendedFittableServiceIds returns the list of values that were appended to the "fittable_service_ids" field in this mutation.
func (m *GapMutation) AppendedFittableServiceIds() ([]string, bool) {
	if len(m.appendfittable_service_ids) == 0 {
		return nil, false
	}
	return m.appendfittable_service_ids, true
}

// ClearFittableServiceIds clears the value of the "fittable_service_ids" field.
func (m *GapMutation) ClearFittableServiceIds() {
	m.fittable_service_ids = nil
	m.appendfittable_service_ids = nil
	m.clearedFields[gap.FieldFittableServiceIds] = struct{}{}
}

// FittableServiceIdsCleared returns if the "fittable_service_ids" field was cleared in this mutation.
func (m *GapMutation) FittableServiceIdsCleared() bool {
	_, ok := m.clearedFields[gap.FieldFittableServiceIds]
	return ok
}

// ResetFittableServiceIds resets all changes to the "fittable_service_ids" field.
func (m *GapMutation) ResetFittableServiceIds() {
	m.fittable_service_ids = nil
	m.appendfittable_service_ids = nil
	delete(m.clearedFields, gap.FieldFittableServiceIds)
}

// SetFillAttempts sets the "fill_attempts" field.
func (m *GapMutation) SetFillAttempts(i int) {
	m.fill_attempts = &i
	m.addfill_attempts = nil
}

// FillAttempts returns the value of the "fill_attempts" field in the mutation.
func (m *GapMutation) FillAttempts() (r int, exists bool) {
	v := m.fill_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFillAttempts returns the old "fill_attempts" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldFillAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFillAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFillAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFillAttempts: %w", err)
	}
	return oldValue.FillAttempts, nil
}

// AddFillAttempts adds i to the "fill_attempts" field.
func (m *GapMutation) AddFillAttempts(i int) {
	if m.addfill_attempts != nil {
		*m.addfill_attempts += i
	} else {
		m.addfill_attempts = &i
	}
}

// AddedFillAttempts returns the value that was added to the "fill_attempts" field in this mutation.
func (m *GapMutation) AddedFillAttempts() (r int, exists bool) {
	v := m.addfill_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFillAttempts resets all changes to the "fill_attempts" field.
func (m *GapMutation) ResetFillAttempts() {
	m.fill_attempts = nil
	m.addfill_attempts = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *GapMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *GapMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *GapMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[gap.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *GapMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[gap.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *GapMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, gap.FieldLastAttemptAt)
}

// SetFilledByBookingID sets the "filled_by_booking_id" field.
func (m *GapMutation) SetFilledByBookingID(s string) {
	m.filled_by_booking_id = &s
}

// FilledByBookingID returns the value of the "filled_by_booking_id" field in the mutation.
func (m *GapMutation) FilledByBookingID() (r string, exists bool) {
	v := m.filled_by_booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFilledByBookingID returns the old "filled_by_booking_id" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldFilledByBookingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilledByBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilledByBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilledByBookingID: %w", err)
	}
	return oldValue.FilledByBookingID, nil
}

// ClearFilledByBookingID clears the value of the "filled_by_booking_id" field.
func (m *GapMutation) ClearFilledByBookingID() {
	m.filled_by_booking_id = nil
	m.clearedFields[gap.FieldFilledByBookingID] = struct{}{}
}

// FilledByBookingIDCleared returns if the "filled_by_booking_id" field was cleared in this mutation.
func (m *GapMutation) FilledByBookingIDCleared() bool {
	_, ok := m.clearedFields[gap.FieldFilledByBookingID]
	return ok
}

// ResetFilledByBookingID resets all changes to the "filled_by_booking_id" field.
func (m *GapMutation) ResetFilledByBookingID() {
	m.filled_by_booking_id = nil
	delete(m.clearedFields, gap.FieldFilledByBookingID)
}

// SetFilledByCustomerID sets the "filled_by_customer_id" field.
func (m *GapMutation) SetFilledByCustomerID(s string) {
	m.filled_by_customer_id = &s
}

// FilledByCustomerID returns the value of the "filled_by_customer_id" field in the mutation.
func (m *GapMutation) FilledByCustomerID() (r string, exists bool) {
	v := m.filled_by_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFilledByCustomerID returns the old "filled_by_customer_id" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldFilledByCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilledByCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilledByCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilledByCustomerID: %w", err)
	}
	return oldValue.FilledByCustomerID, nil
}

// ClearFilledByCustomerID clears the value of the "filled_by_customer_id" field.
func (m *GapMutation) ClearFilledByCustomerID() {
	m.filled_by_customer_id = nil
	m.clearedFields[gap.FieldFilledByCustomerID] = struct{}{}
}

// FilledByCustomerIDCleared returns if the "filled_by_customer_id" field was cleared in this mutation.
func (m *GapMutation) FilledByCustomerIDCleared() bool {
	_, ok := m.clearedFields[gap.FieldFilledByCustomerID]
	return ok
}

// ResetFilledByCustomerID resets all changes to the "filled_by_customer_id" field.
func (m *GapMutation) ResetFilledByCustomerID() {
	m.filled_by_customer_id = nil
	delete(m.clearedFields, gap.FieldFilledByCustomerID)
}

// SetFilledAt sets the "filled_at" field.
func (m *GapMutation) SetFilledAt(t time.Time) {
	m.filled_at = &t
}

// FilledAt returns the value of the "filled_at" field in the mutation.
func (m *GapMutation) FilledAt() (r time.Time, exists bool) {
	v := m.filled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFilledAt returns the old "filled_at" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldFilledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilledAt: %w", err)
	}
	return oldValue.FilledAt, nil
}

// ClearFilledAt clears the value of the "filled_at" field.
func (m *GapMutation) ClearFilledAt() {
	m.filled_at = nil
	m.clearedFields[gap.FieldFilledAt] = struct{}{}
}

// FilledAtCleared returns if the "filled_at" field was cleared in this mutation.
func (m *GapMutation) FilledAtCleared() bool {
	_, ok := m.clearedFields[gap.FieldFilledAt]
	return ok
}

// ResetFilledAt resets all changes to the "filled_at" field.
func (m *GapMutation) ResetFilledAt() {
	m.filled_at = nil
	delete(m.clearedFields, gap.FieldFilledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *GapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GapMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GapMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Gap entity.
// If the Gap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GapMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GapMutation builder.
func (m *GapMutation) Where(ps ...predicate.Gap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Gap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Gap).
func (m *GapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GapMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.tenant_id != nil {
		fields = append(fields, gap.FieldTenantID)
	}
	if m.staff_id != nil {
		fields = append(fields, gap.FieldStaffID)
	}
	if m.staff_name != nil {
		fields = append(fields, gap.FieldStaffName)
	}
	if m.date != nil {
		fields = append(fields, gap.FieldDate)
	}
	if m.start_time != nil {
		fields = append(fields, gap.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, gap.FieldEndTime)
	}
	if m.duration_minutes != nil {
		fields = append(fields, gap.FieldDurationMinutes)
	}
	if m.priority != nil {
		fields = append(fields, gap.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, gap.FieldStatus)
	}
	if m.potential_revenue != nil {
		fields = append(fields, gap.FieldPotentialRevenue)
	}
	if m.fittable_service_ids != nil {
		fields = append(fields, gap.FieldFittableServiceIds)
	}
	if m.fill_attempts != nil {
		fields = append(fields, gap.FieldFillAttempts)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, gap.FieldLastAttemptAt)
	}
	if m.filled_by_booking_id != nil {
		fields = append(fields, gap.FieldFilledByBookingID)
	}
	if m.filled_by_customer_id != nil {
		fields = append(fields, gap.FieldFilledByCustomerID)
	}
	if m.filled_at != nil {
		fields = append(fields, gap.FieldFilledAt)
	}
	if m.created_at != nil {
		fields = append(fields, gap.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gap.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gap.FieldTenantID:
		return m.TenantID()
	case gap.FieldStaffID:
		return m.StaffID()
	case gap.FieldStaffName:
		return m.StaffName()
	case gap.FieldDate:
		return m.Date()
	case gap.FieldStartTime:
		return m.StartTime()
	case gap.FieldEndTime:
		return m.EndTime()
	case gap.FieldDurationMinutes:
		return m.DurationMinutes()
	case gap.FieldPriority:
		return m.Priority()
	case gap.FieldStatus:
		return m.Status()
	case gap.FieldPotentialRevenue:
		return m.PotentialRevenue()
	case gap.FieldFittableServiceIds:
		return m.FittableServiceIds()
	case gap.FieldFillAttempts:
		return m.FillAttempts()
	case gap.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case gap.FieldFilledByBookingID:
		return m.FilledByBookingID()
	case gap.FieldFilledByCustomerID:
		return m.FilledByCustomerID()
	case gap.FieldFilledAt:
		return m.FilledAt()
	case gap.FieldCreatedAt:
		return m.CreatedAt()
	case gap.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gap.FieldTenantID:
		return m.OldTenantID(ctx)
	case gap.FieldStaffID:
		return m.OldStaffID(ctx)
	case gap.FieldStaffName:
		return m.OldStaffName(ctx)
	case gap.FieldDate:
		return m.OldDate(ctx)
	case gap.FieldStartTime:
		return m.OldStartTime(ctx)
	case gap.FieldEndTime:
		return m.OldEndTime(ctx)
	case gap.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case gap.FieldPriority:
		return m.OldPriority(ctx)
	case gap.FieldStatus:
		return m.OldStatus(ctx)
	case gap.FieldPotentialRevenue:
		return m.OldPotentialRevenue(ctx)
	case gap.FieldFittableServiceIds:
		return m.OldFittableServiceIds(ctx)
	case gap.FieldFillAttempts:
		return m.OldFillAttempts(ctx)
	case gap.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case gap.FieldFilledByBookingID:
		return m.OldFilledByBookingID(ctx)
	case gap.FieldFilledByCustomerID:
		return m.OldFilledByCustomerID(ctx)
	case gap.FieldFilledAt:
		return m.OldFilledAt(ctx)
	case gap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gap.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Gap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gap.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case gap.FieldStaffID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case gap.FieldStaffName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffName(v)
		return nil
	case gap.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case gap.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case gap.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case gap.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case gap.FieldPriority:
		v, ok := value.(gap.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case gap.FieldStatus:
		v, ok := value.(gap.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case gap.FieldPotentialRevenue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotentialRevenue(v)
		return nil
	case gap.FieldFittableServiceIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFittableServiceIds(v)
		return nil
	case gap.FieldFillAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFillAttempts(v)
		return nil
	case gap.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case gap.FieldFilledByBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilledByBookingID(v)
		return nil
	case gap.FieldFilledByCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilledByCustomerID(v)
		return nil
	case gap.FieldFilledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilledAt(v)
		return nil
	case gap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gap.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Gap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GapMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, gap.FieldDurationMinutes)
	}
	if m.addpotential_revenue != nil {
		fields = append(fields, gap.FieldPotentialRevenue)
	}
	if m.addfill_attempts != nil {
		fields = append(fields, gap.FieldFillAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gap.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case gap.FieldPotentialRevenue:
		return m.AddedPotentialRevenue()
	case gap.FieldFillAttempts:
		return m.AddedFillAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gap.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case gap.FieldPotentialRevenue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPotentialRevenue(v)
		return nil
	case gap.FieldFillAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFillAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Gap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gap.FieldStaffName) {
		fields = append(fields, gap.FieldStaffName)
	}
	if m.FieldCleared(gap.FieldFittableServiceIds) {
		fields = append(fields, gap.FieldFittableServiceIds)
	}
	if m.FieldCleared(gap.FieldLastAttemptAt) {
		fields = append(fields, gap.FieldLastAttemptAt)
	}
	if m.FieldCleared(gap.FieldFilledByBookingID) {
		fields = append(fields, gap.FieldFilledByBookingID)
	}
	if m.FieldCleared(gap.FieldFilledByCustomerID) {
		fields = append(fields, gap.FieldFilledByCustomerID)
	}
	if m.FieldCleared(gap.FieldFilledAt) {
		fields = append(fields, gap.FieldFilledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GapMutation) ClearField(name string) error {
	switch name {
	case gap.FieldStaffName:
		m.ClearStaffName()
		return nil
	case gap.FieldFittableServiceIds:
		m.ClearFittableServiceIds()
		return nil
	case gap.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case gap.FieldFilledByBookingID:
		m.ClearFilledByBookingID()
		return nil
	case gap.FieldFilledByCustomerID:
		m.ClearFilledByCustomerID()
		return nil
	case gap.FieldFilledAt:
		m.ClearFilledAt()
		return nil
	}
	return fmt.Errorf("unknown Gap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GapMutation) ResetField(name string) error {
	switch name {
	case gap.FieldTenantID:
		m.ResetTenantID()
		return nil
	case gap.FieldStaffID:
		m.ResetStaffID()
		return nil
	case gap.FieldStaffName:
		m.ResetStaffName()
		return nil
	case gap.FieldDate:
		m.ResetDate()
		return nil
	case gap.FieldStartTime:
		m.ResetStartTime()
		return nil
	case gap.FieldEndTime:
		m.ResetEndTime()
		return nil
	case gap.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case gap.FieldPriority:
		m.ResetPriority()
		return nil
	case gap.FieldStatus:
		m.ResetStatus()
		return nil
	case gap.FieldPotentialRevenue:
		m.ResetPotentialRevenue()
		return nil
	case gap.FieldFittableServiceIds:
		m.ResetFittableServiceIds()
		return nil
	case gap.FieldFillAttempts:
		m.ResetFillAttempts()
		return nil
	case gap.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case gap.FieldFilledByBookingID:
		m.ResetFilledByBookingID()
		return nil
	case gap.FieldFilledByCustomerID:
		m.ResetFilledByCustomerID()
		return nil
	case gap.FieldFilledAt:
		m.ResetFilledAt()
		return nil
	case gap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gap.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Gap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GapMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GapMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GapMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GapMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Gap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GapMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Gap edge %s", name)
}

// OutreachMutation represents an operation that mutates the Outreach nodes in the graph.
type OutreachMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	customer_id         *string
	customer_name       *string
	customer_phone      *string
	_type               *string
	channel             *outreach.Channel
	status              *outreach.Status
	message             *string
	trigger_id          *string
	trigger_kind        *string
	offer               *map[string]interface{}
	attempts            *int
	addattempts         *int
	last_attempt_at     *time.Time
	provider_message_id *string
	sent_at             *time.Time
	delivered_at        *time.Time
	read_at             *time.Time
	last_error          *string
	response_received   *bool
	response_action     *string
	responded_at        *time.Time
	response_booking_id *string
	created_at          *time.Time
	updated_at          *time.Time
	expires_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Outreach, error)
	predicates          []predicate.Outreach
}

var _ ent.Mutation = (*OutreachMutation)(nil)

// outreachOption allows management of the mutation configuration using functional options.
type outreachOption func(*OutreachMutation)

// newOutreachMutation creates new mutation for the Outreach entity.
func newOutreachMutation(c config, op Op, opts ...outreachOption) *OutreachMutation {
	m := &OutreachMutation{
		config:        c,
		op:            op,
		typ:           TypeOutreach,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutreachID sets the ID field of the mutation.
func withOutreachID(id string) outreachOption {
	return func(m *OutreachMutation) {
		var (
			err   error
			once  sync.Once
			value *Outreach
		)
		m.oldValue = func(ctx context.Context) (*Outreach, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Outreach.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutreach sets the old Outreach of the mutation.
func withOutreach(node *Outreach) outreachOption {
	return func(m *OutreachMutation) {
		m.oldValue = func(context.Context) (*Outreach, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutreachMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutreachMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Outreach entities.
func (m *OutreachMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutreachMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutreachMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Outreach.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OutreachMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OutreachMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OutreachMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *OutreachMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *OutreachMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *OutreachMutation) ResetCustomerID() {
	m.customer_id = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *OutreachMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *OutreachMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *OutreachMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[outreach.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *OutreachMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[outreach.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *OutreachMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, outreach.FieldCustomerName)
}

// SetCustomerPhone sets the "customer_phone" field.
func (m *OutreachMutation) SetCustomerPhone(s string) {
	m.customer_phone = &s
}

// CustomerPhone returns the value of the "customer_phone" field in the mutation.
func (m *OutreachMutation) CustomerPhone() (r string, exists bool) {
	v := m.customer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhone returns the old "customer_phone" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldCustomerPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhone: %w", err)
	}
	return oldValue.CustomerPhone, nil
}

// ResetCustomerPhone resets all changes to the "customer_phone" field.
func (m *OutreachMutation) ResetCustomerPhone() {
	m.customer_phone = nil
}

// SetType sets the "type" field.
func (m *OutreachMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *OutreachMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *OutreachMutation) ResetType() {
	m._type = nil
}

// SetChannel sets the "channel" field.
func (m *OutreachMutation) SetChannel(o outreach.Channel) {
	m.channel = &o
}

// Channel returns the value of the "channel" field in the mutation.
func (m *OutreachMutation) Channel() (r outreach.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldChannel(ctx context.Context) (v outreach.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *OutreachMutation) ResetChannel() {
	m.channel = nil
}

// SetStatus sets the "status" field.
func (m *OutreachMutation) SetStatus(o outreach.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutreachMutation) Status() (r outreach.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldStatus(ctx context.Context) (v outreach.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutreachMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *OutreachMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *OutreachMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *OutreachMutation) ResetMessage() {
	m.message = nil
}

// SetTriggerID sets the "trigger_id" field.
func (m *OutreachMutation) SetTriggerID(s string) {
	m.trigger_id = &s
}

// TriggerID returns the value of the "trigger_id" field in the mutation.
func (m *OutreachMutation) TriggerID() (r string, exists bool) {
	v := m.trigger_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerID returns the old "trigger_id" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldTriggerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerID: %w", err)
	}
	return oldValue.TriggerID, nil
}

// ResetTriggerID resets all changes to the "trigger_id" field.
func (m *OutreachMutation) ResetTriggerID() {
	m.trigger_id = nil
}

// SetTriggerKind sets the "trigger_kind" field.
func (m *OutreachMutation) SetTriggerKind(s string) {
	m.trigger_kind = &s
}

// TriggerKind returns the value of the "trigger_kind" field in the mutation.
func (m *OutreachMutation) TriggerKind() (r string, exists bool) {
	v := m.trigger_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerKind returns the old "trigger_kind" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldTriggerKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerKind: %w", err)
	}
	return oldValue.TriggerKind, nil
}

// ResetTriggerKind resets all changes to the "trigger_kind" field.
func (m *OutreachMutation) ResetTriggerKind() {
	m.trigger_kind = nil
}

// SetOffer sets the "offer" field.
func (m *OutreachMutation) SetOffer(value map[string]interface{}) {
	m.offer = &value
}

// Offer returns the value of the "offer" field in the mutation.
func (m *OutreachMutation) Offer() (r map[string]interface{}, exists bool) {
	v := m.offer
	if v == nil {
		return
	}
	return *v, true
}

// OldOffer returns the old "offer" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldOffer(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOffer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOffer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOffer: %w", err)
	}
	return oldValue.Offer, nil
}

// ClearOffer clears the value of the "offer" field.
func (m *OutreachMutation) ClearOffer() {
	m.offer = nil
	m.clearedFields[outreach.FieldOffer] = struct{}{}
}

// OfferCleared returns if the "offer" field was cleared in this mutation.
func (m *OutreachMutation) OfferCleared() bool {
	_, ok := m.clearedFields[outreach.FieldOffer]
	return ok
}

// ResetOffer resets all changes to the "offer" field.
func (m *OutreachMutation) ResetOffer() {
	m.offer = nil
	delete(m.clearedFields, outreach.FieldOffer)
}

// SetAttempts sets the "attempts" field.
func (m *OutreachMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *OutreachMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *OutreachMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *OutreachMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *OutreachMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *OutreachMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *OutreachMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *OutreachMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[outreach.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *OutreachMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[outreach.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *OutreachMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, outreach.FieldLastAttemptAt)
}

// SetProviderMessageID sets the "provider_message_id" field.
func (m *OutreachMutation) SetProviderMessageID(s string) {
	m.provider_message_id = &s
}

// ProviderMessageID returns the value of the "provider_message_id" field in the mutation.
func (m *OutreachMutation) ProviderMessageID() (r string, exists bool) {
	v := m.provider_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMessageID returns the old "provider_message_id" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldProviderMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMessageID: %w", err)
	}
	return oldValue.ProviderMessageID, nil
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (m *OutreachMutation) ClearProviderMessageID() {
	m.provider_message_id = nil
	m.clearedFields[outreach.FieldProviderMessageID] = struct{}{}
}

// ProviderMessageIDCleared returns if the "provider_message_id" field was cleared in this mutation.
func (m *OutreachMutation) ProviderMessageIDCleared() bool {
	_, ok := m.clearedFields[outreach.FieldProviderMessageID]
	return ok
}

// ResetProviderMessageID resets all changes to the "provider_message_id" field.
func (m *OutreachMutation) ResetProviderMessageID() {
	m.provider_message_id = nil
	delete(m.clearedFields, outreach.FieldProviderMessageID)
}

// SetSentAt sets the "sent_at" field.
func (m *OutreachMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *OutreachMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *OutreachMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[outreach.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *OutreachMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[outreach.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *OutreachMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, outreach.FieldSentAt)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *OutreachMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *OutreachMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *OutreachMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[outreach.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *OutreachMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[outreach.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *OutreachMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, outreach.FieldDeliveredAt)
}

// SetReadAt sets the "read_at" field.
func (m *OutreachMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *OutreachMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *OutreachMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[outreach.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *OutreachMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[outreach.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *OutreachMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, outreach.FieldReadAt)
}

// SetLastError sets the "last_error" field.
func (m *OutreachMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *OutreachMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *OutreachMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[outreach.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *OutreachMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[outreach.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *OutreachMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, outreach.FieldLastError)
}

// SetResponseReceived sets the "response_received" field.
func (m *OutreachMutation) SetResponseReceived(b bool) {
	m.response_received = &b
}

// ResponseReceived returns the value of the "response_received" field in the mutation.
func (m *OutreachMutation) ResponseReceived() (r bool, exists bool) {
	v := m.response_received
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseReceived returns the old "response_received" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldResponseReceived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseReceived: %w", err)
	}
	return oldValue.ResponseReceived, nil
}

// ResetResponseReceived resets all changes to the "response_received" field.
func (m *OutreachMutation) ResetResponseReceived() {
	m.response_received = nil
}

// SetResponseAction sets the "response_action" field.
func (m *OutreachMutation) SetResponseAction(s string) {
	m.response_action = &s
}

// ResponseAction returns the value of the "response_action" field in the mutation.
func (m *OutreachMutation) ResponseAction() (r string, exists bool) {
	v := m.response_action
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseAction returns the old "response_action" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldResponseAction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseAction: %w", err)
	}
	return oldValue.ResponseAction, nil
}

// ClearResponseAction clears the value of the "response_action" field.
func (m *OutreachMutation) ClearResponseAction() {
	m.response_action = nil
	m.clearedFields[outreach.FieldResponseAction] = struct{}{}
}

// ResponseActionCleared returns if the "response_action" field was cleared in this mutation.
func (m *OutreachMutation) ResponseActionCleared() bool {
	_, ok := m.clearedFields[outreach.FieldResponseAction]
	return ok
}

// ResetResponseAction resets all changes to the "response_action" field.
func (m *OutreachMutation) ResetResponseAction() {
	m.response_action = nil
	delete(m.clearedFields, outreach.FieldResponseAction)
}

// SetRespondedAt sets the "responded_at" field.
func (m *OutreachMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *OutreachMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *OutreachMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[outreach.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *OutreachMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[outreach.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *OutreachMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, outreach.FieldRespondedAt)
}

// SetResponseBookingID sets the "response_booking_id" field.
func (m *OutreachMutation) SetResponseBookingID(s string) {
	m.response_booking_id = &s
}

// ResponseBookingID returns the value of the "response_booking_id" field in the mutation.
func (m *OutreachMutation) ResponseBookingID() (r string, exists bool) {
	v := m.response_booking_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBookingID returns the old "response_booking_id" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldResponseBookingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBookingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBookingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBookingID: %w", err)
	}
	return oldValue.ResponseBookingID, nil
}

// ClearResponseBookingID clears the value of the "response_booking_id" field.
func (m *OutreachMutation) ClearResponseBookingID() {
	m.response_booking_id = nil
	m.clearedFields[outreach.FieldResponseBookingID] = struct{}{}
}

// ResponseBookingIDCleared returns if the "response_booking_id" field was cleared in this mutation.
func (m *OutreachMutation) ResponseBookingIDCleared() bool {
	_, ok := m.clearedFields[outreach.FieldResponseBookingID]
	return ok
}

// ResetResponseBookingID resets all changes to the "response_booking_id" field.
func (m *OutreachMutation) ResetResponseBookingID() {
	m.response_booking_id = nil
	delete(m.clearedFields, outreach.FieldResponseBookingID)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutreachMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutreachMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutreachMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OutreachMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OutreachMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OutreachMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *OutreachMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *OutreachMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Outreach entity.
// If the Outreach object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutreachMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *OutreachMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the OutreachMutation builder.
func (m *OutreachMutation) Where(ps ...predicate.Outreach) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutreachMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutreachMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Outreach, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutreachMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutreachMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Outreach).
func (m *OutreachMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutreachMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.tenant_id != nil {
		fields = append(fields, outreach.FieldTenantID)
	}
	if m.customer_id != nil {
		fields = append(fields, outreach.FieldCustomerID)
	}
	if m.customer_name != nil {
		fields = append(fields, outreach.FieldCustomerName)
	}
	if m.customer_phone != nil {
		fields = append(fields, outreach.FieldCustomerPhone)
	}
	if m._type != nil {
		fields = append(fields, outreach.FieldType)
	}
	if m.channel != nil {
		fields = append(fields, outreach.FieldChannel)
	}
	if m.status != nil {
		fields = append(fields, outreach.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, outreach.FieldMessage)
	}
	if m.trigger_id != nil {
		fields = append(fields, outreach.FieldTriggerID)
	}
	if m.trigger_kind != nil {
		fields = append(fields, outreach.FieldTriggerKind)
	}
	if m.offer != nil {
		fields = append(fields, outreach.FieldOffer)
	}
	if m.attempts != nil {
		fields = append(fields, outreach.FieldAttempts)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, outreach.FieldLastAttemptAt)
	}
	if m.provider_message_id != nil {
		fields = append(fields, outreach.FieldProviderMessageID)
	}
	if m.sent_at != nil {
		fields = append(fields, outreach.FieldSentAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, outreach.FieldDeliveredAt)
	}
	if m.read_at != nil {
		fields = append(fields, outreach.FieldReadAt)
	}
	if m.last_error != nil {
		fields = append(fields, outreach.FieldLastError)
	}
	if m.response_received != nil {
		fields = append(fields, outreach.FieldResponseReceived)
	}
	if m.response_action != nil {
		fields = append(fields, outreach.FieldResponseAction)
	}
	if m.responded_at != nil {
		fields = append(fields, outreach.FieldRespondedAt)
	}
	if m.response_booking_id != nil {
		fields = append(fields, outreach.FieldResponseBookingID)
	}
	if m.created_at != nil {
		fields = append(fields, outreach.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, outreach.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, outreach.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutreachMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outreach.FieldTenantID:
		return m.TenantID()
	case outreach.FieldCustomerID:
		return m.CustomerID()
	case outreach.FieldCustomerName:
		return m.CustomerName()
	case outreach.FieldCustomerPhone:
		return m.CustomerPhone()
	case outreach.FieldType:
		return m.GetType()
	case outreach.FieldChannel:
		return m.Channel()
	case outreach.FieldStatus:
		return m.Status()
	case outreach.FieldMessage:
		return m.Message()
	case outreach.FieldTriggerID:
		return m.TriggerID()
	case outreach.FieldTriggerKind:
		return m.TriggerKind()
	case outreach.FieldOffer:
		return m.Offer()
	case outreach.FieldAttempts:
		return m.Attempts()
	case outreach.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case outreach.FieldProviderMessageID:
		return m.ProviderMessageID()
	case outreach.FieldSentAt:
		return m.SentAt()
	case outreach.FieldDeliveredAt:
		return m.DeliveredAt()
	case outreach.FieldReadAt:
		return m.ReadAt()
	case outreach.FieldLastError:
		return m.LastError()
	case outreach.FieldResponseReceived:
		return m.ResponseReceived()
	case outreach.FieldResponseAction:
		return m.ResponseAction()
	case outreach.FieldRespondedAt:
		return m.RespondedAt()
	case outreach.FieldResponseBookingID:
		return m.ResponseBookingID()
	case outreach.FieldCreatedAt:
		return m.CreatedAt()
	case outreach.FieldUpdatedAt:
		return m.UpdatedAt()
	case outreach.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutreachMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outreach.FieldTenantID:
		return m.OldTenantID(ctx)
	case outreach.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case outreach.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case outreach.FieldCustomerPhone:
		return m.OldCustomerPhone(ctx)
	case outreach.FieldType:
		return m.OldType(ctx)
	case outreach.FieldChannel:
		return m.OldChannel(ctx)
	case outreach.FieldStatus:
		return m.OldStatus(ctx)
	case outreach.FieldMessage:
		return m.OldMessage(ctx)
	case outreach.FieldTriggerID:
		return m.OldTriggerID(ctx)
	case outreach.FieldTriggerKind:
		return m.OldTriggerKind(ctx)
	case outreach.FieldOffer:
		return m.OldOffer(ctx)
	case outreach.FieldAttempts:
		return m.OldAttempts(ctx)
	case outreach.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case outreach.FieldProviderMessageID:
		return m.OldProviderMessageID(ctx)
	case outreach.FieldSentAt:
		return m.OldSentAt(ctx)
	case outreach.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case outreach.FieldReadAt:
		return m.OldReadAt(ctx)
	case outreach.FieldLastError:
		return m.OldLastError(ctx)
	case outreach.FieldResponseReceived:
		return m.OldResponseReceived(ctx)
	case outreach.FieldResponseAction:
		return m.OldResponseAction(ctx)
	case outreach.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case outreach.FieldResponseBookingID:
		return m.OldResponseBookingID(ctx)
	case outreach.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outreach.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case outreach.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Outreach field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutreachMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outreach.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case outreach.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case outreach.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case outreach.FieldCustomerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhone(v)
		return nil
	case outreach.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case outreach.FieldChannel:
		v, ok := value.(outreach.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case outreach.FieldStatus:
		v, ok := value.(outreach.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outreach.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case outreach.FieldTriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerID(v)
		return nil
	case outreach.FieldTriggerKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerKind(v)
		return nil
	case outreach.FieldOffer:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOffer(v)
		return nil
	case outreach.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case outreach.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case outreach.FieldProviderMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMessageID(v)
		return nil
	case outreach.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case outreach.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case outreach.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case outreach.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case outreach.FieldResponseReceived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseReceived(v)
		return nil
	case outreach.FieldResponseAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseAction(v)
		return nil
	case outreach.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case outreach.FieldResponseBookingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBookingID(v)
		return nil
	case outreach.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outreach.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case outreach.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Outreach field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutreachMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, outreach.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutreachMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outreach.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutreachMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outreach.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Outreach numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutreachMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outreach.FieldCustomerName) {
		fields = append(fields, outreach.FieldCustomerName)
	}
	if m.FieldCleared(outreach.FieldOffer) {
		fields = append(fields, outreach.FieldOffer)
	}
	if m.FieldCleared(outreach.FieldLastAttemptAt) {
		fields = append(fields, outreach.FieldLastAttemptAt)
	}
	if m.FieldCleared(outreach.FieldProviderMessageID) {
		fields = append(fields, outreach.FieldProviderMessageID)
	}
	if m.FieldCleared(outreach.FieldSentAt) {
		fields = append(fields, outreach.FieldSentAt)
	}
	if m.FieldCleared(outreach.FieldDeliveredAt) {
		fields = append(fields, outreach.FieldDeliveredAt)
	}
	if m.FieldCleared(outreach.FieldReadAt) {
		fields = append(fields, outreach.FieldReadAt)
	}
	if m.FieldCleared(outreach.FieldLastError) {
		fields = append(fields, outreach.FieldLastError)
	}
	if m.FieldCleared(outreach.FieldResponseAction) {
		fields = append(fields, outreach.FieldResponseAction)
	}
	if m.FieldCleared(outreach.FieldRespondedAt) {
		fields = append(fields, outreach.FieldRespondedAt)
	}
	if m.FieldCleared(outreach.FieldResponseBookingID) {
		fields = append(fields, outreach.FieldResponseBookingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutreachMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutreachMutation) ClearField(name string) error {
	switch name {
	case outreach.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case outreach.FieldOffer:
		m.ClearOffer()
		return nil
	case outreach.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case outreach.FieldProviderMessageID:
		m.ClearProviderMessageID()
		return nil
	case outreach.FieldSentAt:
		m.ClearSentAt()
		return nil
	case outreach.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	case outreach.FieldReadAt:
		m.ClearReadAt()
		return nil
	case outreach.FieldLastError:
		m.ClearLastError()
		return nil
	case outreach.FieldResponseAction:
		m.ClearResponseAction()
		return nil
	case outreach.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case outreach.FieldResponseBookingID:
		m.ClearResponseBookingID()
		return nil
	}
	return fmt.Errorf("unknown Outreach nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutreachMutation) ResetField(name string) error {
	switch name {
	case outreach.FieldTenantID:
		m.ResetTenantID()
		return nil
	case outreach.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case outreach.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case outreach.FieldCustomerPhone:
		m.ResetCustomerPhone()
		return nil
	case outreach.FieldType:
		m.ResetType()
		return nil
	case outreach.FieldChannel:
		m.ResetChannel()
		return nil
	case outreach.FieldStatus:
		m.ResetStatus()
		return nil
	case outreach.FieldMessage:
		m.ResetMessage()
		return nil
	case outreach.FieldTriggerID:
		m.ResetTriggerID()
		return nil
	case outreach.FieldTriggerKind:
		m.ResetTriggerKind()
		return nil
	case outreach.FieldOffer:
		m.ResetOffer()
		return nil
	case outreach.FieldAttempts:
		m.ResetAttempts()
		return nil
	case outreach.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case outreach.FieldProviderMessageID:
		m.ResetProviderMessageID()
		return nil
	case outreach.FieldSentAt:
		m.ResetSentAt()
		return nil
	case outreach.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case outreach.FieldReadAt:
		m.ResetReadAt()
		return nil
	case outreach.FieldLastError:
		m.ResetLastError()
		return nil
	case outreach.FieldResponseReceived:
		m.ResetResponseReceived()
		return nil
	case outreach.FieldResponseAction:
		m.ResetResponseAction()
		return nil
	case outreach.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case outreach.FieldResponseBookingID:
		m.ResetResponseBookingID()
		return nil
	case outreach.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outreach.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case outreach.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Outreach field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutreachMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutreachMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutreachMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutreachMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutreachMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutreachMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutreachMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Outreach unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutreachMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Outreach edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	queue             *string
	handler           *string
	tenant_id         *string
	payload           *map[string]interface{}
	status            *task.Status
	scheduled_at      *time.Time
	attempts          *int
	addattempts       *int
	max_attempts      *int
	addmax_attempts   *int
	last_error        *string
	pod_id            *string
	started_at        *time.Time
	completed_at      *time.Time
	last_heartbeat_at *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetQueue sets the "queue" field.
func (m *TaskMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *TaskMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *TaskMutation) ResetQueue() {
	m.queue = nil
}

// SetHandler sets the "handler" field.
func (m *TaskMutation) SetHandler(s string) {
	m.handler = &s
}

// Handler returns the value of the "handler" field in the mutation.
func (m *TaskMutation) Handler() (r string, exists bool) {
	v := m.handler
	if v == nil {
		return
	}
	return *v, true
}

// OldHandler returns the old "handler" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHandler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandler: %w", err)
	}
	return oldValue.Handler, nil
}

// ResetHandler resets all changes to the "handler" field.
func (m *TaskMutation) ResetHandler() {
	m.handler = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *TaskMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TaskMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ClearTenantID clears the value of the "tenant_id" field.
func (m *TaskMutation) ClearTenantID() {
	m.tenant_id = nil
	m.clearedFields[task.FieldTenantID] = struct{}{}
}

// TenantIDCleared returns if the "tenant_id" field was cleared in this mutation.
func (m *TaskMutation) TenantIDCleared() bool {
	_, ok := m.clearedFields[task.FieldTenantID]
	return ok
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TaskMutation) ResetTenantID() {
	m.tenant_id = nil
	delete(m.clearedFields, task.FieldTenantID)
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TaskMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[task.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TaskMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[task.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, task.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *TaskMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *TaskMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *TaskMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.queue != nil {
		fields = append(fields, task.FieldQueue)
	}
	if m.handler != nil {
		fields = append(fields, task.FieldHandler)
	}
	if m.tenant_id != nil {
		fields = append(fields, task.FieldTenantID)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.scheduled_at != nil {
		fields = append(fields, task.FieldScheduledAt)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldName:
		return m.Name()
	case task.FieldQueue:
		return m.Queue()
	case task.FieldHandler:
		return m.Handler()
	case task.FieldTenantID:
		return m.TenantID()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldStatus:
		return m.Status()
	case task.FieldScheduledAt:
		return m.ScheduledAt()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldQueue:
		return m.OldQueue(ctx)
	case task.FieldHandler:
		return m.OldHandler(ctx)
	case task.FieldTenantID:
		return m.OldTenantID(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case task.FieldHandler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandler(v)
		return nil
	case task.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAttempts:
		return m.AddedAttempts()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTenantID) {
		fields = append(fields, task.FieldTenantID)
	}
	if m.FieldCleared(task.FieldPayload) {
		fields = append(fields, task.FieldPayload)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTenantID:
		m.ClearTenantID()
		return nil
	case task.FieldPayload:
		m.ClearPayload()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldQueue:
		m.ResetQueue()
		return nil
	case task.FieldHandler:
		m.ResetHandler()
		return nil
	case task.FieldTenantID:
		m.ResetTenantID()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
