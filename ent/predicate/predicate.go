// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CustomerScore is the predicate function for customerscore builders.
type CustomerScore func(*sql.Selector)

// Decision is the predicate function for decision builders.
type Decision func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Gap is the predicate function for gap builders.
type Gap func(*sql.Selector)

// Outreach is the predicate function for outreach builders.
type Outreach func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
