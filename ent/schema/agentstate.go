package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentState holds the schema definition for the AgentState entity.
// One record per (tenant, agent) pair; the single source of truth for
// circuit-breaker state, rolling counters, and rate-limit windows.
//
// Counter bumps and breaker transitions use conditional updates guarded by
// the "version" field so concurrent workers never lose updates.
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_state_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("agent_name").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("active", "paused", "error", "circuit_breaker").
			Default("active"),
		field.Time("last_execution").
			Optional().
			Nillable(),
		field.Time("next_scheduled").
			Optional().
			Nillable(),

		// Circuit breaker sub-record.
		field.Enum("breaker_state").
			Values("closed", "open", "half_open").
			Default("closed"),
		field.Int("breaker_consecutive_errors").
			Default(0),
		field.String("breaker_last_error").
			Optional().
			Nillable(),
		field.Time("breaker_first_failure_at").
			Optional().
			Nillable().
			Comment("Start of the current consecutive-failure window"),
		field.Time("breaker_cooldown_until").
			Optional().
			Nillable(),
		field.Int("breaker_cooldown_minutes").
			Default(0).
			Comment("Last applied cooldown, doubled on repeated trips (capped)"),
		field.Bool("probe_in_flight").
			Default(false).
			Comment("Half-open admits exactly one probe action"),

		// Per-agent config knobs.
		field.Int("max_hourly_actions").
			Default(30),
		field.Int("max_daily_actions").
			Default(100),
		field.Int("cooldown_minutes").
			Default(60),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Agent-specific custom knobs"),

		// Rolling daily counters. counter_date is the tenant-local day stamp;
		// drift triggers an idempotent daily reset.
		field.String("counter_date").
			Default("").
			Comment("YYYY-MM-DD stamp the counters belong to"),
		field.Int("actions_taken").
			Default(0),
		field.Int("actions_successful").
			Default(0),
		field.Int("actions_failed").
			Default(0),
		field.Int64("revenue_generated").
			Default(0),
		field.JSON("actions_by_type", map[string]int{}).
			Optional(),

		// Sliding rate-limit windows.
		field.Time("hour_window_start").
			Optional().
			Nillable(),
		field.Int("hour_window_count").
			Default(0),
		field.Time("day_window_start").
			Optional().
			Nillable(),
		field.Int("day_window_count").
			Default(0),

		// Health.
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.Int("consecutive_failures").
			Default(0),
		field.Float("success_rate").
			Default(1.0),
		field.Float("avg_latency_ms").
			Default(0),

		// Optimistic lock for linearizable counter/status updates.
		field.Int64("version").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "agent_name").
			Unique(),
		index.Fields("tenant_id", "status"),
		index.Fields("breaker_state", "breaker_cooldown_until"),
	}
}
