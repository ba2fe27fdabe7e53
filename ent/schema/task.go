package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the deferred-work
// queue. Tasks are claimed by workers with FOR UPDATE SKIP LOCKED.
//
// Task names are deterministic functions of their key inputs; a partial
// unique index over non-terminal rows collapses duplicate enqueues.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Immutable().
			Comment("Deterministic idempotency name"),
		field.String("queue").
			Default("default"),
		field.String("handler").
			NotEmpty().
			Comment("Handler path, e.g. 'agent_run', 'outreach_send', 'cleanup'"),
		field.String("tenant_id").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("scheduled_at").
			Default(time.Now).
			Comment("Earliest execution time"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_at"),
		index.Fields("queue", "status"),
		index.Fields("status", "last_heartbeat_at"),
		// Duplicate enqueues of the same logical task collapse while a
		// live copy exists.
		index.Fields("name").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'in_progress')")),
	}
}
