package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only; rows are never updated or deleted by application code.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info").
			Immutable(),
		field.String("actor").
			NotEmpty().
			Immutable().
			Comment("Agent name or user id that caused the event"),
		field.String("resource_type").
			Optional().
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("trace_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "event_type", "created_at"),
	}
}
