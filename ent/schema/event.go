package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the persisted
// domain event topic. Rows are written by pkg/events with raw SQL inside
// the same transaction as the pg_notify broadcast; this schema exists so
// migrations create the table.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
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
		field.String("channel").
			NotEmpty().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("event_type", "created_at"),
		index.Fields("created_at"),
	}
}
