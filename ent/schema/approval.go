package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the Approval entity.
// Lifecycle: pending → approved | rejected | expired | cancelled, exactly once.
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("decision_id").
			NotEmpty().
			Immutable(),
		field.String("agent_name").
			NotEmpty(),
		field.String("action_type").
			NotEmpty(),
		field.String("action_summary").
			MinLen(10).
			MaxLen(500),
		field.JSON("action_detail", map[string]interface{}{}).
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired", "cancelled").
			Default("pending"),
		field.JSON("notifications_sent", map[string]bool{}).
			Optional().
			Comment("Channel → sent flag"),
		field.String("response_action").
			Optional(),
		field.String("responder").
			Optional(),
		field.Time("responded_at").
			Optional(),
		field.String("response_notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Comment("Derived from priority at creation unless overridden"),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status", "created_at"),
		index.Fields("tenant_id", "decision_id"),
		index.Fields("status", "expires_at"),
	}
}
