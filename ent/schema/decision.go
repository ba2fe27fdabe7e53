package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Decision holds the schema definition for the Decision entity.
// One record per autonomous choice made by an agent.
type Decision struct {
	ent.Schema
}

// Fields of the Decision.
func (Decision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("agent_name").
			NotEmpty(),
		field.Enum("kind").
			Values("gap_fill", "no_show_prevention", "waitlist_promotion", "discount_offer", "dynamic_pricing"),
		field.Enum("autonomy").
			Values("full_auto", "supervised", "manual_only"),
		field.String("trigger_id").
			Comment("Id of the record that triggered the decision (e.g. gap id)"),
		field.String("trigger_kind").
			Comment("Kind of the triggering record (e.g. 'gap')"),
		field.String("customer_id").
			Optional(),
		field.String("staff_id").
			Optional(),
		field.String("service_id").
			Optional(),
		field.String("slot_ref").
			Optional().
			Comment("Opaque reference to the schedule slot"),
		field.String("action_summary").
			NotEmpty(),
		field.JSON("action_detail", map[string]interface{}{}).
			Optional(),
		field.Int64("revenue_potential").
			Default(0).
			Comment("Fixed-precision minor currency units"),
		field.Int64("revenue_actual").
			Optional().
			Nillable(),
		field.Bool("approval_required").
			Default(false),
		field.Enum("approval_status").
			Values("none", "pending", "approved", "rejected", "expired", "cancelled").
			Default("none").
			Comment("Mirror of the owned Approval record's status"),
		field.String("approval_approver").
			Optional().
			Nillable(),
		field.Time("approval_decided_at").
			Optional().
			Nillable(),
		field.Enum("outcome_status").
			Values("pending", "success", "failed", "expired", "rejected").
			Default("pending"),
		field.String("outcome_result").
			Optional().
			Nillable(),
		field.String("outcome_booking_id").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Comment("Decision expires unless moved to a terminal outcome first"),
	}
}

// Indexes of the Decision. Tenant id is the first component of every
// composite index (tenant isolation predicate).
func (Decision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "agent_name", "created_at"),
		index.Fields("tenant_id", "trigger_id"),
		index.Fields("tenant_id", "outcome_status"),
		index.Fields("outcome_status", "expires_at"),
	}
}
