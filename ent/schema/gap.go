package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Gap holds the schema definition for the Gap entity — an unscheduled
// interval in a staff member's day. Detection is external; this system
// consumes open gaps and tries to fill them.
type Gap struct {
	ent.Schema
}

// Fields of the Gap.
func (Gap) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gap_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("staff_id").
			NotEmpty(),
		field.String("staff_name").
			Optional(),
		field.String("date").
			NotEmpty().
			Comment("Tenant-local day, YYYY-MM-DD"),
		field.Time("start_time"),
		field.Time("end_time"),
		field.Int("duration_minutes").
			Positive(),
		field.Enum("priority").
			Values("low", "medium", "high", "critical"),
		field.Enum("status").
			Values("open", "filled", "expired", "ignored").
			Default("open"),
		field.Int64("potential_revenue").
			Default(0),
		field.JSON("fittable_service_ids", []string{}).
			Optional(),
		field.Int("fill_attempts").
			Default(0),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),
		field.String("filled_by_booking_id").
			Optional().
			Nillable(),
		field.String("filled_by_customer_id").
			Optional().
			Nillable(),
		field.Time("filled_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Gap.
func (Gap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status", "date"),
		index.Fields("tenant_id", "staff_id", "date"),
	}
}
