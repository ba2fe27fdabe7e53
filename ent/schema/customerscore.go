package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CustomerScore holds the schema definition for the CustomerScore entity —
// a precomputed per-(tenant, customer) scoring projection shared by all
// agents. Recomputed after every visit, every payment, and on a daily sweep.
type CustomerScore struct {
	ent.Schema
}

// Fields of the CustomerScore.
func (CustomerScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("score_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("customer_id").
			NotEmpty().
			Immutable(),

		// Lifetime value.
		field.Int64("ltv_total").
			Default(0),
		field.Int64("ltv_projected").
			Default(0),
		field.Int64("avg_visit_value").
			Default(0),
		field.Float("visit_frequency_monthly").
			Default(0),
		field.Float("est_lifespan_months").
			Default(0),
		field.Bool("membership_bonus").
			Default(false),

		field.JSON("engagement", map[string]interface{}{}).
			Optional(),

		// Churn risk.
		field.Int("churn_score").
			Default(0).
			Range(0, 100),
		field.Enum("churn_level").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.JSON("churn_factors", []string{}).
			Optional(),

		field.Enum("segment").
			Values("vip", "high_value", "regular", "at_risk", "new", "dormant").
			Default("new"),
		field.Time("last_visit_at").
			Optional().
			Nillable(),
		field.Time("computed_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CustomerScore.
func (CustomerScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "customer_id").
			Unique(),
		index.Fields("tenant_id", "segment"),
		index.Fields("tenant_id", "churn_level"),
	}
}
