package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Outreach holds the schema definition for the Outreach entity.
// A single outbound customer message and its delivery/response lifecycle.
// Status transitions are monotone: pending → sent → delivered → read →
// responded, with failed/expired branches. Webhook retries replaying an
// earlier status are ignored.
type Outreach struct {
	ent.Schema
}

// Fields of the Outreach.
func (Outreach) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outreach_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("customer_id").
			NotEmpty(),
		field.String("customer_name").
			Optional(),
		field.String("customer_phone").
			NotEmpty(),
		field.String("type").
			NotEmpty().
			Comment("Outreach type (e.g. 'gap_fill_offer')"),
		field.Enum("channel").
			Values("whatsapp", "sms", "push", "email").
			Default("whatsapp"),
		field.Enum("status").
			Values("pending", "sent", "delivered", "read", "responded", "failed", "expired").
			Default("pending"),
		field.Text("message").
			NotEmpty(),
		field.String("trigger_id").
			NotEmpty(),
		field.String("trigger_kind").
			NotEmpty(),
		field.JSON("offer", map[string]interface{}{}).
			Optional().
			Comment("Offer detail presented to the customer"),
		field.Int("attempts").
			Default(0),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),

		// Delivery sub-record.
		field.String("provider_message_id").
			Optional().
			Nillable().
			Comment("Provider-issued message id; O(1) webhook lookup"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),

		// Response sub-record.
		field.Bool("response_received").
			Default(false),
		field.String("response_action").
			Optional().
			Nillable().
			Comment("accept | decline | select_N"),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.String("response_booking_id").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at"),
	}
}

// Indexes of the Outreach.
func (Outreach) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_message_id").
			Annotations(entsql.IndexWhere("provider_message_id IS NOT NULL")),
		index.Fields("tenant_id", "customer_id", "created_at"),
		index.Fields("tenant_id", "trigger_id", "status"),
		index.Fields("tenant_id", "created_at"),
		// Inbound webhook lookup spans tenants by design (sender phone only).
		index.Fields("customer_phone", "created_at"),
		index.Fields("status", "expires_at"),
	}
}
