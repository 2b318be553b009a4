package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SMSMessage holds the schema definition for the SMSMessage entity.
// Outbound SMS queue and archive in one table: rows start pending, the
// dispatch worker marks them sent or failed, officials archive old ones.
type SMSMessage struct {
	ent.Schema
}

// Mixin of the SMSMessage.
func (SMSMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SMSMessage.
func (SMSMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_group").
			NotEmpty().
			Comment("Audience label, e.g. All Residents or Purok 3"),
		field.JSON("recipients", []string{}).
			Comment("Resolved phone numbers at enqueue time"),
		field.Enum("message_type").
			NamedValues(
				"Custom", "custom",
				"Collection", "collection",
				"Delay", "delay",
				"Education", "education",
				"Emergency", "emergency",
			).
			Default("custom"),
		field.String("body").
			NotEmpty().
			MaxLen(160),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.Time("scheduled_for").
			Optional().
			Nillable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional(),
		field.Bool("archived").
			Default(false),
	}
}

// Indexes of the SMSMessage.
func (SMSMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_for"),
		index.Fields("archived", "created_at"),
	}
}
