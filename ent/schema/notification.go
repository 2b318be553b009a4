package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Per-resident inbox rows (database-backed in-app notifications).
//
// Notifications are synchronous writes within the same DB transaction as
// the business operation that triggers them (NOT via River Queue).
// One row per (report_id, user_id); a second response to the same report
// updates the existing row via upsert instead of inserting a duplicate.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("report_id").
			NotEmpty().
			Immutable(),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("status").
			NotEmpty().
			Comment("Report status snapshot at delivery time"),
		field.Bool("read").
			Default(false).
			Comment("Whether the notification has been read"),
		field.Time("read_at").
			Optional().
			Nillable().
			Comment("When the notification was marked as read"),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "user_id").Unique(), // Upsert conflict target
		index.Fields("user_id", "read"),               // Fast unread count query
		index.Fields("user_id", "created_at"),         // Paginated list by user
	}
}
