package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Append-only operational feed rows. Hard-delete is NOT allowed.
type Activity struct {
	ent.Schema
}

// Mixin of the Activity.
func (Activity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			NamedValues(
				"Create", "create",
				"Complete", "complete",
				"Update", "update",
				"Reset", "reset",
				"ReportUpdate", "report_update",
			).
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable().
			Comment("Human-readable feed line"),
		field.String("schedule_id").
			Optional().
			Immutable(),
		field.String("report_id").
			Optional().
			Immutable(),
		field.String("actor").
			Optional().
			Immutable(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("type"),
		index.Fields("schedule_id"),
	}
}
