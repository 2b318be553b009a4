package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportStatus holds the schema definition for the ReportStatus entity.
// Authoritative status record per report, written via upsert keyed on
// report_id so responding twice updates in place instead of stacking rows.
type ReportStatus struct {
	ent.Schema
}

// Mixin of the ReportStatus.
func (ReportStatus) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ReportStatus.
func (ReportStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			NamedValues(
				"Pending", "Pending",
				"InProgress", "In Progress",
				"Resolved", "Resolved",
			).
			Default("Pending"),
		field.String("official_response").
			Optional(),
	}
}

// Indexes of the ReportStatus.
func (ReportStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id").Unique(),
	}
}
