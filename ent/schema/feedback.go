package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feedback holds the schema definition for the Feedback entity.
// One rating per resident per resolved report.
type Feedback struct {
	ent.Schema
}

// Mixin of the Feedback.
func (Feedback) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			NotEmpty().
			Immutable(),
		field.String("resident_id").
			NotEmpty().
			Immutable(),
		field.Int("rating").
			Range(1, 5),
		field.String("comment").
			Optional().
			MaxLen(2048),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "resident_id").Unique(),
	}
}
