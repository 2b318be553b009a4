package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EducationalContent holds the schema definition for the EducationalContent
// entity. Waste-segregation guides and announcements shown to residents.
type EducationalContent struct {
	ent.Schema
}

// Mixin of the EducationalContent.
func (EducationalContent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EducationalContent.
func (EducationalContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("body").
			NotEmpty(),
		field.String("category").
			Optional(),
		field.Bool("published").
			Default(true),
	}
}

// Indexes of the EducationalContent.
func (EducationalContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published", "created_at"),
	}
}
