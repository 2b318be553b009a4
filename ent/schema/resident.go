package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Resident holds the schema definition for the Resident entity.
// Platform accounts: barangay officials, collectors, and residents.
type Resident struct {
	ent.Schema
}

// Mixin of the Resident.
func (Resident) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Resident.
func (Resident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255),
		field.String("display_name").
			Optional(),
		field.Enum("role").
			Values("official", "collector", "resident").
			Default("resident"),
		field.String("purok").
			Optional().
			Comment("Home purok, used for SMS recipient grouping"),
		field.String("phone").
			Optional().
			MaxLen(32).
			Comment("E.164 mobile number for SMS delivery"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Resident.
func (Resident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("email").Unique(),
		index.Fields("purok"),
	}
}
