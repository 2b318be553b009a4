package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutePoint is a single coordinate on a collection route polyline.
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Schedule holds the schema definition for the Schedule entity.
// One row per collection window for a purok on a given date.
//
// date is stored as "2006-01-02" and the times as "15:04" local wall
// clock. The persisted status is authoritative for transitions; whether
// a collection is running right now is derived from the window instead.
type Schedule struct {
	ent.Schema
}

// Mixin of the Schedule.
func (Schedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("purok").
			NotEmpty().
			MaxLen(255),
		field.Enum("plan").
			Values("A", "B").
			Comment("Alternating collection plan"),
		field.String("day").
			NotEmpty().
			Comment("Weekday label shown to residents, derived from date"),
		field.String("date").
			NotEmpty().
			Comment("Collection date, 2006-01-02"),
		field.String("start_time").
			NotEmpty().
			Comment("Window start, 15:04"),
		field.String("end_time").
			NotEmpty().
			Comment("Window end, 15:04"),
		field.Enum("waste_type").
			NamedValues(
				"Recyclable", "Recyclable",
				"NonRecyclable", "Non-Recyclable",
				"Toxic", "Toxic",
				"General", "General",
			),
		field.Enum("status").
			NamedValues(
				"NotStarted", "not-started",
				"Ongoing", "ongoing",
				"Completed", "completed",
			).
			Default("not-started"),
		field.JSON("route_points", []RoutePoint{}).
			Optional(),
	}
}

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
		index.Fields("purok"),
		index.Fields("date", "start_time"),
	}
}
