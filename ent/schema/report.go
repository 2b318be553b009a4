package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
// Resident-submitted issue reports (missed pickup, illegal dumping, ...).
//
// status and official_response are denormalized copies of the latest
// ReportStatus row so list views never need a join. The ReportStatus
// table stays authoritative; both are written in one transaction.
type Report struct {
	ent.Schema
}

// Mixin of the Report.
func (Report) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			NotEmpty().
			MaxLen(4096),
		field.String("category").
			Optional(),
		field.String("location").
			Optional(),
		field.JSON("file_urls", []string{}).
			Optional().
			Comment("Attachment URLs in upload order"),
		field.String("status").
			Default("Pending"),
		field.String("official_response").
			Optional(),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
