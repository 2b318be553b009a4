// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"create", "complete", "update", "reset", "report_update"}},
		{Name: "action", Type: field.TypeString},
		{Name: "schedule_id", Type: field.TypeString, Nullable: true},
		{Name: "report_id", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString, Nullable: true},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[1]},
			},
			{
				Name:    "activity_type",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2]},
			},
			{
				Name:    "activity_schedule_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4]},
			},
		},
	}
	// EducationalContentsColumns holds the columns for the "educational_contents" table.
	EducationalContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "published", Type: field.TypeBool, Default: true},
	}
	// EducationalContentsTable holds the schema information for the "educational_contents" table.
	EducationalContentsTable = &schema.Table{
		Name:       "educational_contents",
		Columns:    EducationalContentsColumns,
		PrimaryKey: []*schema.Column{EducationalContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "educationalcontent_published_created_at",
				Unique:  false,
				Columns: []*schema.Column{EducationalContentsColumns[6], EducationalContentsColumns[1]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
		{Name: "resident_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2048},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_report_id_resident_id",
				Unique:  true,
				Columns: []*schema.Column{FeedbacksColumns[3], FeedbacksColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "report_id", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "status", Type: field.TypeString},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_report_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationsColumns[4], NotificationsColumns[3]},
			},
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[7]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Size: 4096},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "file_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "Pending"},
		{Name: "official_response", Type: field.TypeString, Nullable: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[3]},
			},
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[9]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
		},
	}
	// ReportStatusColumns holds the columns for the "report_status" table.
	ReportStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Pending", "In Progress", "Resolved"}, Default: "Pending"},
		{Name: "official_response", Type: field.TypeString, Nullable: true},
	}
	// ReportStatusTable holds the schema information for the "report_status" table.
	ReportStatusTable = &schema.Table{
		Name:       "report_status",
		Columns:    ReportStatusColumns,
		PrimaryKey: []*schema.Column{ReportStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportstatus_report_id",
				Unique:  true,
				Columns: []*schema.Column{ReportStatusColumns[3]},
			},
		},
	}
	// ResidentsColumns holds the columns for the "residents" table.
	ResidentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"official", "collector", "resident"}, Default: "resident"},
		{Name: "purok", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// ResidentsTable holds the schema information for the "residents" table.
	ResidentsTable = &schema.Table{
		Name:       "residents",
		Columns:    ResidentsColumns,
		PrimaryKey: []*schema.Column{ResidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resident_username",
				Unique:  true,
				Columns: []*schema.Column{ResidentsColumns[3]},
			},
			{
				Name:    "resident_email",
				Unique:  true,
				Columns: []*schema.Column{ResidentsColumns[4]},
			},
			{
				Name:    "resident_purok",
				Unique:  false,
				Columns: []*schema.Column{ResidentsColumns[7]},
			},
		},
	}
	// SmsMessagesColumns holds the columns for the "sms_messages" table.
	SmsMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_group", Type: field.TypeString},
		{Name: "recipients", Type: field.TypeJSON},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"custom", "collection", "delay", "education", "emergency"}, Default: "custom"},
		{Name: "body", Type: field.TypeString, Size: 160},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
	}
	// SmsMessagesTable holds the schema information for the "sms_messages" table.
	SmsMessagesTable = &schema.Table{
		Name:       "sms_messages",
		Columns:    SmsMessagesColumns,
		PrimaryKey: []*schema.Column{SmsMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "smsmessage_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[7], SmsMessagesColumns[8]},
			},
			{
				Name:    "smsmessage_archived_created_at",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[11], SmsMessagesColumns[1]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "purok", Type: field.TypeString, Size: 255},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"A", "B"}},
		{Name: "day", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString},
		{Name: "waste_type", Type: field.TypeEnum, Enums: []string{"Recyclable", "Non-Recyclable", "Toxic", "General"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not-started", "ongoing", "completed"}, Default: "not-started"},
		{Name: "route_points", Type: field.TypeJSON, Nullable: true},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_date",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[6]},
			},
			{
				Name:    "schedule_purok",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[3]},
			},
			{
				Name:    "schedule_date_start_time",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[6], SchedulesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		EducationalContentsTable,
		FeedbacksTable,
		NotificationsTable,
		ReportsTable,
		ReportStatusTable,
		ResidentsTable,
		SmsMessagesTable,
		SchedulesTable,
	}
)

func init() {
}
