// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPurok holds the string denoting the purok field in the database.
	FieldPurok = "purok"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldWasteType holds the string denoting the waste_type field in the database.
	FieldWasteType = "waste_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRoutePoints holds the string denoting the route_points field in the database.
	FieldRoutePoints = "route_points"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPurok,
	FieldPlan,
	FieldDay,
	FieldDate,
	FieldStartTime,
	FieldEndTime,
	FieldWasteType,
	FieldStatus,
	FieldRoutePoints,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PurokValidator is a validator for the "purok" field. It is called by the builders before save.
	PurokValidator func(string) error
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	StartTimeValidator func(string) error
	// EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	EndTimeValidator func(string) error
)

// Plan defines the type for the "plan" enum field.
type Plan string

// Plan values.
const (
	PlanA Plan = "A"
	PlanB Plan = "B"
)

func (pl Plan) String() string {
	return string(pl)
}

// PlanValidator is a validator for the "plan" field enum values. It is called by the builders before save.
func PlanValidator(pl Plan) error {
	switch pl {
	case PlanA, PlanB:
		return nil
	default:
		return fmt.Errorf("schedule: invalid enum value for plan field: %q", pl)
	}
}

// WasteType defines the type for the "waste_type" enum field.
type WasteType string

// WasteType values.
const (
	WasteTypeRecyclable    WasteType = "Recyclable"
	WasteTypeNonRecyclable WasteType = "Non-Recyclable"
	WasteTypeToxic         WasteType = "Toxic"
	WasteTypeGeneral       WasteType = "General"
)

func (wt WasteType) String() string {
	return string(wt)
}

// WasteTypeValidator is a validator for the "waste_type" field enum values. It is called by the builders before save.
func WasteTypeValidator(wt WasteType) error {
	switch wt {
	case WasteTypeRecyclable, WasteTypeNonRecyclable, WasteTypeToxic, WasteTypeGeneral:
		return nil
	default:
		return fmt.Errorf("schedule: invalid enum value for waste_type field: %q", wt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNotStarted is the default value of the Status enum.
const DefaultStatus = StatusNotStarted

// Status values.
const (
	StatusNotStarted Status = "not-started"
	StatusOngoing    Status = "ongoing"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNotStarted, StatusOngoing, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("schedule: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Schedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPurok orders the results by the purok field.
func ByPurok(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurok, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByWasteType orders the results by the waste_type field.
func ByWasteType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasteType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
