// Package service provides domain services for Kolekta.
//
// Services hold query and validation logic reused by use cases and
// handlers. Transactions are managed at the use case level.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kolekta.io/kolekta/ent"
	entschedule "kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/ent/schema"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
)

const (
	// DateLayout is the wire and storage format for collection dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format for window times.
	TimeLayout = "15:04"
)

// IsOngoingAt reports whether the collection window [date+start, date+end]
// contains now. Both endpoints are inclusive. The window is evaluated in
// now's location; malformed fields make the window empty, never an error,
// so a bad row can't wedge a dashboard.
func IsOngoingAt(date, startTime, endTime string, now time.Time) bool {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+startTime, now.Location())
	if err != nil {
		return false
	}
	end, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+endTime, now.Location())
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// NormalizePurok strips a leading "Purok " label (any case) so that
// "Purok 3", "purok 3" and "3" all address the same purok.
func NormalizePurok(q string) string {
	trimmed := strings.TrimSpace(q)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "purok ") {
		return strings.TrimSpace(trimmed[len("purok "):])
	}
	return trimmed
}

// WeekdayFor returns the weekday label for a stored date, e.g. "Monday".
// Unparseable dates yield the empty string.
func WeekdayFor(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// ParseWasteType converts a wire waste-type string to the schema enum.
func ParseWasteType(s string) (entschedule.WasteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recyclable":
		return entschedule.WasteTypeRecyclable, nil
	case "non-recyclable":
		return entschedule.WasteTypeNonRecyclable, nil
	case "toxic":
		return entschedule.WasteTypeToxic, nil
	case "general":
		return entschedule.WasteTypeGeneral, nil
	default:
		return "", fmt.Errorf("unknown waste type %q", s)
	}
}

// CreateScheduleInput represents the input for creating a schedule.
// The weekday label is derived from the date, never supplied by clients.
type CreateScheduleInput struct {
	Purok       string              `json:"purok"`
	Plan        string              `json:"plan"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	WasteType   string              `json:"waste_type"`
	RoutePoints []schema.RoutePoint `json:"route_points"`
}

// Validate checks the input fields and returns a field-level error list.
func (in CreateScheduleInput) Validate() error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(in.Purok) == "" {
		fields = append(fields, apperrors.FieldError{Field: "purok", Code: "required"})
	}
	if in.Plan != "A" && in.Plan != "B" {
		fields = append(fields, apperrors.FieldError{Field: "plan", Code: "invalid", Message: "plan must be A or B"})
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "date", Code: "invalid", Message: "date must be YYYY-MM-DD"})
	}
	if _, err := ParseWasteType(in.WasteType); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "waste_type", Code: "invalid",
			Message: "waste_type must be one of Recyclable, Non-Recyclable, Toxic, General"})
	}

	start, startErr := time.Parse(TimeLayout, in.StartTime)
	if startErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "start_time", Code: "invalid", Message: "start_time must be HH:MM"})
	}
	end, endErr := time.Parse(TimeLayout, in.EndTime)
	if endErr != nil {
		fields = append(fields, apperrors.FieldError{Field: "end_time", Code: "invalid", Message: "end_time must be HH:MM"})
	}
	if startErr == nil && endErr == nil && !start.Before(end) {
		fields = append(fields, apperrors.FieldError{Field: "end_time", Code: "invalid", Message: "end_time must be after start_time"})
	}

	if len(fields) > 0 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "schedule validation failed").
			WithFieldErrors(fields)
	}
	return nil
}

// ParseStatus converts a wire status string to the schema enum.
func ParseStatus(s string) (entschedule.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(entschedule.StatusNotStarted):
		return entschedule.StatusNotStarted, nil
	case string(entschedule.StatusOngoing):
		return entschedule.StatusOngoing, nil
	case string(entschedule.StatusCompleted):
		return entschedule.StatusCompleted, nil
	default:
		return "", apperrors.ErrInvalidStatusf(s)
	}
}

// ScheduleService provides schedule queries.
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// GetByID fetches a schedule by ID.
func (s *ScheduleService) GetByID(ctx context.Context, id string) (*ent.Schedule, error) {
	row, err := s.client.Schedule.Query().Where(entschedule.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrScheduleNotFoundf(id)
		}
		return nil, fmt.Errorf("get schedule %s: %w", id, err)
	}
	return row, nil
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	Purok  string
	Date   string
	Status string
}

// List returns schedules ordered by date then start time.
// The purok filter is a case-insensitive substring match on the
// normalized value, so "Purok 3" finds rows stored as "3" or "Purok 3".
func (s *ScheduleService) List(ctx context.Context, f ListFilter) ([]*ent.Schedule, error) {
	q := s.client.Schedule.Query()
	if f.Purok != "" {
		q = q.Where(entschedule.PurokContainsFold(NormalizePurok(f.Purok)))
	}
	if f.Date != "" {
		q = q.Where(entschedule.DateEQ(f.Date))
	}
	if f.Status != "" {
		status, err := ParseStatus(f.Status)
		if err != nil {
			return nil, err
		}
		q = q.Where(entschedule.StatusEQ(status))
	}

	rows, err := q.
		Order(ent.Asc(entschedule.FieldDate), ent.Asc(entschedule.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return rows, nil
}

// Upcoming returns schedules strictly after now's date, soonest first.
func (s *ScheduleService) Upcoming(ctx context.Context, now time.Time) ([]*ent.Schedule, error) {
	today := now.Format(DateLayout)
	rows, err := s.client.Schedule.Query().
		Where(entschedule.DateGT(today)).
		Order(ent.Asc(entschedule.FieldDate), ent.Asc(entschedule.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming schedules: %w", err)
	}
	return rows, nil
}

// OngoingNow returns today's schedules whose window contains now.
// This is derived from the window, independent of the persisted status:
// a collector who forgot to press "start" still shows as ongoing.
func (s *ScheduleService) OngoingNow(ctx context.Context, now time.Time) ([]*ent.Schedule, error) {
	today := now.Format(DateLayout)
	rows, err := s.client.Schedule.Query().
		Where(entschedule.DateEQ(today)).
		Order(ent.Asc(entschedule.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list today's schedules: %w", err)
	}

	ongoing := rows[:0]
	for _, row := range rows {
		if IsOngoingAt(row.Date, row.StartTime, row.EndTime, now) {
			ongoing = append(ongoing, row)
		}
	}
	return ongoing, nil
}

// Stats summarizes schedule state for the dashboard.
type Stats struct {
	Total        int `json:"total"`
	NotStarted   int `json:"not_started"`
	Ongoing      int `json:"ongoing"`
	Completed    int `json:"completed"`
	ActiveRoutes int `json:"active_routes"`
}

// ComputeStats counts schedules by persisted status and derives
// ActiveRoutes: rows persisted as ongoing plus today's rows whose
// window contains now, counted once each.
func (s *ScheduleService) ComputeStats(ctx context.Context, now time.Time) (*Stats, error) {
	rows, err := s.client.Schedule.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedules for stats: %w", err)
	}

	stats := &Stats{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case entschedule.StatusNotStarted:
			stats.NotStarted++
		case entschedule.StatusOngoing:
			stats.Ongoing++
		case entschedule.StatusCompleted:
			stats.Completed++
		}
		if row.Status == entschedule.StatusOngoing || IsOngoingAt(row.Date, row.StartTime, row.EndTime, now) {
			stats.ActiveRoutes++
		}
	}
	return stats, nil
}
