package handlers

import (
	"time"

	"kolekta.io/kolekta/ent"
	"kolekta.io/kolekta/ent/schema"
)

// Schedule is the wire representation of a collection schedule.
type Schedule struct {
	ID          string              `json:"id"`
	Purok       string              `json:"purok"`
	Plan        string              `json:"plan"`
	Day         string              `json:"day"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	WasteType   string              `json:"waste_type"`
	Status      string              `json:"status"`
	RoutePoints []schema.RoutePoint `json:"route_points,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func scheduleToAPI(row *ent.Schedule) Schedule {
	return Schedule{
		ID:          row.ID,
		Purok:       row.Purok,
		Plan:        string(row.Plan),
		Day:         row.Day,
		Date:        row.Date,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		WasteType:   string(row.WasteType),
		Status:      string(row.Status),
		RoutePoints: row.RoutePoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func schedulesToAPI(rows []*ent.Schedule) []Schedule {
	items := make([]Schedule, 0, len(rows))
	for _, row := range rows {
		items = append(items, scheduleToAPI(row))
	}
	return items
}

// Activity is one feed entry.
type Activity struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Action     string    `json:"action"`
	ScheduleID string    `json:"schedule_id,omitempty"`
	ReportID   string    `json:"report_id,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func activityToAPI(row *ent.Activity) Activity {
	return Activity{
		ID:         row.ID,
		Type:       string(row.Type),
		Action:     row.Action,
		ScheduleID: row.ScheduleID,
		ReportID:   row.ReportID,
		Actor:      row.Actor,
		CreatedAt:  row.CreatedAt,
	}
}

// Report is the wire representation of a resident report.
type Report struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category,omitempty"`
	Location         string    `json:"location,omitempty"`
	FileURLs         []string  `json:"file_urls,omitempty"`
	Status           string    `json:"status"`
	OfficialResponse string    `json:"official_response,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func reportToAPI(row *ent.Report) Report {
	return Report{
		ID:               row.ID,
		UserID:           row.UserID,
		Title:            row.Title,
		Description:      row.Description,
		Category:         row.Category,
		Location:         row.Location,
		FileURLs:         row.FileUrls,
		Status:           row.Status,
		OfficialResponse: row.OfficialResponse,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func reportsToAPI(rows []*ent.Report) []Report {
	items := make([]Report, 0, len(rows))
	for _, row := range rows {
		items = append(items, reportToAPI(row))
	}
	return items
}

// Notification is one inbox entry.
type Notification struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"report_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Read      bool      `json:"read"`
	ReadAt    time.Time `json:"read_at,omitzero"`
	CreatedAt time.Time `json:"created_at"`
}

func notificationToAPI(row *ent.Notification) Notification {
	n := Notification{
		ID:        row.ID,
		ReportID:  row.ReportID,
		Message:   row.Message,
		Status:    row.Status,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}
	if row.ReadAt != nil {
		n.ReadAt = *row.ReadAt
	}
	return n
}

// SMSMessage is one outbound announcement.
type SMSMessage struct {
	ID             string    `json:"id"`
	RecipientGroup string    `json:"recipient_group"`
	Recipients     int       `json:"recipients"`
	MessageType    string    `json:"message_type"`
	Body           string    `json:"body"`
	Status         string    `json:"status"`
	ScheduledFor   time.Time `json:"scheduled_for,omitzero"`
	SentAt         time.Time `json:"sent_at,omitzero"`
	LastError      string    `json:"last_error,omitempty"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"created_at"`
}

func smsToAPI(row *ent.SMSMessage) SMSMessage {
	m := SMSMessage{
		ID:             row.ID,
		RecipientGroup: row.RecipientGroup,
		Recipients:     len(row.Recipients),
		MessageType:    string(row.MessageType),
		Body:           row.Body,
		Status:         string(row.Status),
		LastError:      row.LastError,
		Archived:       row.Archived,
		CreatedAt:      row.CreatedAt,
	}
	if row.ScheduledFor != nil {
		m.ScheduledFor = *row.ScheduledFor
	}
	if row.SentAt != nil {
		m.SentAt = *row.SentAt
	}
	return m
}

// Feedback is one service rating.
type Feedback struct {
	ID         string    `json:"id"`
	ReportID   string    `json:"report_id"`
	ResidentID string    `json:"resident_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func feedbackToAPI(row *ent.Feedback) Feedback {
	return Feedback{
		ID:         row.ID,
		ReportID:   row.ReportID,
		ResidentID: row.ResidentID,
		Rating:     row.Rating,
		Comment:    row.Comment,
		CreatedAt:  row.CreatedAt,
	}
}

// EducationalContent is one published guide or announcement.
type EducationalContent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

func contentToAPI(row *ent.EducationalContent) EducationalContent {
	return EducationalContent{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		Category:  row.Category,
		Published: row.Published,
		CreatedAt: row.CreatedAt,
	}
}
