package activity

import (
	"fmt"

	entactivity "kolekta.io/kolekta/ent/activity"
	entschedule "kolekta.io/kolekta/ent/schedule"
)

// ScheduleCreated builds the feed entry for a newly added schedule.
func ScheduleCreated(scheduleID, purok, date, actor string) Entry {
	return Entry{
		Type:       entactivity.TypeCreate,
		Action:     fmt.Sprintf("Added new schedule for Purok %s on %s", purok, date),
		ScheduleID: scheduleID,
		Actor:      actor,
	}
}

// ScheduleTransition builds the feed entry for a status change.
// The wording depends only on the new status, not on the old one.
func ScheduleTransition(scheduleID, purok string, newStatus entschedule.Status, actor string) Entry {
	e := Entry{
		Type:       entactivity.TypeUpdate,
		Action:     "Updated schedule status",
		ScheduleID: scheduleID,
		Actor:      actor,
	}
	switch newStatus {
	case entschedule.StatusCompleted:
		e.Type = entactivity.TypeComplete
		e.Action = fmt.Sprintf("Marked %s collection as completed", purok)
	case entschedule.StatusOngoing:
		e.Type = entactivity.TypeUpdate
		e.Action = fmt.Sprintf("Started collection for %s", purok)
	case entschedule.StatusNotStarted:
		e.Type = entactivity.TypeReset
		e.Action = fmt.Sprintf("Reset %s collection to not started", purok)
	}
	return e
}

// ReportResponded builds the feed entry for an official response.
func ReportResponded(reportID string, resolved bool, actor string) Entry {
	action := "Responded to report"
	if resolved {
		action = "Marked report as resolved"
	}
	return Entry{
		Type:     entactivity.TypeReportUpdate,
		Action:   action,
		ReportID: reportID,
		Actor:    actor,
	}
}
