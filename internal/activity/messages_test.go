package activity

import (
	"testing"

	entactivity "kolekta.io/kolekta/ent/activity"
	entschedule "kolekta.io/kolekta/ent/schedule"
)

func TestScheduleCreated(t *testing.T) {
	t.Parallel()

	e := ScheduleCreated("sched-1", "3", "2026-09-01", "official-1")
	if e.Type != entactivity.TypeCreate {
		t.Errorf("Type = %q, want create", e.Type)
	}
	if e.Action != "Added new schedule for Purok 3 on 2026-09-01" {
		t.Errorf("Action = %q", e.Action)
	}
	if e.ScheduleID != "sched-1" {
		t.Errorf("ScheduleID = %q, want sched-1", e.ScheduleID)
	}
}

func TestScheduleTransition_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     entschedule.Status
		wantType   entactivity.Type
		wantAction string
	}{
		{
			name:       "completed",
			status:     entschedule.StatusCompleted,
			wantType:   entactivity.TypeComplete,
			wantAction: "Marked Purok 5 collection as completed",
		},
		{
			name:       "ongoing",
			status:     entschedule.StatusOngoing,
			wantType:   entactivity.TypeUpdate,
			wantAction: "Started collection for Purok 5",
		},
		{
			name:       "not started",
			status:     entschedule.StatusNotStarted,
			wantType:   entactivity.TypeReset,
			wantAction: "Reset Purok 5 collection to not started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := ScheduleTransition("sched-9", "Purok 5", tt.status, "collector-1")
			if e.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", e.Type, tt.wantType)
			}
			if e.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", e.Action, tt.wantAction)
			}
			if e.ScheduleID != "sched-9" {
				t.Errorf("ScheduleID = %q, want sched-9", e.ScheduleID)
			}
		})
	}
}

func TestReportResponded(t *testing.T) {
	t.Parallel()

	responded := ReportResponded("rep-1", false, "official-1")
	if responded.Action != "Responded to report" {
		t.Errorf("Action = %q", responded.Action)
	}
	if responded.Type != entactivity.TypeReportUpdate {
		t.Errorf("Type = %q, want report_update", responded.Type)
	}

	resolved := ReportResponded("rep-1", true, "official-1")
	if resolved.Action != "Marked report as resolved" {
		t.Errorf("Action = %q", resolved.Action)
	}
}
