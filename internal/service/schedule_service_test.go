package service

import (
	"testing"
	"time"

	apperrors "kolekta.io/kolekta/internal/pkg/errors"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func TestIsOngoingAt(t *testing.T) {
	t.Parallel()

	const (
		date  = "2026-09-01"
		start = "08:00"
		end   = "10:00"
	)

	tests := []struct {
		name string
		now  string
		want bool
	}{
		{"before window", "2026-09-01 07:59:59", false},
		{"at start inclusive", "2026-09-01 08:00:00", true},
		{"inside window", "2026-09-01 09:30:00", true},
		{"at end inclusive", "2026-09-01 10:00:00", true},
		{"after window", "2026-09-01 10:00:01", false},
		{"wrong day", "2026-09-02 09:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			now := mustTime(t, tt.now)
			if got := IsOngoingAt(date, start, end, now); got != tt.want {
				t.Errorf("IsOngoingAt(%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIsOngoingAt_MalformedFields(t *testing.T) {
	t.Parallel()

	now := mustTime(t, "2026-09-01 09:00:00")
	if IsOngoingAt("not-a-date", "08:00", "10:00", now) {
		t.Error("malformed date should never be ongoing")
	}
	if IsOngoingAt("2026-09-01", "8am", "10:00", now) {
		t.Error("malformed start time should never be ongoing")
	}
	if IsOngoingAt("2026-09-01", "08:00", "", now) {
		t.Error("empty end time should never be ongoing")
	}
}

func TestNormalizePurok(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Purok 3", "3"},
		{"purok 3", "3"},
		{"PUROK 3", "3"},
		{"  Purok 12  ", "12"},
		{"3", "3"},
		{"Riverside", "Riverside"},
		{"Purokless", "Purokless"},
	}

	for _, tt := range tests {
		if got := NormalizePurok(tt.in); got != tt.want {
			t.Errorf("NormalizePurok(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWeekdayFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		want string
	}{
		{"2026-09-07", "Monday"},
		{"2026-09-08", "Tuesday"},
		{"2026-09-13", "Sunday"},
		{"09/07/2026", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := WeekdayFor(tt.date); got != tt.want {
			t.Errorf("WeekdayFor(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestParseWasteType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Recyclable", "Recyclable"},
		{"recyclable", "Recyclable"},
		{" NON-RECYCLABLE ", "Non-Recyclable"},
		{"Toxic", "Toxic"},
		{"general", "General"},
	}
	for _, tt := range tests {
		got, err := ParseWasteType(tt.in)
		if err != nil {
			t.Errorf("ParseWasteType(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("ParseWasteType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "Biodegradable", "plastic"} {
		if _, err := ParseWasteType(bad); err == nil {
			t.Errorf("ParseWasteType(%q) expected error", bad)
		}
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"not-started", "ongoing", "completed", "Completed", " ONGOING "} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}

	_, err := ParseStatus("done")
	if err == nil {
		t.Fatal("ParseStatus(done) expected error")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeInvalidStatus {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeInvalidStatus)
	}
}

func TestCreateScheduleInput_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateScheduleInput{
		Purok:     "3",
		Plan:      "A",
		Date:      "2026-09-07",
		StartTime: "08:00",
		EndTime:   "10:00",
		WasteType: "Recyclable",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*CreateScheduleInput)
		wantField string
	}{
		{"empty purok", func(in *CreateScheduleInput) { in.Purok = "  " }, "purok"},
		{"bad plan", func(in *CreateScheduleInput) { in.Plan = "C" }, "plan"},
		{"bad date", func(in *CreateScheduleInput) { in.Date = "09/07/2026" }, "date"},
		{"empty waste type", func(in *CreateScheduleInput) { in.WasteType = "" }, "waste_type"},
		{"unknown waste type", func(in *CreateScheduleInput) { in.WasteType = "Biodegradable" }, "waste_type"},
		{"bad start", func(in *CreateScheduleInput) { in.StartTime = "8am" }, "start_time"},
		{"bad end", func(in *CreateScheduleInput) { in.EndTime = "" }, "end_time"},
		{"inverted window", func(in *CreateScheduleInput) { in.StartTime = "10:00"; in.EndTime = "08:00" }, "end_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := apperrors.IsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			found := false
			for _, fe := range appErr.FieldErrors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("FieldErrors = %+v, want field %q", appErr.FieldErrors, tt.wantField)
			}
		})
	}
}
