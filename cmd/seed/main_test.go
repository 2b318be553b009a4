package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func parseDefaultFixture(t *testing.T) *fixture {
	t.Helper()
	var fx fixture
	if err := yaml.Unmarshal(defaultFixtureYAML, &fx); err != nil {
		t.Fatalf("parse embedded fixture: %v", err)
	}
	return &fx
}

func TestDefaultFixture_Validates(t *testing.T) {
	t.Parallel()

	fx := parseDefaultFixture(t)
	if err := fx.validate(); err != nil {
		t.Fatalf("embedded fixture should validate, got %v", err)
	}
	if len(fx.Residents) == 0 || len(fx.Schedules) == 0 || len(fx.Education) == 0 {
		t.Fatalf("embedded fixture is missing sections: %d residents, %d schedules, %d education",
			len(fx.Residents), len(fx.Schedules), len(fx.Education))
	}
}

func TestDefaultFixture_HasOneOfficialAndSMSRecipients(t *testing.T) {
	t.Parallel()

	fx := parseDefaultFixture(t)

	officials := 0
	withPhone := 0
	for _, r := range fx.Residents {
		if r.Role == "official" {
			officials++
		}
		if r.Phone != "" {
			withPhone++
			if !strings.HasPrefix(r.Phone, "+") {
				t.Fatalf("resident %s phone %q is not E.164", r.Username, r.Phone)
			}
		}
	}
	if officials == 0 {
		t.Fatal("embedded fixture has no official account")
	}
	if withPhone == 0 {
		t.Fatal("embedded fixture has no SMS-reachable residents")
	}
}

func TestFixtureValidate_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fx   fixture
		want string
	}{
		{
			name: "missing username",
			fx:   fixture{Residents: []residentFixture{{Role: "resident"}}},
			want: "username is required",
		},
		{
			name: "duplicate username",
			fx: fixture{Residents: []residentFixture{
				{Username: "a", Role: "resident"},
				{Username: "a", Role: "resident"},
			}},
			want: "duplicate username",
		},
		{
			name: "unknown role",
			fx:   fixture{Residents: []residentFixture{{Username: "a", Role: "mayor"}}},
			want: "unknown role",
		},
		{
			name: "bad plan",
			fx:   fixture{Schedules: []scheduleFixture{{Plan: "C", Date: "2026-09-07", StartTime: "06:00", EndTime: "08:00"}}},
			want: "plan must be A or B",
		},
		{
			name: "bad date",
			fx:   fixture{Schedules: []scheduleFixture{{Plan: "A", Date: "Sept 7", StartTime: "06:00", EndTime: "08:00"}}},
			want: "bad date",
		},
		{
			name: "bad time",
			fx:   fixture{Schedules: []scheduleFixture{{Plan: "A", Date: "2026-09-07", StartTime: "6am", EndTime: "08:00"}}},
			want: "bad time",
		},
		{
			name: "unknown waste type",
			fx:   fixture{Schedules: []scheduleFixture{{Plan: "A", Date: "2026-09-07", StartTime: "06:00", EndTime: "08:00", WasteType: "Biodegradable"}}},
			want: "unknown waste type",
		},
		{
			name: "empty education body",
			fx:   fixture{Education: []contentFixture{{Title: "x"}}},
			want: "title and body are required",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.fx.validate()
			if err == nil {
				t.Fatalf("validate() expected error containing %q, got nil", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("validate() error = %v, want substring %q", err, tc.want)
			}
		})
	}
}
