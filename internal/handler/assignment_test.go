package handler

import (
	"testing"

	"github.com/naodalemu/SSRS-Admin/pkg/recurrence"
)

func TestParseAssignmentArgsBasic(t *testing.T) {
	form, err := parseAssignmentArgs("staff=3 shift=1 date=2026-09-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.StaffID != 3 || form.ShiftID != 1 || form.Date != "2026-09-01" {
		t.Fatalf("unexpected form: %+v", form)
	}
	if form.IsRecurring || form.OverrideTime || form.IsOvertime {
		t.Fatalf("flags must default to false: %+v", form)
	}
}

func TestParseAssignmentArgsWeeklyRecurrence(t *testing.T) {
	form, err := parseAssignmentArgs("staff=3 shift=1 date=2026-09-01 repeat=weekly days=mon,wed end=2026-09-30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !form.IsRecurring || form.RecurrenceType != recurrence.TypeWeekly {
		t.Fatalf("expected weekly recurrence: %+v", form)
	}
	if !form.Weekdays["monday"] || !form.Weekdays["wednesday"] || form.Weekdays["friday"] {
		t.Fatalf("unexpected weekdays: %+v", form.Weekdays)
	}
	if form.EndDate != "2026-09-30" {
		t.Fatalf("unexpected end date: %s", form.EndDate)
	}
}

func TestParseAssignmentArgsTimeOverrideAndOvertime(t *testing.T) {
	form, err := parseAssignmentArgs("staff=3 shift=1 date=2026-09-01 time=10:00-15:00 overtime=holiday night=1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !form.OverrideTime || form.StartTime != "10:00" || form.EndTime != "15:00" {
		t.Fatalf("unexpected time override: %+v", form)
	}
	if !form.IsOvertime || form.OvertimeType != "holiday" {
		t.Fatalf("unexpected overtime: %+v", form)
	}
	if !form.IsNightShift {
		t.Fatalf("expected night shift flag")
	}
}

func TestParseAssignmentArgsErrors(t *testing.T) {
	cases := []string{
		"staff=x shift=1 date=2026-09-01",
		"staff=3 shift=1 date=2026-09-01 repeat=monthly",
		"staff=3 shift=1 date=2026-09-01 time=10:00",
		"staff=3 shift=1 date=2026-09-01 bogus=1",
		"staff 3",
		"staff=3 shift=1 date=2026-09-01 repeat=weekly",
	}

	for _, input := range cases {
		if _, err := parseAssignmentArgs(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
