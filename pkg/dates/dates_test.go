package dates

import (
	"testing"
	"time"
)

func TestWeekStartIsMonday(t *testing.T) {
	// 2026-08-31 - понедельник
	cases := map[string]string{
		"2026-08-31": "2026-08-31",
		"2026-09-02": "2026-08-31",
		"2026-09-06": "2026-08-31", // воскресенье относится к прошедшей неделе
	}

	for input, want := range cases {
		day, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %s: %v", input, err)
		}
		if got := Format(WeekStart(day)); got != want {
			t.Fatalf("week start of %s: expected %s, got %s", input, want, got)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	day, err := Parse("2026-02-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	first, last := MonthBounds(day)
	if Format(first) != "2026-02-01" {
		t.Fatalf("expected first day 2026-02-01, got %s", Format(first))
	}
	if Format(last) != "2026-02-28" {
		t.Fatalf("expected last day 2026-02-28, got %s", Format(last))
	}
}

func TestWeekdayName(t *testing.T) {
	day, err := Parse("2026-09-06")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := WeekdayName(day); got != "sunday" {
		t.Fatalf("expected sunday, got %s", got)
	}
}

func TestAfterDayIgnoresTimeComponent(t *testing.T) {
	morning := time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)

	if AfterDay(evening, morning) {
		t.Fatalf("same calendar day must not compare as after")
	}
	if !AfterDay(evening.AddDate(0, 0, 1), morning) {
		t.Fatalf("next calendar day must compare as after")
	}
}
