package service

import (
	"testing"
	"time"

	"github.com/naodalemu/SSRS-Admin/pkg/dates"
)

func TestMonthGridHas42CellsStartingMonday(t *testing.T) {
	// Сентябрь 2026 начинается со вторника
	reference := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	grid := MonthGrid(reference)
	if len(grid) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(grid))
	}
	if grid[0].Weekday() != time.Monday {
		t.Fatalf("expected grid to start on Monday, got %s", grid[0].Weekday())
	}
	if got := dates.Format(grid[0]); got != "2026-08-31" {
		t.Fatalf("expected grid to start 2026-08-31, got %s", got)
	}

	// Первое число месяца обязано попасть в первую неделю
	found := false
	for _, day := range grid[:7] {
		if day.Day() == 1 && day.Month() == time.September {
			found = true
		}
	}
	if !found {
		t.Fatalf("first day of month missing from first week")
	}
}

func TestMonthGridWhenMonthStartsOnMonday(t *testing.T) {
	// Июнь 2026 начинается с понедельника, хвост слева пуст
	reference := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	grid := MonthGrid(reference)
	if got := dates.Format(grid[0]); got != "2026-06-01" {
		t.Fatalf("expected grid to start 2026-06-01, got %s", got)
	}
}

func TestWeekGridHas7CellsMondayFirst(t *testing.T) {
	reference := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	grid := WeekGrid(reference)
	if len(grid) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(grid))
	}
	if got := dates.Format(grid[0]); got != "2026-08-31" {
		t.Fatalf("expected week to start 2026-08-31, got %s", got)
	}
	if grid[6].Weekday() != time.Sunday {
		t.Fatalf("expected week to end on Sunday, got %s", grid[6].Weekday())
	}
}

func TestCalendarStateNavigation(t *testing.T) {
	state := CalendarState{
		Reference: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Mode:      ViewModeMonth,
	}

	state.Next()
	if state.Reference.Month() != time.September {
		t.Fatalf("expected September after month step, got %s", state.Reference.Month())
	}

	state.Previous()
	if state.Reference.Month() != time.August {
		t.Fatalf("expected August after stepping back, got %s", state.Reference.Month())
	}

	state.ToggleMode()
	if state.Mode != ViewModeWeek {
		t.Fatalf("expected week mode after toggle, got %s", state.Mode)
	}
	if got := dates.Format(state.Reference); got != "2026-08-31" {
		t.Fatalf("toggle must keep the reference date, got %s", got)
	}

	state.Next()
	if got := dates.Format(state.Reference); got != "2026-09-07" {
		t.Fatalf("expected week step to 2026-09-07, got %s", got)
	}

	state.ToggleMode()
	if state.Mode != ViewModeMonth {
		t.Fatalf("expected month mode after second toggle, got %s", state.Mode)
	}
}
