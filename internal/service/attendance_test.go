package service

import (
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

func TestResolveStatusFutureDateIsEmpty(t *testing.T) {
	records := []models.AttendanceRecord{
		{StaffShiftID: 5, ScannedAt: "2026-09-01 09:03:00", Status: models.AttendancePresent},
	}

	if got := ResolveStatus(records, 5, "2026-09-01", "2026-08-31"); got != "" {
		t.Fatalf("future date must resolve to empty status, got %q", got)
	}
}

func TestResolveStatusMatchesAssignmentAndDay(t *testing.T) {
	records := []models.AttendanceRecord{
		{StaffShiftID: 5, ScannedAt: "2026-08-30 09:03:00", Status: models.AttendancePresent},
		{StaffShiftID: 7, ScannedAt: "2026-08-31 09:00:00", Status: models.AttendanceAbsent},
	}

	if got := ResolveStatus(records, 5, "2026-08-30", "2026-08-31"); got != models.AttendancePresent {
		t.Fatalf("expected present, got %q", got)
	}
	if got := ResolveStatus(records, 7, "2026-08-31", "2026-08-31"); got != models.AttendanceAbsent {
		t.Fatalf("expected absent, got %q", got)
	}
	if got := ResolveStatus(records, 5, "2026-08-31", "2026-08-31"); got != "" {
		t.Fatalf("expected empty status for day without records, got %q", got)
	}
}

func TestSumLateMinutesOnlyClockIn(t *testing.T) {
	records := []models.AttendanceRecord{
		{Mode: models.ModeClockIn, LateMinutes: 10},
		{Mode: models.ModeClockOut, LateMinutes: 99, EarlyMinutes: 5},
		{Mode: models.ModeClockIn, LateMinutes: 3},
	}

	if got := SumLateMinutes(records); got != 13 {
		t.Fatalf("expected 13 late minutes, got %d", got)
	}
	if got := SumEarlyMinutes(records); got != 5 {
		t.Fatalf("expected 5 early minutes, got %d", got)
	}
}

func TestApprovalFlags(t *testing.T) {
	records := []models.AttendanceRecord{
		{Mode: models.ModeClockIn, LateApproved: 0},
		{Mode: models.ModeClockOut, EarlyApproved: 1},
	}

	if LateApproved(records) {
		t.Fatalf("late must not be approved")
	}
	if !EarlyApproved(records) {
		t.Fatalf("early must be approved")
	}
}

func TestFindRecordByMode(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: 1, Mode: models.ModeClockIn},
		{ID: 2, Mode: models.ModeClockOut},
	}

	clockOut := FindRecord(records, models.ModeClockOut)
	if clockOut == nil || clockOut.ID != 2 {
		t.Fatalf("expected clock_out record with ID 2, got %+v", clockOut)
	}
	if FindRecord(records[:1], models.ModeClockOut) != nil {
		t.Fatalf("expected nil when mode is missing")
	}
}

func TestRecordsForFiltersByAssignmentAndDay(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: 1, StaffShiftID: 5, ScannedAt: "2026-08-31 09:00:00"},
		{ID: 2, StaffShiftID: 5, ScannedAt: "2026-08-31 18:00:00"},
		{ID: 3, StaffShiftID: 5, ScannedAt: "2026-08-30 09:00:00"},
		{ID: 4, StaffShiftID: 6, ScannedAt: "2026-08-31 09:00:00"},
	}

	matched := RecordsFor(records, 5, "2026-08-31")
	if len(matched) != 2 {
		t.Fatalf("expected 2 records, got %d", len(matched))
	}
	if matched[0].ID != 1 || matched[1].ID != 2 {
		t.Fatalf("unexpected records: %+v", matched)
	}
}
