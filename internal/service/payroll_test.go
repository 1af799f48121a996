package service

import (
	"math"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

func TestSortStateToggle(t *testing.T) {
	state := SortState{Field: "staff", Direction: SortAsc}

	state.Toggle("staff")
	if state.Direction != SortDesc {
		t.Fatalf("repeated toggle must flip direction, got %s", state.Direction)
	}

	state.Toggle("total_earned")
	if state.Field != "total_earned" || state.Direction != SortAsc {
		t.Fatalf("new field must reset to ascending, got %s %s", state.Field, state.Direction)
	}
}

func TestSortRowsNumericField(t *testing.T) {
	rows := []models.PayrollRow{
		{Staff: "Abel", TotalEarned: "900.50"},
		{Staff: "Sara", TotalEarned: "1200.00"},
		{Staff: "Kidus", TotalEarned: "150.00"},
	}

	sorted := SortRows(rows, "total_earned", SortAsc)
	if sorted[0].Staff != "Kidus" || sorted[2].Staff != "Sara" {
		t.Fatalf("unexpected ascending order: %v %v %v", sorted[0].Staff, sorted[1].Staff, sorted[2].Staff)
	}

	sorted = SortRows(rows, "total_earned", SortDesc)
	if sorted[0].Staff != "Sara" || sorted[2].Staff != "Kidus" {
		t.Fatalf("unexpected descending order: %v %v %v", sorted[0].Staff, sorted[1].Staff, sorted[2].Staff)
	}

	// Исходный срез не меняется
	if rows[0].Staff != "Abel" {
		t.Fatalf("input slice must stay untouched, got %s first", rows[0].Staff)
	}
}

func TestSortRowsByStaffName(t *testing.T) {
	rows := []models.PayrollRow{
		{Staff: "sara"},
		{Staff: "Abel"},
	}

	sorted := SortRows(rows, "staff", SortAsc)
	if sorted[0].Staff != "Abel" {
		t.Fatalf("expected Abel first, got %s", sorted[0].Staff)
	}
}

func TestSortHistoryByAssignedDays(t *testing.T) {
	rows := []models.HistoricalPayroll{
		{StaffName: "Abel", AssignedDays: 20},
		{StaffName: "Sara", AssignedDays: 5},
	}

	sorted := SortHistory(rows, "assigned_days", SortAsc)
	if sorted[0].StaffName != "Sara" {
		t.Fatalf("expected Sara first, got %s", sorted[0].StaffName)
	}
}

func TestNumericValueUnparsableIsNaN(t *testing.T) {
	if !math.IsNaN(numericValue("n/a")) {
		t.Fatalf("expected NaN for unparsable value")
	}
	if numericValue("42.5") != 42.5 {
		t.Fatalf("expected 42.5")
	}
}

func TestSummarizeEmptyIsNil(t *testing.T) {
	if Summarize(nil) != nil {
		t.Fatalf("summary of empty payroll must be nil")
	}
}

func TestSummarizeTotalsAndAverage(t *testing.T) {
	rows := []models.PayrollRow{
		{TotalEarned: "1000", Tax: "100", Tips: "50", NetSalaryWithTips: "950"},
		{TotalEarned: "2000", Tax: "200", Tips: "0", NetSalaryWithTips: "1800"},
	}

	summary := Summarize(rows)
	if summary == nil {
		t.Fatalf("expected summary")
	}
	if summary.TotalStaff != 2 {
		t.Fatalf("expected 2 staff, got %d", summary.TotalStaff)
	}
	if summary.TotalGrossSalary != 3000 {
		t.Fatalf("expected gross 3000, got %f", summary.TotalGrossSalary)
	}
	if summary.TotalTax != 300 {
		t.Fatalf("expected tax 300, got %f", summary.TotalTax)
	}
	if summary.TotalNetSalary != 2750 {
		t.Fatalf("expected net 2750, got %f", summary.TotalNetSalary)
	}
	if summary.AverageSalary != 1500 {
		t.Fatalf("expected average 1500, got %f", summary.AverageSalary)
	}
}

func TestSummarizeSkipsUnparsableAmounts(t *testing.T) {
	rows := []models.PayrollRow{
		{TotalEarned: "1000", Tax: "oops", Tips: "", NetSalaryWithTips: "900"},
	}

	summary := Summarize(rows)
	if summary.TotalGrossSalary != 1000 || summary.TotalTax != 0 {
		t.Fatalf("unparsable amounts must count as zero, got %+v", summary)
	}
}
