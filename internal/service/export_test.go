package service

import (
	"strings"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

func currentReport() Report {
	return Report{
		Kind: TabCurrent,
		Current: []models.PayrollRow{
			{
				Staff:             "Abel",
				AssignedDays:      22,
				DailySalary:       "500",
				NormalEarned:      "11000",
				OvertimeEarned:    "0",
				TotalEarned:       "11000",
				Tax:               "1100",
				Tips:              "300",
				NetSalaryWithTips: "10200",
			},
		},
	}
}

func historyReport() Report {
	return Report{
		Kind: TabHistory,
		History: []models.HistoricalPayroll{
			{
				ID:                7,
				StaffID:           3,
				StaffName:         "Sara",
				StartDate:         "2026-07-01",
				EndDate:           "2026-07-31",
				AssignedDays:      20,
				TotalSalary:       "15000",
				TotalEarned:       "14000",
				Tax:               "1400",
				Tips:              "0",
				NetSalaryWithTips: "12600",
			},
		},
	}
}

func TestExportCSVCurrentSchema(t *testing.T) {
	content, err := ExportCSV(currentReport())
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "Staff,Assigned Days,Daily Salary,Regular Pay,Overtime Pay,Gross Pay,Tax,Tips,Net Pay" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	// В CSV уходят сырые значения, без валютного форматирования
	if !strings.Contains(lines[1], "11000") || strings.Contains(lines[1], "ETB") {
		t.Fatalf("expected raw values in csv row: %s", lines[1])
	}
}

func TestExportCSVHistorySchema(t *testing.T) {
	content, err := ExportCSV(historyReport())
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if !strings.HasPrefix(lines[0], "ID,Staff ID,Staff Name,Period") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "2026-07-01 to 2026-07-31") {
		t.Fatalf("expected combined period cell: %s", lines[1])
	}
}

func TestExportCSVUnknownKind(t *testing.T) {
	if _, err := ExportCSV(Report{Kind: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown report kind")
	}
}

func TestExportPrintableIncludesSummaryOnlyForCurrent(t *testing.T) {
	report := currentReport()
	summary := Summarize(report.Current)

	content, err := ExportPrintable(report, "2026-08-01", "2026-08-31", summary)
	if err != nil {
		t.Fatalf("export printable: %v", err)
	}
	if !strings.Contains(content, "Payroll Report") {
		t.Fatalf("expected title in document")
	}
	if !strings.Contains(content, "Summary") {
		t.Fatalf("expected summary block for current report")
	}
	if !strings.Contains(content, "11,000.00 ETB") {
		t.Fatalf("expected grouped currency in summary, got:\n%s", content)
	}

	content, err = ExportPrintable(historyReport(), "2026-08-01", "2026-08-31", summary)
	if err != nil {
		t.Fatalf("export printable history: %v", err)
	}
	if strings.Contains(content, "Summary") {
		t.Fatalf("history report must not carry a summary block")
	}
	if !strings.Contains(content, "Period: Everything") {
		t.Fatalf("expected full-history period line")
	}
}

func TestExportWorkbookRoundTrips(t *testing.T) {
	payload, err := ExportWorkbook(currentReport(), "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("export workbook: %v", err)
	}
	if len(payload) == 0 {
		t.Fatalf("expected workbook bytes")
	}
	// XLSX - это zip-архив
	if payload[0] != 'P' || payload[1] != 'K' {
		t.Fatalf("expected zip signature, got % x", payload[:2])
	}
}

func TestExportFileName(t *testing.T) {
	name := ExportFileName(currentReport(), "2026-08-01", "2026-08-31", "csv")
	if name != "payroll_2026-08-01_to_2026-08-31.csv" {
		t.Fatalf("unexpected file name: %s", name)
	}

	name = ExportFileName(historyReport(), "2026-08-01", "2026-08-31", "xlsx")
	if !strings.HasPrefix(name, "full_payroll_history_") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected history file name: %s", name)
	}
}
