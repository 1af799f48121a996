package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
)

type fakeSnapshotRepo struct {
	startDate string
	endDate   string
	rows      []models.PayrollRow
	saves     int
}

func (r *fakeSnapshotRepo) Save(startDate, endDate string, rows []models.PayrollRow) error {
	r.startDate = startDate
	r.endDate = endDate
	r.rows = rows
	r.saves++
	return nil
}

func (r *fakeSnapshotRepo) Load() (string, string, []models.PayrollRow, error) {
	return r.startDate, r.endDate, r.rows, nil
}

func TestPayrollInitRestoresSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	snapshot := &fakeSnapshotRepo{
		startDate: "2026-07-01",
		endDate:   "2026-07-31",
		rows:      []models.PayrollRow{{Staff: "Abel", TotalEarned: "1000"}},
	}

	payroll := NewPayrollService(api.NewClient(server.URL, ""), snapshot)
	payroll.Init()

	start, end := payroll.Period()
	if start != "2026-07-01" || end != "2026-07-31" {
		t.Fatalf("expected cached period, got %s - %s", start, end)
	}

	report := payroll.Report()
	if report.Kind != TabCurrent || len(report.Current) != 1 {
		t.Fatalf("expected cached rows on current tab, got %+v", report)
	}
}

func TestPayrollCalculateOverwritesSnapshotAndSwitchesTab(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"payrolls":[{"staff":"Sara","total_earned":"2000"},{"staff":"Abel","total_earned":"1500"}]}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	snapshot := &fakeSnapshotRepo{
		rows: []models.PayrollRow{{Staff: "Old", TotalEarned: "1"}},
	}

	payroll := NewPayrollService(api.NewClient(server.URL, ""), snapshot)
	payroll.Init()
	if err := payroll.SetPeriod("2026-08-01", "2026-08-31"); err != nil {
		t.Fatalf("set period: %v", err)
	}
	if err := payroll.SetTab(TabHistory); err != nil {
		t.Fatalf("set tab: %v", err)
	}

	count, err := payroll.Calculate()
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	// Кэш перезаписан целиком, вкладка вернулась на текущий расчет
	if snapshot.saves != 1 || len(snapshot.rows) != 2 || snapshot.rows[0].Staff != "Sara" {
		t.Fatalf("expected wholesale snapshot overwrite, got %+v", snapshot)
	}
	if payroll.ActiveTab() != TabCurrent {
		t.Fatalf("expected current tab after calculation, got %s", payroll.ActiveTab())
	}
}

func TestPayrollSetPeriodValidation(t *testing.T) {
	payroll := NewPayrollService(api.NewClient("http://127.0.0.1:0", ""), &fakeSnapshotRepo{})

	if err := payroll.SetPeriod("31-08-2026", "2026-08-31"); err == nil {
		t.Fatalf("expected error for wrong date format")
	}
	if err := payroll.SetPeriod("2026-08-01", "tomorrow"); err == nil {
		t.Fatalf("expected error for invalid end date")
	}
}

func TestPayrollSummaryOnlyOnCurrentTab(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	snapshot := &fakeSnapshotRepo{
		startDate: "2026-08-01",
		endDate:   "2026-08-31",
		rows:      []models.PayrollRow{{Staff: "Abel", TotalEarned: "1000", NetSalaryWithTips: "900"}},
	}

	payroll := NewPayrollService(api.NewClient(server.URL, ""), snapshot)
	payroll.Init()

	if payroll.Summary() == nil {
		t.Fatalf("expected summary on current tab")
	}

	if err := payroll.SetTab(TabHistory); err != nil {
		t.Fatalf("set tab: %v", err)
	}
	if payroll.Summary() != nil {
		t.Fatalf("history tab must not have a summary")
	}
}
