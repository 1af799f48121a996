package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/pkg/recurrence"
)

func newScheduleFixture(t *testing.T, handler http.HandlerFunc) (*ScheduleService, *CalendarService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient := api.NewClient(server.URL, "")
	calendar := NewCalendarService(apiClient)
	return NewScheduleService(apiClient, calendar), calendar, server
}

func TestAssignShiftsValidatesBeforeNetwork(t *testing.T) {
	requests := 0
	schedule, _, _ := newScheduleFixture(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	if _, err := schedule.AssignShifts(AssignmentForm{ShiftID: 1, Date: "2026-09-01"}); err == nil {
		t.Fatalf("expected error without staff")
	}
	if _, err := schedule.AssignShifts(AssignmentForm{StaffID: 1, Date: "2026-09-01"}); err == nil {
		t.Fatalf("expected error without shift")
	}
	if _, err := schedule.AssignShifts(AssignmentForm{StaffID: 1, ShiftID: 1}); err == nil {
		t.Fatalf("expected error without date")
	}

	// Недельное повторение без подходящих дней дает пустой список дат
	form := AssignmentForm{
		StaffID:        1,
		ShiftID:        1,
		Date:           "2026-09-01",
		EndDate:        "2026-09-03",
		IsRecurring:    true,
		RecurrenceType: recurrence.TypeWeekly,
		Weekdays:       map[string]bool{"sunday": true},
	}
	if _, err := schedule.AssignShifts(form); err == nil {
		t.Fatalf("expected error for empty expansion")
	}

	if requests != 0 {
		t.Fatalf("validation must happen before any network call, saw %d requests", requests)
	}
}

func TestAssignShiftsCreatesOnePerDate(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]models.StaffShiftPayload{}

	schedule, calendar, _ := newScheduleFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var payload models.StaffShiftPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		mu.Lock()
		seen[payload.Date] = payload
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1}`))
	})

	token := calendar.ReloadToken()

	form := AssignmentForm{
		StaffID:        3,
		ShiftID:        2,
		Date:           "2026-09-01",
		EndDate:        "2026-09-03",
		IsRecurring:    true,
		RecurrenceType: recurrence.TypeDaily,
		IsOvertime:     true,
		OvertimeType:   models.OvertimeHoliday,
	}

	created, err := schedule.AssignShifts(form)
	if err != nil {
		t.Fatalf("assign shifts: %v", err)
	}
	if created != 3 {
		t.Fatalf("expected 3 assignments, got %d", created)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(seen))
	}

	payload := seen["2026-09-02"]
	if payload.StaffID != 3 || payload.ShiftID != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.OvertimeType == nil || *payload.OvertimeType != models.OvertimeHoliday {
		t.Fatalf("expected overtime type in payload: %+v", payload)
	}
	if payload.StartTime != "" {
		t.Fatalf("times must be omitted without override: %+v", payload)
	}

	if calendar.ReloadToken() == token {
		t.Fatalf("full success must request calendar reload")
	}
}

func TestAssignShiftsFailClosedFirstErrorByDateOrder(t *testing.T) {
	var mu sync.Mutex
	received := 0

	schedule, calendar, _ := newScheduleFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var payload models.StaffShiftPayload
		json.NewDecoder(r.Body).Decode(&payload)

		mu.Lock()
		received++
		mu.Unlock()

		// Две даты из трех падают, первая по порядку - 2026-09-02
		if payload.Date == "2026-09-02" || payload.Date == "2026-09-03" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"конфликт на ` + payload.Date + `"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1}`))
	})

	token := calendar.ReloadToken()

	form := AssignmentForm{
		StaffID:        3,
		ShiftID:        2,
		Date:           "2026-09-01",
		EndDate:        "2026-09-03",
		IsRecurring:    true,
		RecurrenceType: recurrence.TypeDaily,
	}

	if _, err := schedule.AssignShifts(form); err == nil {
		t.Fatalf("expected error when any date fails")
	} else if err.Error() != "конфликт на 2026-09-02" {
		t.Fatalf("expected first error by date order, got %q", err.Error())
	}

	// Запросы уходят на все даты, успешные не откатываются
	if received != 3 {
		t.Fatalf("expected all 3 requests to fire, got %d", received)
	}
	if calendar.ReloadToken() != token {
		t.Fatalf("partial failure must not request reload")
	}
}
