package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	if _, err := client.GetStaff(); err != nil {
		t.Fatalf("get staff: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestDoWithoutTokenOmitsHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.GetShifts(); err != nil {
		t.Fatalf("get shifts: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestDecodeErrorUsesJSONMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"validation failed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.CreateStaffShift(models.StaffShiftPayload{})
	if err == nil {
		t.Fatalf("expected error")
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "validation failed" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestDecodeErrorShiftInUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("SQLSTATE[23000]: Integrity constraint violation: 1451 Cannot delete or update a parent row"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.DeleteShift(3)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "эта смена уже используется и не может быть удалена" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestDecodeErrorNonJSONFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.DeleteShift(3)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "неожиданный формат ответа сервера" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGetAttendanceUnwrapsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/attendance/7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"attendance":[{"id":1,"staff_shift_id":5,"mode":"clock_in","status":"present"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	records, err := client.GetAttendance(7)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	if len(records) != 1 || records[0].Mode != models.ModeClockIn {
		t.Fatalf("unexpected records: %+v", records)
	}
}
