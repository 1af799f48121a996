package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
)

func newTableFixture(t *testing.T, tables []models.Table) (*TableService, *int) {
	t.Helper()

	deletes := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tables)
	}))
	t.Cleanup(server.Close)

	service := NewTableService(api.NewClient(server.URL, ""))
	if err := service.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return service, &deletes
}

func TestTablesRefreshSortsByNumber(t *testing.T) {
	service, _ := newTableFixture(t, []models.Table{
		{TableNumber: 5, TableStatus: models.TableFree},
		{TableNumber: 1, TableStatus: models.TableOccupied},
		{TableNumber: 3, TableStatus: models.TableFree},
	})

	tables := service.Tables()
	if tables[0].TableNumber != 1 || tables[2].TableNumber != 5 {
		t.Fatalf("expected tables sorted by number, got %+v", tables)
	}
}

func TestDeleteOccupiedTableRefused(t *testing.T) {
	service, deletes := newTableFixture(t, []models.Table{
		{TableNumber: 1, TableStatus: models.TableOccupied},
	})

	if err := service.Delete(1); err == nil {
		t.Fatalf("expected refusal for occupied table")
	}
	if *deletes != 0 {
		t.Fatalf("occupied table delete must not reach the server")
	}
}

func TestDeleteFreeTable(t *testing.T) {
	service, deletes := newTableFixture(t, []models.Table{
		{TableNumber: 1, TableStatus: models.TableFree},
	})

	if err := service.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if *deletes != 1 {
		t.Fatalf("expected one delete request, got %d", *deletes)
	}
}

func TestRangeValidation(t *testing.T) {
	service, _ := newTableFixture(t, nil)

	if err := service.AddRange(5, 3, ""); err == nil {
		t.Fatalf("expected error for reversed range")
	}
	if err := service.DeleteRange(0, 3); err == nil {
		t.Fatalf("expected error for non-positive start")
	}
	if err := service.Add(0, ""); err == nil {
		t.Fatalf("expected error for non-positive table number")
	}
}
