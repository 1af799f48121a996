package models

// Статусы столиков
const (
	TableFree     = "free"
	TableOccupied = "occupied"
)

// Table - столик ресторана, идентифицируется номером
type Table struct {
	TableNumber int    `json:"table_number"`
	TableStatus string `json:"table_status"`
	BaseLink    string `json:"base_link"`
}

// IsOccupied проверяет, занят ли столик
func (t *Table) IsOccupied() bool {
	return t.TableStatus != TableFree
}

// TableCreateRequest - тело запроса POST /api/tables
type TableCreateRequest struct {
	TableNumber int    `json:"table_number"`
	BaseLink    string `json:"base_link"`
	TableStatus string `json:"table_status"`
}

// TableRangeRequest - тело запроса POST /api/tables/range.
// Границы диапазона включительные.
type TableRangeRequest struct {
	StartTableNumber int    `json:"start_table_number"`
	EndTableNumber   int    `json:"end_table_number"`
	BaseLink         string `json:"base_link"`
	TableStatus      string `json:"table_status"`
}

// TableBatchDeleteRequest - тело запроса DELETE /api/tables/batch
type TableBatchDeleteRequest struct {
	StartTableNumber int `json:"start_table_number"`
	EndTableNumber   int `json:"end_table_number"`
}
