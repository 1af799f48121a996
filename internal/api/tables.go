package api

import (
	"fmt"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

// GetTables возвращает все столики
func (c *Client) GetTables() ([]models.Table, error) {
	var tables []models.Table
	if err := c.get("/api/tables", &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// CreateTable создает один столик
func (c *Client) CreateTable(req models.TableCreateRequest) error {
	return c.post("/api/tables", req, nil)
}

// CreateTableRange создает столики в диапазоне номеров включительно
func (c *Client) CreateTableRange(req models.TableRangeRequest) error {
	return c.post("/api/tables/range", req, nil)
}

// DeleteTable удаляет столик по номеру
func (c *Client) DeleteTable(tableNumber int) error {
	return c.delete(fmt.Sprintf("/api/tables/%d", tableNumber), nil)
}

// DeleteTableRange удаляет столики в диапазоне номеров включительно
func (c *Client) DeleteTableRange(req models.TableBatchDeleteRequest) error {
	return c.delete("/api/tables/batch", req)
}

// DeleteAllTables удаляет все столики
func (c *Client) DeleteAllTables() error {
	return c.delete("/api/tables/all", nil)
}
