package api

import (
	"fmt"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

// GetShifts возвращает все шаблоны смен
func (c *Client) GetShifts() ([]models.ShiftTemplate, error) {
	var shifts []models.ShiftTemplate
	if err := c.get("/api/shifts", &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// CreateShift создает шаблон смены
func (c *Client) CreateShift(form models.ShiftTemplateForm) (*models.ShiftTemplate, error) {
	var created models.ShiftTemplate
	if err := c.post("/api/shifts", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteShift удаляет шаблон смены. Если шаблон уже используется в
// назначениях, сервер отвечает текстом с кодом 1451 - клиент превращает
// его в понятное сообщение.
func (c *Client) DeleteShift(id uint) error {
	return c.delete(fmt.Sprintf("/api/shifts/%d", id), nil)
}
