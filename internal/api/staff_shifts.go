package api

import (
	"fmt"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

// GetStaffShifts возвращает все назначения смен
func (c *Client) GetStaffShifts() ([]models.StaffShift, error) {
	var shifts []models.StaffShift
	if err := c.get("/api/staff-shifts", &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// CreateStaffShift создает одно назначение на одну дату
func (c *Client) CreateStaffShift(payload models.StaffShiftPayload) (*models.StaffShift, error) {
	var created models.StaffShift
	if err := c.post("/api/staff-shifts", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteStaffShift удаляет назначение
func (c *Client) DeleteStaffShift(id uint) error {
	return c.delete(fmt.Sprintf("/api/staff-shifts/%d", id), nil)
}
