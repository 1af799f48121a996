package api

import (
	"fmt"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

// GetStaff возвращает всех сотрудников
func (c *Client) GetStaff() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	if err := c.get("/api/admin/getStaff", &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// CreateStaff создает сотрудника. Сервер возвращает одноразовый временный
// пароль - его нужно показать администратору сразу.
func (c *Client) CreateStaff(form models.StaffForm) (*models.CreatedStaff, error) {
	var created models.CreatedStaff
	if err := c.post("/api/admin/users", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStaff обновляет данные сотрудника
func (c *Client) UpdateStaff(id uint, form models.StaffForm) error {
	return c.put(fmt.Sprintf("/api/admin/updateStaff/%d", id), form, nil)
}
