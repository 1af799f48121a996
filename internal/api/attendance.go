package api

import (
	"fmt"

	"github.com/naodalemu/SSRS-Admin/internal/models"
)

// GetAttendance возвращает все записи посещаемости одного сотрудника
func (c *Client) GetAttendance(staffID uint) ([]models.AttendanceRecord, error) {
	var list models.AttendanceList
	if err := c.get(fmt.Sprintf("/api/attendance/%d", staffID), &list); err != nil {
		return nil, err
	}
	return list.Attendance, nil
}

// Scan отправляет результат сканирования QR-кода сотрудника
func (c *Client) Scan(req models.ScanRequest) (*models.ScanResponse, error) {
	var resp models.ScanResponse
	if err := c.post("/api/scan", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApproveAbsence подтверждает отсутствие сотрудника. Подтверждение может
// менять связанное состояние на сервере, поэтому после вызова нужен полный
// перезапрос данных, а не локальная правка.
func (c *Client) ApproveAbsence(attendanceID uint) error {
	return c.put(fmt.Sprintf("/api/admin/attendance/%d/approve", attendanceID), nil, nil)
}

// ApproveLate подтверждает опоздание по записи clock_in
func (c *Client) ApproveLate(attendanceID uint) error {
	return c.put(fmt.Sprintf("/api/attendance/%d/approve-late", attendanceID), nil, nil)
}

// ApproveEarly подтверждает ранний уход по записи clock_out
func (c *Client) ApproveEarly(attendanceID uint) error {
	return c.put(fmt.Sprintf("/api/attendance/%d/approve-early", attendanceID), nil, nil)
}

// MarkAbsent запускает серверную разметку отсутствовавших. Календарь
// дергает ее при каждой загрузке, результат не используется.
func (c *Client) MarkAbsent() error {
	return c.post("/api/mark-absent", nil, nil)
}
