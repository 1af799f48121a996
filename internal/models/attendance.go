package models

import "strings"

// Режимы сканирования
const (
	ModeClockIn  = "clock_in"
	ModeClockOut = "clock_out"
)

// Статусы посещаемости
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord - событие посещаемости, привязанное к конкретному
// назначению. В один день по одному назначению может быть не больше двух
// записей: clock_in и clock_out. Флаги подтверждения сервер отдает как 0/1.
type AttendanceRecord struct {
	ID              uint   `json:"id"`
	StaffID         uint   `json:"staff_id"`
	StaffShiftID    uint   `json:"staff_shift_id"`
	Mode            string `json:"mode"`
	ScannedAt       string `json:"scanned_at"`
	Status          string `json:"status"`
	LateMinutes     int    `json:"late_minutes"`
	EarlyMinutes    int    `json:"early_minutes"`
	LateApproved    int    `json:"late_approved"`
	EarlyApproved   int    `json:"early_approved"`
	ApprovedByAdmin int    `json:"approved_by_admin"`
}

// ScannedOn проверяет, что событие произошло в указанный календарный день
// (сравнение по префиксу YYYY-MM-DD отметки времени)
func (a *AttendanceRecord) ScannedOn(date string) bool {
	return a.ScannedAt != "" && strings.HasPrefix(a.ScannedAt, date)
}

// ScanRequest - тело запроса POST /api/scan
type ScanRequest struct {
	StaffID          string `json:"staff_id"`
	StaffShiftID     uint   `json:"staff_shift_id"`
	Mode             string `json:"mode"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
}

// ScanResponse - ответ сервера на сканирование
type ScanResponse struct {
	Message string `json:"message"`
}

// AttendanceList - ответ GET /api/attendance/{staffId}
type AttendanceList struct {
	Attendance []AttendanceRecord `json:"attendance"`
}
