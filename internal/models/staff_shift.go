package models

// StaffShift - назначение: один сотрудник работает одну смену в один
// конкретный день. StartTime/EndTime переопределяют времена шаблона,
// если заданы.
type StaffShift struct {
	ID           uint    `json:"id"`
	StaffID      uint    `json:"staff_id"`
	ShiftID      uint    `json:"shift_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time,omitempty"`
	EndTime      string  `json:"end_time,omitempty"`
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeType *string `json:"overtime_type"`
	IsNightShift bool    `json:"is_night_shift"`
}

// StaffShiftPayload - тело одного запроса создания назначения.
// При массовом создании форма разворачивает правило повторения в N дат
// и отправляет N независимых запросов с одинаковой базой.
type StaffShiftPayload struct {
	StaffID      uint    `json:"staff_id"`
	ShiftID      uint    `json:"shift_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time,omitempty"`
	EndTime      string  `json:"end_time,omitempty"`
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeType *string `json:"overtime_type"`
	IsNightShift bool    `json:"is_night_shift"`
}
