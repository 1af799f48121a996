package models

// Типы сверхурочных смен
const (
	OvertimeNormal  = "normal"
	OvertimeHoliday = "holiday"
	OvertimeWeekend = "weekend"
	OvertimeNight   = "night"
)

// ShiftTemplate - шаблон смены ("Утренняя 09:00-14:00").
// OvertimeType заполнен тогда и только тогда, когда IsOvertime = true.
type ShiftTemplate struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeType *string `json:"overtime_type"`
}

// ShiftTemplateForm - данные формы создания шаблона смены
type ShiftTemplateForm struct {
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeType *string `json:"overtime_type"`
}
