package models

import "time"

// Ключи локального хранилища
const (
	StateKeySelectedMenu     = "selected_menu_index"
	StateKeyCalendarViewMode = "calendar_view_mode"
	PayrollSnapshotKey       = "current_payroll"
)

// AppState - локальное состояние интерфейса (выбранный пункт меню, режим
// календаря). Загружается при старте, сохраняется при каждом изменении.
type AppState struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppState) TableName() string {
	return "app_state"
}

// PayrollSnapshot - локальный кэш текущего расчета зарплаты. Хранится под
// единственным ключом, целиком перезаписывается при каждом успешном
// пересчете и читается один раз при старте.
type PayrollSnapshot struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Rows      string    `gorm:"type:text" json:"rows"` // строки расчета в JSON
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PayrollSnapshot) TableName() string {
	return "payroll_snapshots"
}
