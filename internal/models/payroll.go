package models

// PayrollRow - строка текущего расчета зарплаты. Денежные поля сервер
// отдает строками, сортировка и сводка разбирают их как числа.
type PayrollRow struct {
	Staff                string `json:"staff"`
	AssignedDays         int    `json:"assigned_days"`
	DailySalary          string `json:"daily_salary"`
	NormalEarned         string `json:"normal_earned"`
	OvertimeEarned       string `json:"overtime_earned"`
	TotalEarned          string `json:"total_earned"`
	Tax                  string `json:"tax"`
	Tips                 string `json:"tips"`
	NetSalaryWithoutTips string `json:"net_salary_without_tips"`
	NetSalaryWithTips    string `json:"net_salary_with_tips"`
}

// HistoricalPayroll - строка журнала прошлых расчетов, только чтение
type HistoricalPayroll struct {
	ID                uint   `json:"id"`
	StaffID           uint   `json:"staff_id"`
	StaffName         string `json:"staff_name"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	AssignedDays      int    `json:"assigned_days"`
	TotalSalary       string `json:"total_salary"`
	TotalEarned       string `json:"total_earned"`
	Tax               string `json:"tax"`
	Tips              string `json:"tips"`
	NetSalaryWithTips string `json:"net_salary_with_tips"`
}

// PayrollCalculateRequest - тело запроса POST /api/payroll/calculate
type PayrollCalculateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PayrollCalculateResponse - ответ расчета зарплаты
type PayrollCalculateResponse struct {
	Payrolls []PayrollRow `json:"payrolls"`
}

// PayrollSummary - сводная статистика по текущему расчету.
// AverageSalary = TotalGrossSalary / TotalStaff, не определена для пустого
// набора строк (вызывающая сторона обязана проверить до показа).
type PayrollSummary struct {
	TotalStaff       int
	TotalGrossSalary float64
	TotalTax         float64
	TotalNetSalary   float64
	TotalTips        float64
	AverageSalary    float64
}
