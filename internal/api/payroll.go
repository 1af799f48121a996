package api

import "github.com/naodalemu/SSRS-Admin/internal/models"

// CalculatePayroll запускает расчет зарплаты за период на сервере
func (c *Client) CalculatePayroll(startDate, endDate string) ([]models.PayrollRow, error) {
	req := models.PayrollCalculateRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}

	var resp models.PayrollCalculateResponse
	if err := c.post("/api/payroll/calculate", req, &resp); err != nil {
		return nil, err
	}
	return resp.Payrolls, nil
}

// GetPayrollHistory возвращает журнал прошлых расчетов
func (c *Client) GetPayrollHistory() ([]models.HistoricalPayroll, error) {
	var history []models.HistoricalPayroll
	if err := c.get("/api/payroll/", &history); err != nil {
		return nil, err
	}
	return history, nil
}
