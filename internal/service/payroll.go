package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/internal/repository"
	"github.com/naodalemu/SSRS-Admin/pkg/dates"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Вкладки экрана зарплаты
const (
	TabCurrent = "current"
	TabHistory = "history"
)

// Направления сортировки
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Report - размеченное объединение двух наборов строк: текущий расчет и
// журнал прошлых расчетов. Схемы колонок у вкладок разные, обработчики
// (сортировка, сводка, экспорт) разбирают оба варианта явно.
type Report struct {
	Kind    string
	Current []models.PayrollRow
	History []models.HistoricalPayroll
}

// SortState - поле и направление сортировки
type SortState struct {
	Field     string
	Direction string
}

// Toggle обрабатывает клик по заголовку колонки: повторный клик по тому же
// полю переворачивает направление, клик по новому полю сбрасывает на
// возрастание.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return
	}
	s.Field = field
	s.Direction = SortAsc
}

// Строковые сравнения учитывают локаль
var payrollCollator = collate.New(language.English)

// numericValue разбирает денежное поле как число. Нечисловые и пустые
// значения дают NaN; их порядок при сортировке не закреплен - это
// осознанно не ужесточается.
func numericValue(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// SortRows сортирует строки текущего расчета по полю и направлению
func SortRows(rows []models.PayrollRow, field, direction string) []models.PayrollRow {
	sorted := make([]models.PayrollRow, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		var less bool
		switch field {
		case "staff":
			less = payrollCollator.CompareString(sorted[i].Staff, sorted[j].Staff) < 0
		case "assigned_days":
			less = sorted[i].AssignedDays < sorted[j].AssignedDays
		case "total_salary", "daily_salary", "normal_earned", "overtime_earned",
			"total_earned", "tax", "tips", "net_salary_without_tips", "net_salary_with_tips":
			less = numericValue(currentField(&sorted[i], field)) < numericValue(currentField(&sorted[j], field))
		default:
			return false
		}

		if direction == SortDesc {
			return !less
		}
		return less
	})

	return sorted
}

// currentField достает денежное поле строки текущего расчета по имени
func currentField(row *models.PayrollRow, field string) string {
	switch field {
	case "daily_salary":
		return row.DailySalary
	case "normal_earned":
		return row.NormalEarned
	case "overtime_earned":
		return row.OvertimeEarned
	case "total_earned":
		return row.TotalEarned
	case "tax":
		return row.Tax
	case "tips":
		return row.Tips
	case "net_salary_without_tips":
		return row.NetSalaryWithoutTips
	case "net_salary_with_tips":
		return row.NetSalaryWithTips
	default:
		return ""
	}
}

// SortHistory сортирует строки журнала по полю и направлению
func SortHistory(rows []models.HistoricalPayroll, field, direction string) []models.HistoricalPayroll {
	sorted := make([]models.HistoricalPayroll, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		var less bool
		switch field {
		case "staff":
			less = payrollCollator.CompareString(sorted[i].StaffName, sorted[j].StaffName) < 0
		case "assigned_days":
			less = sorted[i].AssignedDays < sorted[j].AssignedDays
		case "total_salary":
			less = numericValue(sorted[i].TotalSalary) < numericValue(sorted[j].TotalSalary)
		case "total_earned":
			less = numericValue(sorted[i].TotalEarned) < numericValue(sorted[j].TotalEarned)
		case "tax":
			less = numericValue(sorted[i].Tax) < numericValue(sorted[j].Tax)
		case "tips":
			less = numericValue(sorted[i].Tips) < numericValue(sorted[j].Tips)
		case "net_salary_with_tips":
			less = numericValue(sorted[i].NetSalaryWithTips) < numericValue(sorted[j].NetSalaryWithTips)
		default:
			return false
		}

		if direction == SortDesc {
			return !less
		}
		return less
	})

	return sorted
}

// Summarize считает сводку по текущему расчету. Для пустого набора строк
// сводка не определена - возвращается nil, показ обязан проверить.
func Summarize(rows []models.PayrollRow) *models.PayrollSummary {
	if len(rows) == 0 {
		return nil
	}

	summary := &models.PayrollSummary{TotalStaff: len(rows)}
	for i := range rows {
		summary.TotalGrossSalary += numericOrZero(rows[i].TotalEarned)
		summary.TotalTax += numericOrZero(rows[i].Tax)
		summary.TotalNetSalary += numericOrZero(rows[i].NetSalaryWithTips)
		summary.TotalTips += numericOrZero(rows[i].Tips)
	}
	summary.AverageSalary = summary.TotalGrossSalary / float64(summary.TotalStaff)

	return summary
}

func numericOrZero(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// PayrollService - экран зарплаты: период, текущий расчет, журнал,
// сортировка и локальный кэш последнего расчета
type PayrollService struct {
	api      *api.Client
	snapshot repository.PayrollSnapshotRepository
	logger   *logrus.Logger

	startDate string
	endDate   string
	current   []models.PayrollRow
	history   []models.HistoricalPayroll
	activeTab string
	sortState SortState
}

func NewPayrollService(apiClient *api.Client, snapshot repository.PayrollSnapshotRepository) *PayrollService {
	return &PayrollService{
		api:       apiClient,
		snapshot:  snapshot,
		activeTab: TabCurrent,
		sortState: SortState{Field: "staff", Direction: SortAsc},
		logger:    logrus.New(),
	}
}

// Init выставляет период по умолчанию (текущий месяц), читает кэш
// последнего расчета и запрашивает журнал. Неудача загрузки журнала не
// фатальна - как и в исходном экране, она только логируется.
func (s *PayrollService) Init() {
	first, last := dates.MonthBounds(time.Now())
	s.startDate = dates.Format(first)
	s.endDate = dates.Format(last)

	cachedStart, cachedEnd, rows, err := s.snapshot.Load()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load cached payroll")
	} else if rows != nil {
		s.current = rows
		if cachedStart != "" {
			s.startDate = cachedStart
			s.endDate = cachedEnd
		}
		s.logger.WithField("rows", len(rows)).Info("Cached payroll loaded")
	}

	if err := s.RefreshHistory(); err != nil {
		s.logger.WithError(err).Warn("Failed to fetch payroll history")
	}
}

// SetPeriod задает период расчета
func (s *PayrollService) SetPeriod(startDate, endDate string) error {
	if _, err := dates.Parse(startDate); err != nil {
		return fmt.Errorf("неверная дата начала: %s", startDate)
	}
	if _, err := dates.Parse(endDate); err != nil {
		return fmt.Errorf("неверная дата конца: %s", endDate)
	}
	s.startDate = startDate
	s.endDate = endDate
	return nil
}

// Period возвращает текущий период
func (s *PayrollService) Period() (string, string) {
	return s.startDate, s.endDate
}

// Calculate запускает расчет на сервере, целиком перезаписывает локальный
// кэш, обновляет журнал и переключает экран на вкладку текущего расчета
func (s *PayrollService) Calculate() (int, error) {
	if s.startDate == "" || s.endDate == "" {
		return 0, fmt.Errorf("укажите обе даты периода")
	}

	s.logger.WithFields(logrus.Fields{
		"start_date": s.startDate,
		"end_date":   s.endDate,
	}).Info("Calculating payroll")

	rows, err := s.api.CalculatePayroll(s.startDate, s.endDate)
	if err != nil {
		s.logger.WithError(err).Error("Payroll calculation failed")
		return 0, err
	}

	s.current = rows
	if err := s.snapshot.Save(s.startDate, s.endDate, rows); err != nil {
		s.logger.WithError(err).Warn("Failed to cache payroll snapshot")
	}

	if err := s.RefreshHistory(); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh payroll history")
	}

	s.activeTab = TabCurrent
	return len(rows), nil
}

// RefreshHistory перечитывает журнал прошлых расчетов
func (s *PayrollService) RefreshHistory() error {
	history, err := s.api.GetPayrollHistory()
	if err != nil {
		return err
	}
	s.history = history
	return nil
}

// SetTab переключает активную вкладку
func (s *PayrollService) SetTab(tab string) error {
	if tab != TabCurrent && tab != TabHistory {
		return fmt.Errorf("неизвестная вкладка: %s", tab)
	}
	s.activeTab = tab
	return nil
}

// ActiveTab возвращает активную вкладку
func (s *PayrollService) ActiveTab() string {
	return s.activeTab
}

// SortBy обрабатывает клик по колонке
func (s *PayrollService) SortBy(field string) {
	s.sortState.Toggle(field)
}

// Sort возвращает текущее состояние сортировки
func (s *PayrollService) Sort() SortState {
	return s.sortState
}

// Report возвращает отсортированный набор строк активной вкладки
func (s *PayrollService) Report() Report {
	switch s.activeTab {
	case TabHistory:
		return Report{
			Kind:    TabHistory,
			History: SortHistory(s.history, s.sortState.Field, s.sortState.Direction),
		}
	default:
		return Report{
			Kind:    TabCurrent,
			Current: SortRows(s.current, s.sortState.Field, s.sortState.Direction),
		}
	}
}

// Summary возвращает сводку: только для вкладки текущего расчета,
// для журнала сводки нет
func (s *PayrollService) Summary() *models.PayrollSummary {
	if s.activeTab != TabCurrent {
		return nil
	}
	return Summarize(s.current)
}
