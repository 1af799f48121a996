package service

import (
	"fmt"
	"sync"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/pkg/recurrence"

	"github.com/sirupsen/logrus"
)

// AssignmentForm - заполненная форма назначения смен
type AssignmentForm struct {
	StaffID        uint
	ShiftID        uint
	Date           string
	IsRecurring    bool
	RecurrenceType string
	Weekdays       map[string]bool
	EndDate        string

	OverrideTime bool
	StartTime    string
	EndTime      string

	IsOvertime   bool
	OvertimeType string
	IsNightShift bool
}

// ScheduleService разворачивает форму назначения в набор дат и создает
// назначения на сервере
type ScheduleService struct {
	api      *api.Client
	calendar *CalendarService
	logger   *logrus.Logger
}

func NewScheduleService(apiClient *api.Client, calendar *CalendarService) *ScheduleService {
	return &ScheduleService{
		api:      apiClient,
		calendar: calendar,
		logger:   logrus.New(),
	}
}

// AssignShifts создает назначения по форме. Правило повторения
// разворачивается в N дат, на каждую дату уходит независимый запрос,
// все запросы выполняются параллельно. Успех - только если успешны все;
// при любой неудаче возвращается сообщение первой (по порядку дат)
// ошибки, уже созданные назначения не откатываются. После полного успеха
// календарь помечается на перезагрузку.
func (s *ScheduleService) AssignShifts(form AssignmentForm) (int, error) {
	if form.StaffID == 0 {
		return 0, fmt.Errorf("не выбран сотрудник")
	}
	if form.ShiftID == 0 {
		return 0, fmt.Errorf("не выбран шаблон смены")
	}
	if form.Date == "" {
		return 0, fmt.Errorf("не указана дата начала")
	}

	expanded := recurrence.Expand(form.Date, form.EndDate, form.IsRecurring, form.RecurrenceType, form.Weekdays)
	if len(expanded) == 0 {
		return 0, fmt.Errorf("не выбрано ни одной даты: проверьте диапазон и дни недели")
	}

	base := models.StaffShiftPayload{
		StaffID:      form.StaffID,
		ShiftID:      form.ShiftID,
		IsOvertime:   form.IsOvertime,
		IsNightShift: form.IsNightShift,
	}
	if form.IsOvertime {
		overtimeType := form.OvertimeType
		base.OvertimeType = &overtimeType
	}
	if form.OverrideTime {
		base.StartTime = form.StartTime
		base.EndTime = form.EndTime
	}

	s.logger.WithFields(logrus.Fields{
		"staff_id": form.StaffID,
		"shift_id": form.ShiftID,
		"dates":    len(expanded),
	}).Info("Creating staff shift assignments")

	results := make([]error, len(expanded))
	var wg sync.WaitGroup
	for i, date := range expanded {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()

			payload := base
			payload.Date = date
			_, err := s.api.CreateStaffShift(payload)
			results[i] = err
		}(i, date)
	}
	wg.Wait()

	for _, err := range results {
		if err != nil {
			s.logger.WithError(err).Warn("Shift assignment batch failed")
			return 0, err
		}
	}

	s.calendar.RequestReload()

	s.logger.WithField("created", len(expanded)).Info("Shift assignments created")
	return len(expanded), nil
}
