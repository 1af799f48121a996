package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/pkg/dates"

	"github.com/sirupsen/logrus"
)

// Режимы календаря
const (
	ViewModeMonth = "month"
	ViewModeWeek  = "week"
)

// MonthGrid строит месячную сетку: ровно 42 ячейки (6 недель), первая
// строка начинается с понедельника на 1-е число месяца или перед ним.
// Хвосты заполняются днями соседних месяцев.
func MonthGrid(reference time.Time) []time.Time {
	first, _ := dates.MonthBounds(reference)
	start := dates.WeekStart(first)

	grid := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		grid = append(grid, start.AddDate(0, 0, i))
	}
	return grid
}

// WeekGrid строит недельную сетку: ровно 7 ячеек, понедельник первый
func WeekGrid(reference time.Time) []time.Time {
	start := dates.WeekStart(reference)

	grid := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		grid = append(grid, start.AddDate(0, 0, i))
	}
	return grid
}

// CalendarState - опорная дата и режим просмотра. Навигация сдвигает
// опорную дату на месяц или неделю, переключение режима дату сохраняет.
type CalendarState struct {
	Reference time.Time
	Mode      string
}

// Days возвращает ячейки сетки для текущего режима
func (s *CalendarState) Days() []time.Time {
	if s.Mode == ViewModeWeek {
		return WeekGrid(s.Reference)
	}
	return MonthGrid(s.Reference)
}

// Previous сдвигает опорную дату назад на месяц или неделю
func (s *CalendarState) Previous() {
	if s.Mode == ViewModeWeek {
		s.Reference = s.Reference.AddDate(0, 0, -7)
		return
	}
	s.Reference = s.Reference.AddDate(0, -1, 0)
}

// Next сдвигает опорную дату вперед на месяц или неделю
func (s *CalendarState) Next() {
	if s.Mode == ViewModeWeek {
		s.Reference = s.Reference.AddDate(0, 0, 7)
		return
	}
	s.Reference = s.Reference.AddDate(0, 1, 0)
}

// Today возвращает опорную дату к текущему дню
func (s *CalendarState) Today() {
	s.Reference = dates.DayStart(time.Now())
}

// ToggleMode переключает режим просмотра, сохраняя опорную дату
func (s *CalendarState) ToggleMode() {
	if s.Mode == ViewModeWeek {
		s.Mode = ViewModeMonth
	} else {
		s.Mode = ViewModeWeek
	}
}

// CalendarService держит данные календаря: сотрудников, шаблоны смен,
// назначения и посещаемость по каждому сотруднику
type CalendarService struct {
	api    *api.Client
	logger *logrus.Logger

	mu          sync.Mutex
	state       CalendarState
	staff       []models.StaffMember
	shifts      []models.ShiftTemplate
	assignments []models.StaffShift
	attendance  map[uint][]models.AttendanceRecord

	reloadToken int64
}

func NewCalendarService(apiClient *api.Client) *CalendarService {
	return &CalendarService{
		api: apiClient,
		state: CalendarState{
			Reference: dates.DayStart(time.Now()),
			Mode:      ViewModeMonth,
		},
		attendance: make(map[uint][]models.AttendanceRecord),
		logger:     logrus.New(),
	}
}

// Load загружает все данные календаря. Сотрудники, шаблоны и назначения
// запрашиваются параллельно, вместе с ними уходит серверная разметка
// отсутствовавших; посещаемость запрашивается по сотрудникам
// последовательно. Экран остается "загружается", пока не завершатся все
// запросы - таймаутов нет.
func (s *CalendarService) Load() error {
	s.logger.Info("Loading calendar data")

	var (
		wg       sync.WaitGroup
		staff    []models.StaffMember
		shifts   []models.ShiftTemplate
		assigned []models.StaffShift

		staffErr, shiftsErr, assignedErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		staff, staffErr = s.api.GetStaff()
	}()
	go func() {
		defer wg.Done()
		shifts, shiftsErr = s.api.GetShifts()
	}()
	go func() {
		defer wg.Done()
		assigned, assignedErr = s.api.GetStaffShifts()
	}()
	go func() {
		defer wg.Done()
		// Результат разметки не используется
		if err := s.api.MarkAbsent(); err != nil {
			s.logger.WithError(err).Warn("Mark-absent sweep failed")
		}
	}()
	wg.Wait()

	if staffErr != nil {
		return staffErr
	}
	if shiftsErr != nil {
		return shiftsErr
	}
	if assignedErr != nil {
		return assignedErr
	}

	attendance := make(map[uint][]models.AttendanceRecord, len(staff))
	for _, member := range staff {
		records, err := s.api.GetAttendance(member.ID)
		if err != nil {
			s.logger.WithError(err).WithField("staff_id", member.ID).Warn("Failed to fetch attendance")
			continue
		}
		attendance[member.ID] = records
	}

	s.mu.Lock()
	s.staff = staff
	s.shifts = shifts
	s.assignments = assigned
	s.attendance = attendance
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"staff":       len(staff),
		"shifts":      len(shifts),
		"assignments": len(assigned),
	}).Info("Calendar data loaded")

	return nil
}

// State возвращает копию текущего состояния навигации
func (s *CalendarService) State() CalendarState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Navigate применяет действие навигации: prev, next, today, toggle
func (s *CalendarService) Navigate(action string) CalendarState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case "prev":
		s.state.Previous()
	case "next":
		s.state.Next()
	case "today":
		s.state.Today()
	case "toggle":
		s.state.ToggleMode()
	}
	return s.state
}

// SetMode выставляет режим просмотра (используется при загрузке
// сохраненного состояния)
func (s *CalendarService) SetMode(mode string) {
	if mode != ViewModeWeek && mode != ViewModeMonth {
		return
	}
	s.mu.Lock()
	s.state.Mode = mode
	s.mu.Unlock()
}

// AssignmentsOn возвращает назначения на календарный день (точное
// совпадение даты)
func (s *CalendarService) AssignmentsOn(date string) []models.StaffShift {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.StaffShift
	for _, assignment := range s.assignments {
		if assignment.Date == date {
			result = append(result, assignment)
		}
	}
	return result
}

// ShiftByID находит шаблон смены, nil если не найден
func (s *CalendarService) ShiftByID(id uint) *models.ShiftTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shifts {
		if s.shifts[i].ID == id {
			return &s.shifts[i]
		}
	}
	return nil
}

// StaffByID находит сотрудника, nil если не найден
func (s *CalendarService) StaffByID(id uint) *models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == id {
			return &s.staff[i]
		}
	}
	return nil
}

// Staff возвращает загруженных сотрудников
func (s *CalendarService) Staff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staff
}

// Shifts возвращает загруженные шаблоны смен
func (s *CalendarService) Shifts() []models.ShiftTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shifts
}

// Assignments возвращает загруженные назначения
func (s *CalendarService) Assignments() []models.StaffShift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignments
}

// AttendanceFor возвращает записи посещаемости сотрудника
func (s *CalendarService) AttendanceFor(staffID uint) []models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attendance[staffID]
}

// DeleteAssignment удаляет назначение на сервере и только после
// подтверждения убирает его из локального состояния - никакого
// оптимистичного удаления.
func (s *CalendarService) DeleteAssignment(id uint) error {
	if err := s.api.DeleteStaffShift(id); err != nil {
		s.logger.WithError(err).WithField("staff_shift_id", id).Error("Failed to delete staff shift")
		return err
	}

	s.mu.Lock()
	filtered := s.assignments[:0]
	for _, assignment := range s.assignments {
		if assignment.ID != id {
			filtered = append(filtered, assignment)
		}
	}
	s.assignments = filtered
	s.mu.Unlock()

	s.logger.WithField("staff_shift_id", id).Info("Staff shift deleted")
	return nil
}

// RequestReload увеличивает токен перезагрузки. Форма назначения смен и
// экран сканирования дергают его после успешных изменений.
func (s *CalendarService) RequestReload() int64 {
	return atomic.AddInt64(&s.reloadToken, 1)
}

// ReloadToken возвращает текущее значение токена
func (s *CalendarService) ReloadToken() int64 {
	return atomic.LoadInt64(&s.reloadToken)
}
