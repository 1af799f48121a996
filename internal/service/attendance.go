package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/pkg/dates"

	"github.com/sirupsen/logrus"
)

// ResolveStatus выводит статус посещаемости для ячейки календаря:
// "present", "absent" или пустая строка, если записи нет. Для дат строго
// позже сегодняшней всегда пусто - посещаемость будущего не показывается.
// Даты сравниваются как строки YYYY-MM-DD по локальным часам клиента;
// поведение при расхождении часовых поясов с сервером не определено
// вышестоящим API.
func ResolveStatus(records []models.AttendanceRecord, staffShiftID uint, date, today string) string {
	if date > today {
		return ""
	}

	for i := range records {
		if records[i].StaffShiftID == staffShiftID && records[i].ScannedOn(date) {
			return records[i].Status
		}
	}
	return ""
}

// RecordsFor отбирает записи посещаемости по назначению и календарному дню
func RecordsFor(records []models.AttendanceRecord, staffShiftID uint, date string) []models.AttendanceRecord {
	var matched []models.AttendanceRecord
	for i := range records {
		if records[i].StaffShiftID == staffShiftID && records[i].ScannedOn(date) {
			matched = append(matched, records[i])
		}
	}
	return matched
}

// SumLateMinutes суммирует минуты опоздания по записям clock_in
func SumLateMinutes(records []models.AttendanceRecord) int {
	total := 0
	for i := range records {
		if records[i].Mode == models.ModeClockIn {
			total += records[i].LateMinutes
		}
	}
	return total
}

// SumEarlyMinutes суммирует минуты раннего ухода по записям clock_out
func SumEarlyMinutes(records []models.AttendanceRecord) int {
	total := 0
	for i := range records {
		if records[i].Mode == models.ModeClockOut {
			total += records[i].EarlyMinutes
		}
	}
	return total
}

// LateApproved проверяет, подтверждено ли опоздание хотя бы одной записью
func LateApproved(records []models.AttendanceRecord) bool {
	for i := range records {
		if records[i].LateApproved == 1 {
			return true
		}
	}
	return false
}

// EarlyApproved проверяет, подтвержден ли ранний уход
func EarlyApproved(records []models.AttendanceRecord) bool {
	for i := range records {
		if records[i].EarlyApproved == 1 {
			return true
		}
	}
	return false
}

// FindRecord находит запись с указанным режимом, nil если ее нет
func FindRecord(records []models.AttendanceRecord, mode string) *models.AttendanceRecord {
	for i := range records {
		if records[i].Mode == mode {
			return &records[i]
		}
	}
	return nil
}

// AttendanceService - подтверждения посещаемости и обработка сканирований
type AttendanceService struct {
	api      *api.Client
	calendar *CalendarService
	logger   *logrus.Logger

	tolerance int
}

func NewAttendanceService(apiClient *api.Client, calendar *CalendarService, defaultTolerance int) *AttendanceService {
	return &AttendanceService{
		api:       apiClient,
		calendar:  calendar,
		tolerance: defaultTolerance,
		logger:    logrus.New(),
	}
}

// Tolerance возвращает текущий допуск в минутах
func (s *AttendanceService) Tolerance() int {
	return s.tolerance
}

// SetTolerance меняет допуск в минутах
func (s *AttendanceService) SetTolerance(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("допуск не может быть отрицательным")
	}
	s.tolerance = minutes
	return nil
}

// ApproveAbsence подтверждает отсутствие. Доступно только когда статус
// ячейки "absent" и дата не в будущем; после подтверждения - полный
// перезапрос данных, потому что подтверждение может менять связанное
// состояние на сервере.
func (s *AttendanceService) ApproveAbsence(attendanceID uint) error {
	s.logger.WithField("attendance_id", attendanceID).Info("Approving absence")

	if err := s.api.ApproveAbsence(attendanceID); err != nil {
		s.logger.WithError(err).Error("Failed to approve absence")
		return err
	}
	return s.calendar.Load()
}

// ApproveLate подтверждает опоздание: действие нацелено на запись clock_in
func (s *AttendanceService) ApproveLate(records []models.AttendanceRecord) error {
	clockIn := FindRecord(records, models.ModeClockIn)
	if clockIn == nil {
		return fmt.Errorf("запись clock_in для подтверждения опоздания не найдена")
	}

	s.logger.WithField("attendance_id", clockIn.ID).Info("Approving late minutes")

	if err := s.api.ApproveLate(clockIn.ID); err != nil {
		s.logger.WithError(err).Error("Failed to approve late minutes")
		return err
	}
	return s.calendar.Load()
}

// ApproveEarly подтверждает ранний уход: действие нацелено на запись clock_out
func (s *AttendanceService) ApproveEarly(records []models.AttendanceRecord) error {
	clockOut := FindRecord(records, models.ModeClockOut)
	if clockOut == nil {
		return fmt.Errorf("запись clock_out для подтверждения раннего ухода не найдена")
	}

	s.logger.WithField("attendance_id", clockOut.ID).Info("Approving early minutes")

	if err := s.api.ApproveEarly(clockOut.ID); err != nil {
		s.logger.WithError(err).Error("Failed to approve early minutes")
		return err
	}
	return s.calendar.Load()
}

// TodayOption - элемент выпадающего списка назначений на сегодня
type TodayOption struct {
	StaffShiftID uint
	Label        string
}

// TodayAssignments собирает назначения на сегодняшний день для экрана
// сканирования: сотрудник, смена и времена в одной подписи
func (s *AttendanceService) TodayAssignments() []TodayOption {
	today := dates.Format(time.Now())

	var options []TodayOption
	for _, assignment := range s.calendar.AssignmentsOn(today) {
		staffName := "Unknown Staff"
		if member := s.calendar.StaffByID(assignment.StaffID); member != nil {
			staffName = member.Name
		}

		shiftName := "Unknown Shift"
		startTime := assignment.StartTime
		endTime := assignment.EndTime
		if shift := s.calendar.ShiftByID(assignment.ShiftID); shift != nil {
			shiftName = shift.Name
			if startTime == "" {
				startTime = shift.StartTime
			}
			if endTime == "" {
				endTime = shift.EndTime
			}
		}

		options = append(options, TodayOption{
			StaffShiftID: assignment.ID,
			Label:        fmt.Sprintf("%s - %s (%s - %s)", staffName, shiftName, startTime, endTime),
		})
	}
	return options
}

// SubmitScan отправляет расшифрованный QR-код (идентификатор сотрудника)
// на сервер. После успеха календарь помечается на перезагрузку.
func (s *AttendanceService) SubmitScan(decoded string, staffShiftID uint, mode string) (string, error) {
	if _, err := strconv.Atoi(decoded); err != nil {
		return "", fmt.Errorf("QR-код не похож на идентификатор сотрудника: %q", decoded)
	}
	if mode != models.ModeClockIn && mode != models.ModeClockOut {
		return "", fmt.Errorf("неизвестный режим сканирования: %q", mode)
	}

	resp, err := s.api.Scan(models.ScanRequest{
		StaffID:          decoded,
		StaffShiftID:     staffShiftID,
		Mode:             mode,
		ToleranceMinutes: s.tolerance,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to record attendance scan")
		return "", err
	}

	s.calendar.RequestReload()

	message := resp.Message
	if message == "" {
		message = "Сканирование записано"
	}
	return message, nil
}
