package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/internal/service"
	"github.com/naodalemu/SSRS-Admin/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// ensureCalendarLoaded загружает данные при первом обращении и после
// изменений, пометивших календарь на перезагрузку
func (h *Handler) ensureCalendarLoaded() error {
	token := h.calendarService.ReloadToken()
	if h.renderedToken == token && len(h.calendarService.Staff()) > 0 {
		return nil
	}

	if err := h.calendarService.Load(); err != nil {
		return err
	}
	h.renderedToken = token
	return nil
}

// showCalendar рисует календарь текущего режима с кнопками навигации
func (h *Handler) showCalendar(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.ensureCalendarLoaded(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки календаря: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	h.renderCalendar(chatID)
}

func (h *Handler) reloadCalendar(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.calendarService.Load(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки календаря: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}
	h.renderedToken = h.calendarService.ReloadToken()

	msg := tgbotapi.NewMessage(chatID, "✅ Данные календаря обновлены.")
	h.client.Bot.Send(msg)
	h.renderCalendar(chatID)
}

func (h *Handler) renderCalendar(chatID int64) {
	state := h.calendarService.State()

	var text string
	if state.Mode == service.ViewModeWeek {
		text = h.renderWeek(state)
	} else {
		text = h.renderMonth(state)
	}

	toggleLabel := "Неделя"
	if state.Mode == service.ViewModeWeek {
		toggleLabel = "Месяц"
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️", "cal_prev"),
			tgbotapi.NewInlineKeyboardButtonData("Сегодня", "cal_today"),
			tgbotapi.NewInlineKeyboardButtonData("▶️", "cal_next"),
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel, "cal_toggle"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

// renderMonth рисует месячную сетку: 6 строк по 7 дней, дни с
// назначениями помечены точкой
func (h *Handler) renderMonth(state service.CalendarState) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 %s %d\n\n", state.Reference.Month().String(), state.Reference.Year()))
	sb.WriteString("Пн  Вт  Ср  Чт  Пт  Сб  Вс\n")

	grid := state.Days()
	for i, day := range grid {
		marker := " "
		if len(h.calendarService.AssignmentsOn(dates.Format(day))) > 0 {
			marker = "•"
		}
		if day.Month() != state.Reference.Month() {
			sb.WriteString(fmt.Sprintf("(%2d)", day.Day()))
		} else {
			sb.WriteString(fmt.Sprintf("%3d%s", day.Day(), marker))
		}
		if (i+1)%7 == 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n• - есть назначения, (в скобках) - соседний месяц\n")
	sb.WriteString("Подробности дня: /day ГГГГ-ММ-ДД")
	return sb.String()
}

// renderWeek рисует неделю: по строке на день со сводкой назначений
func (h *Handler) renderWeek(state service.CalendarState) string {
	today := dates.Format(time.Now())

	var sb strings.Builder
	sb.WriteString("📅 Неделя\n\n")

	for _, day := range state.Days() {
		date := dates.Format(day)
		assignments := h.calendarService.AssignmentsOn(date)

		present, absent := 0, 0
		for _, assignment := range assignments {
			records := h.calendarService.AttendanceFor(assignment.StaffID)
			switch service.ResolveStatus(records, assignment.ID, date, today) {
			case models.AttendancePresent:
				present++
			case models.AttendanceAbsent:
				absent++
			}
		}

		line := fmt.Sprintf("%s %s - смен: %d", dates.WeekdayName(day), date, len(assignments))
		if present > 0 || absent > 0 {
			line += fmt.Sprintf(" (✅%d ❌%d)", present, absent)
		}
		if date == today {
			line = "👉 " + line
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nПодробности дня: /day ГГГГ-ММ-ДД")
	return sb.String()
}

// showDay показывает назначения дня: статусы посещаемости, опоздания и
// кнопки действий
func (h *Handler) showDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	if date == "" {
		date = dates.Format(time.Now())
	}
	if _, err := dates.Parse(date); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Неверный формат даты. Используйте ГГГГ-ММ-ДД, например /day 2026-08-31")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.ensureCalendarLoaded(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки календаря: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	assignments := h.calendarService.AssignmentsOn(date)
	if len(assignments) == 0 {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("📅 %s\n\nНазначений нет.", date))
		h.client.Bot.Send(msg)
		return
	}

	today := dates.Format(time.Now())
	header := tgbotapi.NewMessage(chatID, fmt.Sprintf("📅 %s - назначений: %d", date, len(assignments)))
	h.client.Bot.Send(header)

	for _, assignment := range assignments {
		text, keyboard := h.formatAssignment(assignment, date, today)
		msg := tgbotapi.NewMessage(chatID, text)
		if len(keyboard.InlineKeyboard) > 0 {
			msg.ReplyMarkup = keyboard
		}
		h.client.Bot.Send(msg)
	}
}

// formatAssignment собирает карточку одного назначения и кнопки действий
func (h *Handler) formatAssignment(assignment models.StaffShift, date, today string) (string, tgbotapi.InlineKeyboardMarkup) {
	staffName := "Unknown Staff"
	if member := h.calendarService.StaffByID(assignment.StaffID); member != nil {
		staffName = member.Name
	}

	shiftName := "Unknown Shift"
	startTime := assignment.StartTime
	endTime := assignment.EndTime
	if shift := h.calendarService.ShiftByID(assignment.ShiftID); shift != nil {
		shiftName = shift.Name
		if startTime == "" {
			startTime = shift.StartTime
		}
		if endTime == "" {
			endTime = shift.EndTime
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 %s\n⏱ %s (%s - %s)\n", staffName, shiftName, startTime, endTime))
	if assignment.IsOvertime && assignment.OvertimeType != nil {
		sb.WriteString("💪 Сверхурочно: " + *assignment.OvertimeType + "\n")
	}
	if assignment.IsNightShift {
		sb.WriteString("🌙 Ночная смена\n")
	}

	records := h.calendarService.AttendanceFor(assignment.StaffID)
	dayRecords := service.RecordsFor(records, assignment.ID, date)
	status := service.ResolveStatus(records, assignment.ID, date, today)

	var buttons []tgbotapi.InlineKeyboardButton

	switch status {
	case models.AttendancePresent:
		sb.WriteString("✅ Присутствовал\n")

		late := service.SumLateMinutes(dayRecords)
		if late > 0 {
			if service.LateApproved(dayRecords) {
				sb.WriteString(fmt.Sprintf("⏰ Опоздание: %d мин (подтверждено)\n", late))
			} else {
				sb.WriteString(fmt.Sprintf("⏰ Опоздание: %d мин\n", late))
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
					"⏰ Подтвердить опоздание",
					fmt.Sprintf("al_%d_%d_%s", assignment.StaffID, assignment.ID, date),
				))
			}
		}

		early := service.SumEarlyMinutes(dayRecords)
		if early > 0 {
			if service.EarlyApproved(dayRecords) {
				sb.WriteString(fmt.Sprintf("🏃 Ранний уход: %d мин (подтверждено)\n", early))
			} else {
				sb.WriteString(fmt.Sprintf("🏃 Ранний уход: %d мин\n", early))
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
					"🏃 Подтвердить ранний уход",
					fmt.Sprintf("ae_%d_%d_%s", assignment.StaffID, assignment.ID, date),
				))
			}
		}

	case models.AttendanceAbsent:
		sb.WriteString("❌ Отсутствовал\n")
		if len(dayRecords) > 0 && dayRecords[0].ApprovedByAdmin != 1 {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
				"✅ Подтвердить отсутствие",
				fmt.Sprintf("aa_%d", dayRecords[0].ID),
			))
		}

	default:
		if date > today {
			sb.WriteString("🕓 Смена еще не наступила\n")
		} else {
			sb.WriteString("➖ Отметок нет\n")
		}
	}

	buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
		"🗑 Удалить назначение",
		fmt.Sprintf("delassign_%d", assignment.ID),
	))

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, button := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return sb.String(), tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// handleCalendarCallback обрабатывает кнопки навигации
func (h *Handler) handleCalendarCallback(chatID int64, data string) {
	action := strings.TrimPrefix(data, "cal_")
	state := h.calendarService.Navigate(action)

	// Режим просмотра переживает перезапуск
	if action == "toggle" {
		if err := h.appState.Set(models.StateKeyCalendarViewMode, state.Mode); err != nil {
			logrus.WithError(err).Warn("Failed to persist calendar view mode")
		}
	}

	h.renderCalendar(chatID)
}

// handleDeleteAssignmentCallback удаляет назначение. Сначала сервер,
// потом локальное состояние.
func (h *Handler) handleDeleteAssignmentCallback(chatID int64, data string) {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, "delassign_"), 10, 32)
	if err != nil {
		return
	}

	if err := h.calendarService.DeleteAssignment(uint(id)); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка удаления назначения: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Назначение удалено.")
	h.client.Bot.Send(msg)
}

// handleApprovalCallback обрабатывает подтверждения посещаемости:
// aa_<recordID>, al_<staffID>_<assignID>_<date>, ae_<staffID>_<assignID>_<date>
func (h *Handler) handleApprovalCallback(chatID int64, data string) {
	var err error

	switch {
	case strings.HasPrefix(data, "aa_"):
		var id uint64
		id, err = strconv.ParseUint(strings.TrimPrefix(data, "aa_"), 10, 32)
		if err == nil {
			err = h.attendanceService.ApproveAbsence(uint(id))
		}

	default:
		parts := strings.SplitN(data[3:], "_", 3)
		if len(parts) != 3 {
			return
		}
		staffID, staffErr := strconv.ParseUint(parts[0], 10, 32)
		assignID, assignErr := strconv.ParseUint(parts[1], 10, 32)
		if staffErr != nil || assignErr != nil {
			return
		}
		date := parts[2]

		records := service.RecordsFor(h.calendarService.AttendanceFor(uint(staffID)), uint(assignID), date)
		if strings.HasPrefix(data, "al_") {
			err = h.attendanceService.ApproveLate(records)
		} else {
			err = h.attendanceService.ApproveEarly(records)
		}
	}

	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка подтверждения: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	// Подтверждение перезагружает данные, токен уже актуален
	h.renderedToken = h.calendarService.ReloadToken()

	msg := tgbotapi.NewMessage(chatID, "✅ Подтверждено.")
	h.client.Bot.Send(msg)
}
