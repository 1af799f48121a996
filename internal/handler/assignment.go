package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/service"
	"github.com/naodalemu/SSRS-Admin/pkg/recurrence"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// assignShifts разбирает аргументы вида key=value и отправляет форму
// назначения. Примеры:
//
//	/assign staff=3 shift=1 date=2026-09-01
//	/assign staff=3 shift=1 date=2026-09-01 repeat=weekly days=mon,wed end=2026-09-30
//	/assign staff=3 shift=1 date=2026-09-01 time=10:00-15:00 overtime=holiday
func (h *Handler) assignShifts(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "" {
		text := `➕ Назначение смены

Формат: /assign staff=ID shift=ID date=ГГГГ-ММ-ДД

Дополнительно:
repeat=daily end=ГГГГ-ММ-ДД - каждый день до даты
repeat=weekly days=mon,wed,fri end=ГГГГ-ММ-ДД - по дням недели
time=09:00-14:00 - свое время вместо времени шаблона
overtime=normal|holiday|weekend|night - сверхурочная смена
night=1 - ночная смена

Идентификаторы смотрите в /staff и /shifts.`
		msg := tgbotapi.NewMessage(chatID, text)
		h.client.Bot.Send(msg)
		return
	}

	form, err := parseAssignmentArgs(args)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	created, err := h.scheduleService.AssignShifts(form)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка назначения: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Создано назначений: %d", created))
	h.client.Bot.Send(msg)
}

func parseAssignmentArgs(args string) (service.AssignmentForm, error) {
	form := service.AssignmentForm{}

	for _, field := range strings.Fields(args) {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return form, fmt.Errorf("непонятный аргумент: %q (ожидается key=value)", field)
		}

		switch key {
		case "staff":
			id, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return form, fmt.Errorf("неверный staff: %q", value)
			}
			form.StaffID = uint(id)
		case "shift":
			id, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return form, fmt.Errorf("неверный shift: %q", value)
			}
			form.ShiftID = uint(id)
		case "date":
			form.Date = value
		case "end":
			form.EndDate = value
		case "repeat":
			if value != recurrence.TypeDaily && value != recurrence.TypeWeekly {
				return form, fmt.Errorf("repeat должен быть daily или weekly, получено %q", value)
			}
			form.IsRecurring = true
			form.RecurrenceType = value
		case "days":
			form.Weekdays = make(map[string]bool)
			for _, day := range strings.Split(value, ",") {
				form.Weekdays[expandWeekday(day)] = true
			}
		case "time":
			start, end, ok := strings.Cut(value, "-")
			if !ok {
				return form, fmt.Errorf("time задается как 09:00-14:00, получено %q", value)
			}
			form.OverrideTime = true
			form.StartTime = start
			form.EndTime = end
		case "overtime":
			form.IsOvertime = true
			form.OvertimeType = value
		case "night":
			form.IsNightShift = value == "1" || value == "true"
		default:
			return form, fmt.Errorf("неизвестный аргумент: %q", key)
		}
	}

	if form.IsRecurring && form.RecurrenceType == recurrence.TypeWeekly && len(form.Weekdays) == 0 {
		return form, fmt.Errorf("для repeat=weekly укажите days=mon,wed,...")
	}

	return form, nil
}

// expandWeekday разворачивает сокращение дня недели в полное имя
func expandWeekday(day string) string {
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "mon":
		return "monday"
	case "tue":
		return "tuesday"
	case "wed":
		return "wednesday"
	case "thu":
		return "thursday"
	case "fri":
		return "friday"
	case "sat":
		return "saturday"
	case "sun":
		return "sunday"
	default:
		return strings.ToLower(strings.TrimSpace(day))
	}
}
