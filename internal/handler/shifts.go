package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showShiftTemplates показывает список шаблонов смен
func (h *Handler) showShiftTemplates(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.shiftTemplateService.Refresh(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки шаблонов смен: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	templates := h.shiftTemplateService.Templates()
	if len(templates) == 0 {
		msg := tgbotapi.NewMessage(chatID, "⏱ Шаблонов смен нет. Создайте первый: /addshift")
		h.client.Bot.Send(msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("⏱ Шаблоны смен:\n\n")
	for _, template := range templates {
		line := fmt.Sprintf("ID %d: %s (%s - %s)", template.ID, template.Name, template.StartTime, template.EndTime)
		if template.IsOvertime && template.OvertimeType != nil {
			line += " 💪 " + *template.OvertimeType
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\nУдаление: /delshift ID")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}

// startShiftCreation начинает пошаговое создание шаблона смены
func (h *Handler) startShiftCreation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	h.userStates[chatID] = "shift_name"

	text := `⏱ Создание шаблона смены

Шаг 1 из 3:
✏️ Отправьте название смены (например "Утренняя"):`

	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}

// handleShiftState обрабатывает шаги диалога создания шаблона
func (h *Handler) handleShiftState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch {
	case state == "shift_name":
		h.userStates[chatID] = "shift_time:" + text

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"Шаг 2 из 3:\n✅ Название: %s\n✏️ Теперь отправьте время в формате 09:00-14:00:", text))
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "shift_time:"):
		start, end, ok := strings.Cut(text, "-")
		if !ok {
			msg := tgbotapi.NewMessage(chatID, "❌ Время задается как 09:00-14:00, попробуйте еще раз:")
			h.client.Bot.Send(msg)
			return
		}

		name := strings.TrimPrefix(state, "shift_time:")
		h.userStates[chatID] = "shift_overtime:" + name + "|" + strings.TrimSpace(start) + "|" + strings.TrimSpace(end)

		msg := tgbotapi.NewMessage(chatID, `Шаг 3 из 3:
✏️ Сверхурочная смена? Отправьте тип или "-":
normal, holiday, weekend, night`)
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "shift_overtime:"):
		delete(h.userStates, chatID)

		parts := strings.SplitN(strings.TrimPrefix(state, "shift_overtime:"), "|", 3)
		if len(parts) != 3 {
			msg := tgbotapi.NewMessage(chatID, "❌ Диалог сбился, начните заново: /addshift")
			h.client.Bot.Send(msg)
			return
		}

		form := models.ShiftTemplateForm{
			Name:      parts[0],
			StartTime: parts[1],
			EndTime:   parts[2],
		}
		if text != "-" {
			overtimeType := strings.ToLower(text)
			form.IsOvertime = true
			form.OvertimeType = &overtimeType
		}

		created, err := h.shiftTemplateService.Create(form)
		if err != nil {
			msg := tgbotapi.NewMessage(chatID, "❌ Ошибка создания шаблона: "+err.Error())
			h.client.Bot.Send(msg)
			return
		}

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"🎉 Шаблон смены создан! ID: %d\n%s (%s - %s)",
			created.ID, created.Name, created.StartTime, created.EndTime))
		h.client.Bot.Send(msg)
	}
}

// deleteShiftTemplate удаляет шаблон. Сервер отвечает ошибкой, если
// шаблон используется назначениями.
func (h *Handler) deleteShiftTemplate(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите идентификатор: /delshift 2 (смотрите /shifts)")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.shiftTemplateService.Delete(uint(id)); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка удаления шаблона: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Шаблон смены удален.")
	h.client.Bot.Send(msg)
}
