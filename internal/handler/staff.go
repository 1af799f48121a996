package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showStaff показывает страницу списка сотрудников. Аргументы: поисковый
// запрос и номер страницы, оба необязательные.
//
//	/staff - первая страница
//	/staff повар - поиск по имени, почте или роли
//	/staff повар 2 - вторая страница результатов
func (h *Handler) showStaff(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if err := h.staffService.Refresh(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки сотрудников: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	query := ""
	page := 1
	fields := strings.Fields(args)
	if len(fields) > 0 {
		// Последнее поле может быть номером страницы
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil && len(fields) > 1 {
			page = n
			fields = fields[:len(fields)-1]
		} else if err == nil {
			page = n
			fields = nil
		}
		query = strings.Join(fields, " ")
	}

	members, totalPages := h.staffService.Search(query, page)
	if len(members) == 0 {
		msg := tgbotapi.NewMessage(chatID, "👥 Сотрудники не найдены.")
		h.client.Bot.Send(msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Сотрудники (стр. %d из %d):\n\n", page, totalPages))
	for _, member := range members {
		sb.WriteString(fmt.Sprintf("ID %d: %s\n📧 %s\n💼 %s, оклад %s\n\n",
			member.ID, member.Name, member.Email, member.Role, member.TotalSalary))
	}
	if totalPages > page {
		if query != "" {
			sb.WriteString(fmt.Sprintf("Следующая страница: /staff %s %d", query, page+1))
		} else {
			sb.WriteString(fmt.Sprintf("Следующая страница: /staff %d", page+1))
		}
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}

// startStaffCreation начинает пошаговое добавление сотрудника
func (h *Handler) startStaffCreation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	h.userStates[chatID] = "staff_name"

	text := `👤 Добавление сотрудника

Шаг 1 из 4:
✏️ Отправьте имя сотрудника:`

	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}

// startStaffUpdate начинает изменение сотрудника: все поля одним сообщением
func (h *Handler) startStaffUpdate(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите идентификатор: /editstaff 3 (смотрите /staff)")
		h.client.Bot.Send(msg)
		return
	}

	member := h.staffService.ByID(uint(id))
	if member == nil {
		if err := h.staffService.Refresh(); err == nil {
			member = h.staffService.ByID(uint(id))
		}
	}
	if member == nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Сотрудник не найден.")
		h.client.Bot.Send(msg)
		return
	}

	h.userStates[chatID] = "staff_update:" + strconv.FormatUint(id, 10)

	text := fmt.Sprintf(`✏️ Изменение сотрудника %s

Отправьте новые данные в формате:
Имя | email | роль | оклад

Сейчас: %s | %s | %s | %s`,
		member.Name, member.Name, member.Email, member.Role, member.TotalSalary)

	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}

// handleStaffState обрабатывает шаги диалогов добавления и изменения
func (h *Handler) handleStaffState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch {
	case state == "staff_name":
		h.userStates[chatID] = "staff_email:" + text

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"Шаг 2 из 4:\n✅ Имя: %s\n✏️ Теперь отправьте email:", text))
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "staff_email:"):
		name := strings.TrimPrefix(state, "staff_email:")
		h.userStates[chatID] = "staff_role:" + name + "|" + text

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"Шаг 3 из 4:\n✅ Email: %s\n✏️ Теперь отправьте роль (официант, повар, кассир...):", text))
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "staff_role:"):
		h.userStates[chatID] = "staff_salary:" + strings.TrimPrefix(state, "staff_role:") + "|" + text

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"Шаг 4 из 4:\n✅ Роль: %s\n✏️ Теперь отправьте месячный оклад:", text))
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "staff_salary:"):
		delete(h.userStates, chatID)

		parts := strings.SplitN(strings.TrimPrefix(state, "staff_salary:"), "|", 3)
		if len(parts) != 3 {
			msg := tgbotapi.NewMessage(chatID, "❌ Диалог сбился, начните заново: /addstaff")
			h.client.Bot.Send(msg)
			return
		}

		form := models.StaffForm{
			Name:        parts[0],
			Email:       parts[1],
			Role:        parts[2],
			TotalSalary: text,
		}

		created, err := h.staffService.Create(form)
		if err != nil {
			msg := tgbotapi.NewMessage(chatID, "❌ Ошибка добавления сотрудника: "+err.Error())
			h.client.Bot.Send(msg)
			return
		}

		// Временный пароль показывается один раз и нигде не хранится
		responseText := fmt.Sprintf(`🎉 Сотрудник добавлен! ID: %d

🔑 Временный пароль: %s

Передайте пароль сотруднику - повторно посмотреть его нельзя.`,
			created.ID, created.TempPassword)

		msg := tgbotapi.NewMessage(chatID, responseText)
		h.client.Bot.Send(msg)

	case strings.HasPrefix(state, "staff_update:"):
		delete(h.userStates, chatID)

		id, err := strconv.ParseUint(strings.TrimPrefix(state, "staff_update:"), 10, 32)
		if err != nil {
			return
		}

		parts := strings.Split(text, "|")
		if len(parts) != 4 {
			msg := tgbotapi.NewMessage(chatID, "❌ Неверный формат. Ожидается: Имя | email | роль | оклад")
			h.client.Bot.Send(msg)
			return
		}

		form := models.StaffForm{
			Name:        strings.TrimSpace(parts[0]),
			Email:       strings.TrimSpace(parts[1]),
			Role:        strings.TrimSpace(parts[2]),
			TotalSalary: strings.TrimSpace(parts[3]),
		}

		if err := h.staffService.Update(uint(id), form); err != nil {
			msg := tgbotapi.NewMessage(chatID, "❌ Ошибка изменения сотрудника: "+err.Error())
			h.client.Bot.Send(msg)
			return
		}

		msg := tgbotapi.NewMessage(chatID, "✅ Сотрудник обновлен!")
		h.client.Bot.Send(msg)
	}
}
