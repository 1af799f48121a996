package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showTables показывает столики, отсортированные по номеру
func (h *Handler) showTables(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.tableService.Refresh(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки столиков: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	tables := h.tableService.Tables()
	if len(tables) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🍽 Столиков нет. Добавьте первый: /addtable 1")
		h.client.Bot.Send(msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🍽 Столики (%d):\n\n", len(tables)))
	for _, table := range tables {
		status := "🟢 свободен"
		if table.IsOccupied() {
			status = "🔴 занят"
		}
		sb.WriteString(fmt.Sprintf("№%d - %s\n", table.TableNumber, status))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}

// addTable добавляет один столик: /addtable 5 [базовая ссылка QR-меню]
func (h *Handler) addTable(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) == 0 {
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите номер: /addtable 5")
		h.client.Bot.Send(msg)
		return
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Номер столика должен быть числом.")
		h.client.Bot.Send(msg)
		return
	}

	baseLink := ""
	if len(fields) > 1 {
		baseLink = fields[1]
	}

	if err := h.tableService.Add(number, baseLink); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка добавления столика: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Столик №%d добавлен.", number))
	h.client.Bot.Send(msg)
}

// addTableRange добавляет диапазон столиков, границы включительно:
// /addtables 1 20 [базовая ссылка]
func (h *Handler) addTableRange(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	start, end, baseLink, err := parseTableRange(args)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error()+" Пример: /addtables 1 20")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.tableService.AddRange(start, end, baseLink); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка добавления столиков: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Столики №%d-№%d добавлены.", start, end))
	h.client.Bot.Send(msg)
}

// deleteTable удаляет один столик. Занятый столик не удаляется.
func (h *Handler) deleteTable(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	number, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите номер: /deltable 5")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.tableService.Delete(number); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка удаления столика: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Столик №%d удален.", number))
	h.client.Bot.Send(msg)
}

// deleteTableRange удаляет диапазон столиков: /deltables 5 10
func (h *Handler) deleteTableRange(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	start, end, _, err := parseTableRange(args)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error()+" Пример: /deltables 5 10")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.tableService.DeleteRange(start, end); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка удаления столиков: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Столики №%d-№%d удалены.", start, end))
	h.client.Bot.Send(msg)
}

// deleteAllTables запрашивает подтверждение перед удалением всех столиков
func (h *Handler) deleteAllTables(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	// Создаем inline клавиатуру для подтверждения
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да, удалить все", "confirm_delete_tables"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет, отменить", "cancel_delete_tables"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "⚠️ Вы уверены, что хотите удалить ВСЕ столики?\nЭто действие нельзя отменить.")
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

func (h *Handler) handleTablesCallback(chatID int64, data string) {
	if data == "cancel_delete_tables" {
		msg := tgbotapi.NewMessage(chatID, "❌ Удаление столиков отменено.")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.tableService.DeleteAll(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка удаления столиков: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Все столики удалены.")
	h.client.Bot.Send(msg)
}

func parseTableRange(args string) (start, end int, baseLink string, err error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return 0, 0, "", fmt.Errorf("укажите границы диапазона.")
	}

	start, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("границы диапазона должны быть числами.")
	}
	end, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("границы диапазона должны быть числами.")
	}
	if len(fields) > 2 {
		baseLink = fields[2]
	}
	return start, end, baseLink, nil
}
