package handler

import (
	"fmt"
	"strings"

	"github.com/naodalemu/SSRS-Admin/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showFeedback показывает отзывы посетителей, новые первыми. Аргументы:
// поисковый запрос и/или дата ГГГГ-ММ-ДД в любом порядке.
func (h *Handler) showFeedback(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if err := h.feedbackService.Refresh(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки отзывов: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	query := ""
	date := ""
	var rest []string
	for _, field := range strings.Fields(args) {
		if _, err := dates.Parse(field); err == nil && date == "" {
			date = field
			continue
		}
		rest = append(rest, field)
	}
	query = strings.Join(rest, " ")

	feedbacks := h.feedbackService.Search(query, date)
	if len(feedbacks) == 0 {
		msg := tgbotapi.NewMessage(chatID, "💬 Отзывов не найдено.")
		h.client.Bot.Send(msg)
		return
	}

	const limit = 10

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💬 Отзывы (%d):\n\n", len(feedbacks)))
	for i, feedback := range feedbacks {
		if i == limit {
			sb.WriteString(fmt.Sprintf("... и еще %d. Уточните поиск: /feedback [запрос] [дата]", len(feedbacks)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("👤 %s (%s):\n%s\n\n",
			feedback.CustomerName, feedback.CreatedAt, feedback.FeedbackMessage))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}
