package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var weekdayLabels = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// showDashboard показывает сводку по заказам и столикам
func (h *Handler) showDashboard(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	stats, err := h.dashboardService.Load()
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки сводки: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`📊 Сводка

🧾 Заказы (всего %d):
✅ Завершено: %d
🚚 Готово: %d
🍳 Готовится: %d
⏳ В очереди: %d
❌ Отменено: %d

🍽 Столики: 🟢 %d свободно, 🔴 %d занято
`,
		stats.TotalOrders, stats.CompletedOrders, stats.ReadyOrders,
		stats.ProcessingOrders, stats.PendingOrders, stats.CanceledOrders,
		stats.FreeTables, stats.OccupiedTables))

	if len(stats.RecentOrders) > 0 {
		sb.WriteString("\n🕓 Последние заказы:\n")
		for _, order := range stats.RecentOrders {
			sb.WriteString(fmt.Sprintf("#%d - %s, %s (%s)\n",
				order.ID, order.OrderStatus, order.TotalPrice, order.OrderDateTime))
		}
	}

	sb.WriteString("\n💵 Выручка за неделю (завершенные заказы):\n")
	for i, label := range weekdayLabels {
		sb.WriteString(fmt.Sprintf("%s: %.2f\n", label, stats.WeeklySales[i]))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}
