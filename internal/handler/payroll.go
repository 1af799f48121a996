package handler

import (
	"fmt"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showPayroll показывает активную вкладку экрана зарплаты
func (h *Handler) showPayroll(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	report := h.payrollService.Report()
	startDate, endDate := h.payrollService.Period()
	sortState := h.payrollService.Sort()

	var sb strings.Builder

	switch report.Kind {
	case service.TabCurrent:
		sb.WriteString(fmt.Sprintf("💰 Текущий расчет: %s - %s\n", startDate, endDate))
		sb.WriteString(fmt.Sprintf("Сортировка: %s (%s)\n\n", sortState.Field, sortState.Direction))

		if len(report.Current) == 0 {
			sb.WriteString("Расчета еще нет. Задайте период командой /period и запустите /calc.")
			break
		}

		for _, row := range report.Current {
			sb.WriteString(fmt.Sprintf("👤 %s - дней: %d\n", row.Staff, row.AssignedDays))
			sb.WriteString(fmt.Sprintf("   Начислено: %s (обычные %s + сверхурочные %s)\n",
				row.TotalEarned, row.NormalEarned, row.OvertimeEarned))
			sb.WriteString(fmt.Sprintf("   Налог: %s, чаевые: %s, к выплате: %s\n\n",
				row.Tax, row.Tips, row.NetSalaryWithTips))
		}

		if summary := h.payrollService.Summary(); summary != nil {
			sb.WriteString(fmt.Sprintf(`📊 Сводка:
Сотрудников: %d
Начислено всего: %.2f
Налогов: %.2f
Чаевых: %.2f
К выплате: %.2f
Средняя зарплата: %.2f
`,
				summary.TotalStaff, summary.TotalGrossSalary, summary.TotalTax,
				summary.TotalTips, summary.TotalNetSalary, summary.AverageSalary))
		}

	case service.TabHistory:
		sb.WriteString("💰 Журнал расчетов\n")
		sb.WriteString(fmt.Sprintf("Сортировка: %s (%s)\n\n", sortState.Field, sortState.Direction))

		if len(report.History) == 0 {
			sb.WriteString("Журнал пуст.")
			break
		}

		for _, row := range report.History {
			sb.WriteString(fmt.Sprintf("#%d 👤 %s (%s - %s)\n", row.ID, row.StaffName, row.StartDate, row.EndDate))
			sb.WriteString(fmt.Sprintf("   Дней: %d, начислено: %s, к выплате: %s\n\n",
				row.AssignedDays, row.TotalEarned, row.NetSalaryWithTips))
		}
	}

	sb.WriteString("\nВкладки: /tab current | /tab history\nВыгрузка: /export csv|xlsx|html")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	h.client.Bot.Send(msg)
}

// setPayrollPeriod задает период расчета: /period 2026-08-01 2026-08-31
func (h *Handler) setPayrollPeriod(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 2 {
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите обе даты: /period 2026-08-01 2026-08-31")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.payrollService.SetPeriod(fields[0], fields[1]); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Период расчета: %s - %s\nЗапустите расчет: /calc", fields[0], fields[1]))
	h.client.Bot.Send(msg)
}

// calculatePayroll запускает расчет зарплаты за выбранный период
func (h *Handler) calculatePayroll(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	waitMsg := tgbotapi.NewMessage(chatID, "⏳ Считаю зарплату...")
	h.client.Bot.Send(waitMsg)

	count, err := h.payrollService.Calculate()
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка расчета: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Расчет готов, строк: %d. Смотрите /payroll", count))
	h.client.Bot.Send(msg)
}

// switchPayrollTab переключает вкладку: /tab current | /tab history
func (h *Handler) switchPayrollTab(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if err := h.payrollService.SetTab(strings.TrimSpace(args)); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	h.showPayroll(message)
}

// sortPayroll обрабатывает клик по колонке: /sortby total_earned
func (h *Handler) sortPayroll(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	field := strings.TrimSpace(args)
	if field == "" {
		text := `Поля сортировки:
staff, assigned_days, daily_salary, normal_earned, overtime_earned,
total_earned, total_salary, tax, tips, net_salary_without_tips,
net_salary_with_tips

Повторный /sortby по тому же полю меняет направление.`
		msg := tgbotapi.NewMessage(chatID, text)
		h.client.Bot.Send(msg)
		return
	}

	h.payrollService.SortBy(field)
	h.showPayroll(message)
}

// exportPayroll выгружает активную вкладку файлом: /export csv|xlsx|html
func (h *Handler) exportPayroll(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	report := h.payrollService.Report()
	startDate, endDate := h.payrollService.Period()

	var (
		payload []byte
		name    string
		err     error
	)

	switch strings.TrimSpace(args) {
	case "csv":
		var content string
		content, err = service.ExportCSV(report)
		payload = []byte(content)
		name = service.ExportFileName(report, startDate, endDate, "csv")

	case "xlsx":
		payload, err = service.ExportWorkbook(report, startDate, endDate)
		name = service.ExportFileName(report, startDate, endDate, "xlsx")

	case "html":
		var content string
		content, err = service.ExportPrintable(report, startDate, endDate, h.payrollService.Summary())
		payload = []byte(content)
		name = service.ExportFileName(report, startDate, endDate, "html")

	default:
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите формат: /export csv, /export xlsx или /export html")
		h.client.Bot.Send(msg)
		return
	}

	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка выгрузки: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	document := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  name,
		Bytes: payload,
	})
	h.client.Bot.Send(document)
}
