package handler

import (
	"github.com/naodalemu/SSRS-Admin/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	// Открытый экран переживает перезапуск, как выбранный пункт меню
	switch command {
	case "calendar", "staff", "shifts", "tables", "payroll", "dashboard", "feedback":
		if err := h.appState.Set(models.StateKeySelectedMenu, command); err != nil {
			logrus.WithError(err).Warn("Failed to persist selected screen")
		}
	}

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)

	// Календарь смен
	case "calendar":
		h.showCalendar(message)
	case "day":
		h.showDay(message, args)
	case "reload":
		h.reloadCalendar(message)

	// Назначение смен
	case "assign":
		h.assignShifts(message, args)

	// Сотрудники
	case "staff":
		h.showStaff(message, args)
	case "addstaff":
		h.startStaffCreation(message)
	case "editstaff":
		h.startStaffUpdate(message, args)

	// Шаблоны смен
	case "shifts":
		h.showShiftTemplates(message)
	case "addshift":
		h.startShiftCreation(message)
	case "delshift":
		h.deleteShiftTemplate(message, args)

	// Столики
	case "tables":
		h.showTables(message)
	case "addtable":
		h.addTable(message, args)
	case "addtables":
		h.addTableRange(message, args)
	case "deltable":
		h.deleteTable(message, args)
	case "deltables":
		h.deleteTableRange(message, args)
	case "deltablesall":
		h.deleteAllTables(message)

	// Зарплата
	case "payroll":
		h.showPayroll(message)
	case "period":
		h.setPayrollPeriod(message, args)
	case "calc":
		h.calculatePayroll(message)
	case "tab":
		h.switchPayrollTab(message, args)
	case "sortby":
		h.sortPayroll(message, args)
	case "export":
		h.exportPayroll(message, args)

	// Сканирование посещаемости
	case "scanmode":
		h.setScanMode(message, args)
	case "tolerance":
		h.setTolerance(message, args)
	case "shiftstoday":
		h.showTodayShifts(message)
	case "scanstart":
		h.startScanning(message)
	case "scanstop":
		h.stopScanning(message)

	// Главный экран и отзывы
	case "dashboard":
		h.showDashboard(message)
	case "feedback":
		h.showFeedback(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
	h.client.Bot.Send(msg)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	text := `📋 Доступные команды:

📅 Календарь смен:
/calendar - Показать календарь (месяц или неделя)
/day [дата] - Назначения и посещаемость за день
    Пример: /day 2026-08-31 (без даты - сегодня)
/reload - Перезагрузить данные календаря

➕ Назначение смен:
/assign staff=ID shift=ID date=ГГГГ-ММ-ДД - Назначить смену
    Повторение: repeat=daily end=ГГГГ-ММ-ДД
    или repeat=weekly days=mon,wed end=ГГГГ-ММ-ДД
    Свое время: time=09:00-14:00
    Сверхурочно: overtime=normal|holiday|weekend|night
    Ночная: night=1

👥 Сотрудники:
/staff [запрос] [страница] - Список сотрудников (поиск и страницы)
/addstaff - Добавить сотрудника (пошагово)
/editstaff [ID] - Изменить сотрудника

⏱ Шаблоны смен:
/shifts - Список шаблонов смен
/addshift - Создать шаблон смены (пошагово)
/delshift [ID] - Удалить шаблон смены

🍽 Столики:
/tables - Список столиков
/addtable [номер] - Добавить столик
/addtables [от] [до] - Добавить диапазон столиков
/deltable [номер] - Удалить столик
/deltables [от] [до] - Удалить диапазон столиков
/deltablesall - Удалить все столики

💰 Зарплата:
/payroll - Показать расчет (активная вкладка)
/period [начало] [конец] - Задать период расчета
/calc - Рассчитать зарплату за период
/tab [current|history] - Переключить вкладку
/sortby [поле] - Сортировка (повторный клик меняет направление)
/export [csv|xlsx|html] - Выгрузить отчет файлом

📡 Сканирование посещаемости:
/scanmode [in|out] - Режим: приход или уход
/tolerance [минуты] - Допуск опоздания
/shiftstoday - Назначения на сегодня (выбор смены)
/scanstart - Начать прием QR-кодов
/scanstop - Остановить прием

📊 Прочее:
/dashboard - Сводка по заказам и столикам
/feedback [запрос] [дата] - Отзывы посетителей

💡 Как пользоваться:
1. Загрузите календарь командой /calendar
2. Назначайте смены командой /assign
3. Отмечайте посещаемость через /scanstart
4. Считайте зарплату командами /period и /calc`

	if screen, err := h.appState.Get(models.StateKeySelectedMenu); err == nil && screen != "" {
		text += "\n\n🧭 Последний открытый экран: /" + screen
	}

	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}
