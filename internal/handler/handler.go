package handler

import (
	"strings"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/config"
	"github.com/naodalemu/SSRS-Admin/internal/repository"
	"github.com/naodalemu/SSRS-Admin/internal/scanner"
	"github.com/naodalemu/SSRS-Admin/internal/service"
	"github.com/naodalemu/SSRS-Admin/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client               *telegram.Client
	calendarService      *service.CalendarService
	scheduleService      *service.ScheduleService
	attendanceService    *service.AttendanceService
	payrollService       *service.PayrollService
	staffService         *service.StaffService
	shiftTemplateService *service.ShiftTemplateService
	tableService         *service.TableService
	dashboardService     *service.DashboardService
	feedbackService      *service.FeedbackService
	appState             repository.AppStateRepository
	userStates           map[int64]string
	config               *config.BotConfig

	// Экран сканирования: источник текста и защитная пауза
	scanDecoder    *messageDecoder
	scanController *scanner.Controller
	scanMode       string
	scanShiftID    uint
	scanChatID     int64

	// Токен, под который календарь рисовался в прошлый раз
	renderedToken int64
}

func NewHandler(
	client *telegram.Client,
	calendarService *service.CalendarService,
	scheduleService *service.ScheduleService,
	attendanceService *service.AttendanceService,
	payrollService *service.PayrollService,
	staffService *service.StaffService,
	shiftTemplateService *service.ShiftTemplateService,
	tableService *service.TableService,
	dashboardService *service.DashboardService,
	feedbackService *service.FeedbackService,
	appState repository.AppStateRepository,
	cfg *config.BotConfig,
) *Handler {
	h := &Handler{
		client:               client,
		calendarService:      calendarService,
		scheduleService:      scheduleService,
		attendanceService:    attendanceService,
		payrollService:       payrollService,
		staffService:         staffService,
		shiftTemplateService: shiftTemplateService,
		tableService:         tableService,
		dashboardService:     dashboardService,
		feedbackService:      feedbackService,
		appState:             appState,
		userStates:           make(map[int64]string),
		config:               cfg,
	}

	h.scanDecoder = newMessageDecoder()
	h.scanController = scanner.NewController(
		h.scanDecoder,
		time.Duration(cfg.ScanCooldownSeconds)*time.Second,
		h.handleDecodedScan,
	)

	return h
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		// Обработка callback query (для inline кнопок)
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

// isAuthorized проверяет, что сообщение пришло из админского чата.
// Бот обслуживает единственного администратора ресторана.
func (h *Handler) isAuthorized(chatID int64) bool {
	return h.config.BaseAdminChatID == 0 || chatID == h.config.BaseAdminChatID
}

// handleCallbackQuery обрабатывает inline кнопки
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	if !h.isAuthorized(chatID) {
		logrus.WithField("chat_id", chatID).Warn("Unauthorized callback")
		return
	}

	// Удаляем клавиатуру
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	switch {
	// Навигация по календарю
	case strings.HasPrefix(data, "cal_"):
		h.handleCalendarCallback(chatID, data)

	// Удаление назначения из ячейки дня
	case strings.HasPrefix(data, "delassign_"):
		h.handleDeleteAssignmentCallback(chatID, data)

	// Подтверждения посещаемости
	case strings.HasPrefix(data, "aa_"), strings.HasPrefix(data, "al_"), strings.HasPrefix(data, "ae_"):
		h.handleApprovalCallback(chatID, data)

	// Удаление всех столиков
	case data == "confirm_delete_tables" || data == "cancel_delete_tables":
		h.handleTablesCallback(chatID, data)

	// Выбор назначения для экрана сканирования
	case strings.HasPrefix(data, "scanshift_"):
		h.handleScanShiftCallback(chatID, data)
	}

	// Отвечаем на callback (убираем "часики" у кнопки)
	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Send(callbackConfig)
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	logrus.Infof("[%s] %s", message.From.UserName, message.Text)

	chatID := message.Chat.ID

	if !h.isAuthorized(chatID) {
		logrus.WithField("chat_id", chatID).Warn("Unauthorized access attempt")
		msg := tgbotapi.NewMessage(chatID, "❌ Доступ запрещен. Бот доступен только администратору ресторана.")
		h.client.Bot.Send(msg)
		return
	}

	// Проверяем, находится ли пользователь в многошаговом диалоге
	if state, exists := h.userStates[chatID]; exists && !message.IsCommand() {
		h.handleDialogState(message, state)
		return
	}

	// Обработка команд
	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	// В режиме сканирования обычные сообщения считаются расшифрованными
	// QR-кодами
	if h.scanController.Running() {
		h.scanDecoder.Feed(message.Text)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Используйте /help для списка команд.")
	h.client.Bot.Send(msg)
}

// handleDialogState направляет сообщение в активный многошаговый диалог
func (h *Handler) handleDialogState(message *tgbotapi.Message, state string) {
	switch {
	case strings.HasPrefix(state, "staff_"):
		h.handleStaffState(message, state)
	case strings.HasPrefix(state, "shift_"):
		h.handleShiftState(message, state)
	default:
		delete(h.userStates, message.Chat.ID)
	}
}
