package handler

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// messageDecoder - источник расшифрованных QR-кодов для экрана
// сканирования. Вместо камеры коды приходят текстом в чат.
type messageDecoder struct {
	mu       sync.Mutex
	onDecode func(text string)
}

func newMessageDecoder() *messageDecoder {
	return &messageDecoder{}
}

func (d *messageDecoder) Start(onDecode func(text string)) error {
	d.mu.Lock()
	d.onDecode = onDecode
	d.mu.Unlock()
	return nil
}

func (d *messageDecoder) Stop() error {
	d.mu.Lock()
	d.onDecode = nil
	d.mu.Unlock()
	return nil
}

// Feed передает текст сообщения как расшифрованный код
func (d *messageDecoder) Feed(text string) {
	d.mu.Lock()
	onDecode := d.onDecode
	d.mu.Unlock()

	if onDecode != nil {
		onDecode(strings.TrimSpace(text))
	}
}

// setScanMode переключает режим сканирования: /scanmode in | /scanmode out
func (h *Handler) setScanMode(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	switch strings.TrimSpace(args) {
	case "in":
		h.scanMode = models.ModeClockIn
	case "out":
		h.scanMode = models.ModeClockOut
	default:
		msg := tgbotapi.NewMessage(chatID, "❌ Укажите режим: /scanmode in (приход) или /scanmode out (уход)")
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Режим сканирования: "+h.scanMode)
	h.client.Bot.Send(msg)
}

// setTolerance меняет допуск опоздания: /tolerance 15
func (h *Handler) setTolerance(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "" {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⏰ Текущий допуск: %d мин. Изменить: /tolerance 15", h.attendanceService.Tolerance()))
		h.client.Bot.Send(msg)
		return
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Допуск должен быть числом минут.")
		h.client.Bot.Send(msg)
		return
	}

	if err := h.attendanceService.SetTolerance(minutes); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Допуск опоздания: %d мин", minutes))
	h.client.Bot.Send(msg)
}

// showTodayShifts показывает назначения на сегодня и кнопки выбора смены
// для сканирования
func (h *Handler) showTodayShifts(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.ensureCalendarLoaded(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка загрузки календаря: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	options := h.attendanceService.TodayAssignments()
	if len(options) == 0 {
		msg := tgbotapi.NewMessage(chatID, "📡 На сегодня назначений нет.")
		h.client.Bot.Send(msg)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, option := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Label, fmt.Sprintf("scanshift_%d", option.StaffShiftID)),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "📡 Выберите смену для сканирования:")
	msg.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	h.client.Bot.Send(msg)
}

func (h *Handler) handleScanShiftCallback(chatID int64, data string) {
	id, err := strconv.ParseUint(strings.TrimPrefix(data, "scanshift_"), 10, 32)
	if err != nil {
		return
	}

	h.scanShiftID = uint(id)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Смена выбрана (назначение %d). Начать прием кодов: /scanstart", id))
	h.client.Bot.Send(msg)
}

// startScanning включает прием QR-кодов: каждое обычное сообщение в чате
// считается расшифрованным кодом сотрудника
func (h *Handler) startScanning(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if h.scanShiftID == 0 {
		msg := tgbotapi.NewMessage(chatID, "❌ Сначала выберите смену: /shiftstoday")
		h.client.Bot.Send(msg)
		return
	}
	if h.scanMode == "" {
		h.scanMode = models.ModeClockIn
	}

	h.scanChatID = chatID
	if err := h.scanController.Start(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Не удалось запустить сканирование: "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	logrus.WithFields(logrus.Fields{
		"staff_shift_id": h.scanShiftID,
		"mode":           h.scanMode,
	}).Info("Attendance scanning started")

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"📡 Сканирование запущено (режим %s, допуск %d мин).\nОтправляйте коды сотрудников сообщениями. Остановить: /scanstop",
		h.scanMode, h.attendanceService.Tolerance()))
	h.client.Bot.Send(msg)
}

// stopScanning выключает прием QR-кодов
func (h *Handler) stopScanning(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := h.scanController.Stop(); err != nil {
		logrus.WithError(err).Warn("Failed to stop scan controller")
	}

	logrus.Info("Attendance scanning stopped")

	msg := tgbotapi.NewMessage(chatID, "📡 Сканирование остановлено.")
	h.client.Bot.Send(msg)
}

// handleDecodedScan вызывается контроллером на каждый принятый код,
// не чаще защитной паузы
func (h *Handler) handleDecodedScan(text string) {
	result, err := h.attendanceService.SubmitScan(text, h.scanShiftID, h.scanMode)
	if err != nil {
		msg := tgbotapi.NewMessage(h.scanChatID, "❌ "+err.Error())
		h.client.Bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(h.scanChatID, "✅ "+result)
	h.client.Bot.Send(msg)
}
