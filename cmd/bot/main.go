package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/config"
	"github.com/naodalemu/SSRS-Admin/internal/handler"
	"github.com/naodalemu/SSRS-Admin/internal/models"
	"github.com/naodalemu/SSRS-Admin/internal/repository"
	"github.com/naodalemu/SSRS-Admin/internal/service"
	"github.com/naodalemu/SSRS-Admin/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite ограничения
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	appStateRepo, err := repository.NewGormAppStateRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create app state repository")
	}

	snapshotRepo, err := repository.NewGormPayrollSnapshotRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create payroll snapshot repository")
	}

	// Клиент REST API ресторана
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APIAuthToken)

	// Собираем сервисы экранов
	calendarService := service.NewCalendarService(apiClient)
	scheduleService := service.NewScheduleService(apiClient, calendarService)
	attendanceService := service.NewAttendanceService(apiClient, calendarService, cfg.DefaultToleranceMinutes)
	payrollService := service.NewPayrollService(apiClient, snapshotRepo)
	staffService := service.NewStaffService(apiClient)
	shiftTemplateService := service.NewShiftTemplateService(apiClient)
	tableService := service.NewTableService(apiClient)
	dashboardService := service.NewDashboardService(apiClient)
	feedbackService := service.NewFeedbackService(apiClient)

	// Восстанавливаем сохраненное состояние интерфейса
	if mode, err := appStateRepo.Get(models.StateKeyCalendarViewMode); err == nil && mode != "" {
		calendarService.SetMode(mode)
		logrus.WithField("mode", mode).Info("Calendar view mode restored")
	}

	// Кэш последнего расчета зарплаты и журнал
	payrollService.Init()

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		calendarService,
		scheduleService,
		attendanceService,
		payrollService,
		staffService,
		shiftTemplateService,
		tableService,
		dashboardService,
		feedbackService,
		appStateRepo,
		cfg,
	)

	// Настраиваем канал обновлений
	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем обработку сообщений
	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	// Закрываем соединение с БД
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
