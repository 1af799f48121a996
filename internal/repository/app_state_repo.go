package repository

import (
	"errors"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppStateRepository - локальное состояние интерфейса. Заменяет
// localStorage браузерной версии: загружается при старте, каждое изменение
// сразу сохраняется.
type AppStateRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
	GetAll() (map[string]string, error)
}

type GormAppStateRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAppStateRepository(db *gorm.DB) (*GormAppStateRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.AppState{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate app_state table")
		return nil, err
	}

	logger.Info("App state repository initialized")

	return &GormAppStateRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get возвращает значение по ключу, пустую строку если ключа нет
func (r *GormAppStateRepository) Get(key string) (string, error) {
	var state models.AppState
	result := r.db.First(&state, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		r.logger.WithError(result.Error).WithField("key", key).Error("Failed to get app state")
		return "", result.Error
	}
	return state.Value, nil
}

// Set сохраняет значение по ключу, перезаписывая существующее
func (r *GormAppStateRepository) Set(key, value string) error {
	state := models.AppState{Key: key, Value: value}
	result := r.db.Save(&state)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("key", key).Error("Failed to save app state")
		return result.Error
	}
	return nil
}

// GetAll возвращает все сохраненное состояние для загрузки при старте
func (r *GormAppStateRepository) GetAll() (map[string]string, error) {
	var states []models.AppState
	result := r.db.Find(&states)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to load app state")
		return nil, result.Error
	}

	all := make(map[string]string, len(states))
	for _, state := range states {
		all[state.Key] = state.Value
	}
	return all, nil
}
