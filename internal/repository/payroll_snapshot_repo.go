package repository

import (
	"encoding/json"
	"errors"

	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PayrollSnapshotRepository - кэш текущего расчета зарплаты под одним
// ключом. Семантика как у localStorage: целиком перезаписать при успешном
// пересчете, прочитать один раз при старте. Никакого слияния.
type PayrollSnapshotRepository interface {
	Save(startDate, endDate string, rows []models.PayrollRow) error
	Load() (startDate, endDate string, rows []models.PayrollRow, err error)
}

type GormPayrollSnapshotRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormPayrollSnapshotRepository(db *gorm.DB) (*GormPayrollSnapshotRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.PayrollSnapshot{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate payroll_snapshots table")
		return nil, err
	}

	logger.Info("Payroll snapshot repository initialized")

	return &GormPayrollSnapshotRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Save перезаписывает кэш целиком
func (r *GormPayrollSnapshotRepository) Save(startDate, endDate string, rows []models.PayrollRow) error {
	encoded, err := json.Marshal(rows)
	if err != nil {
		r.logger.WithError(err).Error("Failed to encode payroll rows")
		return err
	}

	snapshot := models.PayrollSnapshot{
		Key:       models.PayrollSnapshotKey,
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      string(encoded),
	}

	result := r.db.Save(&snapshot)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save payroll snapshot")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"start_date": startDate,
		"end_date":   endDate,
		"rows":       len(rows),
	}).Info("Payroll snapshot saved")

	return nil
}

// Load читает кэш. Если кэша еще нет, возвращает пустой набор строк без
// ошибки.
func (r *GormPayrollSnapshotRepository) Load() (string, string, []models.PayrollRow, error) {
	var snapshot models.PayrollSnapshot
	result := r.db.First(&snapshot, "key = ?", models.PayrollSnapshotKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", "", nil, nil
		}
		r.logger.WithError(result.Error).Error("Failed to load payroll snapshot")
		return "", "", nil, result.Error
	}

	var rows []models.PayrollRow
	if err := json.Unmarshal([]byte(snapshot.Rows), &rows); err != nil {
		r.logger.WithError(err).Error("Failed to decode cached payroll rows")
		return "", "", nil, err
	}

	return snapshot.StartDate, snapshot.EndDate, rows, nil
}
