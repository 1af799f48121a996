package service

import (
	"fmt"
	"sort"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
)

// TableService - экран столиков: сетка, добавление и удаление по одному,
// диапазонами и целиком
type TableService struct {
	api    *api.Client
	logger *logrus.Logger

	tables []models.Table
}

func NewTableService(apiClient *api.Client) *TableService {
	return &TableService{
		api:    apiClient,
		logger: logrus.New(),
	}
}

// Refresh перечитывает столики и сортирует их по номеру
func (s *TableService) Refresh() error {
	tables, err := s.api.GetTables()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch tables")
		return err
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].TableNumber < tables[j].TableNumber
	})
	s.tables = tables
	return nil
}

// Tables возвращает загруженные столики
func (s *TableService) Tables() []models.Table {
	return s.tables
}

// ByNumber находит столик по номеру
func (s *TableService) ByNumber(number int) *models.Table {
	for i := range s.tables {
		if s.tables[i].TableNumber == number {
			return &s.tables[i]
		}
	}
	return nil
}

// Add создает один столик со статусом "free"
func (s *TableService) Add(number int, baseLink string) error {
	if number < 1 {
		return fmt.Errorf("номер столика должен быть положительным")
	}

	err := s.api.CreateTable(models.TableCreateRequest{
		TableNumber: number,
		BaseLink:    baseLink,
		TableStatus: models.TableFree,
	})
	if err != nil {
		s.logger.WithError(err).WithField("table_number", number).Error("Failed to add table")
		return err
	}
	return s.Refresh()
}

// AddRange создает столики в диапазоне номеров включительно
func (s *TableService) AddRange(start, end int, baseLink string) error {
	if start < 1 || end < start {
		return fmt.Errorf("неверный диапазон номеров: %d-%d", start, end)
	}

	err := s.api.CreateTableRange(models.TableRangeRequest{
		StartTableNumber: start,
		EndTableNumber:   end,
		BaseLink:         baseLink,
		TableStatus:      models.TableFree,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to add table range")
		return err
	}
	return s.Refresh()
}

// Delete удаляет столик. Занятый столик удалить нельзя - это же
// ограничение стоит на кнопке в интерфейсе.
func (s *TableService) Delete(number int) error {
	if table := s.ByNumber(number); table != nil && table.IsOccupied() {
		return fmt.Errorf("столик %d занят и не может быть удален", number)
	}

	if err := s.api.DeleteTable(number); err != nil {
		s.logger.WithError(err).WithField("table_number", number).Error("Failed to delete table")
		return err
	}
	return s.Refresh()
}

// DeleteRange удаляет столики в диапазоне номеров включительно
func (s *TableService) DeleteRange(start, end int) error {
	if start < 1 || end < start {
		return fmt.Errorf("неверный диапазон номеров: %d-%d", start, end)
	}

	err := s.api.DeleteTableRange(models.TableBatchDeleteRequest{
		StartTableNumber: start,
		EndTableNumber:   end,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete table range")
		return err
	}
	return s.Refresh()
}

// DeleteAll удаляет все столики. Вызывается только после подтверждения.
func (s *TableService) DeleteAll() error {
	if err := s.api.DeleteAllTables(); err != nil {
		s.logger.WithError(err).Error("Failed to delete all tables")
		return err
	}
	return s.Refresh()
}
