package service

import (
	"fmt"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
)

// StaffPageSize - сотрудников на страницу списка
const StaffPageSize = 6

// StaffService - экран управления сотрудниками: список с поиском и
// постраничным выводом, добавление и редактирование
type StaffService struct {
	api    *api.Client
	logger *logrus.Logger

	members []models.StaffMember
}

func NewStaffService(apiClient *api.Client) *StaffService {
	return &StaffService{
		api:    apiClient,
		logger: logrus.New(),
	}
}

// Refresh перечитывает список сотрудников
func (s *StaffService) Refresh() error {
	members, err := s.api.GetStaff()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch staff")
		return err
	}
	s.members = members
	return nil
}

// Search фильтрует сотрудников по запросу (имя, почта или роль без учета
// регистра) и возвращает страницу вместе с общим числом страниц.
// Страницы нумеруются с единицы.
func (s *StaffService) Search(query string, page int) ([]models.StaffMember, int) {
	var filtered []models.StaffMember
	for i := range s.members {
		if s.members[i].MatchesQuery(query) {
			filtered = append(filtered, s.members[i])
		}
	}

	totalPages := (len(filtered) + StaffPageSize - 1) / StaffPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * StaffPageSize
	end := start + StaffPageSize
	if start >= len(filtered) {
		return nil, totalPages
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages
}

// ByID находит сотрудника в загруженном списке
func (s *StaffService) ByID(id uint) *models.StaffMember {
	for i := range s.members {
		if s.members[i].ID == id {
			return &s.members[i]
		}
	}
	return nil
}

// Create добавляет сотрудника. Роль приводится к нижнему регистру перед
// отправкой. Возвращенный временный пароль показывается один раз.
func (s *StaffService) Create(form models.StaffForm) (*models.CreatedStaff, error) {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" {
		return nil, fmt.Errorf("имя и почта обязательны")
	}
	form.Role = strings.ToLower(form.Role)

	created, err := s.api.CreateStaff(form)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create staff member")
		return nil, err
	}

	s.logger.WithField("staff_id", created.ID).Info("Staff member created")

	if err := s.Refresh(); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh staff after create")
	}
	return created, nil
}

// Update редактирует сотрудника
func (s *StaffService) Update(id uint, form models.StaffForm) error {
	form.Role = strings.ToLower(form.Role)

	if err := s.api.UpdateStaff(id, form); err != nil {
		s.logger.WithError(err).WithField("staff_id", id).Error("Failed to update staff member")
		return err
	}

	s.logger.WithField("staff_id", id).Info("Staff member updated")

	if err := s.Refresh(); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh staff after update")
	}
	return nil
}
