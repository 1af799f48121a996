package service

import (
	"fmt"
	"strings"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
)

// ShiftTemplateService - экран шаблонов смен
type ShiftTemplateService struct {
	api    *api.Client
	logger *logrus.Logger

	templates []models.ShiftTemplate
}

func NewShiftTemplateService(apiClient *api.Client) *ShiftTemplateService {
	return &ShiftTemplateService{
		api:    apiClient,
		logger: logrus.New(),
	}
}

// Refresh перечитывает шаблоны
func (s *ShiftTemplateService) Refresh() error {
	templates, err := s.api.GetShifts()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch shift templates")
		return err
	}
	s.templates = templates
	return nil
}

// Templates возвращает загруженные шаблоны
func (s *ShiftTemplateService) Templates() []models.ShiftTemplate {
	return s.templates
}

// Create создает шаблон. Тип сверхурочных обязателен для сверхурочной
// смены и не передается для обычной.
func (s *ShiftTemplateService) Create(form models.ShiftTemplateForm) (*models.ShiftTemplate, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, fmt.Errorf("название смены обязательно")
	}
	if form.StartTime == "" || form.EndTime == "" {
		return nil, fmt.Errorf("время начала и конца обязательно")
	}
	if form.IsOvertime && (form.OvertimeType == nil || *form.OvertimeType == "") {
		return nil, fmt.Errorf("для сверхурочной смены нужно выбрать тип")
	}
	if !form.IsOvertime {
		form.OvertimeType = nil
	}

	created, err := s.api.CreateShift(form)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create shift template")
		return nil, err
	}

	s.templates = append(s.templates, *created)
	s.logger.WithField("shift_id", created.ID).Info("Shift template created")
	return created, nil
}

// Delete удаляет шаблон. Сервер отказывает, если шаблон уже используется
// в назначениях - ошибка 1451 приходит с понятным сообщением из api.
func (s *ShiftTemplateService) Delete(id uint) error {
	if err := s.api.DeleteShift(id); err != nil {
		s.logger.WithError(err).WithField("shift_id", id).Error("Failed to delete shift template")
		return err
	}

	filtered := s.templates[:0]
	for _, template := range s.templates {
		if template.ID != id {
			filtered = append(filtered, template)
		}
	}
	s.templates = filtered

	s.logger.WithField("shift_id", id).Info("Shift template deleted")
	return nil
}
