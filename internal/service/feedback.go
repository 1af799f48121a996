package service

import (
	"sort"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
)

// FeedbackService - экран отзывов, только чтение
type FeedbackService struct {
	api    *api.Client
	logger *logrus.Logger

	feedbacks []models.Feedback
}

func NewFeedbackService(apiClient *api.Client) *FeedbackService {
	return &FeedbackService{
		api:    apiClient,
		logger: logrus.New(),
	}
}

// Refresh перечитывает отзывы
func (s *FeedbackService) Refresh() error {
	feedbacks, err := s.api.GetFeedbacks()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch feedbacks")
		return err
	}
	s.feedbacks = feedbacks
	return nil
}

// Search возвращает отзывы, подходящие под запрос и фильтр даты, свежие
// первыми
func (s *FeedbackService) Search(query, date string) []models.Feedback {
	var matched []models.Feedback
	for i := range s.feedbacks {
		if s.feedbacks[i].Matches(query, date) {
			matched = append(matched, s.feedbacks[i])
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})
	return matched
}
