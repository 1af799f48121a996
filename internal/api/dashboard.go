package api

import "github.com/naodalemu/SSRS-Admin/internal/models"

// GetOrders возвращает все заказы для сводки на главном экране
func (c *Client) GetOrders() ([]models.Order, error) {
	var list models.OrderList
	if err := c.get("/api/orders", &list); err != nil {
		return nil, err
	}
	return list.Orders, nil
}

// GetFeedbacks возвращает отзывы посетителей
func (c *Client) GetFeedbacks() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := c.get("/api/feedbacks", &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
