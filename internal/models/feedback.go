package models

import "strings"

// Feedback - отзыв посетителя, только чтение
type Feedback struct {
	ID              uint   `json:"id"`
	CustomerName    string `json:"customer_name"`
	FeedbackMessage string `json:"feedback_message"`
	CreatedAt       string `json:"created_at"`
}

// Matches проверяет отзыв по поисковому запросу (имя или текст) и по
// фильтру даты (префикс created_at). Пустые фильтры пропускают все.
func (f *Feedback) Matches(query, date string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" &&
		!strings.Contains(strings.ToLower(f.CustomerName), query) &&
		!strings.Contains(strings.ToLower(f.FeedbackMessage), query) {
		return false
	}
	if date != "" && !strings.HasPrefix(f.CreatedAt, date) {
		return false
	}
	return true
}
