package models

import "strings"

// StaffMember - сотрудник ресторана, приходит из REST API
type StaffMember struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	TotalSalary string `json:"total_salary"`
}

// MatchesQuery проверяет, подходит ли сотрудник под поисковый запрос
// (по имени, почте или роли, без учета регистра)
func (s *StaffMember) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Email), query) ||
		strings.Contains(strings.ToLower(s.Role), query)
}

// StaffForm - данные формы добавления/редактирования сотрудника
type StaffForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	TotalSalary string `json:"total_salary"`
}

// CreatedStaff - ответ сервера на создание сотрудника. Временный пароль
// показывается администратору один раз и больше нигде не хранится.
type CreatedStaff struct {
	ID           uint   `json:"id"`
	TempPassword string `json:"temp_password"`
}
