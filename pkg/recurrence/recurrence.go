package recurrence

import (
	"strings"

	"github.com/naodalemu/SSRS-Admin/pkg/dates"
)

// Типы повторения назначений
const (
	TypeDaily  = "daily"
	TypeWeekly = "weekly"
)

// Expand разворачивает правило повторения в упорядоченный список календарных
// дат YYYY-MM-DD.
//
// Без повторения возвращается ровно одна дата - startDate (даже пустая,
// валидность проверяет вызывающая сторона). Если диапазон перевернут или
// какая-то из дат не разбирается, функция деградирует до [startDate] вместо
// ошибки - так ведет себя форма назначения смен.
func Expand(startDate, endDate string, recurring bool, recurrenceType string, weekdays map[string]bool) []string {
	if !recurring {
		return []string{startDate}
	}

	start, errStart := dates.Parse(startDate)
	end, errEnd := dates.Parse(endDate)
	if errStart != nil || errEnd != nil || start.After(end) {
		return []string{startDate}
	}

	selected := normalizeWeekdays(weekdays)

	result := []string{}
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		switch recurrenceType {
		case TypeDaily:
			result = append(result, dates.Format(current))
		case TypeWeekly:
			if selected[dates.WeekdayName(current)] {
				result = append(result, dates.Format(current))
			}
		}
	}

	return result
}

// normalizeWeekdays приводит ключи выбранных дней недели к нижнему регистру
func normalizeWeekdays(weekdays map[string]bool) map[string]bool {
	normalized := make(map[string]bool, len(weekdays))
	for day, enabled := range weekdays {
		normalized[strings.ToLower(day)] = enabled
	}
	return normalized
}
