package dates

import (
	"time"
)

// ISO - формат календарной даты, используемый во всем приложении и в API
const ISO = "2006-01-02"

// Format форматирует время как календарную дату YYYY-MM-DD
func Format(t time.Time) string {
	return t.Format(ISO)
}

// Parse разбирает календарную дату YYYY-MM-DD
func Parse(s string) (time.Time, error) {
	return time.Parse(ISO, s)
}

// DayStart обнуляет компонент времени, оставляя только календарный день
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что обе даты приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AfterDay проверяет, что дата a строго позже даты b по календарным дням,
// компонент времени не учитывается
func AfterDay(a, b time.Time) bool {
	return DayStart(a).After(DayStart(b))
}

// WeekdayName возвращает английское название дня недели в нижнем регистре
// ("monday" ... "sunday")
func WeekdayName(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// WeekStart возвращает понедельник недели, в которую попадает дата
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// MonthBounds возвращает первый и последний день месяца, в который попадает дата
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}
