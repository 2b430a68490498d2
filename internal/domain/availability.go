package domain

import (
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// AvailabilityWindow недельное рабочее окно исполнителя на один день недели.
// Уникально по паре (исполнитель, день недели); замена окна дня выполняется
// как удаление и вставка, без слияния.
type AvailabilityWindow struct {
	ID         int64
	ProviderID int64
	DayOfWeek  string // "Monday".."Sunday", как возвращает time.Weekday.String()
	StartTime  types.TimeString
	EndTime    types.TimeString
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvailabilityException переопределение недельного окна на конкретную дату.
// Уникально по паре (исполнитель, дата), записывается как upsert.
// Available=false закрывает всю дату независимо от недельного расписания.
type AvailabilityException struct {
	ID         int64
	ProviderID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Available  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WeekdayName возвращает имя дня недели для даты ("Monday".."Sunday")
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// IsValidWeekday проверяет, что строка является корректным именем дня недели
func IsValidWeekday(day string) bool {
	switch day {
	case time.Monday.String(), time.Tuesday.String(), time.Wednesday.String(),
		time.Thursday.String(), time.Friday.String(), time.Saturday.String(),
		time.Sunday.String():
		return true
	}
	return false
}
