package update_availability

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// WindowRequest - окно на день недели
type WindowRequest struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Request - полный набор окон недельного расписания
type Request struct {
	Windows []WindowRequest `json:"windows"`
}

// Response - сохранённое расписание
type Response struct {
	Windows []handlers.WindowView `json:"windows"`
}
