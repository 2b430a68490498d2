package create_booking

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - заявка на бронирование
type Request struct {
	ProviderID      int64  `json:"provider_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

// Response - созданная бронь
type Response struct {
	Booking handlers.BookingView `json:"booking"`
}
