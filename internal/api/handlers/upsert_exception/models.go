package upsert_exception

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - исключение на дату. Для available=false времена не требуются
type Request struct {
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Available bool    `json:"available"`
}

// Response - сохранённое исключение
type Response struct {
	Exception handlers.ExceptionView `json:"exception"`
}
