package respond_booking

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - ответ исполнителя на заявку
type Request struct {
	Response string `json:"response"` // confirmed или declined
}

// Response - бронь после ответа
type Response struct {
	Booking handlers.BookingView `json:"booking"`
}
