package mark_awaiting_confirmation

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - отметка исполнителя о выполненной работе
type Request struct {
	CompletionImage *string `json:"completion_image,omitempty"`
}

// Response - бронь, ожидающая подтверждения заказчика
type Response struct {
	Booking handlers.BookingView `json:"booking"`
}
