package confirm_completion

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Response - завершённая бронь и выпущенный счёт
type Response struct {
	Booking handlers.BookingView `json:"booking"`
	Invoice handlers.InvoiceView `json:"invoice"`
}
