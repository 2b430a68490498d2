package confirm_completion

import "github.com/handyhub-ie/HandyHub-BookingService/internal/domain"

// In - подтверждение выполнения работ заказчиком
type In struct {
	BookingID  int64
	CustomerID int64
}

// Out - завершённая бронь и выпущенный инвойс
type Out struct {
	Booking *domain.Booking
	Invoice *domain.Invoice
}
