package get_customer_bookings

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type BookingService interface {
	GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}
