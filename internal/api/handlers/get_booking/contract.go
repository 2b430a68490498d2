package get_booking

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
	GetByID(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error)
}
