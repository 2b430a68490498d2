package respond_booking

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
	Respond(ctx context.Context, bookingID, providerID int64, response string) (*domain.Booking, error)
}
