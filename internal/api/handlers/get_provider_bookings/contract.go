package get_provider_bookings

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
	GetByProvider(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}
