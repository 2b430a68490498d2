package get_availability

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type AvailabilityService interface {
	GetByProvider(ctx context.Context, providerID int64) (*availability.Schedule, error)
}
