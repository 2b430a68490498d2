package update_availability

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type AvailabilityService interface {
	SetWeek(ctx context.Context, providerID int64, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error)
}
