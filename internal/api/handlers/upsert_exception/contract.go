package upsert_exception

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
	UpsertException(ctx context.Context, exception *domain.AvailabilityException) (*domain.AvailabilityException, error)
}
