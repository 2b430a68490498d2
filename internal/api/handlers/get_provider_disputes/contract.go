package get_provider_disputes

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type DisputeService interface {
	GetByProvider(ctx context.Context, providerID int64, status *domain.DisputeStatus) ([]*domain.Dispute, error)
}
