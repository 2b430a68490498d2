package respond_dispute

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
	ProviderRespond(ctx context.Context, disputeID, providerID int64, response string, note *string) (*domain.Dispute, error)
}
