package resolve_dispute

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type DisputeService interface {
	AdminResolve(ctx context.Context, disputeID int64, decision, note string) (*domain.Dispute, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}
