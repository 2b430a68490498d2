package get_admin_disputes

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
	GetAdminQueue(ctx context.Context) ([]*domain.Dispute, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}
