package disputes

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Dispute, error)
	GetByProviderID(ctx context.Context, providerID int64, status *domain.DisputeStatus) ([]*domain.Dispute, error)
	GetByStatus(ctx context.Context, status domain.DisputeStatus) ([]*domain.Dispute, error)
	SetProviderResponse(ctx context.Context, id int64, to domain.DisputeStatus, response *string) error
	SetAdminResolution(ctx context.Context, id int64, to domain.DisputeStatus, response *string) error
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}

type PushClient interface {
	Send(ctx context.Context, notification pushgateway.Notification) error
}
