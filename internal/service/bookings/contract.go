package bookings

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
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error
	MarkAwaitingConfirmation(ctx context.Context, id int64, completionImage *string) error
	Cancel(ctx context.Context, id int64) error
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}

type PushClient interface {
	Send(ctx context.Context, notification pushgateway.Notification) error
}
