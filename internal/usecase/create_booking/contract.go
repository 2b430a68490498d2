package create_booking

import (
	"context"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// TxManager управляет транзакциями. Создание брони идёт в serializable,
// чтобы конкурирующие заявки на один слот не прошли обе.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}

type AvailabilityRepository interface {
	GetWindowByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek string) (*domain.AvailabilityWindow, error)
	GetExceptionByProviderAndDate(ctx context.Context, providerID int64, date time.Time) (*domain.AvailabilityException, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
	GetProvider(ctx context.Context, providerID int64) (*userdirectory.User, error)
}

type PushClient interface {
	Send(ctx context.Context, notification pushgateway.Notification) error
}
