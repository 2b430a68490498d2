package reminder

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

type BookingRepository interface {
	GetDueForReminder(ctx context.Context, from, to time.Time, marker string) ([]*domain.Booking, error)
	AddNotificationMarker(ctx context.Context, id int64, marker string) (bool, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID int64) (*userdirectory.User, error)
}

type PushClient interface {
	Send(ctx context.Context, notification pushgateway.Notification) error
}
