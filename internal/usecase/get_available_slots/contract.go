package get_available_slots

import (
	"context"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// TimeProvider отдаёт текущее время. Нужен для тестируемости отсечки прошедших слотов.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider - реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

type AvailabilityRepository interface {
	GetWindowByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek string) (*domain.AvailabilityWindow, error)
	GetExceptionByProviderAndDate(ctx context.Context, providerID int64, date time.Time) (*domain.AvailabilityException, error)
}

type BookingRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}

type UserClient interface {
	GetProvider(ctx context.Context, providerID int64) (*userdirectory.User, error)
}
