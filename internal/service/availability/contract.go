package availability

import (
	"context"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
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

// TxManager управляет транзакциями. Замена недельного расписания
// (delete-then-insert) должна быть атомарной
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository interface {
	GetWindowsByProvider(ctx context.Context, providerID int64) ([]*domain.AvailabilityWindow, error)
	ReplaceWindows(ctx context.Context, providerID int64, windows []*domain.AvailabilityWindow) error
	DeleteWindow(ctx context.Context, providerID int64, dayOfWeek string) error
	UpsertException(ctx context.Context, exception *domain.AvailabilityException) (*domain.AvailabilityException, error)
	GetExceptionsByProvider(ctx context.Context, providerID int64, from time.Time) ([]*domain.AvailabilityException, error)
}
