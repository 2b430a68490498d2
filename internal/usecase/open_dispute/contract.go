package open_dispute

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

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Dispute, error)
}
