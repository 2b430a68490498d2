package mark_awaiting_confirmation

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type BookingService interface {
	MarkAwaitingConfirmation(ctx context.Context, bookingID, providerID int64, completionImage *string) (*domain.Booking, error)
}
