package get_invoice

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type InvoiceService interface {
	GetByBooking(ctx context.Context, bookingID, actorID int64) (*domain.Invoice, error)
}
