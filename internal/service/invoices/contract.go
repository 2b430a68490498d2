package invoices

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Repository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error)
	GetByProviderID(ctx context.Context, providerID int64) ([]*domain.Invoice, error)
}
