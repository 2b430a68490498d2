package get_provider_earnings

import (
	"context"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/invoices"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type InvoiceService interface {
	GetProviderEarnings(ctx context.Context, providerID int64) (*invoices.Earnings, error)
}
