package confirm_completion

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

// TxManager управляет транзакциями. Завершение брони и выпуск инвойса
// идут в одной транзакции: инвойс без завершения или завершение без
// инвойса невозможны
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Complete(ctx context.Context, id int64, price float64) (time.Time, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
}

type UserClient interface {
	GetProvider(ctx context.Context, providerID int64) (*userdirectory.User, error)
}
