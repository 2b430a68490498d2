package confirm_completion

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

// Usecase завершает бронь по подтверждению заказчика.
// Цена фиксируется по тарифу исполнителя на момент завершения,
// инвойс выпускается в той же транзакции со статусом paid
type Usecase struct {
	bookingRepo BookingRepository
	invoiceRepo InvoiceRepository
	userClient  UserClient
	txManager   TxManager
	logger      Logger
}

func New(
	bookingRepo BookingRepository,
	invoiceRepo InvoiceRepository,
	userClient UserClient,
	txManager TxManager,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo: bookingRepo,
		invoiceRepo: invoiceRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

func (u *Usecase) Handle(ctx context.Context, in In) (*Out, error) {
	if in.BookingID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBookingID, in.BookingID)
	}
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCustomerID, in.CustomerID)
	}

	booking, err := u.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, in.BookingID)
		}
		return nil, fmt.Errorf("%w: Handle - get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != in.CustomerID {
		return nil, fmt.Errorf("%w: bookingID=%d, customerID=%d", ErrForbidden, in.BookingID, in.CustomerID)
	}

	if booking.Status != domain.StatusAwaitingConfirmation {
		return nil, fmt.Errorf("%w: current status %s", ErrInvalidStatus, booking.Status)
	}

	provider, err := u.userClient.GetProvider(ctx, booking.ProviderID)
	if err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) || errors.Is(err, userdirectory.ErrNotAProvider) {
			return nil, fmt.Errorf("%w: Handle - provider %d missing from directory", ErrInternal, booking.ProviderID)
		}
		return nil, fmt.Errorf("%w: Handle - get provider: %v", ErrInternal, err)
	}

	if provider.HourlyRate == nil || *provider.HourlyRate <= 0 {
		return nil, fmt.Errorf("%w: providerID=%d", ErrProviderRateMissing, booking.ProviderID)
	}

	price := calculatePrice(*provider.HourlyRate, booking.DurationMinutes)

	var invoice *domain.Invoice

	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		completedAt, err := u.bookingRepo.Complete(txCtx, booking.ID, price)
		if err != nil {
			if errors.Is(err, bookingstore.ErrStatusConflict) {
				return fmt.Errorf("%w: booking changed concurrently", ErrInvalidStatus)
			}
			return fmt.Errorf("%w: Handle - complete booking: %v", ErrInternal, err)
		}

		invoice, err = u.invoiceRepo.Create(txCtx, &domain.Invoice{
			Number:     uuid.NewString(),
			BookingID:  booking.ID,
			CustomerID: booking.CustomerID,
			ProviderID: booking.ProviderID,
			Amount:     price,
			Status:     domain.InvoiceStatusPaid,
		})
		if err != nil {
			return fmt.Errorf("%w: Handle - create invoice: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCompleted
		booking.Price = &price
		booking.CompletedAt = &completedAt

		return nil
	})

	if err != nil {
		return nil, err
	}

	u.logger.Info("[Usecase][ConfirmCompletion] booking completed: id=%d, price=%.2f, invoice=%s",
		booking.ID, price, invoice.Number)

	return &Out{Booking: booking, Invoice: invoice}, nil
}

// calculatePrice считает стоимость по тарифу и длительности
// с округлением до цента
func calculatePrice(hourlyRate float64, durationMinutes int) float64 {
	return math.Round(hourlyRate*float64(durationMinutes)/60*100) / 100
}
