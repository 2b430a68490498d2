package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	invoicestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/invoice"
)

// Earnings - сводка заработка исполнителя
type Earnings struct {
	ProviderID int64
	Total      float64
	Invoices   []*domain.Invoice
}

// Service отдаёт счета и сводку заработка исполнителя
type Service struct {
	repo   Repository
	logger Logger
}

func New(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByBooking возвращает счёт по брони участнику сделки
func (s *Service) GetByBooking(ctx context.Context, bookingID, actorID int64) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, invoicestore.ErrInvoiceNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrInvoiceNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: GetByBooking - query: %v", ErrInternal, err)
	}

	if invoice.CustomerID != actorID && invoice.ProviderID != actorID {
		return nil, fmt.Errorf("%w: bookingID=%d, actorID=%d", ErrForbidden, bookingID, actorID)
	}

	return invoice, nil
}

// GetProviderEarnings возвращает счета исполнителя и суммарный заработок
func (s *Service) GetProviderEarnings(ctx context.Context, providerID int64) (*Earnings, error) {
	result, err := s.repo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProviderEarnings - query: %v", ErrInternal, err)
	}

	earnings := &Earnings{
		ProviderID: providerID,
		Invoices:   result,
	}
	for _, invoice := range result {
		if invoice.IsPaid() {
			earnings.Total += invoice.Amount
		}
	}

	return earnings, nil
}
