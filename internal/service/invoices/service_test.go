package invoices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	invoicestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/invoice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fakeRepo struct {
	invoice  *domain.Invoice
	invoices []*domain.Invoice
}

func (f *fakeRepo) GetByBookingID(_ context.Context, bookingID int64) (*domain.Invoice, error) {
	if f.invoice == nil || f.invoice.BookingID != bookingID {
		return nil, invoicestore.ErrInvoiceNotFound
	}
	return f.invoice, nil
}

func (f *fakeRepo) GetByProviderID(_ context.Context, _ int64) ([]*domain.Invoice, error) {
	return f.invoices, nil
}

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:         11,
		BookingID:  5,
		CustomerID: 1,
		ProviderID: 7,
		Amount:     90.0,
		Status:     domain.InvoiceStatusPaid,
	}
}

func TestService_GetByBookingForParticipants(t *testing.T) {
	svc := New(&fakeRepo{invoice: testInvoice()}, nopLogger{})

	invoice, err := svc.GetByBooking(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(11), invoice.ID)

	_, err = svc.GetByBooking(context.Background(), 5, 7)
	assert.NoError(t, err)

	_, err = svc.GetByBooking(context.Background(), 5, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetByBookingNotFound(t *testing.T) {
	svc := New(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByBooking(context.Background(), 404, 1)

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestService_GetProviderEarningsSumsPaidOnly(t *testing.T) {
	repo := &fakeRepo{invoices: []*domain.Invoice{
		{ID: 1, ProviderID: 7, Amount: 90.0, Status: domain.InvoiceStatusPaid},
		{ID: 2, ProviderID: 7, Amount: 45.5, Status: domain.InvoiceStatusPaid},
		{ID: 3, ProviderID: 7, Amount: 60.0, Status: domain.InvoiceStatusPending},
	}}
	svc := New(repo, nopLogger{})

	earnings, err := svc.GetProviderEarnings(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 135.5, earnings.Total)
	assert.Len(t, earnings.Invoices, 3)
}

func TestService_GetProviderEarningsEmpty(t *testing.T) {
	svc := New(&fakeRepo{}, nopLogger{})

	earnings, err := svc.GetProviderEarnings(context.Background(), 7)

	require.NoError(t, err)
	assert.Zero(t, earnings.Total)
	assert.Empty(t, earnings.Invoices)
}
