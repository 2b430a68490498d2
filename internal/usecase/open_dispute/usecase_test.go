package open_dispute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	disputestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/dispute"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingstore.ErrBookingNotFound
	}
	return f.booking, nil
}

type fakeDisputeRepo struct {
	existing  *domain.Dispute
	createErr error
	created   *domain.Dispute
}

func (f *fakeDisputeRepo) Create(_ context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	dispute.ID = 3
	f.created = dispute
	return dispute, nil
}

func (f *fakeDisputeRepo) GetByBookingID(_ context.Context, _ int64) (*domain.Dispute, error) {
	if f.existing == nil {
		return nil, disputestore.ErrDisputeNotFound
	}
	return f.existing, nil
}

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func completedBooking(completedAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          5,
		ProviderID:  7,
		CustomerID:  1,
		Status:      domain.StatusCompleted,
		CompletedAt: &completedAt,
	}
}

func validIn() In {
	return In{
		BookingID:   5,
		CustomerID:  1,
		Reason:      "Incomplete Work",
		Description: "The sink still leaks",
	}
}

func newTestUsecase(bookings *fakeBookingRepo, disputes *fakeDisputeRepo) *Usecase {
	return New(bookings, disputes, fixedTime{now: testNow}, nopLogger{})
}

func TestUsecase_OpensDispute(t *testing.T) {
	bookings := &fakeBookingRepo{booking: completedBooking(testNow.AddDate(0, 0, -2))}
	disputes := &fakeDisputeRepo{}

	uc := newTestUsecase(bookings, disputes)

	out, err := uc.Handle(context.Background(), validIn())

	require.NoError(t, err)
	assert.Equal(t, domain.DisputePendingProvider, out.Dispute.Status)
	assert.Equal(t, int64(7), out.Dispute.ProviderID)
	require.NotNil(t, disputes.created)
	assert.Equal(t, []string{}, disputes.created.Evidence)
}

func TestUsecase_WindowBoundary(t *testing.T) {
	tests := []struct {
		name        string
		completedAt time.Time
		wantErr     error
	}{
		{"within window", testNow.AddDate(0, 0, -4), nil},
		{"exactly at deadline", testNow.AddDate(0, 0, -domain.DisputeWindowDays), nil},
		{"one hour past deadline", testNow.Add(-time.Hour).AddDate(0, 0, -domain.DisputeWindowDays), ErrDisputeWindowExpired},
		{"long expired", testNow.AddDate(0, 0, -30), ErrDisputeWindowExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(&fakeBookingRepo{booking: completedBooking(tt.completedAt)}, &fakeDisputeRepo{})

			_, err := uc.Handle(context.Background(), validIn())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUsecase_RejectsExistingDispute(t *testing.T) {
	bookings := &fakeBookingRepo{booking: completedBooking(testNow.AddDate(0, 0, -1))}
	disputes := &fakeDisputeRepo{existing: &domain.Dispute{ID: 9, BookingID: 5}}

	uc := newTestUsecase(bookings, disputes)

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrDisputeAlreadyExists)
}

func TestUsecase_MapsDuplicateInsertToAlreadyExists(t *testing.T) {
	bookings := &fakeBookingRepo{booking: completedBooking(testNow.AddDate(0, 0, -1))}
	disputes := &fakeDisputeRepo{createErr: disputestore.ErrDuplicateDispute}

	uc := newTestUsecase(bookings, disputes)

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrDisputeAlreadyExists)
}

func TestUsecase_RejectsNotCompletedBooking(t *testing.T) {
	booking := completedBooking(testNow)
	booking.Status = domain.StatusConfirmed
	booking.CompletedAt = nil

	uc := newTestUsecase(&fakeBookingRepo{booking: booking}, &fakeDisputeRepo{})

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrBookingNotCompleted)
}

func TestUsecase_RejectsForeignBooking(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{booking: completedBooking(testNow)}, &fakeDisputeRepo{})

	in := validIn()
	in.CustomerID = 2

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUsecase_RejectsUnknownReason(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{booking: completedBooking(testNow)}, &fakeDisputeRepo{})

	in := validIn()
	in.Reason = "Bad Weather"

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidReason)
}

func TestUsecase_RejectsEmptyDescription(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{booking: completedBooking(testNow)}, &fakeDisputeRepo{})

	in := validIn()
	in.Description = "   "

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidReason)
}
