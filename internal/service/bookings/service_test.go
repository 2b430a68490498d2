package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fakeRepo struct {
	booking *domain.Booking

	updateErr error
	cancelErr error
	markErr   error

	updatedFrom domain.BookingStatus
	updatedTo   domain.BookingStatus
	cancelled   bool
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingstore.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeRepo) GetByCustomerID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) UpdateStatusFrom(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedFrom = from
	f.updatedTo = to
	return nil
}

func (f *fakeRepo) MarkAwaitingConfirmation(_ context.Context, _ int64, _ *string) error {
	return f.markErr
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	return nil
}

type fakeUserClient struct{}

func (fakeUserClient) GetUser(_ context.Context, _ int64) (*userdirectory.User, error) {
	return nil, userdirectory.ErrUserNotFound
}

type fakePushClient struct{}

func (fakePushClient) Send(_ context.Context, _ pushgateway.Notification) error { return nil }

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         5,
		ProviderID: 7,
		CustomerID: 1,
		Status:     domain.StatusPending,
	}
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, fakeUserClient{}, fakePushClient{}, nopLogger{})
}

func TestService_RespondConfirms(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	svc := newTestService(repo)

	booking, err := svc.Respond(context.Background(), 5, 7, ResponseConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, domain.StatusPending, repo.updatedFrom)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedTo)
}

func TestService_RespondDeclines(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	svc := newTestService(repo)

	booking, err := svc.Respond(context.Background(), 5, 7, ResponseDeclined)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, booking.Status)
}

func TestService_RespondRejectsUnknownResponse(t *testing.T) {
	svc := newTestService(&fakeRepo{booking: pendingBooking()})

	_, err := svc.Respond(context.Background(), 5, 7, "maybe")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestService_RespondRejectsForeignProvider(t *testing.T) {
	svc := newTestService(&fakeRepo{booking: pendingBooking()})

	_, err := svc.Respond(context.Background(), 5, 8, ResponseConfirmed)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_RespondMapsStatusConflict(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), updateErr: bookingstore.ErrStatusConflict}
	svc := newTestService(repo)

	_, err := svc.Respond(context.Background(), 5, 7, ResponseConfirmed)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_MarkAwaitingConfirmation(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &fakeRepo{booking: booking}
	svc := newTestService(repo)

	image := "https://cdn.example.com/done.jpg"
	updated, err := svc.MarkAwaitingConfirmation(context.Background(), 5, 7, &image)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingConfirmation, updated.Status)
	require.NotNil(t, updated.CompletionImage)
	assert.Equal(t, image, *updated.CompletionImage)
}

func TestService_MarkAwaitingConfirmationMapsStatusConflict(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), markErr: bookingstore.ErrStatusConflict}
	svc := newTestService(repo)

	_, err := svc.MarkAwaitingConfirmation(context.Background(), 5, 7, nil)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CancelByParticipants(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		wantErr error
	}{
		{"customer cancels", 1, nil},
		{"provider cancels", 7, nil},
		{"stranger forbidden", 3, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{booking: pendingBooking()}
			svc := newTestService(repo)

			booking, err := svc.Cancel(context.Background(), 5, tt.actorID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, repo.cancelled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, booking.Status)
			assert.True(t, repo.cancelled)
		})
	}
}

func TestService_CancelMapsStatusConflict(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), cancelErr: bookingstore.ErrStatusConflict}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CancelRejectsTerminalBooking(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeRepo{booking: booking}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, repo.cancelled)
}

func TestService_GetByIDForParticipantsOnly(t *testing.T) {
	svc := newTestService(&fakeRepo{booking: pendingBooking()})

	_, err := svc.GetByID(context.Background(), 5, 1)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 5, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), 404, 1)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
