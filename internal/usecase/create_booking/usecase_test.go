package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/ptr"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// inlineTxManager выполняет функцию без настоящей транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeAvailabilityRepo struct {
	window    *domain.AvailabilityWindow
	exception *domain.AvailabilityException
}

func (f *fakeAvailabilityRepo) GetWindowByProviderAndDay(_ context.Context, _ int64, _ string) (*domain.AvailabilityWindow, error) {
	if f.window == nil {
		return nil, availabilitystore.ErrWindowNotFound
	}
	return f.window, nil
}

func (f *fakeAvailabilityRepo) GetExceptionByProviderAndDate(_ context.Context, _ int64, _ time.Time) (*domain.AvailabilityException, error) {
	if f.exception == nil {
		return nil, availabilitystore.ErrExceptionNotFound
	}
	return f.exception, nil
}

type fakeUserClient struct {
	users map[int64]*userdirectory.User
}

func (f *fakeUserClient) GetUser(_ context.Context, id int64) (*userdirectory.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userdirectory.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserClient) GetProvider(ctx context.Context, id int64) (*userdirectory.User, error) {
	user, err := f.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != userdirectory.RoleProvider {
		return nil, userdirectory.ErrNotAProvider
	}
	return user, nil
}

type fakePushClient struct{}

func (fakePushClient) Send(_ context.Context, _ pushgateway.Notification) error { return nil }

func defaultUsers() map[int64]*userdirectory.User {
	return map[int64]*userdirectory.User{
		1: {ID: 1, Name: "Customer", Role: userdirectory.RoleCustomer},
		7: {ID: 7, Name: "Provider", Role: userdirectory.RoleProvider, HourlyRate: ptr.Ptr(45.0)},
	}
}

func newTestUsecase(bookings *fakeBookingRepo, avail *fakeAvailabilityRepo, users map[int64]*userdirectory.User) *Usecase {
	return New(
		bookings,
		avail,
		&fakeUserClient{users: users},
		fakePushClient{},
		inlineTxManager{},
		fixedTime{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func validIn() In {
	return In{
		CustomerID:      1,
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime:       "10:00",
		DurationMinutes: 60,
		Description:     "Fix kitchen sink",
	}
}

func mondayWindow() *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ProviderID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00",
	}
}

func TestUsecase_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUsecase(repo, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	out, err := uc.Handle(context.Background(), validIn())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, out.Booking.Status)
	assert.Equal(t, types.TimeString("11:00"), out.Booking.EndTime)
	assert.NotNil(t, repo.created)
	assert.Empty(t, repo.created.NotificationsSent)
}

func TestUsecase_RejectsOverlappingSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUsecase(repo, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestUsecase_BackToBackIsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
			{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUsecase(repo, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	_, err := uc.Handle(context.Background(), validIn())

	assert.NoError(t, err)
}

func TestUsecase_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUsecase(repo, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	_, err := uc.Handle(context.Background(), validIn())

	assert.NoError(t, err)
}

func TestUsecase_RejectsOffGridStart(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	in := validIn()
	in.StartTime = "10:30"

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUsecase_RejectsSlotPastWindowEnd(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	in := validIn()
	in.StartTime = "16:00"
	in.DurationMinutes = 120

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUsecase_RejectsStartAfterWindowEnd(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUsecase(repo, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	// "23:00" + 120 минут переходит через полночь, сравнение конца
	// слота с концом окна здесь обмануть нельзя
	in := validIn()
	in.StartTime = "23:00"
	in.DurationMinutes = 120

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestUsecase_RejectsPassedStartToday(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := New(
		repo,
		&fakeAvailabilityRepo{window: mondayWindow()},
		&fakeUserClient{users: defaultUsers()},
		fakePushClient{},
		inlineTxManager{},
		fixedTime{now: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)}, // понедельник, полдень
		nopLogger{},
	)

	in := validIn() // дата совпадает с "сегодня", старт 10:00 уже прошёл

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestUsecase_RejectsClosedDay(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{
		window:    mondayWindow(),
		exception: &domain.AvailabilityException{ProviderID: 7, Available: false},
	}, defaultUsers())

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUsecase_RejectsPastDate(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	in := validIn()
	in.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUsecase_RejectsUnknownProvider(t *testing.T) {
	users := defaultUsers()
	delete(users, 7)
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{window: mondayWindow()}, users)

	_, err := uc.Handle(context.Background(), validIn())

	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUsecase_RejectsSelfBooking(t *testing.T) {
	uc := newTestUsecase(&fakeBookingRepo{}, &fakeAvailabilityRepo{window: mondayWindow()}, defaultUsers())

	in := validIn()
	in.CustomerID = 7

	_, err := uc.Handle(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidCustomerID)
}
