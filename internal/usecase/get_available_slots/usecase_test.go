package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
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

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeUserClient struct {
	provider *userdirectory.User
}

func (f *fakeUserClient) GetProvider(_ context.Context, _ int64) (*userdirectory.User, error) {
	if f.provider == nil {
		return nil, userdirectory.ErrUserNotFound
	}
	return f.provider, nil
}

func newTestUsecase(avail *fakeAvailabilityRepo, bookings *fakeBookingRepo, users *fakeUserClient) *Usecase {
	return New(avail, bookings, users, fixedTime{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}, nopLogger{})
}

func testProvider() *userdirectory.User {
	return &userdirectory.User{
		ID:         7,
		Name:       "Test Provider",
		Role:       userdirectory.RoleProvider,
		HourlyRate: ptr.Ptr(45.0),
	}
}

func TestUsecase_RecurringWindow(t *testing.T) {
	uc := newTestUsecase(
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			ProviderID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00",
		}},
		&fakeBookingRepo{},
		&fakeUserClient{provider: testProvider()},
	)

	out, err := uc.Handle(context.Background(), In{
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Len(t, out.Slots, 3)
}

func TestUsecase_ExceptionOverridesWindow(t *testing.T) {
	uc := newTestUsecase(
		&fakeAvailabilityRepo{
			window: &domain.AvailabilityWindow{
				ProviderID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00",
			},
			exception: &domain.AvailabilityException{
				ProviderID: 7, Available: true, StartTime: "10:00", EndTime: "12:00",
			},
		},
		&fakeBookingRepo{},
		&fakeUserClient{provider: testProvider()},
	)

	out, err := uc.Handle(context.Background(), In{
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	// Окно исключения 10:00-12:00 вместо обычного 09:00-17:00
	require.Len(t, out.Slots, 2)
	assert.Equal(t, types.TimeString("10:00"), out.Slots[0].StartTime)
}

func TestUsecase_UnavailableExceptionClosesDay(t *testing.T) {
	uc := newTestUsecase(
		&fakeAvailabilityRepo{
			window: &domain.AvailabilityWindow{
				ProviderID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00",
			},
			exception: &domain.AvailabilityException{ProviderID: 7, Available: false},
		},
		&fakeBookingRepo{},
		&fakeUserClient{provider: testProvider()},
	)

	out, err := uc.Handle(context.Background(), In{
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Slots)
}

func TestUsecase_NoScheduleMeansNoSlots(t *testing.T) {
	uc := newTestUsecase(
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		&fakeUserClient{provider: testProvider()},
	)

	out, err := uc.Handle(context.Background(), In{
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Slots)
}

func TestUsecase_ProviderNotFound(t *testing.T) {
	uc := newTestUsecase(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, &fakeUserClient{})

	_, err := uc.Handle(context.Background(), In{
		ProviderID:      7,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUsecase_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, &fakeUserClient{provider: testProvider()})
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := uc.Handle(context.Background(), In{ProviderID: 0, Date: date, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidProviderID)

	_, err = uc.Handle(context.Background(), In{ProviderID: 7, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Handle(context.Background(), In{ProviderID: 7, Date: date, DurationMinutes: 90})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
