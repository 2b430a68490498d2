package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // понедельник
	farAway  = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
)

func makeBooking(start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          1,
		BookingDate: testDate,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func availableStarts(slots []domain.OfferableSlot) []string {
	starts := make([]string, 0)
	for _, s := range slots {
		if s.Available {
			starts = append(starts, s.StartTime.String())
		}
	}
	return starts
}

func TestGenerateSlots_HourGrid(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "12:00"}

	slots, err := generateSlots(window, 60, nil, testDate, farAway)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, availableStarts(slots))
}

func TestGenerateSlots_LongDurationMustFitWindow(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "12:00"}

	slots, err := generateSlots(window, 180, nil, testDate, farAway)
	require.NoError(t, err)

	// Трехчасовой слот помещается только с самого начала окна
	assert.Equal(t, []string{"09:00"}, availableStarts(slots))

	slots, err = generateSlots(window, 120, nil, testDate, farAway)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, availableStarts(slots))
}

func TestGenerateSlots_OverlapIsStrict(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "17:00"}
	booked := []*domain.Booking{
		makeBooking("11:00", "12:00", domain.StatusConfirmed),
	}

	slots, err := generateSlots(window, 60, booked, testDate, farAway)
	require.NoError(t, err)

	// Смежные слоты 10:00-11:00 и 12:00-13:00 легальны
	starts := availableStarts(slots)
	assert.Contains(t, starts, "10:00")
	assert.Contains(t, starts, "12:00")
	assert.NotContains(t, starts, "11:00")
}

func TestGenerateSlots_LongDurationOverlap(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "17:00"}
	booked := []*domain.Booking{
		makeBooking("11:00", "12:00", domain.StatusPending),
	}

	slots, err := generateSlots(window, 120, booked, testDate, farAway)
	require.NoError(t, err)

	starts := availableStarts(slots)
	// Двухчасовой слот с 10:00 захватил бы 11:00-12:00
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "11:00")
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "12:00")
}

func TestGenerateSlots_InactiveBookingsDoNotBlock(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "12:00"}
	booked := []*domain.Booking{
		makeBooking("09:00", "10:00", domain.StatusCancelled),
		makeBooking("10:00", "11:00", domain.StatusDeclined),
	}

	slots, err := generateSlots(window, 60, booked, testDate, farAway)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, availableStarts(slots))
}

func TestGenerateSlots_PastStartsUnavailableToday(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "13:00"}
	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)

	slots, err := generateSlots(window, 60, nil, testDate, now)
	require.NoError(t, err)

	// 09:00 и 10:00 уже прошли, 11:00 и 12:00 еще доступны
	assert.Equal(t, []string{"11:00", "12:00"}, availableStarts(slots))

	// Для другой даты отсечка не применяется
	tomorrow := testDate.AddDate(0, 0, 1)
	slots, err = generateSlots(window, 60, nil, tomorrow, now)
	require.NoError(t, err)
	assert.Len(t, availableStarts(slots), 4)
}

func TestGenerateSlots_WindowTooSmall(t *testing.T) {
	window := dayWindow{Start: "09:00", End: "10:00"}

	slots, err := generateSlots(window, 120, nil, testDate, farAway)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
