package create_booking

import (
	"fmt"
	"slices"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

func validateIn(in In, now time.Time) error {
	if in.CustomerID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCustomerID, in.CustomerID)
	}

	if in.ProviderID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProviderID, in.ProviderID)
	}

	if in.CustomerID == in.ProviderID {
		return fmt.Errorf("%w: customer and provider must differ", ErrInvalidCustomerID)
	}

	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// Бронь в прошлом недопустима, сегодняшний день разрешён
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if in.Date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, in.Date.Format(domain.DateFormat))
	}

	if err := in.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	if !slices.Contains(domain.AllowedDurations, in.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, in.DurationMinutes)
	}

	if len(in.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, domain.MaxDescriptionLength)
	}

	return nil
}

// startPassed сообщает, что старт на сегодняшнюю дату уже наступил
func startPassed(start types.TimeString, date time.Time, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	if y != ny || m != nm || d != nd {
		return false
	}

	nowTime := types.NewTimeString(now)

	return !start.IsAfter(nowTime)
}
