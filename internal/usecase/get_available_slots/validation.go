package get_available_slots

import (
	"fmt"
	"slices"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

func validateIn(in In) error {
	if in.ProviderID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProviderID, in.ProviderID)
	}

	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if !slices.Contains(domain.AllowedDurations, in.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, in.DurationMinutes)
	}

	return nil
}
