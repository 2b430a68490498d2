package get_available_slots

import (
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// In - параметры запроса свободных слотов
type In struct {
	ProviderID      int64
	Date            time.Time
	DurationMinutes int
}

// Out - список предлагаемых слотов на дату
type Out struct {
	ProviderID      int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.OfferableSlot
}

// dayWindow - рабочее окно исполнителя на конкретную дату,
// уже с учётом исключения поверх недельного расписания
type dayWindow struct {
	Start types.TimeString
	End   types.TimeString
}
