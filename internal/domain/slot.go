package domain

import "github.com/handyhub-ie/HandyHub-BookingService/pkg/types"

// OfferableSlot кандидат на время старта в указанную дату
// с признаком, помещается ли запрошенная длительность с этого старта
type OfferableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// EndTime возвращает время окончания слота
func (s *OfferableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
