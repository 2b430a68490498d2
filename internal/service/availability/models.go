package availability

import "github.com/handyhub-ie/HandyHub-BookingService/internal/domain"

// Schedule - полное расписание исполнителя: недельные окна
// и исключения начиная с сегодняшней даты
type Schedule struct {
	Windows    []*domain.AvailabilityWindow
	Exceptions []*domain.AvailabilityException
}
