package create_booking

import (
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// In - заявка на бронирование слота
type In struct {
	CustomerID      int64
	ProviderID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Description     string
}

// Out - созданная бронь
type Out struct {
	Booking *domain.Booking
}
