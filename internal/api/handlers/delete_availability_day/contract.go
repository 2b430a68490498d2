package delete_availability_day

import "context"

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type AvailabilityService interface {
	DeleteDay(ctx context.Context, providerID int64, dayOfWeek string) error
}
