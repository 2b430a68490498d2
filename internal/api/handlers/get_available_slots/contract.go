package get_available_slots

import (
	"context"

	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/get_available_slots"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Usecase interface {
	Handle(ctx context.Context, in usecase.In) (*usecase.Out, error)
}
