package create_booking

import (
	"context"

	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/create_booking"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Usecase interface {
	Handle(ctx context.Context, in usecase.In) (*usecase.Out, error)
}
