package confirm_completion

import (
	"context"

	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/confirm_completion"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Usecase interface {
	Handle(ctx context.Context, in usecase.In) (*usecase.Out, error)
}
