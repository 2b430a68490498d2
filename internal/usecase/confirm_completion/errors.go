package confirm_completion

import "errors"

var (
	// ErrInvalidBookingID возвращается при некорректном ID брони
	ErrInvalidBookingID = errors.New("usecase.confirm_completion: invalid booking id")

	// ErrInvalidCustomerID возвращается при некорректном ID заказчика
	ErrInvalidCustomerID = errors.New("usecase.confirm_completion: invalid customer id")

	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("usecase.confirm_completion: booking not found")

	// ErrForbidden возвращается, когда бронь принадлежит другому заказчику
	ErrForbidden = errors.New("usecase.confirm_completion: booking belongs to another customer")

	// ErrInvalidStatus возвращается, когда бронь не ожидает подтверждения
	ErrInvalidStatus = errors.New("usecase.confirm_completion: booking is not awaiting confirmation")

	// ErrProviderRateMissing возвращается, когда у исполнителя не задан тариф
	ErrProviderRateMissing = errors.New("usecase.confirm_completion: provider hourly rate is not set")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.confirm_completion: internal error")
)
