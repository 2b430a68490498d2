package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("service.bookings: booking not found")

	// ErrForbidden возвращается, когда операция недоступна этому пользователю
	ErrForbidden = errors.New("service.bookings: operation is not allowed for this user")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("service.bookings: invalid status transition")

	// ErrInvalidResponse возвращается при некорректном ответе исполнителя
	ErrInvalidResponse = errors.New("service.bookings: response must be confirmed or declined")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("service.bookings: internal error")
)
