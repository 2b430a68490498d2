package open_dispute

import "errors"

var (
	// ErrInvalidBookingID возвращается при некорректном ID брони
	ErrInvalidBookingID = errors.New("usecase.open_dispute: invalid booking id")

	// ErrInvalidCustomerID возвращается при некорректном ID заказчика
	ErrInvalidCustomerID = errors.New("usecase.open_dispute: invalid customer id")

	// ErrInvalidReason возвращается при недопустимой причине спора
	ErrInvalidReason = errors.New("usecase.open_dispute: invalid reason")

	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("usecase.open_dispute: booking not found")

	// ErrForbidden возвращается, когда бронь принадлежит другому заказчику
	ErrForbidden = errors.New("usecase.open_dispute: booking belongs to another customer")

	// ErrBookingNotCompleted возвращается, когда бронь не завершена
	ErrBookingNotCompleted = errors.New("usecase.open_dispute: booking is not completed")

	// ErrDisputeWindowExpired возвращается, когда окно подачи спора истекло
	ErrDisputeWindowExpired = errors.New("usecase.open_dispute: dispute window expired")

	// ErrDisputeAlreadyExists возвращается, когда по брони уже есть спор
	ErrDisputeAlreadyExists = errors.New("usecase.open_dispute: dispute already exists")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.open_dispute: internal error")
)
