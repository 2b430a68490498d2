package create_booking

import "errors"

var (
	// ErrInvalidCustomerID возвращается при некорректном ID заказчика
	ErrInvalidCustomerID = errors.New("usecase.create_booking: invalid customer id")

	// ErrInvalidProviderID возвращается при некорректном ID исполнителя
	ErrInvalidProviderID = errors.New("usecase.create_booking: invalid provider id")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("usecase.create_booking: invalid date")

	// ErrInvalidStartTime возвращается при некорректном времени начала
	ErrInvalidStartTime = errors.New("usecase.create_booking: invalid start time")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("usecase.create_booking: invalid duration")

	// ErrInvalidDescription возвращается при слишком длинном описании
	ErrInvalidDescription = errors.New("usecase.create_booking: invalid description")

	// ErrCustomerNotFound возвращается, когда заказчик не найден
	ErrCustomerNotFound = errors.New("usecase.create_booking: customer not found")

	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("usecase.create_booking: provider not found")

	// ErrSlotUnavailable возвращается, когда слот не предлагается или уже занят
	ErrSlotUnavailable = errors.New("usecase.create_booking: slot unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.create_booking: internal error")
)
