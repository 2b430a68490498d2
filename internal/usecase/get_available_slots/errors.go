package get_available_slots

import "errors"

var (
	// ErrInvalidProviderID возвращается при некорректном ID исполнителя
	ErrInvalidProviderID = errors.New("usecase.get_available_slots: invalid provider id")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("usecase.get_available_slots: invalid date")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("usecase.get_available_slots: invalid duration")

	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("usecase.get_available_slots: provider not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase.get_available_slots: internal error")
)
