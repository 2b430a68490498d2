package availability

import "errors"

var (
	// ErrInvalidProviderID возвращается при некорректном ID исполнителя
	ErrInvalidProviderID = errors.New("service.availability: invalid provider id")

	// ErrInvalidWeekday возвращается при некорректном имени дня недели
	ErrInvalidWeekday = errors.New("service.availability: invalid day of week")

	// ErrInvalidWindow возвращается при некорректных границах окна
	ErrInvalidWindow = errors.New("service.availability: invalid window bounds")

	// ErrDuplicateWeekday возвращается при повторе дня недели в наборе окон
	ErrDuplicateWeekday = errors.New("service.availability: duplicate day of week")

	// ErrInvalidDate возвращается при некорректной дате исключения
	ErrInvalidDate = errors.New("service.availability: invalid date")

	// ErrWindowNotFound возвращается, когда окно на день не найдено
	ErrWindowNotFound = errors.New("service.availability: window not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("service.availability: internal error")
)
