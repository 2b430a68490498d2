package disputes

import "errors"

var (
	// ErrDisputeNotFound возвращается, когда спор не найден
	ErrDisputeNotFound = errors.New("service.disputes: dispute not found")

	// ErrForbidden возвращается, когда операция недоступна этому пользователю
	ErrForbidden = errors.New("service.disputes: operation is not allowed for this user")

	// ErrInvalidResponse возвращается при некорректном ответе исполнителя
	ErrInvalidResponse = errors.New("service.disputes: response must be accepted or rejected")

	// ErrInvalidDecision возвращается при некорректном решении администратора
	ErrInvalidDecision = errors.New("service.disputes: decision must be approved or rejected")

	// ErrMissingNote возвращается, когда отклонение не сопровождается пояснением
	ErrMissingNote = errors.New("service.disputes: resolution note is required")

	// ErrInvalidTransition возвращается, когда спор не в ожидаемом статусе
	ErrInvalidTransition = errors.New("service.disputes: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("service.disputes: internal error")
)
