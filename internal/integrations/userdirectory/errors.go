package userdirectory

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в каталоге
	ErrUserNotFound = errors.New("userdirectory client: user not found")

	// ErrNotAProvider возвращается, когда пользователь не является исполнителем
	ErrNotAProvider = errors.New("userdirectory client: user is not a provider")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userdirectory client: invalid response")
)
