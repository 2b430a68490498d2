package pushgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pushgateway client: internal error")

	// ErrRejected возвращается, когда шлюз отклонил уведомление
	ErrRejected = errors.New("pushgateway client: notification rejected")
)
