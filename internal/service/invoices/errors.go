package invoices

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счёт не найден
	ErrInvoiceNotFound = errors.New("service.invoices: invoice not found")

	// ErrForbidden возвращается, когда счёт принадлежит другим пользователям
	ErrForbidden = errors.New("service.invoices: invoice belongs to other users")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("service.invoices: internal error")
)
