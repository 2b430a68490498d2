package domain

import "time"

// InvoiceStatus статус оплаты счета
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

// Invoice выставляется ровно один раз в момент перехода бронирования
// в completed. После выставления меняется только Status.
type Invoice struct {
	ID         int64
	Number     string // внешний номер счета, печатается клиенту
	BookingID  int64
	CustomerID int64
	ProviderID int64
	Amount     float64
	Status     InvoiceStatus
	DateIssued time.Time
}

// IsPaid сообщает, оплачен ли счет
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
