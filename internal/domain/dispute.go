package domain

import "time"

// DisputeStatus статус процесса рассмотрения спора
type DisputeStatus string

const (
	DisputePendingProvider  DisputeStatus = "pending_provider"
	DisputePendingAdmin     DisputeStatus = "pending_admin"
	DisputeResolvedRefunded DisputeStatus = "resolved_refunded"
	DisputeResolvedRejected DisputeStatus = "resolved_rejected"
)

// Dispute привязан к завершенному бронированию. На одно бронирование
// допускается не более одного спора, открыть его можно только
// в течение DisputeWindowDays после завершения работы.
type Dispute struct {
	ID          int64
	BookingID   int64
	CustomerID  int64
	ProviderID  int64
	Reason      string
	Description string
	Evidence    []string // ссылки на загруженные изображения
	Status      DisputeStatus

	ProviderResponse *string
	AdminResponse    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AwaitsProvider сообщает, ожидает ли спор ответа исполнителя
func (d *Dispute) AwaitsProvider() bool {
	return d.Status == DisputePendingProvider
}

// AwaitsAdmin сообщает, эскалирован ли спор администратору
func (d *Dispute) AwaitsAdmin() bool {
	return d.Status == DisputePendingAdmin
}
