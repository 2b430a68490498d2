package domain

import (
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// BookingStatus статус жизненного цикла бронирования
type BookingStatus string

const (
	StatusPending              BookingStatus = "pending"
	StatusConfirmed            BookingStatus = "confirmed"
	StatusDeclined             BookingStatus = "declined"
	StatusAwaitingConfirmation BookingStatus = "awaiting_confirmation"
	StatusCompleted            BookingStatus = "completed"
	StatusCancelled            BookingStatus = "cancelled"
)

// Booking бронирование работы между заказчиком и исполнителем.
// Физически бронирования не удаляются: отмена и отклонение являются
// терминальными статусами, история сохраняется для счетов и споров.
type Booking struct {
	ID              int64
	ProviderID      int64
	CustomerID      int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Description     string
	Status          BookingStatus

	// Price фиксируется один раз при завершении работы
	// по текущей почасовой ставке исполнителя
	Price           *float64
	CompletionImage *string
	CompletedAt     *time.Time
	CancelledAt     *time.Time

	// NotificationsSent маркеры уже отправленных напоминаний
	// (например "tomorrow_sent"), используются фоновым обходом
	NotificationsSent []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot сообщает, занимает ли бронирование свой интервал при генерации слотов
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusDeclined && b.Status != StatusCancelled
}

// CanBeCancelled сообщает, может ли заказчик еще отменить бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusAwaitingConfirmation
}

// HasNotificationMarker сообщает, записан ли уже указанный маркер
func (b *Booking) HasNotificationMarker(marker string) bool {
	for _, m := range b.NotificationsSent {
		if m == marker {
			return true
		}
	}
	return false
}

// ProviderBookingsFilter фильтр для получения бронирований исполнителя
type ProviderBookingsFilter struct {
	ProviderID      int64          // Обязательный параметр
	Date            *time.Time     // Фильтр по дате (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и отклоненные бронирования
}
