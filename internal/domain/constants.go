package domain

// SlotGranularityMinutes фиксированный шаг сетки слотов
const SlotGranularityMinutes = 60

// AllowedDurations допустимые длительности бронирования в минутах
var AllowedDurations = []int{60, 120, 180}

// Ограничения на длину пользовательских полей
const (
	MaxDescriptionLength = 1000
	MaxDisputeNoteLength = 2000
	MaxEvidenceItems     = 5
)

// DisputeWindowDays окно подачи спора после завершения бронирования
const DisputeWindowDays = 5

// ReminderMarkerTomorrow маркер отправленного напоминания за сутки
const ReminderMarkerTomorrow = "tomorrow_sent"

// DateFormat формат дат в API и логах
const DateFormat = "2006-01-02" // YYYY-MM-DD

// InactiveStatuses список статусов, не блокирующих слоты
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusDeclined,
	StatusCancelled,
}

// ReminderStatuses список статусов, по которым отправляются напоминания
var ReminderStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusAwaitingConfirmation,
}
