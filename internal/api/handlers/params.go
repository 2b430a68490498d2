package handlers

import "github.com/handyhub-ie/HandyHub-BookingService/internal/domain"

// ParseBookingStatus разбирает статус брони из параметра запроса
func ParseBookingStatus(raw string) (domain.BookingStatus, bool) {
	status := domain.BookingStatus(raw)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusDeclined,
		domain.StatusAwaitingConfirmation,
		domain.StatusCompleted,
		domain.StatusCancelled:
		return status, true
	}
	return "", false
}

// ParseDisputeStatus разбирает статус спора из параметра запроса
func ParseDisputeStatus(raw string) (domain.DisputeStatus, bool) {
	status := domain.DisputeStatus(raw)
	switch status {
	case domain.DisputePendingProvider,
		domain.DisputePendingAdmin,
		domain.DisputeResolvedRefunded,
		domain.DisputeResolvedRejected:
		return status, true
	}
	return "", false
}
