package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

// pushTimeout ограничивает фоновую отправку уведомления
const pushTimeout = 10 * time.Second

// Ответы исполнителя на заявку
const (
	ResponseConfirmed = "confirmed"
	ResponseDeclined  = "declined"
)

// Service реализует жизненный цикл брони: ответ исполнителя,
// отметку о выполнении, отмену и выборки.
// Переходы статусов делаются условными UPDATE в хранилище,
// поэтому конкурирующие переходы не затирают друг друга
type Service struct {
	repo       Repository
	userClient UserClient
	pushClient PushClient
	logger     Logger
}

func New(repo Repository, userClient UserClient, pushClient PushClient, logger Logger) *Service {
	return &Service{
		repo:       repo,
		userClient: userClient,
		pushClient: pushClient,
		logger:     logger,
	}
}

// Respond обрабатывает ответ исполнителя на заявку: pending -> confirmed или declined
func (s *Service) Respond(ctx context.Context, bookingID, providerID int64, response string) (*domain.Booking, error) {
	var to domain.BookingStatus
	switch response {
	case ResponseConfirmed:
		to = domain.StatusConfirmed
	case ResponseDeclined:
		to = domain.StatusDeclined
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidResponse, response)
	}

	booking, err := s.getOwnedByProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatusFrom(ctx, bookingID, domain.StatusPending, to); err != nil {
		if errors.Is(err, bookingstore.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %d is not pending", ErrInvalidTransition, bookingID)
		}
		return nil, fmt.Errorf("%w: Respond - update status: %v", ErrInternal, err)
	}

	booking.Status = to

	s.logger.Info("[Service][Bookings] provider responded: bookingID=%d, response=%s", bookingID, response)

	title := "Booking confirmed"
	body := fmt.Sprintf("Your booking for %s at %s has been confirmed",
		booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	if to == domain.StatusDeclined {
		title = "Booking declined"
		body = fmt.Sprintf("Your booking for %s at %s has been declined",
			booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	}
	s.notify(booking.CustomerID, title, body, booking.ID, "booking_response")

	return booking, nil
}

// MarkAwaitingConfirmation переводит бронь confirmed -> awaiting_confirmation
// после того, как исполнитель отметил работу выполненной
func (s *Service) MarkAwaitingConfirmation(ctx context.Context, bookingID, providerID int64, completionImage *string) (*domain.Booking, error) {
	booking, err := s.getOwnedByProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkAwaitingConfirmation(ctx, bookingID, completionImage); err != nil {
		if errors.Is(err, bookingstore.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %d is not confirmed", ErrInvalidTransition, bookingID)
		}
		return nil, fmt.Errorf("%w: MarkAwaitingConfirmation - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusAwaitingConfirmation
	booking.CompletionImage = completionImage

	s.logger.Info("[Service][Bookings] work marked done: bookingID=%d", bookingID)

	s.notify(booking.CustomerID, "Work completed",
		"The handyman marked your booking as completed. Please confirm the work.",
		booking.ID, "booking_awaiting_confirmation")

	return booking, nil
}

// Cancel отменяет бронь по инициативе заказчика или исполнителя.
// Допустима для статусов pending, confirmed и awaiting_confirmation
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error) {
	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != actorID && booking.ProviderID != actorID {
		return nil, fmt.Errorf("%w: bookingID=%d, actorID=%d", ErrForbidden, bookingID, actorID)
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %d cannot be cancelled from %s", ErrInvalidTransition, bookingID, booking.Status)
	}

	if err := s.repo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingstore.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %d cannot be cancelled from %s", ErrInvalidTransition, bookingID, booking.Status)
		}
		return nil, fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	s.logger.Info("[Service][Bookings] booking cancelled: bookingID=%d, actorID=%d", bookingID, actorID)

	// Уведомляем вторую сторону
	recipientID := booking.CustomerID
	if actorID == booking.CustomerID {
		recipientID = booking.ProviderID
	}
	s.notify(recipientID, "Booking cancelled",
		fmt.Sprintf("The booking for %s at %s has been cancelled",
			booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
		booking.ID, "booking_cancelled")

	return booking, nil
}

// GetByID возвращает бронь участнику (заказчику или исполнителю)
func (s *Service) GetByID(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error) {
	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != actorID && booking.ProviderID != actorID {
		return nil, fmt.Errorf("%w: bookingID=%d, actorID=%d", ErrForbidden, bookingID, actorID)
	}

	return booking, nil
}

// GetByCustomer возвращает брони заказчика с опциональным фильтром по статусу
func (s *Service) GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result, err := s.repo.GetByCustomerID(ctx, customerID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - query: %v", ErrInternal, err)
	}
	return result, nil
}

// GetByProvider возвращает брони исполнителя по фильтру
func (s *Service) GetByProvider(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	result, err := s.repo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - query: %v", ErrInternal, err)
	}
	return result, nil
}

func (s *Service) getByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: getByID - query: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) getOwnedByProvider(ctx context.Context, bookingID, providerID int64) (*domain.Booking, error) {
	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.ProviderID != providerID {
		return nil, fmt.Errorf("%w: bookingID=%d, providerID=%d", ErrForbidden, bookingID, providerID)
	}

	return booking, nil
}

// notify отправляет пуш получателю в фоне. Доставка best-effort:
// ошибки логируются и не влияют на результат операции
func (s *Service) notify(recipientID int64, title, body string, bookingID int64, eventType string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		user, err := s.userClient.GetUser(ctx, recipientID)
		if err != nil {
			if !errors.Is(err, userdirectory.ErrUserNotFound) {
				s.logger.Warn("[Service][Bookings] notify - get recipient failed: userID=%d, err=%v", recipientID, err)
			}
			return
		}
		if user.PushToken == nil {
			return
		}

		err = s.pushClient.Send(ctx, pushgateway.Notification{
			To:    *user.PushToken,
			Title: title,
			Body:  body,
			Data: map[string]any{
				"booking_id": bookingID,
				"type":       eventType,
			},
		})
		if err != nil {
			s.logger.Warn("[Service][Bookings] notify - send failed: userID=%d, bookingID=%d, err=%v", recipientID, bookingID, err)
		}
	}()
}
