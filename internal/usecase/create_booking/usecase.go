package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// pushTimeout ограничивает фоновую отправку уведомления
const pushTimeout = 10 * time.Second

// Usecase создаёт бронь в статусе pending.
// Проверка занятости слота выполняется внутри serializable-транзакции
// с блокировкой броней исполнителя на дату, поэтому из двух
// конкурирующих заявок на один слот пройдёт ровно одна.
type Usecase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	userClient       UserClient
	pushClient       PushClient
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

func New(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	userClient UserClient,
	pushClient PushClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		userClient:       userClient,
		pushClient:       pushClient,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

func (u *Usecase) Handle(ctx context.Context, in In) (*Out, error) {
	if err := validateIn(in, u.timeProvider.Now()); err != nil {
		return nil, err
	}

	if _, err := u.userClient.GetUser(ctx, in.CustomerID); err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: customerID=%d", ErrCustomerNotFound, in.CustomerID)
		}
		return nil, fmt.Errorf("%w: Handle - get customer: %v", ErrInternal, err)
	}

	provider, err := u.userClient.GetProvider(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) || errors.Is(err, userdirectory.ErrNotAProvider) {
			return nil, fmt.Errorf("%w: providerID=%d", ErrProviderNotFound, in.ProviderID)
		}
		return nil, fmt.Errorf("%w: Handle - get provider: %v", ErrInternal, err)
	}

	var created *domain.Booking

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := u.ensureSlotOfferable(txCtx, in); err != nil {
			return err
		}

		endTime, err := in.StartTime.AddMinutes(in.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: Handle - compute end time: %w", ErrInternal, err)
		}

		booking := &domain.Booking{
			ProviderID:        in.ProviderID,
			CustomerID:        in.CustomerID,
			BookingDate:       in.Date,
			StartTime:         in.StartTime,
			EndTime:           endTime,
			DurationMinutes:   in.DurationMinutes,
			Description:       in.Description,
			Status:            domain.StatusPending,
			NotificationsSent: []string{},
		}

		created, err = u.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: Handle - create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	u.logger.Info("[Usecase][CreateBooking] booking created: id=%d, provider=%d, customer=%d, date=%s %s",
		created.ID, created.ProviderID, created.CustomerID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime)

	u.notifyProvider(provider, created)

	return &Out{Booking: created}, nil
}

// ensureSlotOfferable повторяет проверку доступности слота внутри транзакции.
// Чтение броней идёт с блокировкой строк, окно берётся с учётом исключения
func (u *Usecase) ensureSlotOfferable(ctx context.Context, in In) error {
	windowStart, windowEnd, open, err := u.resolveWindow(ctx, in)
	if err != nil {
		return err
	}
	if !open {
		return fmt.Errorf("%w: provider is not available on %s", ErrSlotUnavailable, in.Date.Format(domain.DateFormat))
	}

	windowMinutes, err := windowStart.MinutesUntil(windowEnd)
	if err != nil {
		return fmt.Errorf("%w: Handle - compute window size: %w", ErrInternal, err)
	}

	offset, err := windowStart.MinutesUntil(in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: Handle - compute slot offset: %w", ErrInternal, err)
	}

	// Старт лежит на решётке окна, конец - внутри окна.
	// Сравнение в минутах от начала окна, AddMinutes здесь не годится:
	// он переносит время через полночь
	if offset < 0 || offset%domain.SlotGranularityMinutes != 0 || offset+in.DurationMinutes > windowMinutes {
		return fmt.Errorf("%w: slot %s+%dm does not fit the working window", ErrSlotUnavailable, in.StartTime, in.DurationMinutes)
	}

	// На сегодняшнюю дату прошедшие старты не предлагаются
	if startPassed(in.StartTime, in.Date, u.timeProvider.Now()) {
		return fmt.Errorf("%w: start %s has already passed", ErrSlotUnavailable, in.StartTime)
	}

	endTime, err := in.StartTime.AddMinutes(in.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: Handle - compute end time: %w", ErrInternal, err)
	}

	bookings, err := u.bookingRepo.GetByProviderWithFilter(ctx, domain.ProviderBookingsFilter{
		ProviderID: in.ProviderID,
		Date:       &in.Date,
	})
	if err != nil {
		return fmt.Errorf("%w: Handle - get day bookings: %w", ErrInternal, err)
	}

	for _, booking := range bookings {
		if !booking.BlocksSlot() {
			continue
		}
		if in.StartTime.IsBefore(booking.EndTime) && endTime.IsAfter(booking.StartTime) {
			return fmt.Errorf("%w: overlaps booking %d", ErrSlotUnavailable, booking.ID)
		}
	}

	return nil
}

func (u *Usecase) resolveWindow(ctx context.Context, in In) (types.TimeString, types.TimeString, bool, error) {
	exception, err := u.availabilityRepo.GetExceptionByProviderAndDate(ctx, in.ProviderID, in.Date)
	switch {
	case err == nil:
		if !exception.Available || exception.StartTime.IsZero() || exception.EndTime.IsZero() {
			return "", "", false, nil
		}
		return exception.StartTime, exception.EndTime, true, nil
	case errors.Is(err, availabilitystore.ErrExceptionNotFound):
		// исключения нет, смотрим недельное расписание
	default:
		return "", "", false, fmt.Errorf("%w: resolveWindow - get exception: %w", ErrInternal, err)
	}

	window, err := u.availabilityRepo.GetWindowByProviderAndDay(ctx, in.ProviderID, domain.WeekdayName(in.Date))
	switch {
	case err == nil:
		return window.StartTime, window.EndTime, true, nil
	case errors.Is(err, availabilitystore.ErrWindowNotFound):
		return "", "", false, nil
	default:
		return "", "", false, fmt.Errorf("%w: resolveWindow - get window: %w", ErrInternal, err)
	}
}

// notifyProvider отправляет пуш исполнителю о новой заявке.
// Доставка best-effort и не влияет на результат операции
func (u *Usecase) notifyProvider(provider *userdirectory.User, booking *domain.Booking) {
	if provider.PushToken == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		err := u.pushClient.Send(ctx, pushgateway.Notification{
			To:    *provider.PushToken,
			Title: "New booking request",
			Body: fmt.Sprintf("You have a new booking request for %s at %s",
				booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
			Data: map[string]any{
				"booking_id": booking.ID,
				"type":       "booking_request",
			},
		})
		if err != nil {
			u.logger.Warn("[Usecase][CreateBooking] provider notification failed: bookingID=%d, err=%v", booking.ID, err)
		}
	}()
}
