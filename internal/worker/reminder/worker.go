package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

// Config параметры воркера напоминаний
type Config struct {
	Interval     time.Duration
	Lookahead    time.Duration
	SweepTimeout time.Duration
}

// Worker периодически рассылает напоминания о предстоящих бронях.
// Маркер отправки ставится атомарно до отправки пуша, поэтому
// каждая бронь получает не более одного напоминания даже при
// нескольких экземплярах сервиса
type Worker struct {
	bookingRepo  BookingRepository
	userClient   UserClient
	pushClient   PushClient
	timeProvider TimeProvider
	logger       Logger
	cfg          Config

	cron *cron.Cron
}

func New(
	bookingRepo BookingRepository,
	userClient UserClient,
	pushClient PushClient,
	timeProvider TimeProvider,
	logger Logger,
	cfg Config,
) *Worker {
	return &Worker{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		pushClient:   pushClient,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Start запускает периодический обход. Повторный запуск при
// незавершённом предыдущем обходе пропускается
func (w *Worker) Start() error {
	w.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	spec := fmt.Sprintf("@every %dm", int(w.cfg.Interval.Minutes()))
	_, err := w.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.cfg.SweepTimeout)
		defer cancel()

		if err := w.Sweep(ctx); err != nil {
			w.logger.Error("[Worker][Reminder] sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("reminder worker: schedule sweep: %w", err)
	}

	w.cron.Start()
	w.logger.Info("[Worker][Reminder] started: interval=%s, lookahead=%s", w.cfg.Interval, w.cfg.Lookahead)

	return nil
}

// Stop останавливает воркер и дожидается завершения текущего обхода
func (w *Worker) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.logger.Info("[Worker][Reminder] stopped")
}

// Sweep находит брони, начинающиеся в окне lookahead, и рассылает
// напоминания заказчикам. Ошибки по отдельным броням логируются
// и не прерывают обход
func (w *Worker) Sweep(ctx context.Context) error {
	now := w.timeProvider.Now()
	to := now.Add(w.cfg.Lookahead)

	due, err := w.bookingRepo.GetDueForReminder(ctx, now, to, domain.ReminderMarkerTomorrow)
	if err != nil {
		return fmt.Errorf("get due bookings: %w", err)
	}

	if len(due) == 0 {
		return nil
	}

	sent := 0
	for _, booking := range due {
		if err := w.remind(ctx, booking); err != nil {
			w.logger.Warn("[Worker][Reminder] reminder failed: bookingID=%d, err=%v", booking.ID, err)
			continue
		}
		sent++
	}

	w.logger.Info("[Worker][Reminder] sweep done: due=%d, sent=%d", len(due), sent)

	return nil
}

func (w *Worker) remind(ctx context.Context, booking *domain.Booking) error {
	if booking.HasNotificationMarker(domain.ReminderMarkerTomorrow) {
		return nil
	}

	// Захватываем маркер до отправки: при конкурентных обходах
	// напоминание отправит только один
	claimed, err := w.bookingRepo.AddNotificationMarker(ctx, booking.ID, domain.ReminderMarkerTomorrow)
	if err != nil {
		return fmt.Errorf("claim marker: %w", err)
	}
	if !claimed {
		return nil
	}

	customer, err := w.userClient.GetUser(ctx, booking.CustomerID)
	if err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("get customer: %w", err)
	}
	if customer.PushToken == nil {
		return nil
	}

	err = w.pushClient.Send(ctx, pushgateway.Notification{
		To:    *customer.PushToken,
		Title: "Upcoming booking",
		Body: fmt.Sprintf("Reminder: you have a booking tomorrow, %s at %s",
			booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
		Data: map[string]any{
			"booking_id": booking.ID,
			"type":       "booking_reminder",
		},
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}

	return nil
}
