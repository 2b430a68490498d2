package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

// Usecase возвращает предлагаемые слоты исполнителя на дату.
// Исключение на дату полностью перекрывает недельное расписание.
type Usecase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	userClient       UserClient
	timeProvider     TimeProvider
	logger           Logger
}

func New(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	userClient UserClient,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		userClient:       userClient,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

func (u *Usecase) Handle(ctx context.Context, in In) (*Out, error) {
	if err := validateIn(in); err != nil {
		return nil, err
	}

	if _, err := u.userClient.GetProvider(ctx, in.ProviderID); err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) || errors.Is(err, userdirectory.ErrNotAProvider) {
			return nil, fmt.Errorf("%w: providerID=%d", ErrProviderNotFound, in.ProviderID)
		}
		return nil, fmt.Errorf("%w: Handle - get provider: %v", ErrInternal, err)
	}

	window, found, err := u.resolveWindow(ctx, in)
	if err != nil {
		return nil, err
	}

	out := &Out{
		ProviderID:      in.ProviderID,
		Date:            in.Date,
		DurationMinutes: in.DurationMinutes,
		Slots:           []domain.OfferableSlot{},
	}

	// День без расписания и без доступного исключения: слотов нет
	if !found {
		return out, nil
	}

	bookings, err := u.bookingRepo.GetByProviderWithFilter(ctx, domain.ProviderBookingsFilter{
		ProviderID: in.ProviderID,
		Date:       &in.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Handle - get bookings: %v", ErrInternal, err)
	}

	slots, err := generateSlots(window, in.DurationMinutes, bookings, in.Date, u.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: Handle - generate slots: %v", ErrInternal, err)
	}

	out.Slots = slots
	return out, nil
}

// resolveWindow определяет рабочее окно на дату: сначала исключение,
// затем недельное расписание. Второе значение false - день закрыт.
func (u *Usecase) resolveWindow(ctx context.Context, in In) (dayWindow, bool, error) {
	exception, err := u.availabilityRepo.GetExceptionByProviderAndDate(ctx, in.ProviderID, in.Date)
	switch {
	case err == nil:
		if !exception.Available || exception.StartTime.IsZero() || exception.EndTime.IsZero() {
			return dayWindow{}, false, nil
		}
		return dayWindow{Start: exception.StartTime, End: exception.EndTime}, true, nil
	case errors.Is(err, availabilitystore.ErrExceptionNotFound):
		// исключения нет, смотрим недельное расписание
	default:
		return dayWindow{}, false, fmt.Errorf("%w: resolveWindow - get exception: %v", ErrInternal, err)
	}

	window, err := u.availabilityRepo.GetWindowByProviderAndDay(ctx, in.ProviderID, domain.WeekdayName(in.Date))
	switch {
	case err == nil:
		return dayWindow{Start: window.StartTime, End: window.EndTime}, true, nil
	case errors.Is(err, availabilitystore.ErrWindowNotFound):
		return dayWindow{}, false, nil
	default:
		return dayWindow{}, false, fmt.Errorf("%w: resolveWindow - get window: %v", ErrInternal, err)
	}
}
