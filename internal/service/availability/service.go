package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// Service управляет расписанием доступности исполнителя:
// недельными окнами и исключениями на конкретные даты
type Service struct {
	repo         Repository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

func New(repo Repository, txManager TxManager, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SetWeek заменяет недельное расписание исполнителя на переданный набор окон.
// Замена атомарна: старые окна удаляются и новые вставляются в одной транзакции
func (s *Service) SetWeek(ctx context.Context, providerID int64, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	if providerID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProviderID, providerID)
	}

	seen := make(map[string]struct{}, len(windows))
	for _, w := range windows {
		if err := validateWindow(w); err != nil {
			return nil, err
		}
		if _, ok := seen[w.DayOfWeek]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeekday, w.DayOfWeek)
		}
		seen[w.DayOfWeek] = struct{}{}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.ReplaceWindows(txCtx, providerID, windows); err != nil {
			return fmt.Errorf("%w: SetWeek - replace windows: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.GetWindowsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: SetWeek - reload windows: %v", ErrInternal, err)
	}

	s.logger.Info("[Service][Availability] week schedule replaced: providerID=%d, windows=%d", providerID, len(stored))

	return stored, nil
}

// DeleteDay удаляет окно исполнителя на день недели
func (s *Service) DeleteDay(ctx context.Context, providerID int64, dayOfWeek string) error {
	if providerID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProviderID, providerID)
	}
	if !domain.IsValidWeekday(dayOfWeek) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, dayOfWeek)
	}

	if err := s.repo.DeleteWindow(ctx, providerID, dayOfWeek); err != nil {
		if errors.Is(err, availabilitystore.ErrWindowNotFound) {
			return fmt.Errorf("%w: providerID=%d, day=%s", ErrWindowNotFound, providerID, dayOfWeek)
		}
		return fmt.Errorf("%w: DeleteDay - delete window: %v", ErrInternal, err)
	}

	s.logger.Info("[Service][Availability] day window deleted: providerID=%d, day=%s", providerID, dayOfWeek)

	return nil
}

// UpsertException создаёт или заменяет исключение на дату.
// Для available=false времена не требуются: дата закрывается целиком
func (s *Service) UpsertException(ctx context.Context, exception *domain.AvailabilityException) (*domain.AvailabilityException, error) {
	if exception.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProviderID, exception.ProviderID)
	}
	if exception.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if exception.Available {
		if err := validateBounds(exception.StartTime, exception.EndTime); err != nil {
			return nil, err
		}
	}

	stored, err := s.repo.UpsertException(ctx, exception)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertException - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("[Service][Availability] exception upserted: providerID=%d, date=%s, available=%t",
		stored.ProviderID, stored.Date.Format(domain.DateFormat), stored.Available)

	return stored, nil
}

// GetByProvider возвращает недельные окна и будущие исключения исполнителя
func (s *Service) GetByProvider(ctx context.Context, providerID int64) (*Schedule, error) {
	if providerID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProviderID, providerID)
	}

	windows, err := s.repo.GetWindowsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - get windows: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	exceptions, err := s.repo.GetExceptionsByProvider(ctx, providerID, today)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - get exceptions: %v", ErrInternal, err)
	}

	return &Schedule{Windows: windows, Exceptions: exceptions}, nil
}

func validateWindow(w *domain.AvailabilityWindow) error {
	if !domain.IsValidWeekday(w.DayOfWeek) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, w.DayOfWeek)
	}
	return validateBounds(w.StartTime, w.EndTime)
}

func validateBounds(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidWindow, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidWindow, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, start, end)
	}
	return nil
}
