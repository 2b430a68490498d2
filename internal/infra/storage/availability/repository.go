package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/dbmetrics"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписанием доступности исполнителей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWindowsByProvider получает все повторяющиеся окна исполнителя
func (r *Repository) GetWindowsByProvider(ctx context.Context, providerID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWindowsByProvider - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindowsByProvider - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.ProviderID,
			&w.DayOfWeek,
			&w.StartTime,
			&w.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWindowsByProvider - scan row: %w", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWindowsByProvider - rows error: %w", ErrScanRow, err)
	}

	return windows, nil
}

// GetWindowByProviderAndDay получает окно исполнителя на день недели
func (r *Repository) GetWindowByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek string) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"provider_id": providerID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWindowByProviderAndDay - build select query: %w", ErrBuildQuery, err)
	}

	var w domain.AvailabilityWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.ProviderID,
		&w.DayOfWeek,
		&w.StartTime,
		&w.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindowByProviderAndDay - scan window: %w", ErrScanRow, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}

// ReplaceWindows заменяет все окна исполнителя на переданный набор
// Семантика замены дня - delete-then-insert, не merge.
// Должен вызываться внутри транзакции для атомарности замены
func (r *Repository) ReplaceWindows(ctx context.Context, providerID int64, windows []*domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWindows - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWindows - execute delete: %w", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns("provider_id", "day_of_week", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(providerID, w.DayOfWeek, w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWindows - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWindows - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteWindow удаляет окно исполнителя на день недели
func (r *Repository) DeleteWindow(ctx context.Context, providerID int64, dayOfWeek string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"provider_id": providerID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWindow - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// GetExceptionByProviderAndDate получает исключение исполнителя на дату
func (r *Repository) GetExceptionByProviderAndDate(ctx context.Context, providerID int64, date time.Time) (*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"date",
		"start_time",
		"end_time",
		"available",
		"created_at",
		"updated_at",
	).
		From("availability_exceptions").
		Where(squirrel.Eq{"provider_id": providerID, "date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionByProviderAndDate - build select query: %w", ErrBuildQuery, err)
	}

	var e domain.AvailabilityException
	var createdAt, updatedAt sql.NullTime
	var startTime, endTime sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&e.ProviderID,
		&e.Date,
		&startTime,
		&endTime,
		&e.Available,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionByProviderAndDate - scan exception: %w", ErrScanRow, err)
	}

	// Для available=false времена могут отсутствовать
	if startTime.Valid {
		if err := e.StartTime.Scan(startTime.String); err != nil {
			return nil, fmt.Errorf("%w: GetExceptionByProviderAndDate - parse start_time: %w", ErrScanRow, err)
		}
	}
	if endTime.Valid {
		if err := e.EndTime.Scan(endTime.String); err != nil {
			return nil, fmt.Errorf("%w: GetExceptionByProviderAndDate - parse end_time: %w", ErrScanRow, err)
		}
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

// UpsertException создает или заменяет исключение на дату
// Уникальность по (provider_id, date), insert-or-replace
func (r *Repository) UpsertException(ctx context.Context, exception *domain.AvailabilityException) (*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_exceptions").
		Columns("provider_id", "date", "start_time", "end_time", "available").
		Values(
			exception.ProviderID,
			exception.Date,
			exception.StartTime,
			exception.EndTime,
			exception.Available,
		).
		Suffix(`ON CONFLICT (provider_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			available = EXCLUDED.available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertException - build upsert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exception.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertException - execute upsert: %w", ErrExecQuery, err)
	}

	exception.CreatedAt = createdAt.Time
	exception.UpdatedAt = updatedAt.Time

	return exception, nil
}

// GetExceptionsByProvider получает все исключения исполнителя начиная с даты
func (r *Repository) GetExceptionsByProvider(ctx context.Context, providerID int64, from time.Time) ([]*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"date",
		"start_time",
		"end_time",
		"available",
		"created_at",
		"updated_at",
	).
		From("availability_exceptions").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.GtOrEq{"date": from}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByProvider - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByProvider - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.AvailabilityException, 0)
	for rows.Next() {
		var e domain.AvailabilityException
		var createdAt, updatedAt sql.NullTime
		var startTime, endTime sql.NullString

		err := rows.Scan(
			&e.ID,
			&e.ProviderID,
			&e.Date,
			&startTime,
			&endTime,
			&e.Available,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetExceptionsByProvider - scan row: %w", ErrScanRow, err)
		}

		if startTime.Valid {
			if err := e.StartTime.Scan(startTime.String); err != nil {
				return nil, fmt.Errorf("%w: GetExceptionsByProvider - parse start_time: %w", ErrScanRow, err)
			}
		}
		if endTime.Valid {
			if err := e.EndTime.Scan(endTime.String); err != nil {
				return nil, fmt.Errorf("%w: GetExceptionsByProvider - parse end_time: %w", ErrScanRow, err)
			}
		}

		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time
		exceptions = append(exceptions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByProvider - rows error: %w", ErrScanRow, err)
	}

	return exceptions, nil
}
