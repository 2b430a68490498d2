package dispute

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/dbmetrics"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки Postgres при нарушении уникальности
const uniqueViolationCode = "23505"

// disputeColumns колонки таблицы disputes в порядке сканирования
var disputeColumns = []string{
	"id",
	"booking_id",
	"customer_id",
	"provider_id",
	"reason",
	"description",
	"evidence",
	"status",
	"provider_response",
	"admin_response",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со спорами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория споров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый спор
// Уникальный индекс по booking_id гарантирует один спор на бронирование
func (r *Repository) Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("disputes").
		Columns(
			"booking_id",
			"customer_id",
			"provider_id",
			"reason",
			"description",
			"evidence",
			"status",
		).
		Values(
			dispute.BookingID,
			dispute.CustomerID,
			dispute.ProviderID,
			dispute.Reason,
			dispute.Description,
			pq.Array(dispute.Evidence),
			dispute.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dispute.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateDispute
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	dispute.CreatedAt = createdAt.Time
	dispute.UpdatedAt = updatedAt.Time

	return dispute, nil
}

// GetByID получает спор по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Dispute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	dispute, err := scanDispute(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDisputeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan dispute: %w", ErrScanRow, err)
	}

	return dispute, nil
}

// GetByBookingID получает спор по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Dispute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	dispute, err := scanDispute(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDisputeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan dispute: %w", ErrScanRow, err)
	}

	return dispute, nil
}

// GetByProviderID получает споры исполнителя
// Опционально фильтрует по статусу
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64, status *domain.DisputeStatus) ([]*domain.Dispute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDisputes(rows)
}

// GetByStatus получает все споры в указанном статусе
// Используется админкой для очереди эскалированных споров
func (r *Repository) GetByStatus(ctx context.Context, status domain.DisputeStatus) ([]*domain.Dispute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(disputeColumns...).
		From("disputes").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDisputes(rows)
}

// SetProviderResponse условно переводит спор из pending_provider в to,
// сохраняя ответ исполнителя. Возвращает ErrStatusConflict при несовпадении статуса
func (r *Repository) SetProviderResponse(ctx context.Context, id int64, to domain.DisputeStatus, response *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("disputes").
		Set("status", to).
		Set("provider_response", response).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.DisputePendingProvider}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetProviderResponse - build update query: %w", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, query, args, "SetProviderResponse")
}

// SetAdminResolution условно переводит спор из pending_admin в to,
// сохраняя решение администратора. Возвращает ErrStatusConflict при несовпадении статуса
func (r *Repository) SetAdminResolution(ctx context.Context, id int64, to domain.DisputeStatus, response *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("disputes").
		Set("status", to).
		Set("admin_response", response).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.DisputePendingAdmin}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAdminResolution - build update query: %w", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, query, args, "SetAdminResolution")
}

// execConditional выполняет условное обновление и возвращает ErrStatusConflict,
// если ни одна строка не была затронута
func (r *Repository) execConditional(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// rowScanner абстракция над *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDispute сканирует одну строку в domain.Dispute
func scanDispute(row rowScanner) (*domain.Dispute, error) {
	var dispute domain.Dispute
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&dispute.ID,
		&dispute.BookingID,
		&dispute.CustomerID,
		&dispute.ProviderID,
		&dispute.Reason,
		&dispute.Description,
		pq.Array(&dispute.Evidence),
		&dispute.Status,
		&dispute.ProviderResponse,
		&dispute.AdminResponse,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	dispute.CreatedAt = createdAt.Time
	dispute.UpdatedAt = updatedAt.Time

	return &dispute, nil
}

// scanDisputes сканирует результаты запроса в слайс споров
func scanDisputes(rows *sql.Rows) ([]*domain.Dispute, error) {
	disputes := make([]*domain.Dispute, 0)

	for rows.Next() {
		dispute, err := scanDispute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDisputes - scan row: %w", ErrScanRow, err)
		}
		disputes = append(disputes, dispute)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDisputes - rows error: %w", ErrScanRow, err)
	}

	return disputes, nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
