package invoice

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

// Repository репозиторий для работы со счетами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает счет для бронирования
// Уникальный индекс по booking_id гарантирует ровно один счет на бронирование.
// Вызывается внутри транзакции завершения бронирования
func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"number",
			"booking_id",
			"customer_id",
			"provider_id",
			"amount",
			"status",
		).
		Values(
			invoice.Number,
			invoice.BookingID,
			invoice.CustomerID,
			invoice.ProviderID,
			invoice.Amount,
			invoice.Status,
		).
		Suffix("RETURNING id, date_issued").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.DateIssued,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateInvoice
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return invoice, nil
}

// GetByBookingID получает счет по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"booking_id",
		"customer_id",
		"provider_id",
		"amount",
		"status",
		"date_issued",
	).
		From("invoices").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	var invoice domain.Invoice
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.Number,
		&invoice.BookingID,
		&invoice.CustomerID,
		&invoice.ProviderID,
		&invoice.Amount,
		&invoice.Status,
		&invoice.DateIssued,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan invoice: %w", ErrScanRow, err)
	}

	return &invoice, nil
}

// GetByProviderID получает счета исполнителя, сначала новые
// Используется для экрана заработка
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"booking_id",
		"customer_id",
		"provider_id",
		"amount",
		"status",
		"date_issued",
	).
		From("invoices").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("date_issued DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.Number,
			&invoice.BookingID,
			&invoice.CustomerID,
			&invoice.ProviderID,
			&invoice.Amount,
			&invoice.Status,
			&invoice.DateIssued,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProviderID - scan row: %w", ErrScanRow, err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - rows error: %w", ErrScanRow, err)
	}

	return invoices, nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
