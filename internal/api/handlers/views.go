package handlers

import (
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

// BookingView - представление брони в ответах API
type BookingView struct {
	ID                int64    `json:"id"`
	ProviderID        int64    `json:"provider_id"`
	CustomerID        int64    `json:"customer_id"`
	Date              string   `json:"date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	DurationMinutes   int      `json:"duration_minutes"`
	Description       string   `json:"description,omitempty"`
	Status            string   `json:"status"`
	Price             *float64 `json:"price,omitempty"`
	CompletionImage   *string  `json:"completion_image,omitempty"`
	CompletedAt       *string  `json:"completed_at,omitempty"`
	CancelledAt       *string  `json:"cancelled_at,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

// NewBookingView собирает представление брони
func NewBookingView(b *domain.Booking) BookingView {
	return BookingView{
		ID:              b.ID,
		ProviderID:      b.ProviderID,
		CustomerID:      b.CustomerID,
		Date:            b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Description:     b.Description,
		Status:          string(b.Status),
		Price:           b.Price,
		CompletionImage: b.CompletionImage,
		CompletedAt:     formatTimePtr(b.CompletedAt),
		CancelledAt:     formatTimePtr(b.CancelledAt),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// NewBookingViews собирает список представлений броней
func NewBookingViews(bookings []*domain.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views
}

// DisputeView - представление спора в ответах API
type DisputeView struct {
	ID               int64    `json:"id"`
	BookingID        int64    `json:"booking_id"`
	CustomerID       int64    `json:"customer_id"`
	ProviderID       int64    `json:"provider_id"`
	Reason           string   `json:"reason"`
	Description      string   `json:"description"`
	Evidence         []string `json:"evidence"`
	Status           string   `json:"status"`
	ProviderResponse *string  `json:"provider_response,omitempty"`
	AdminResponse    *string  `json:"admin_response,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// NewDisputeView собирает представление спора
func NewDisputeView(d *domain.Dispute) DisputeView {
	evidence := d.Evidence
	if evidence == nil {
		evidence = []string{}
	}
	return DisputeView{
		ID:               d.ID,
		BookingID:        d.BookingID,
		CustomerID:       d.CustomerID,
		ProviderID:       d.ProviderID,
		Reason:           d.Reason,
		Description:      d.Description,
		Evidence:         evidence,
		Status:           string(d.Status),
		ProviderResponse: d.ProviderResponse,
		AdminResponse:    d.AdminResponse,
		CreatedAt:        d.CreatedAt.Format(time.RFC3339),
	}
}

// NewDisputeViews собирает список представлений споров
func NewDisputeViews(disputes []*domain.Dispute) []DisputeView {
	views := make([]DisputeView, 0, len(disputes))
	for _, d := range disputes {
		views = append(views, NewDisputeView(d))
	}
	return views
}

// InvoiceView - представление счёта в ответах API
type InvoiceView struct {
	ID         int64   `json:"id"`
	Number     string  `json:"number"`
	BookingID  int64   `json:"booking_id"`
	CustomerID int64   `json:"customer_id"`
	ProviderID int64   `json:"provider_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	DateIssued string  `json:"date_issued"`
}

// NewInvoiceView собирает представление счёта
func NewInvoiceView(i *domain.Invoice) InvoiceView {
	return InvoiceView{
		ID:         i.ID,
		Number:     i.Number,
		BookingID:  i.BookingID,
		CustomerID: i.CustomerID,
		ProviderID: i.ProviderID,
		Amount:     i.Amount,
		Status:     string(i.Status),
		DateIssued: i.DateIssued.Format(time.RFC3339),
	}
}

// WindowView - представление недельного окна доступности
type WindowView struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// NewWindowViews собирает список представлений окон
func NewWindowViews(windows []*domain.AvailabilityWindow) []WindowView {
	views := make([]WindowView, 0, len(windows))
	for _, w := range windows {
		views = append(views, WindowView{
			ID:        w.ID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}
	return views
}

// ExceptionView - представление исключения на дату
type ExceptionView struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Available bool    `json:"available"`
}

// NewExceptionView собирает представление исключения
func NewExceptionView(e *domain.AvailabilityException) ExceptionView {
	view := ExceptionView{
		ID:        e.ID,
		Date:      e.Date.Format(domain.DateFormat),
		Available: e.Available,
	}
	if !e.StartTime.IsZero() {
		start := e.StartTime.String()
		view.StartTime = &start
	}
	if !e.EndTime.IsZero() {
		end := e.EndTime.String()
		view.EndTime = &end
	}
	return view
}

// NewExceptionViews собирает список представлений исключений
func NewExceptionViews(exceptions []*domain.AvailabilityException) []ExceptionView {
	views := make([]ExceptionView, 0, len(exceptions))
	for _, e := range exceptions {
		views = append(views, NewExceptionView(e))
	}
	return views
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
