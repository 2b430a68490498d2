package get_customer_bookings

import (
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

// Response - брони заказчика
type Response struct {
	Bookings []handlers.BookingView `json:"bookings"`
}

// Handler обрабатывает GET /api/v1/customers/me/bookings
type Handler struct {
	service BookingService
	logger  Logger
}

func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var status *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := handlers.ParseBookingStatus(raw)
		if !ok {
			handlers.RespondBadRequest(w, "unknown booking status")
			return
		}
		status = &parsed
	}

	result, err := h.service.GetByCustomer(r.Context(), customerID, status)
	if err != nil {
		h.logger.Error("[API][GetCustomerBookings] request failed: customerID=%d, err=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Bookings: handlers.NewBookingViews(result),
	})
}
