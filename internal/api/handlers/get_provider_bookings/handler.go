package get_provider_bookings

import (
	"net/http"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

// Response - брони исполнителя
type Response struct {
	Bookings []handlers.BookingView `json:"bookings"`
}

// Handler обрабатывает GET /api/v1/providers/me/bookings
type Handler struct {
	service BookingService
	logger  Logger
}

func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	filter := domain.ProviderBookingsFilter{ProviderID: providerID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, "invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := handlers.ParseBookingStatus(raw)
		if !ok {
			handlers.RespondBadRequest(w, "unknown booking status")
			return
		}
		filter.Status = &status
	}

	if r.URL.Query().Get("include_inactive") == "true" {
		filter.IncludeInactive = true
	}

	result, err := h.service.GetByProvider(r.Context(), filter)
	if err != nil {
		h.logger.Error("[API][GetProviderBookings] request failed: providerID=%d, err=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Bookings: handlers.NewBookingViews(result),
	})
}
