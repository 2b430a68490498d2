package mark_awaiting_confirmation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/bookings"
)

// Handler обрабатывает POST /api/v1/bookings/{bookingID}/complete
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

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid booking id")
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	booking, err := h.service.MarkAwaitingConfirmation(r.Context(), bookingID, providerID, req.CompletionImage)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, "booking not found")
		case errors.Is(err, bookings.ErrForbidden):
			handlers.RespondForbidden(w, "booking belongs to another provider")
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondConflict(w, "booking is not confirmed")
		default:
			h.logger.Error("[API][MarkAwaitingConfirmation] request failed: bookingID=%d, err=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Booking: handlers.NewBookingView(booking),
	})
}
