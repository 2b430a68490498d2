package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/bookings"
)

// Response - отменённая бронь
type Response struct {
	Booking handlers.BookingView `json:"booking"`
}

// Handler обрабатывает POST /api/v1/bookings/{bookingID}/cancel
type Handler struct {
	service BookingService
	logger  Logger
}

func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, "booking not found")
		case errors.Is(err, bookings.ErrForbidden):
			handlers.RespondForbidden(w, "only booking participants can cancel it")
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondConflict(w, "booking cannot be cancelled in its current status")
		default:
			h.logger.Error("[API][CancelBooking] request failed: bookingID=%d, err=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Booking: handlers.NewBookingView(booking),
	})
}
