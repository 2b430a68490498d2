package confirm_completion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/confirm_completion"
)

// Handler обрабатывает POST /api/v1/bookings/{bookingID}/confirm
type Handler struct {
	usecase Usecase
	logger  Logger
}

func New(uc Usecase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid booking id")
		return
	}

	out, err := h.usecase.Handle(r.Context(), usecase.In{
		BookingID:  bookingID,
		CustomerID: customerID,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingID),
			errors.Is(err, usecase.ErrInvalidCustomerID):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrBookingNotFound):
			handlers.RespondNotFound(w, "booking not found")
		case errors.Is(err, usecase.ErrForbidden):
			handlers.RespondForbidden(w, "booking belongs to another customer")
		case errors.Is(err, usecase.ErrInvalidStatus):
			handlers.RespondConflict(w, "booking is not awaiting confirmation")
		case errors.Is(err, usecase.ErrProviderRateMissing):
			handlers.RespondConflict(w, "provider hourly rate is not set")
		default:
			h.logger.Error("[API][ConfirmCompletion] request failed: bookingID=%d, err=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Booking: handlers.NewBookingView(out.Booking),
		Invoice: handlers.NewInvoiceView(out.Invoice),
	})
}
