package open_dispute

import (
	"errors"
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/open_dispute"
)

// Handler обрабатывает POST /api/v1/disputes
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

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	out, err := h.usecase.Handle(r.Context(), usecase.In{
		BookingID:   req.BookingID,
		CustomerID:  customerID,
		Reason:      req.Reason,
		Description: req.Description,
		Evidence:    req.Evidence,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingID),
			errors.Is(err, usecase.ErrInvalidCustomerID),
			errors.Is(err, usecase.ErrInvalidReason):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrBookingNotFound):
			handlers.RespondNotFound(w, "booking not found")
		case errors.Is(err, usecase.ErrForbidden):
			handlers.RespondForbidden(w, "booking belongs to another customer")
		case errors.Is(err, usecase.ErrBookingNotCompleted):
			handlers.RespondConflict(w, "disputes can only be opened for completed bookings")
		case errors.Is(err, usecase.ErrDisputeWindowExpired):
			handlers.RespondConflict(w, "dispute window has expired")
		case errors.Is(err, usecase.ErrDisputeAlreadyExists):
			handlers.RespondConflict(w, "a dispute already exists for this booking")
		default:
			h.logger.Error("[API][OpenDispute] request failed: bookingID=%d, err=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, Response{
		Dispute: handlers.NewDisputeView(out.Dispute),
	})
}
