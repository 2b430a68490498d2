package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/create_booking"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// Handler обрабатывает POST /api/v1/bookings
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

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}

	out, err := h.usecase.Handle(r.Context(), usecase.In{
		CustomerID:      customerID,
		ProviderID:      req.ProviderID,
		Date:            date,
		StartTime:       types.TimeString(req.StartTime),
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCustomerID),
			errors.Is(err, usecase.ErrInvalidProviderID),
			errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidStartTime),
			errors.Is(err, usecase.ErrInvalidDuration),
			errors.Is(err, usecase.ErrInvalidDescription):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrCustomerNotFound),
			errors.Is(err, usecase.ErrProviderNotFound):
			handlers.RespondNotFound(w, err.Error())
		case errors.Is(err, usecase.ErrSlotUnavailable):
			handlers.RespondConflict(w, "requested slot is not available")
		default:
			h.logger.Error("[API][CreateBooking] request failed: customerID=%d, err=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, Response{
		Booking: handlers.NewBookingView(out.Booking),
	})
}
