package upsert_exception

import (
	"errors"
	"net/http"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// Handler обрабатывает PUT /api/v1/providers/me/availability/exceptions
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func New(service AvailabilityService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.UserID(r.Context())
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

	exception := &domain.AvailabilityException{
		ProviderID: providerID,
		Date:       date,
		Available:  req.Available,
	}
	if req.StartTime != nil {
		exception.StartTime = types.TimeString(*req.StartTime)
	}
	if req.EndTime != nil {
		exception.EndTime = types.TimeString(*req.EndTime)
	}

	stored, err := h.service.UpsertException(r.Context(), exception)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate),
			errors.Is(err, availability.ErrInvalidWindow):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("[API][UpsertException] request failed: providerID=%d, err=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Exception: handlers.NewExceptionView(stored),
	})
}
