package delete_availability_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
)

// Handler обрабатывает DELETE /api/v1/providers/me/availability/{day}
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

	day := mux.Vars(r)["day"]

	if err := h.service.DeleteDay(r.Context(), providerID, day); err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidWeekday):
			handlers.RespondBadRequest(w, "invalid day of week")
		case errors.Is(err, availability.ErrWindowNotFound):
			handlers.RespondNotFound(w, "no availability window for this day")
		default:
			h.logger.Error("[API][DeleteAvailabilityDay] request failed: providerID=%d, day=%s, err=%v", providerID, day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
