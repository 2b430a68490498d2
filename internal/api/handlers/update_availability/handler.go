package update_availability

import (
	"errors"
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// Handler обрабатывает PUT /api/v1/providers/me/availability
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

	windows := make([]*domain.AvailabilityWindow, 0, len(req.Windows))
	for _, win := range req.Windows {
		windows = append(windows, &domain.AvailabilityWindow{
			ProviderID: providerID,
			DayOfWeek:  win.DayOfWeek,
			StartTime:  types.TimeString(win.StartTime),
			EndTime:    types.TimeString(win.EndTime),
		})
	}

	stored, err := h.service.SetWeek(r.Context(), providerID, windows)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidWeekday),
			errors.Is(err, availability.ErrInvalidWindow),
			errors.Is(err, availability.ErrDuplicateWeekday):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("[API][UpdateAvailability] request failed: providerID=%d, err=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Windows: handlers.NewWindowViews(stored),
	})
}
