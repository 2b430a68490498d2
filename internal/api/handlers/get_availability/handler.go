package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
)

// Response - расписание исполнителя: окна и будущие исключения
type Response struct {
	ProviderID int64                    `json:"provider_id"`
	Windows    []handlers.WindowView    `json:"windows"`
	Exceptions []handlers.ExceptionView `json:"exceptions"`
}

// Handler обрабатывает GET /api/v1/providers/{providerID}/availability
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func New(service AvailabilityService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid provider id")
		return
	}

	schedule, err := h.service.GetByProvider(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidProviderID):
			handlers.RespondBadRequest(w, "invalid provider id")
		default:
			h.logger.Error("[API][GetAvailability] request failed: providerID=%d, err=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		ProviderID: providerID,
		Windows:    handlers.NewWindowViews(schedule.Windows),
		Exceptions: handlers.NewExceptionViews(schedule.Exceptions),
	})
}
