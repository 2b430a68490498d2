package get_provider_disputes

import (
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
)

// Response - споры исполнителя
type Response struct {
	Disputes []handlers.DisputeView `json:"disputes"`
}

// Handler обрабатывает GET /api/v1/providers/me/disputes
type Handler struct {
	service DisputeService
	logger  Logger
}

func New(service DisputeService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var status *domain.DisputeStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := handlers.ParseDisputeStatus(raw)
		if !ok {
			handlers.RespondBadRequest(w, "unknown dispute status")
			return
		}
		status = &parsed
	}

	result, err := h.service.GetByProvider(r.Context(), providerID, status)
	if err != nil {
		h.logger.Error("[API][GetProviderDisputes] request failed: providerID=%d, err=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Disputes: handlers.NewDisputeViews(result),
	})
}
