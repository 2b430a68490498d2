package get_admin_disputes

import (
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
)

// Response - очередь споров, ожидающих решения администратора
type Response struct {
	Disputes []handlers.DisputeView `json:"disputes"`
}

// Handler обрабатывает GET /api/v1/admin/disputes.
// Операция доступна только администраторам
type Handler struct {
	service    DisputeService
	userClient UserClient
	logger     Logger
}

func New(service DisputeService, userClient UserClient, logger Logger) *Handler {
	return &Handler{service: service, userClient: userClient, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	actor, err := h.userClient.GetUser(r.Context(), actorID)
	if err != nil || !actor.IsAdmin() {
		handlers.RespondForbidden(w, "admin access required")
		return
	}

	result, err := h.service.GetAdminQueue(r.Context())
	if err != nil {
		h.logger.Error("[API][GetAdminDisputes] request failed: err=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Disputes: handlers.NewDisputeViews(result),
	})
}
