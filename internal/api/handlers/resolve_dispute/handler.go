package resolve_dispute

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/disputes"
)

// Handler обрабатывает POST /api/v1/admin/disputes/{disputeID}/resolve.
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

	disputeID, err := strconv.ParseInt(mux.Vars(r)["disputeID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid dispute id")
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	dispute, err := h.service.AdminResolve(r.Context(), disputeID, req.Decision, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, disputes.ErrInvalidDecision):
			handlers.RespondBadRequest(w, "decision must be approved or rejected")
		case errors.Is(err, disputes.ErrMissingNote):
			handlers.RespondBadRequest(w, "resolution note is required")
		case errors.Is(err, disputes.ErrDisputeNotFound):
			handlers.RespondNotFound(w, "dispute not found")
		case errors.Is(err, disputes.ErrInvalidTransition):
			handlers.RespondConflict(w, "dispute is not awaiting admin review")
		default:
			h.logger.Error("[API][ResolveDispute] request failed: disputeID=%d, err=%v", disputeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Dispute: handlers.NewDisputeView(dispute),
	})
}
