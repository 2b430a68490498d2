package respond_dispute

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/disputes"
)

// Handler обрабатывает POST /api/v1/disputes/{disputeID}/respond
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

	dispute, err := h.service.ProviderRespond(r.Context(), disputeID, providerID, req.Response, req.ResolutionDetails)
	if err != nil {
		switch {
		case errors.Is(err, disputes.ErrInvalidResponse):
			handlers.RespondBadRequest(w, "response must be accepted or rejected")
		case errors.Is(err, disputes.ErrMissingNote):
			handlers.RespondBadRequest(w, "rejection requires resolution details")
		case errors.Is(err, disputes.ErrDisputeNotFound):
			handlers.RespondNotFound(w, "dispute not found")
		case errors.Is(err, disputes.ErrForbidden):
			handlers.RespondForbidden(w, "dispute belongs to another provider")
		case errors.Is(err, disputes.ErrInvalidTransition):
			handlers.RespondConflict(w, "dispute is not awaiting provider response")
		default:
			h.logger.Error("[API][RespondDispute] request failed: disputeID=%d, err=%v", disputeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Dispute: handlers.NewDisputeView(dispute),
	})
}
