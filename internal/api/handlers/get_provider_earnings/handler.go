package get_provider_earnings

import (
	"net/http"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
)

// Response - сводка заработка исполнителя
type Response struct {
	ProviderID int64                  `json:"provider_id"`
	Total      float64                `json:"total"`
	Invoices   []handlers.InvoiceView `json:"invoices"`
}

// Handler обрабатывает GET /api/v1/providers/me/earnings
type Handler struct {
	service InvoiceService
	logger  Logger
}

func New(service InvoiceService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	earnings, err := h.service.GetProviderEarnings(r.Context(), providerID)
	if err != nil {
		h.logger.Error("[API][GetProviderEarnings] request failed: providerID=%d, err=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	views := make([]handlers.InvoiceView, 0, len(earnings.Invoices))
	for _, invoice := range earnings.Invoices {
		views = append(views, handlers.NewInvoiceView(invoice))
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		ProviderID: earnings.ProviderID,
		Total:      earnings.Total,
		Invoices:   views,
	})
}
