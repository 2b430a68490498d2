package get_invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/service/invoices"
)

// Response - счёт по брони
type Response struct {
	Invoice handlers.InvoiceView `json:"invoice"`
}

// Handler обрабатывает GET /api/v1/bookings/{bookingID}/invoice
type Handler struct {
	service InvoiceService
	logger  Logger
}

func New(service InvoiceService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid booking id")
		return
	}

	invoice, err := h.service.GetByBooking(r.Context(), bookingID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			handlers.RespondNotFound(w, "invoice not found")
		case errors.Is(err, invoices.ErrForbidden):
			handlers.RespondForbidden(w, "invoice belongs to other users")
		default:
			h.logger.Error("[API][GetInvoice] request failed: bookingID=%d, err=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Invoice: handlers.NewInvoiceView(invoice),
	})
}
