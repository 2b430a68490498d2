package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	usecase "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/get_available_slots"
)

// Handler обрабатывает GET /api/v1/providers/{providerID}/slots
type Handler struct {
	usecase Usecase
	logger  Logger
}

func New(uc Usecase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerID"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, "invalid provider id")
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}

	duration := domain.SlotGranularityMinutes
	if raw := r.URL.Query().Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, "invalid duration")
			return
		}
	}

	out, err := h.usecase.Handle(r.Context(), usecase.In{
		ProviderID:      providerID,
		Date:            date,
		DurationMinutes: duration,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProviderID),
			errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidDuration):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrProviderNotFound):
			handlers.RespondNotFound(w, "provider not found")
		default:
			h.logger.Error("[API][GetAvailableSlots] request failed: providerID=%d, err=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(out))
}

func toResponse(out *usecase.Out) Response {
	slots := make([]SlotResponse, 0, len(out.Slots))
	for i := range out.Slots {
		slot := &out.Slots[i]
		end, err := slot.EndTime()
		if err != nil {
			continue
		}
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         end.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		})
	}

	return Response{
		ProviderID:      out.ProviderID,
		Date:            out.Date.Format(domain.DateFormat),
		DurationMinutes: out.DurationMinutes,
		Slots:           slots,
	}
}
