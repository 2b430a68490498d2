package get_available_slots

import (
	"fmt"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/types"
)

// generateSlots строит решётку кандидатов внутри рабочего окна с шагом
// domain.SlotGranularityMinutes. Кандидат попадает в список, только если
// целиком помещается в окно. Доступность проставляется по занятым броням
// и по отсечке now для сегодняшней даты.
func generateSlots(window dayWindow, durationMinutes int, bookings []*domain.Booking, date time.Time, now time.Time) ([]domain.OfferableSlot, error) {
	windowMinutes, err := window.Start.MinutesUntil(window.End)
	if err != nil {
		return nil, fmt.Errorf("window bounds: %w", err)
	}

	slots := make([]domain.OfferableSlot, 0)

	for offset := 0; offset+durationMinutes <= windowMinutes; offset += domain.SlotGranularityMinutes {
		start, err := window.Start.AddMinutes(offset)
		if err != nil {
			return nil, fmt.Errorf("slot start: %w", err)
		}
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("slot end: %w", err)
		}

		available := !overlapsAny(start, end, bookings) && !startPassed(start, date, now)

		slots = append(slots, domain.OfferableSlot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			Available:       available,
		})
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата с блокирующими бронями.
// Правило строгое: cand_start < b_end && cand_end > b_start.
// Смежные брони (end == start) пересечением не считаются.
func overlapsAny(candStart, candEnd types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.BlocksSlot() {
			continue
		}
		if candStart.IsBefore(booking.EndTime) && candEnd.IsAfter(booking.StartTime) {
			return true
		}
	}
	return false
}

// startPassed отсекает слоты, начало которых уже прошло для сегодняшней даты
func startPassed(start types.TimeString, date time.Time, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	if y != ny || m != nm || d != nd {
		return false
	}

	nowTime := types.NewTimeString(now)
	return !start.IsAfter(nowTime)
}
