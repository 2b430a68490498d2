package open_dispute

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - заявление об открытии спора
type Request struct {
	BookingID   int64    `json:"booking_id"`
	Reason      string   `json:"reason"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence,omitempty"`
}

// Response - открытый спор
type Response struct {
	Dispute handlers.DisputeView `json:"dispute"`
}
