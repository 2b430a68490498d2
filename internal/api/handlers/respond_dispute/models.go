package respond_dispute

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - ответ исполнителя на спор.
// Для rejected обязательно пояснение
type Request struct {
	Response          string  `json:"response"` // accepted или rejected
	ResolutionDetails *string `json:"resolution_details,omitempty"`
}

// Response - спор после ответа исполнителя
type Response struct {
	Dispute handlers.DisputeView `json:"dispute"`
}
