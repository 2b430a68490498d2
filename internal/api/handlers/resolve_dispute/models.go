package resolve_dispute

import "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers"

// Request - решение администратора по спору
type Request struct {
	Decision string `json:"decision"` // approved или rejected
	Note     string `json:"note"`
}

// Response - спор после решения администратора
type Response struct {
	Dispute handlers.DisputeView `json:"dispute"`
}
