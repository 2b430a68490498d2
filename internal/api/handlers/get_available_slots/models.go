package get_available_slots

// SlotResponse - предлагаемый слот
type SlotResponse struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
}

// Response - список слотов исполнителя на дату
type Response struct {
	ProviderID      int64          `json:"provider_id"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"duration_minutes"`
	Slots           []SlotResponse `json:"slots"`
}
