package pushgateway

// Notification - пуш-уведомление для доставки на устройство
type Notification struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}
