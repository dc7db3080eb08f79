package payment_webhook

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Received bool   `json:"received"`
	Handled  bool   `json:"handled"`
	EventID  string `json:"eventId,omitempty"`
}
