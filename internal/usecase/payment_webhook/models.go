package payment_webhook

import "github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"

const (
	// SignatureHeader заголовок с hex-кодированной HMAC-SHA256 подписью тела
	SignatureHeader = "X-Payment-Signature"

	EventSessionCompleted      = "checkout.session.completed"
	EventSessionExpired        = "checkout.session.expired"
	EventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
)

// Event событие платёжного шлюза
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID                string                 `json:"id"`
			ClientReferenceID string                 `json:"client_reference_id"`
			PaymentStatus     payments.PaymentStatus `json:"payment_status"`
			Metadata          map[string]string      `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// IsPaid возвращает true, если сессия в событии оплачена
// Завершённая сессия с отложенным способом оплаты приходит как unpaid
func (e *Event) IsPaid() bool {
	status := e.Data.Object.PaymentStatus
	return status == payments.PaymentPaid || status == payments.PaymentNoPaymentRequired
}

// Request модель запроса
type Request struct {
	Payload   []byte
	Signature string
}

// Response модель ответа
type Response struct {
	EventID  string
	Type     string
	Handled  bool
	Bookings int
}
