package payments

// PaymentStatus статус оплаты сессии на стороне шлюза
type PaymentStatus string

const (
	PaymentPaid              PaymentStatus = "paid"
	PaymentUnpaid            PaymentStatus = "unpaid"
	PaymentNoPaymentRequired PaymentStatus = "no_payment_required"
)

// LineItem позиция платёжной сессии
type LineItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // в минимальных единицах валюты
	Quantity    int    `json:"quantity"`
}

// CreateSessionRequest запрос на создание хостированной платёжной сессии
type CreateSessionRequest struct {
	Mode              string            `json:"mode"`
	Currency          string            `json:"currency"`
	CustomerEmail     string            `json:"customer_email"`
	ClientReferenceID string            `json:"client_reference_id"`
	SuccessURL        string            `json:"success_url"`
	CancelURL         string            `json:"cancel_url"`
	LineItems         []LineItem        `json:"line_items"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Session платёжная сессия
type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// IsPaid возвращает true, если оплата прошла
func (s *Session) IsPaid() bool {
	return s.PaymentStatus == PaymentPaid || s.PaymentStatus == PaymentNoPaymentRequired
}

// IsExpired возвращает true, если сессия истекла без оплаты
func (s *Session) IsExpired() bool {
	return s.Status == "expired"
}

// ErrorResponse модель ошибки от платёжного шлюза
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
