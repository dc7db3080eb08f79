package create_checkout_session

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	createCheckoutSession "github.com/m04kA/SMC-TeeTimeService/internal/usecase/create_checkout_session"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	SessionID string          `json:"sessionId"` // ID сессии корзины
	Customer  domain.Customer `json:"customer"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	SessionID  string  `json:"sessionId"` // ID платёжной сессии
	URL        string  `json:"url"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
	ItemCount  int     `json:"itemCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckoutRequest) ToUseCaseRequest() *createCheckoutSession.Request {
	return &createCheckoutSession.Request{
		SessionID: r.SessionID,
		Customer:  r.Customer,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckoutSession.Response) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:  resp.PaymentSessionID,
		URL:        resp.URL,
		TotalPrice: resp.TotalPrice,
		Currency:   resp.Currency,
		ItemCount:  resp.ItemCount,
	}
}
