package create_checkout_session

import "github.com/m04kA/SMC-TeeTimeService/internal/domain"

// Settings параметры платёжных сессий из конфигурации
type Settings struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Request модель запроса на оформление заказа
type Request struct {
	SessionID string          // ID сессии корзины
	Customer  domain.Customer // Контакты покупателя
}

// Response модель ответа
type Response struct {
	PaymentSessionID string
	URL              string
	TotalPrice       float64
	Currency         string
	ItemCount        int
}
