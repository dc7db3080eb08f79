package confirm_payment

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// State состояние подтверждения оплаты
type State string

const (
	StatePending   State = "pending"
	StateRetrying  State = "retrying"
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
)

// IsTerminal возвращает true для конечных состояний
func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateFailed
}

// ProcessingMessage сообщение клиенту, когда оплата ещё не подтвердилась
const ProcessingMessage = "Your payment is being processed. Your booking will be confirmed by email shortly."

// RetryPolicy ограничение попыток подтверждения
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Request модель запроса
type Request struct {
	PaymentSessionID string
	CartSessionID    string // Необязательно: сверяется с корзиной бронирований
}

// Response модель ответа
type Response struct {
	State    State
	Attempts int
	Message  string
	Bookings []*domain.Booking
}
