package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
)

// BookingService сервис бронирований
type BookingService interface {
	GetByPaymentSession(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
}

// PaymentsClient клиент платёжного шлюза
type PaymentsClient interface {
	GetSession(ctx context.Context, sessionID string) (*payments.Session, error)
}

// CartService сервис корзин
type CartService interface {
	Clear(ctx context.Context, sessionID string) error
}

// Sleeper пауза между попытками, прерываемая контекстом
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealSleeper пауза на реальном таймере
type RealSleeper struct{}

// Sleep ждёт d или отмены контекста
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
