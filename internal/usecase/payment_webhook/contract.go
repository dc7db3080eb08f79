package payment_webhook

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// BookingService сервис бронирований
type BookingService interface {
	Confirm(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
	Expire(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
}

// CartService сервис корзин
type CartService interface {
	Clear(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
