package create_checkout_session

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// CartService сервис корзин
type CartService interface {
	Get(ctx context.Context, sessionID string) (*cart.Summary, error)
}

// PaymentsClient клиент платёжного шлюза
type PaymentsClient interface {
	CreateSession(ctx context.Context, req *payments.CreateSessionRequest) (*payments.Session, error)
	ExpireSession(ctx context.Context, sessionID string) (*payments.Session, error)
}

// BookingService сервис бронирований
type BookingService interface {
	CreatePending(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
