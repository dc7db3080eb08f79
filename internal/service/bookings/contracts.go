package bookings

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPaymentSession(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
	UpdateStatusByPaymentSession(ctx context.Context, paymentSessionID string, from, to domain.BookingStatus) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
