package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

type BookingService interface {
	GetByPaymentSession(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
