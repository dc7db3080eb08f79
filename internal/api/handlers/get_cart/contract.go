package get_cart

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) (*cart.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
