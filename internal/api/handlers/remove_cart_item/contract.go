package remove_cart_item

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

type CartService interface {
	RemoveItem(ctx context.Context, sessionID, itemID string) (*cart.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
