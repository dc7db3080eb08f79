package update_cart_item

import (
	"context"

	updateCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/update_cart_item"
)

type UpdateCartItemUseCase interface {
	Execute(ctx context.Context, req *updateCartItem.Request) (*updateCartItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
