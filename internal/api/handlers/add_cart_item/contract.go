package add_cart_item

import (
	"context"

	addCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/add_cart_item"
)

type AddCartItemUseCase interface {
	Execute(ctx context.Context, req *addCartItem.Request) (*addCartItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
