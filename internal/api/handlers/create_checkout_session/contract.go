package create_checkout_session

import (
	"context"

	createCheckoutSession "github.com/m04kA/SMC-TeeTimeService/internal/usecase/create_checkout_session"
)

type CreateCheckoutSessionUseCase interface {
	Execute(ctx context.Context, req *createCheckoutSession.Request) (*createCheckoutSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
