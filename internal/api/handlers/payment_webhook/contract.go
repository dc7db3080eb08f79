package payment_webhook

import (
	"context"

	paymentWebhook "github.com/m04kA/SMC-TeeTimeService/internal/usecase/payment_webhook"
)

type PaymentWebhookUseCase interface {
	Execute(ctx context.Context, req *paymentWebhook.Request) (*paymentWebhook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
