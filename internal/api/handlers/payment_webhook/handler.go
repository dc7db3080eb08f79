package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	paymentWebhook "github.com/m04kA/SMC-TeeTimeService/internal/usecase/payment_webhook"
)

const (
	msgInvalidBody      = "некорректное тело события"
	msgInvalidSignature = "некорректная подпись"
)

type Handler struct {
	useCase PaymentWebhookUseCase
	logger  Logger
}

func NewHandler(useCase PaymentWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/payments
// Подпись считается по сырому телу, поэтому тело не декодируется до проверки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := handlers.ReadBody(r)
	if err != nil {
		h.logger.Warn("POST /webhooks/payments - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &paymentWebhook.Request{
		Payload:   payload,
		Signature: r.Header.Get(paymentWebhook.SignatureHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentWebhook.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/payments - Invalid signature")
			handlers.RespondUnauthorized(w, msgInvalidSignature)
		case errors.Is(err, paymentWebhook.ErrInvalidPayload):
			h.logger.Warn("POST /webhooks/payments - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)
		default:
			h.logger.Error("POST /webhooks/payments - Failed to process event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &WebhookResponse{
		Received: true,
		Handled:  result.Handled,
		EventID:  result.EventID,
	})
}
