package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	createCheckoutSession "github.com/m04kA/SMC-TeeTimeService/internal/usecase/create_checkout_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные контактные данные или сессия корзины"
	msgEmptyCart          = "корзина пуста"
	msgPaymentRejected    = "платёжный шлюз отклонил оформление заказа"
)

type Handler struct {
	useCase CreateCheckoutSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/create-session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/create-session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createCheckoutSession.ErrEmptyCart):
			h.logger.Warn("POST /checkout/create-session - Empty cart: session=%s", req.SessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)
		case errors.Is(err, createCheckoutSession.ErrInvalidInput):
			h.logger.Warn("POST /checkout/create-session - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createCheckoutSession.ErrPaymentRejected):
			h.logger.Warn("POST /checkout/create-session - Payment rejected: session=%s: %v", req.SessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentRejected)
		default:
			h.logger.Error("POST /checkout/create-session - Failed to create session: session=%s: %v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/create-session - Payment session %s created for cart %s (%d items)",
		result.PaymentSessionID, req.SessionID, result.ItemCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
