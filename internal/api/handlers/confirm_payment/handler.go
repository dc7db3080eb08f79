package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-TeeTimeService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указан идентификатор платёжной сессии"
	msgBookingNotFound    = "бронирования для платёжной сессии не найдены"
	msgPaymentExpired     = "платёжная сессия истекла"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/confirm-payment
// 200 при подтверждении, 202 если оплата ещё обрабатывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /confirm-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		PaymentSessionID: req.SessionID,
		CartSessionID:    req.CartSessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /confirm-payment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /confirm-payment - No bookings: session=%s", req.SessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, confirmPayment.ErrPaymentExpired):
			h.logger.Warn("POST /confirm-payment - Expired: session=%s", req.SessionID)
			handlers.RespondConflict(w, msgPaymentExpired)
		default:
			h.logger.Error("POST /confirm-payment - Failed: session=%s: %v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.State != confirmPayment.StateConfirmed {
		status = http.StatusAccepted
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
