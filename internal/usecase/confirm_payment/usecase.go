package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// UseCase use case подтверждения оплаты после возврата покупателя со шлюза
//
// Переходы: pending -> retrying(n) -> confirmed | failed.
// Каждая попытка читает бронирования; если они ещё pending, спрашивает шлюз
// и подтверждает их при статусе paid. Исчерпание попыток не ошибка:
// состояние failed отдаётся клиенту с сообщением об обработке платежа.
type UseCase struct {
	bookingService BookingService
	paymentsClient PaymentsClient
	cartService    CartService
	sleeper        Sleeper
	policy         RetryPolicy
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingService BookingService,
	paymentsClient PaymentsClient,
	cartService CartService,
	policy RetryPolicy,
	logger Logger,
) *UseCase {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &UseCase{
		bookingService: bookingService,
		paymentsClient: paymentsClient,
		cartService:    cartService,
		sleeper:        RealSleeper{},
		policy:         policy,
		logger:         logger,
	}
}

// Execute проводит подтверждение оплаты до конечного состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.PaymentSessionID) == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.CartSessionID != "" {
		if err := cart.ValidateSessionID(req.CartSessionID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	uc.logger.Info("ConfirmPayment: payment session=%s, max attempts=%d", req.PaymentSessionID, uc.policy.MaxAttempts)

	state := StatePending
	resp := &Response{}

	for attempt := 1; !state.IsTerminal(); attempt++ {
		resp.Attempts = attempt

		confirmed, err := uc.attempt(ctx, req.PaymentSessionID)
		switch {
		case err != nil && isFatal(err):
			uc.logger.Warn("ConfirmPayment: payment session=%s attempt %d: %v", req.PaymentSessionID, attempt, err)
			return nil, err
		case err != nil:
			uc.logger.Warn("ConfirmPayment: payment session=%s attempt %d failed: %v", req.PaymentSessionID, attempt, err)
		case confirmed != nil:
			state = StateConfirmed
			resp.Bookings = confirmed
			continue
		}

		if attempt >= uc.policy.MaxAttempts {
			state = StateFailed
			continue
		}

		state = StateRetrying
		if err := uc.sleeper.Sleep(ctx, uc.policy.Delay); err != nil {
			uc.logger.Warn("ConfirmPayment: payment session=%s interrupted: %v", req.PaymentSessionID, err)
			state = StateFailed
		}
	}

	resp.State = state
	if state == StateFailed {
		resp.Message = ProcessingMessage
		uc.logger.Warn("ConfirmPayment: payment session=%s not confirmed after %d attempts", req.PaymentSessionID, resp.Attempts)
		return resp, nil
	}

	uc.logger.Info("ConfirmPayment: payment session=%s confirmed on attempt %d", req.PaymentSessionID, resp.Attempts)
	uc.clearCart(ctx, req, resp.Bookings)
	return resp, nil
}

// attempt одна попытка; nil-результат без ошибки означает, что оплата ещё не прошла
func (uc *UseCase) attempt(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error) {
	current, err := uc.bookingService.GetByPaymentSession(ctx, paymentSessionID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if domain.AllConfirmed(current) {
		return current, nil
	}
	if domain.AnyCancelled(current) {
		return nil, ErrPaymentExpired
	}

	session, err := uc.paymentsClient.GetSession(ctx, paymentSessionID)
	if err != nil {
		if errors.Is(err, payments.ErrSessionNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrPaymentExpired
	}
	if !session.IsPaid() {
		return nil, nil
	}

	confirmed, err := uc.bookingService.Confirm(ctx, paymentSessionID)
	if err != nil {
		if errors.Is(err, bookings.ErrAlreadyCancelled) {
			return nil, ErrPaymentExpired
		}
		return nil, err
	}
	return confirmed, nil
}

// clearCart очищает корзину, записанную в подтверждённых бронированиях
// Корзина из запроса только сверяется: чужую корзину по ID оплаты очистить нельзя
func (uc *UseCase) clearCart(ctx context.Context, req *Request, confirmed []*domain.Booking) {
	if len(confirmed) == 0 || confirmed[0].CartSessionID == "" {
		return
	}
	sessionID := confirmed[0].CartSessionID
	if req.CartSessionID != "" && req.CartSessionID != sessionID {
		uc.logger.Warn("ConfirmPayment: cart session=%s from request does not match booking cart=%s, ignoring",
			req.CartSessionID, sessionID)
	}

	if err := uc.cartService.Clear(ctx, sessionID); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to clear cart session=%s: %v", sessionID, err)
	}
}

func isFatal(err error) bool {
	return errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrPaymentExpired)
}
