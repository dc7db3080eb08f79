package payment_webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings"
)

// UseCase use case обработки событий платёжного шлюза
type UseCase struct {
	bookingService BookingService
	cartService    CartService
	secret         []byte
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingService BookingService, cartService CartService, secret string, logger Logger) *UseCase {
	return &UseCase{
		bookingService: bookingService,
		cartService:    cartService,
		secret:         []byte(secret),
		logger:         logger,
	}
}

// Sign вычисляет подпись тела для заголовка X-Payment-Signature
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Execute проверяет подпись и применяет событие к бронированиям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.verify(req.Payload, req.Signature) {
		uc.logger.Warn("PaymentWebhook: signature mismatch")
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(req.Payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	paymentSessionID := event.Data.Object.ID
	if event.Type == "" || paymentSessionID == "" {
		return nil, fmt.Errorf("%w: event type and session id are required", ErrInvalidPayload)
	}

	resp := &Response{EventID: event.ID, Type: event.Type}

	switch event.Type {
	case EventSessionCompleted, EventAsyncPaymentSucceeded:
		if !event.IsPaid() {
			// Ждём async_payment_succeeded или async_payment_failed
			uc.logger.Info("PaymentWebhook: event id=%s for session=%s has payment_status=%s, bookings stay pending",
				event.ID, paymentSessionID, event.Data.Object.PaymentStatus)
			return resp, nil
		}
		confirmed, err := uc.bookingService.Confirm(ctx, paymentSessionID)
		if err != nil {
			return uc.settle(resp, paymentSessionID, err)
		}
		resp.Handled = true
		resp.Bookings = len(confirmed)
		if len(confirmed) > 0 && confirmed[0].CartSessionID != "" {
			if err := uc.cartService.Clear(ctx, confirmed[0].CartSessionID); err != nil {
				uc.logger.Warn("PaymentWebhook: failed to clear cart session=%s: %v", confirmed[0].CartSessionID, err)
			}
		}
	case EventSessionExpired, EventAsyncPaymentFailed:
		expired, err := uc.bookingService.Expire(ctx, paymentSessionID)
		if err != nil {
			return uc.settle(resp, paymentSessionID, err)
		}
		resp.Handled = true
		resp.Bookings = len(expired)
	default:
		uc.logger.Info("PaymentWebhook: ignoring event id=%s type=%s", event.ID, event.Type)
		return resp, nil
	}

	uc.logger.Info("PaymentWebhook: event id=%s type=%s applied to %d bookings of session=%s",
		event.ID, event.Type, resp.Bookings, paymentSessionID)
	return resp, nil
}

// settle: события по неизвестным или уже отменённым сессиям подтверждаются шлюзу без повтора
func (uc *UseCase) settle(resp *Response, paymentSessionID string, err error) (*Response, error) {
	if errors.Is(err, bookings.ErrBookingNotFound) || errors.Is(err, bookings.ErrAlreadyCancelled) {
		uc.logger.Warn("PaymentWebhook: event %s for session=%s skipped: %v", resp.Type, paymentSessionID, err)
		return resp, nil
	}
	uc.logger.Error("PaymentWebhook: failed to apply %s for session=%s: %v", resp.Type, paymentSessionID, err)
	return nil, fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) verify(payload []byte, signature string) bool {
	if len(uc.secret) == 0 {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return false
	}
	want, _ := hex.DecodeString(Sign(uc.secret, payload))
	return hmac.Equal(got, want)
}
