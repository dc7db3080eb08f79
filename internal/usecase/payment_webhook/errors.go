package payment_webhook

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись не совпадает с телом запроса
	ErrInvalidSignature = errors.New("payment_webhook: invalid signature")

	// ErrInvalidPayload возвращается, когда тело события не разбирается
	ErrInvalidPayload = errors.New("payment_webhook: invalid payload")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("payment_webhook: internal error")
)
