package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у платёжной сессии нет бронирований
	ErrBookingNotFound = errors.New("confirm_payment: no bookings for payment session")

	// ErrPaymentExpired возвращается, когда сессия истекла или бронирования отменены
	ErrPaymentExpired = errors.New("confirm_payment: payment session expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")
)
