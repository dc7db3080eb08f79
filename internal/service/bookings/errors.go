package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у платёжной сессии нет бронирований
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled возвращается при подтверждении оплаты просроченной сессии
	ErrAlreadyCancelled = errors.New("bookings of payment session are cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
