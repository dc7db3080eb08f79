package update_cart_item

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиции нет в корзине
	ErrItemNotFound = errors.New("update_cart_item: item not found")

	// ErrTeeTimeUnavailable возвращается, когда тии-тайм больше не предлагается или в нём нет мест
	ErrTeeTimeUnavailable = errors.New("update_cart_item: tee time is not available")

	// ErrPackageNotOffered возвращается, когда пакет или доп. услуга не предлагаются для тии-тайма
	ErrPackageNotOffered = errors.New("update_cart_item: package is not offered")

	// ErrPackageNotEligible возвращается, когда пакет недоступен для времени старта
	ErrPackageNotEligible = errors.New("update_cart_item: package is not eligible for tee time")

	// ErrProviderUnavailable возвращается, когда провайдер поля не подключен или не ответил
	ErrProviderUnavailable = errors.New("update_cart_item: provider unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_cart_item: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_cart_item: internal error")
)
