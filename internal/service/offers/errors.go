package offers

import "errors"

var (
	// ErrProviderUnavailable возвращается, когда провайдер поля не подключен или не ответил
	ErrProviderUnavailable = errors.New("offers: provider unavailable")

	// ErrTeeTimeUnavailable возвращается, когда провайдер не предлагает тии-тайм или в нём нет мест
	ErrTeeTimeUnavailable = errors.New("offers: tee time is not available")

	// ErrPackageNotOffered возвращается, когда пакет или доп. услуга не предлагаются для тии-тайма
	ErrPackageNotOffered = errors.New("offers: package is not offered")

	// ErrPackageNotEligible возвращается, когда пакет недоступен для времени старта
	ErrPackageNotEligible = errors.New("offers: package is not eligible for tee time")
)
