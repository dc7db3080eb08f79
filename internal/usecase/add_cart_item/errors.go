package add_cart_item

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

var (
	// ErrCourseNotFound возвращается, когда поле не найдено или неактивно
	ErrCourseNotFound = errors.New("add_cart_item: course not found")

	// ErrConflict возвращается, когда тии-тайм конфликтует с корзиной
	ErrConflict = errors.New("add_cart_item: tee time conflicts with cart")

	// ErrTeeTimeUnavailable возвращается, когда провайдер не предлагает этот тии-тайм или в нём нет мест
	ErrTeeTimeUnavailable = errors.New("add_cart_item: tee time is not available")

	// ErrPackageNotOffered возвращается, когда пакет или доп. услуга не предлагаются для тии-тайма
	ErrPackageNotOffered = errors.New("add_cart_item: package is not offered")

	// ErrPackageNotEligible возвращается, когда пакет недоступен для времени старта
	ErrPackageNotEligible = errors.New("add_cart_item: package is not eligible for tee time")

	// ErrProviderUnavailable возвращается, когда провайдер поля не подключен или не ответил
	ErrProviderUnavailable = errors.New("add_cart_item: provider unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_cart_item: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_cart_item: internal error")
)

// ConflictError отказ добавления с перечнем конфликтов
// Blocking=false означает, что добавление возможно с acknowledgeConflicts
type ConflictError struct {
	Conflicts []domain.Conflict
	Blocking  bool
}

func (e *ConflictError) Error() string {
	kind := "advisory"
	if e.Blocking {
		kind = "blocking"
	}
	return fmt.Sprintf("%v: %d %s conflict(s)", ErrConflict, len(e.Conflicts), kind)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
