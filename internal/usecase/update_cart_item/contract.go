package update_cart_item

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/offers"
)

// CartService сервис корзин
type CartService interface {
	WithCart(ctx context.Context, sessionID string, fn func(store *cart.Store) error) error
}

// CourseService сервис партнёрских полей
type CourseService interface {
	GetActive(ctx context.Context, id string) (*domain.Course, error)
}

// OfferService сверка выбора с предложением провайдера
type OfferService interface {
	Resolve(ctx context.Context, sel offers.Selection) (*offers.Offer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
