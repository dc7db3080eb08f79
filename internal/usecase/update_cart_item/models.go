package update_cart_item

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// Request частичное обновление позиции; nil-поля не меняются
// Поле и время старта не меняются: это ключ позиции
type Request struct {
	SessionID string
	ItemID    string
	Players   *int
	Package   *domain.Package      // значим только ID
	AddOns    []domain.AddOnOption // значимы только ID; nil = оставить как есть, пустой список = убрать все
}

// Response модель ответа
type Response struct {
	Item domain.CartItem
	Cart *cart.Summary
}
