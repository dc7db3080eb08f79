package update_cart_item

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	updateCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/update_cart_item"
)

// UpdateCartItemRequest HTTP request model; отсутствующие поля не меняются
type UpdateCartItemRequest struct {
	Players *int                  `json:"players,omitempty"`
	Package *domain.Package       `json:"package,omitempty"`
	AddOns  *[]domain.AddOnOption `json:"addOns,omitempty"` // [] убирает все доп. услуги
}

// UpdateCartItemResponse HTTP response model
type UpdateCartItemResponse struct {
	Item domain.CartItem        `json:"item"`
	Cart *handlers.CartResponse `json:"cart"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateCartItemRequest) ToUseCaseRequest(sessionID, itemID string) *updateCartItem.Request {
	req := &updateCartItem.Request{
		SessionID: sessionID,
		ItemID:    itemID,
		Players:   r.Players,
		Package:   r.Package,
	}
	if r.AddOns != nil {
		req.AddOns = append(make([]domain.AddOnOption, 0, len(*r.AddOns)), *r.AddOns...)
	}
	return req
}
