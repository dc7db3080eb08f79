package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

const msgInvalidSession = "некорректный идентификатор сессии корзины"

// CartResponse состояние корзины в ответе API
type CartResponse struct {
	SessionID  string            `json:"sessionId"`
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalPrice float64           `json:"totalPrice"`
}

// FromCartSummary конвертирует снимок корзины в HTTP response
func FromCartSummary(s *cart.Summary) *CartResponse {
	if s == nil {
		return nil
	}
	items := s.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return &CartResponse{
		SessionID:  s.SessionID,
		Items:      items,
		ItemCount:  s.ItemCount,
		TotalPrice: s.TotalPrice,
	}
}

// RespondCartError отвечает на ошибки сервиса корзин; false, если ошибка не распознана
func RespondCartError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, cart.ErrInvalidSession):
		RespondBadRequest(w, msgInvalidSession)
		return true
	case errors.Is(err, cart.ErrPersist):
		RespondInternalError(w)
		return true
	}
	return false
}
