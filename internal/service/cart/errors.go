package cart

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиции нет в корзине
	ErrItemNotFound = errors.New("cart: item not found")

	// ErrInvalidSession возвращается при пустом или некорректном ID сессии корзины
	ErrInvalidSession = errors.New("cart: invalid session id")

	// ErrPersist возвращается, когда корзину не удалось сохранить
	// Изменение в памяти при этом уже применено
	ErrPersist = errors.New("cart: failed to persist cart")
)
