package cart

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения корзины из хранилища
	ErrLoad = errors.New("cart.storage: failed to load cart")

	// ErrSave возвращается при ошибке записи корзины в хранилище
	ErrSave = errors.New("cart.storage: failed to save cart")
)
