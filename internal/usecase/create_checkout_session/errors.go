package create_checkout_session

import "errors"

var (
	// ErrEmptyCart возвращается при оформлении пустой корзины
	ErrEmptyCart = errors.New("create_checkout_session: cart is empty")

	// ErrPaymentRejected возвращается, когда шлюз отклонил создание сессии
	ErrPaymentRejected = errors.New("create_checkout_session: payment provider rejected the session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout_session: internal error")
)
