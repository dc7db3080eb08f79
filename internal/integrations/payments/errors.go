package payments

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платёжная сессия не найдена
	ErrSessionNotFound = errors.New("payments client: session not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от платёжного шлюза
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrRejected возвращается, когда шлюз отклонил запрос на создание сессии
	ErrRejected = errors.New("payments client: request rejected")
)
