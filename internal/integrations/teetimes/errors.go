package teetimes

import "errors"

var (
	// ErrUnavailable провайдер не ответил или ответил ошибкой 5xx
	ErrUnavailable = errors.New("teetimes: provider unavailable")
	// ErrCircuitOpen запросы к провайдеру временно не выполняются
	ErrCircuitOpen = errors.New("teetimes: circuit breaker is open")
	// ErrInvalidResponse ответ провайдера не удалось разобрать
	ErrInvalidResponse = errors.New("teetimes: invalid provider response")
	// ErrCourseNotFound провайдер не знает такого поля
	ErrCourseNotFound = errors.New("teetimes: course not found at provider")
	// ErrUnauthorized провайдер отклонил ключ API
	ErrUnauthorized = errors.New("teetimes: provider rejected credentials")
)
