package search_tee_times

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата поиска в прошлом
	ErrInvalidDate = errors.New("search_tee_times: invalid search date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_tee_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_tee_times: internal error")
)
