package polls

import "errors"

var (
	// ErrPollNotFound возвращается, когда опрос не найден
	ErrPollNotFound = errors.New("poll not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
