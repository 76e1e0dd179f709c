package poll_availability

import "errors"

var (
	// ErrPollNotFound возвращается, когда опрос не найден
	ErrPollNotFound = errors.New("poll not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
