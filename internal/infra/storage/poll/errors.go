package poll

import "errors"

var (
	// ErrPollNotFound возвращается, когда опрос не найден
	ErrPollNotFound = errors.New("poll.repository: poll not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("poll.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("poll.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("poll.repository: failed to scan row")
)
