package create_appointment

import "errors"

var (
	// ErrTeamNotFound возвращается, когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается, когда длительность не из разрешенного набора
	ErrInvalidDuration = errors.New("invalid slot duration")

	// ErrDateNotSelectable возвращается, когда дата вне горизонта бронирования
	ErrDateNotSelectable = errors.New("date is not open for booking")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или не выводится расписанием
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
