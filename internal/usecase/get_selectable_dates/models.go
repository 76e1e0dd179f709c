package get_selectable_dates

import "time"

// Request модель запроса на получение доступных дат
type Request struct {
	URLPath string // Публичный url команды
}

// Response модель ответа со списком дат, открытых для бронирования
type Response struct {
	URLPath string      // Публичный url команды
	Dates   []time.Time // Даты внутри горизонта, прошедшие отбор
}
