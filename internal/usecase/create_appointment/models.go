package create_appointment

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	URLPath         string          // Публичный url команды
	Date            time.Time       // Календарная дата слота
	StartTime       types.ClockTime // Начало слота
	DurationMinutes int             // Длительность слота в минутах
	Name            string          // Имя посетителя
	Email           string          // Email посетителя
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID int64     // ID созданной записи
	Day           string    // День в формате M-D-YYYY
	Time          string    // Время в формате "hh:mm AM"
	Token         string    // Токен для самостоятельной отмены
	TokenExpiry   time.Time // Срок действия токена
}
