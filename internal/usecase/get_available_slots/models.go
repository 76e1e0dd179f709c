package get_available_slots

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	URLPath         string    // Публичный url команды
	Date            time.Time // Дата, на которую нужны слоты (без времени)
	DurationMinutes int       // Длительность слота в минутах
}

// Response модель ответа со списком доступных слотов
type Response struct {
	URLPath         string            // Публичный url команды
	Date            time.Time         // Дата, на которую запрашивались слоты
	DurationMinutes int               // Длительность слота в минутах
	Slots           []types.ClockTime // Свободные времена начала по возрастанию
}
