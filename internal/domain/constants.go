package domain

// Time format constants
const (
	// DateFormat формат дат в API (query параметры, JSON)
	DateFormat = "2006-01-02"

	// AppointmentDayFormat формат дня записи: M-D-YYYY без ведущих нулей
	// Исторический формат клиента; хранится и сравнивается как есть
	AppointmentDayFormat = "1-2-2006"
)

// Booking constants
const (
	// BookingHorizonDays фиксированный горизонт бронирования в днях
	BookingHorizonDays = 7
)

// AllowedDurations допустимые длительности слота в минутах
var AllowedDurations = []int{5, 15, 30, 45, 60}

// IsAllowedDuration reports whether d is one of the fixed slot durations.
func IsAllowedDuration(d int) bool {
	for _, v := range AllowedDurations {
		if v == d {
			return true
		}
	}
	return false
}

// Availability tier buckets
const (
	// TierBuckets количество ступеней интенсивности тепловой карты
	TierBuckets = 11

	// CompactTierBuckets сокращенная шкала для компактного отображения
	CompactTierBuckets = 5
)
