package poll_availability

// Request модель запроса сводки доступности по одной ячейке сетки
type Request struct {
	URLPath   string // Публичный url опроса
	Day       string // День недели ячейки ("Monday")
	Time      string // Время ячейки ("10:00")
	UserEmail string // Email текущего пользователя
}

// Response модель ответа со сводкой доступности ячейки
type Response struct {
	URLPath string // Публичный url опроса
	CellKey string // Проводной ключ ячейки ("Monday-10:00")

	AvailableCount    int     // Сколько участников доступны в ячейке
	TotalParticipants int     // Сколько участников всего
	Ratio             float64 // Доля доступных
	Tier              int     // Ступень интенсивности, 0..TierBuckets
	CompactTier       int     // Ступень для компактной шкалы, 0..CompactTierBuckets

	AvailableUsers   []string // Кто доступен (отсортировано)
	UnavailableUsers []string // Кто недоступен (отсортировано)
}
