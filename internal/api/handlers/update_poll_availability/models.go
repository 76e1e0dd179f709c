package update_poll_availability

// UpdateAvailabilityRequest HTTP request model
// SelectedSlots полностью заменяет сохраненную выборку пользователя
type UpdateAvailabilityRequest struct {
	SelectedSlots []string `json:"selectedSlots"` // проводные ключи "Monday-10:00"
}
