package get_cell_availability

import pollAvailability "github.com/bookyhq/Booky-SchedulingService/internal/usecase/poll_availability"

// CellAvailabilityResponse HTTP response model
type CellAvailabilityResponse struct {
	CellKey           string   `json:"cellKey"`
	AvailableCount    int      `json:"availableCount"`
	TotalParticipants int      `json:"totalParticipants"`
	Ratio             float64  `json:"ratio"`
	Tier              int      `json:"tier"`
	CompactTier       int      `json:"compactTier"`
	AvailableUsers    []string `json:"availableUsers"`
	UnavailableUsers  []string `json:"unavailableUsers"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *pollAvailability.Response) *CellAvailabilityResponse {
	return &CellAvailabilityResponse{
		CellKey:           resp.CellKey,
		AvailableCount:    resp.AvailableCount,
		TotalParticipants: resp.TotalParticipants,
		Ratio:             resp.Ratio,
		Tier:              resp.Tier,
		CompactTier:       resp.CompactTier,
		AvailableUsers:    resp.AvailableUsers,
		UnavailableUsers:  resp.UnavailableUsers,
	}
}
