package cancel_time_range

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// CancelTimeRangeRequest HTTP request model
type CancelTimeRangeRequest struct {
	Date  string `json:"date"`  // "2025-10-15"
	Start string `json:"start"` // "09:00 AM"
	End   string `json:"end"`   // "11:00 AM"
}

// CancelledRangeResponse HTTP response model
type CancelledRangeResponse struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CancelTimeRangeRequest) ToDomain() (*domain.CancelledRange, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewClockTimeFromString(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := types.NewClockTimeFromString(r.End)
	if err != nil {
		return nil, err
	}

	return &domain.CancelledRange{
		Date:   date,
		Window: domain.TimeRange{Start: start, End: end},
	}, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(cr *domain.CancelledRange) *CancelledRangeResponse {
	return &CancelledRangeResponse{
		ID:    cr.ID,
		Date:  cr.Date.Format(domain.DateFormat),
		Start: cr.Window.Start.String(),
		End:   cr.Window.End.String(),
	}
}
