package get_selectable_dates

import (
	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	getSelectableDates "github.com/bookyhq/Booky-SchedulingService/internal/usecase/get_selectable_dates"
)

// SelectableDatesResponse HTTP response model
type SelectableDatesResponse struct {
	URLPath string   `json:"urlPath"`
	Dates   []string `json:"dates"` // YYYY-MM-DD, по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSelectableDates.Response) *SelectableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	return &SelectableDatesResponse{
		URLPath: resp.URLPath,
		Dates:   dates,
	}
}
