package get_available_slots

import (
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.URLPath == "" {
		return fmt.Errorf("%w: urlPath is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes is not in the allowed set", ErrInvalidDuration, req.DurationMinutes)
	}

	return nil
}
