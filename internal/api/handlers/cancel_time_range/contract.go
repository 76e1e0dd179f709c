package cancel_time_range

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

type ScheduleService interface {
	CancelRange(ctx context.Context, urlPath, userEmail string, cr *domain.CancelledRange) (*domain.CancelledRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
