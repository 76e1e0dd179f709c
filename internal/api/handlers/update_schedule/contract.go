package update_schedule

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

type ScheduleService interface {
	UpdateSchedule(ctx context.Context, urlPath, userEmail string, days []domain.DaySchedule, durations []int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
