package get_team

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
)

type ScheduleService interface {
	GetTeamDetails(ctx context.Context, urlPath string) (*schedule.TeamDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
