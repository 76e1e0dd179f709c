package get_poll

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

type PollService interface {
	GetPoll(ctx context.Context, urlPath string) (*domain.Poll, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
