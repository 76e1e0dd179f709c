package get_cell_availability

import (
	"context"

	pollAvailability "github.com/bookyhq/Booky-SchedulingService/internal/usecase/poll_availability"
)

type PollAvailabilityUseCase interface {
	Execute(ctx context.Context, req *pollAvailability.Request) (*pollAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
