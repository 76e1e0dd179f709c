package update_poll_availability

import "context"

type PollService interface {
	UpdateAvailability(ctx context.Context, urlPath, userEmail string, cellKeys []string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
