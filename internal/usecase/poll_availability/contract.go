package poll_availability

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

// PollRepository интерфейс репозитория опросов
type PollRepository interface {
	GetByURLPath(ctx context.Context, urlPath string) (*domain.Poll, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
