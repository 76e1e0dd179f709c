package get_selectable_dates

import (
	"context"
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
