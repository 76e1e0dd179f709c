package create_appointment

import (
	"context"
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByTeamAndDay(ctx context.Context, teamID int64, day string) ([]*domain.Appointment, error)
}

// CancelledRangeRepository интерфейс репозитория отмененных диапазонов
type CancelledRangeRepository interface {
	GetByTeamAndDate(ctx context.Context, teamID int64, date time.Time) ([]*domain.CancelledRange, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// TokenGenerator интерфейс генерации токенов отмены (для тестирования)
type TokenGenerator interface {
	NewToken() string
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
