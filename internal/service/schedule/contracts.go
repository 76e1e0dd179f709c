package schedule

import (
	"context"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

// TeamRepository интерфейс репозитория команд
type TeamRepository interface {
	GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error)
	ReplaceSchedule(ctx context.Context, teamID int64, days []domain.DaySchedule, durations []int) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByTeam(ctx context.Context, teamID int64) ([]*domain.Appointment, error)
}

// CancelledRangeRepository интерфейс репозитория отмененных диапазонов
type CancelledRangeRepository interface {
	Create(ctx context.Context, cr *domain.CancelledRange) (*domain.CancelledRange, error)
	GetByTeam(ctx context.Context, teamID int64) ([]*domain.CancelledRange, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
