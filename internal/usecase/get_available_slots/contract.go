package get_available_slots

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
	// GetByTeamAndDay получает записи команды на день (день в формате M-D-YYYY)
	GetByTeamAndDay(ctx context.Context, teamID int64, day string) ([]*domain.Appointment, error)
}

// CancelledRangeRepository интерфейс репозитория отмененных диапазонов
type CancelledRangeRepository interface {
	GetByTeamAndDate(ctx context.Context, teamID int64, date time.Time) ([]*domain.CancelledRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
