package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
)

// TeamDetails агрегированное состояние команды для публичной выдачи:
// расписание, записи и отмененные диапазоны
type TeamDetails struct {
	Team            *domain.Team
	Appointments    []*domain.Appointment
	CancelledRanges []*domain.CancelledRange
}

// Service сервис работы с расписаниями команд
type Service struct {
	teams     TeamRepository
	bookings  AppointmentRepository
	ranges    CancelledRangeRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый сервис расписаний
func NewService(
	teams TeamRepository,
	bookings AppointmentRepository,
	ranges CancelledRangeRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		teams:     teams,
		bookings:  bookings,
		ranges:    ranges,
		txManager: txManager,
		logger:    logger,
	}
}

// GetTeamDetails возвращает команду вместе с записями и отмененными
// диапазонами - всё, что нужно клиенту для отрисовки календаря
func (s *Service) GetTeamDetails(ctx context.Context, urlPath string) (*TeamDetails, error) {
	team, err := s.teams.GetByURLPath(ctx, urlPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("GetTeamDetails: failed to get team url=%s: %v", urlPath, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	appointments, err := s.bookings.GetByTeam(ctx, team.ID)
	if err != nil {
		s.logger.Error("GetTeamDetails: failed to get appointments team=%d: %v", team.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	ranges, err := s.ranges.GetByTeam(ctx, team.ID)
	if err != nil {
		s.logger.Error("GetTeamDetails: failed to get cancelled ranges team=%d: %v", team.ID, err)
		return nil, fmt.Errorf("%w: failed to get cancelled ranges: %v", ErrInternal, err)
	}

	// Наружу всегда уходят срезы, а не nil
	if appointments == nil {
		appointments = []*domain.Appointment{}
	}
	if ranges == nil {
		ranges = []*domain.CancelledRange{}
	}

	return &TeamDetails{
		Team:            team,
		Appointments:    appointments,
		CancelledRanges: ranges,
	}, nil
}

// UpdateSchedule полностью заменяет недельное расписание и длительности
// Доступно только владельцу команды
func (s *Service) UpdateSchedule(ctx context.Context, urlPath, userEmail string, days []domain.DaySchedule, durations []int) error {
	if err := validateSchedule(days, durations); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed url=%s: %v", urlPath, err)
		return err
	}

	team, err := s.teams.GetByURLPath(ctx, urlPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		s.logger.Error("UpdateSchedule: failed to get team url=%s: %v", urlPath, err)
		return fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	if team.OwnerEmail != userEmail {
		s.logger.Warn("UpdateSchedule: access denied url=%s user=%s", urlPath, userEmail)
		return ErrAccessDenied
	}

	// Замена расписания - несколько запросов, выполняем атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.teams.ReplaceSchedule(txCtx, team.ID, days, durations)
	})
	if err != nil {
		s.logger.Error("UpdateSchedule: failed to replace schedule team=%d: %v", team.ID, err)
		return fmt.Errorf("%w: failed to replace schedule: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: schedule replaced team=%d days=%d durations=%v", team.ID, len(days), durations)
	return nil
}

// CancelRange добавляет отмененный диапазон на конкретную дату
// Доступно только владельцу команды
func (s *Service) CancelRange(ctx context.Context, urlPath, userEmail string, cr *domain.CancelledRange) (*domain.CancelledRange, error) {
	if !cr.Window.IsValid() {
		s.logger.Warn("CancelRange: invalid window url=%s", urlPath)
		return nil, ErrInvalidTimeRange
	}

	team, err := s.teams.GetByURLPath(ctx, urlPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("CancelRange: failed to get team url=%s: %v", urlPath, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	if team.OwnerEmail != userEmail {
		s.logger.Warn("CancelRange: access denied url=%s user=%s", urlPath, userEmail)
		return nil, ErrAccessDenied
	}

	cr.TeamID = team.ID

	created, err := s.ranges.Create(ctx, cr)
	if err != nil {
		s.logger.Error("CancelRange: failed to create range team=%d: %v", team.ID, err)
		return nil, fmt.Errorf("%w: failed to create cancelled range: %v", ErrInternal, err)
	}

	s.logger.Info("CancelRange: range created team=%d date=%s window=%s-%s",
		team.ID, created.Date.Format(domain.DateFormat), created.Window.Start, created.Window.End)
	return created, nil
}

// validateSchedule проверяет недельное расписание перед сохранением
func validateSchedule(days []domain.DaySchedule, durations []int) error {
	if len(durations) == 0 {
		return fmt.Errorf("%w: at least one duration is required", ErrInvalidInput)
	}
	for _, d := range durations {
		if !domain.IsAllowedDuration(d) {
			return fmt.Errorf("%w: duration %d is not allowed", ErrInvalidInput, d)
		}
	}

	if len(days) > 7 {
		return fmt.Errorf("%w: more than 7 day schedules", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(days))
	for _, day := range days {
		if seen[int(day.Weekday)] {
			return fmt.Errorf("%w: duplicate weekday %s", ErrInvalidInput, day.Weekday)
		}
		seen[int(day.Weekday)] = true

		if day.Enabled && len(day.Windows) == 0 {
			return fmt.Errorf("%w: enabled day %s has no windows", ErrInvalidInput, day.Weekday)
		}
		for _, w := range day.Windows {
			if !w.IsValid() {
				return fmt.Errorf("%w: %s: start %s is not before end %s", ErrInvalidTimeRange, day.Weekday, w.Start, w.End)
			}
		}
	}

	return nil
}
