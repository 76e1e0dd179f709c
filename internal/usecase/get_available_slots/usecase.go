package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// UseCase use case для получения доступных слотов команды на дату
type UseCase struct {
	teams    TeamRepository
	bookings AppointmentRepository
	ranges   CancelledRangeRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	teams TeamRepository,
	bookings AppointmentRepository,
	ranges CancelledRangeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		teams:    teams,
		bookings: bookings,
		ranges:   ranges,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Отбор подходящих дат (горизонт, прошедшие дни) - отдельная операция;
// здесь неподходящий день дает пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: team=%s, date=%s, duration=%d",
		req.URLPath, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем команду
	team, err := uc.teams.GetByURLPath(ctx, req.URLPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			uc.logger.Warn("GetAvailableSlots: team %s not found", req.URLPath)
			return nil, ErrTeamNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get team %s: %v", req.URLPath, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	// 3. Команда должна предлагать запрошенную длительность
	if !team.OffersDuration(req.DurationMinutes) {
		uc.logger.Warn("GetAvailableSlots: team %s does not offer %d minute slots",
			req.URLPath, req.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 4. Расписание на день недели; отсутствующий или выключенный день -
	// пустой результат
	day, ok := team.DayFor(req.Date.Weekday())
	if !ok || !day.Enabled {
		uc.logger.Info("GetAvailableSlots: team %s has no enabled schedule for %s",
			req.URLPath, req.Date.Weekday())
		return uc.emptyResponse(req), nil
	}

	// 5. Получаем записи на этот день (день в историческом формате M-D-YYYY)
	dayKey := domain.FormatAppointmentDay(req.Date)
	appointments, err := uc.bookings.GetByTeamAndDay(ctx, team.ID, dayKey)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Получаем отмененные диапазоны на эту дату
	cancelled, err := uc.ranges.GetByTeamAndDate(ctx, team.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get cancelled ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get cancelled ranges: %v", ErrInternal, err)
	}

	// 7. Выводим свободные слоты
	slots := domain.DeriveSlots(req.Date, day, req.DurationMinutes, appointments, cancelled)

	uc.logger.Info("GetAvailableSlots: derived %d slots for team=%s, date=%s, duration=%d",
		len(slots), req.URLPath, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	return &Response{
		URLPath:         req.URLPath,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		URLPath:         req.URLPath,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           []types.ClockTime{},
	}
}
