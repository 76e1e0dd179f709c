package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	appointmentRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/appointment"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// UseCase use case для создания записи на слот
type UseCase struct {
	teams        TeamRepository
	bookings     AppointmentRepository
	ranges       CancelledRangeRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	tokens       TokenGenerator
	tokenTTL     time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	teams TeamRepository,
	bookings AppointmentRepository,
	ranges CancelledRangeRepository,
	txManager TransactionManager,
	tokenTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		teams:        teams,
		bookings:     bookings,
		ranges:       ranges,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		tokens:       &uuidTokenGenerator{},
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Слот подтверждается повторным выводом внутри сериализуемой транзакции,
// чтобы два клиента с устаревшим списком слотов не заняли одно время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: team=%s, date=%s, time=%s, duration=%d",
		req.URLPath, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем команду
	team, err := uc.teams.GetByURLPath(ctx, req.URLPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			uc.logger.Warn("CreateAppointment: team %s not found", req.URLPath)
			return nil, ErrTeamNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get team %s: %v", req.URLPath, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	// 3. Команда должна предлагать запрошенную длительность
	if !team.OffersDuration(req.DurationMinutes) {
		uc.logger.Warn("CreateAppointment: team %s does not offer %d minute slots",
			req.URLPath, req.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 4. Дата должна быть внутри горизонта бронирования
	now := uc.timeProvider.Now()
	day, _ := team.DayFor(req.Date.Weekday())
	if !domain.IsDateSelectable(req.Date, now, day, team.EnabledWeekdays()) {
		uc.logger.Warn("CreateAppointment: date %s is not selectable for team %s",
			req.Date.Format(domain.DateFormat), req.URLPath)
		return nil, ErrDateNotSelectable
	}

	dayKey := domain.FormatAppointmentDay(req.Date)

	appointment := &domain.Appointment{
		TeamID:      team.ID,
		Day:         dayKey,
		Time:        req.StartTime.String(),
		Name:        req.Name,
		Email:       req.Email,
		Token:       uc.tokens.NewToken(),
		TokenExpiry: now.Add(uc.tokenTTL),
	}

	// 5. Подтверждаем слот и создаем запись в одной сериализуемой транзакции
	// Выборка записей идет с блокировкой строк (FOR UPDATE внутри транзакции)
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booked, err := uc.bookings.GetByTeamAndDay(txCtx, team.ID, dayKey)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		cancelled, err := uc.ranges.GetByTeamAndDate(txCtx, team.ID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get cancelled ranges: %v", ErrInternal, err)
		}

		slots := domain.DeriveSlots(req.Date, day, req.DurationMinutes, booked, cancelled)
		if !containsSlot(slots, req.StartTime.String()) {
			return ErrSlotNotAvailable
		}

		created, err = uc.bookings.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс (team_id, day, time) - последняя линия защиты
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken for team %s",
				dayKey, req.StartTime, req.URLPath)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment %d for team=%s, slot=%s %s",
		created.ID, req.URLPath, created.Day, created.Time)

	return &Response{
		AppointmentID: created.ID,
		Day:           created.Day,
		Time:          created.Time,
		Token:         created.Token,
		TokenExpiry:   created.TokenExpiry,
	}, nil
}

func containsSlot(slots []types.ClockTime, want string) bool {
	for _, s := range slots {
		if s.String() == want {
			return true
		}
	}
	return false
}

// uuidTokenGenerator генерирует токены отмены на основе uuid v4
type uuidTokenGenerator struct{}

func (g *uuidTokenGenerator) NewToken() string {
	return uuid.NewString()
}
