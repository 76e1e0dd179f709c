package get_selectable_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
)

// UseCase use case для получения дат, открытых для бронирования
type UseCase struct {
	teams        TeamRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(teams TeamRepository, logger Logger) *UseCase {
	return &UseCase{
		teams:        teams,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения дат внутри горизонта бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSelectableDates: team=%s", req.URLPath)

	// 1. Валидация входных данных
	if req.URLPath == "" {
		return nil, fmt.Errorf("%w: urlPath is required", ErrInvalidInput)
	}

	// 2. Получаем команду
	team, err := uc.teams.GetByURLPath(ctx, req.URLPath)
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			uc.logger.Warn("GetSelectableDates: team %s not found", req.URLPath)
			return nil, ErrTeamNotFound
		}
		uc.logger.Error("GetSelectableDates: failed to get team %s: %v", req.URLPath, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	// 3. Перебираем даты горизонта и отбираем подходящие
	now := uc.timeProvider.Now()
	enabled := team.EnabledWeekdays()

	dates := make([]time.Time, 0, domain.BookingHorizonDays+1)
	for offset := 0; offset <= domain.BookingHorizonDays; offset++ {
		date := now.AddDate(0, 0, offset)
		day, _ := team.DayFor(date.Weekday())
		if domain.IsDateSelectable(date, now, day, enabled) {
			dates = append(dates, time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()))
		}
	}

	uc.logger.Info("GetSelectableDates: team=%s, %d of %d dates selectable",
		req.URLPath, len(dates), domain.BookingHorizonDays+1)

	return &Response{
		URLPath: req.URLPath,
		Dates:   dates,
	}, nil
}
