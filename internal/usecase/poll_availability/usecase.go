package poll_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	pollRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/poll"
)

// UseCase use case для сводки групповой доступности по ячейке
type UseCase struct {
	polls  PollRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(polls PollRepository, logger Logger) *UseCase {
	return &UseCase{
		polls:  polls,
		logger: logger,
	}
}

// Execute выполняет use case получения сводки доступности ячейки
// Локальная невыгруженная выборка пользователя живет на клиенте,
// поэтому агрегатор строится только по синхронизированным участникам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PollAvailability: poll=%s, cell=%s-%s, user=%s",
		req.URLPath, req.Day, req.Time, req.UserEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PollAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем опрос с участниками
	poll, err := uc.polls.GetByURLPath(ctx, req.URLPath)
	if err != nil {
		if errors.Is(err, pollRepo.ErrPollNotFound) {
			uc.logger.Warn("PollAvailability: poll %s not found", req.URLPath)
			return nil, ErrPollNotFound
		}
		uc.logger.Error("PollAvailability: failed to get poll %s: %v", req.URLPath, err)
		return nil, fmt.Errorf("%w: failed to get poll: %v", ErrInternal, err)
	}

	// 3. Считаем сводку по ячейке
	cell := domain.Cell{Day: req.Day, Time: req.Time}
	agg := domain.NewAggregator(poll.Participants, req.UserEmail, nil)

	availability := agg.CellAvailability(cell)
	available, unavailable := agg.AvailableUsersAt(cell)
	ratio := availability.Ratio()

	return &Response{
		URLPath:           req.URLPath,
		CellKey:           cell.Key(),
		AvailableCount:    availability.AvailableCount,
		TotalParticipants: availability.TotalParticipants,
		Ratio:             ratio,
		Tier:              domain.Tier(ratio, domain.TierBuckets),
		CompactTier:       domain.Tier(ratio, domain.CompactTierBuckets),
		AvailableUsers:    available,
		UnavailableUsers:  unavailable,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.URLPath == "" {
		return fmt.Errorf("%w: urlPath is required", ErrInvalidInput)
	}
	if req.Day == "" || req.Time == "" {
		return fmt.Errorf("%w: day and time are required", ErrInvalidInput)
	}
	if req.UserEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}
	return nil
}
