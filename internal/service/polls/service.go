package polls

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	pollRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/poll"
)

// Service сервис опросов групповой доступности
type Service struct {
	polls  PollRepository
	logger Logger
}

// NewService создает новый сервис опросов
func NewService(polls PollRepository, logger Logger) *Service {
	return &Service{
		polls:  polls,
		logger: logger,
	}
}

// GetPoll возвращает опрос вместе с участниками
func (s *Service) GetPoll(ctx context.Context, urlPath string) (*domain.Poll, error) {
	p, err := s.polls.GetByURLPath(ctx, urlPath)
	if err != nil {
		if errors.Is(err, pollRepo.ErrPollNotFound) {
			return nil, ErrPollNotFound
		}
		s.logger.Error("GetPoll: failed to get poll url=%s: %v", urlPath, err)
		return nil, fmt.Errorf("%w: failed to get poll: %v", ErrInternal, err)
	}
	return p, nil
}

// UpdateAvailability заменяет набор выбранных ячеек одного участника
// Повторный вызов с тем же набором идемпотентен
func (s *Service) UpdateAvailability(ctx context.Context, urlPath, userEmail string, cellKeys []string) error {
	if userEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	cells := make([]domain.Cell, 0, len(cellKeys))
	for _, key := range cellKeys {
		cell, err := domain.ParseCellKey(key)
		if err != nil {
			s.logger.Warn("UpdateAvailability: bad cell key url=%s user=%s: %v", urlPath, userEmail, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cells = append(cells, cell)
	}

	p, err := s.polls.GetByURLPath(ctx, urlPath)
	if err != nil {
		if errors.Is(err, pollRepo.ErrPollNotFound) {
			return ErrPollNotFound
		}
		s.logger.Error("UpdateAvailability: failed to get poll url=%s: %v", urlPath, err)
		return fmt.Errorf("%w: failed to get poll: %v", ErrInternal, err)
	}

	if err := s.polls.UpsertParticipant(ctx, p.ID, userEmail, cells); err != nil {
		s.logger.Error("UpdateAvailability: failed to upsert participant poll=%d user=%s: %v", p.ID, userEmail, err)
		return fmt.Errorf("%w: failed to upsert participant: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: participant synced poll=%d user=%s cells=%d", p.ID, userEmail, len(cells))
	return nil
}
