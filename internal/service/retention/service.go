package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CancelledRangeRepository интерфейс репозитория отмененных диапазонов
type CancelledRangeRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service фоновая очистка отмененных диапазонов
// Диапазоны накапливаются как журнал отмен; по прошествии retentionDays
// после их даты они теряют смысл и удаляются по расписанию
type Service struct {
	ranges        CancelledRangeRepository
	logger        Logger
	retentionDays int
	schedule      string
	cron          *cron.Cron
}

// NewService создает сервис очистки
// retentionDays = 0 полностью выключает очистку
func NewService(ranges CancelledRangeRepository, logger Logger, retentionDays int, schedule string) *Service {
	return &Service{
		ranges:        ranges,
		logger:        logger,
		retentionDays: retentionDays,
		schedule:      schedule,
	}
}

// Start регистрирует cron-задачу очистки
func (s *Service) Start() error {
	if s.retentionDays == 0 {
		s.logger.Info("Retention: disabled (retention.days = 0)")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return fmt.Errorf("retention: failed to schedule sweep: %w", err)
	}
	s.cron.Start()

	s.logger.Info("Retention: sweep scheduled (%s), keeping ranges for %d days past their date",
		s.schedule, s.retentionDays)
	return nil
}

// Stop останавливает cron и дожидается завершения текущего запуска
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep удаляет диапазоны, дата которых прошла более retentionDays назад
// Вынесен отдельно от cron для вызова из тестов
func (s *Service) Sweep(ctx context.Context, now time.Time) (int64, error) {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -s.retentionDays)

	deleted, err := s.ranges.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("retention: sweep failed: %w", err)
	}
	return deleted, nil
}

func (s *Service) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.Sweep(ctx, time.Now())
	if err != nil {
		s.logger.Error("Retention: %v", err)
		return
	}
	s.logger.Info("Retention: sweep removed %d cancelled ranges", deleted)
}
