package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	appointmentRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/appointment"
)

// Service сервис отмены записей по токену
type Service struct {
	bookings     AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис записей
func NewService(bookings AppointmentRepository, logger Logger) *Service {
	return &Service{
		bookings:     bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByToken возвращает запись по токену отмены
func (s *Service) GetByToken(ctx context.Context, token string) (*domain.Appointment, error) {
	a, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByToken: failed to get appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	return a, nil
}

// CancelByToken удаляет запись по токену отмены
// Просроченный токен отклоняется: слот при этом остается занятым
func (s *Service) CancelByToken(ctx context.Context, token string) error {
	a, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelByToken: failed to get appointment: %v", err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if !a.CanBeCancelledAt(now) {
		s.logger.Warn("CancelByToken: token expired appointment=%d expiry=%s", a.ID, a.TokenExpiry)
		return ErrTokenExpired
	}

	if err := s.bookings.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Запись исчезла между чтением и удалением - считаем отмененной
			return nil
		}
		s.logger.Error("CancelByToken: failed to delete appointment=%d: %v", a.ID, err)
		return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByToken: appointment cancelled id=%d day=%s time=%s", a.ID, a.Day, a.Time)
	return nil
}
