package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	appointmentRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/appointment"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	appointment *domain.Appointment
	getErr      error
	deleteErr   error
	deletedID   int64
}

func (f *fakeRepo) GetByToken(ctx context.Context, token string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) *Service {
	s := NewService(repo, fakeLogger{})
	s.timeProvider = fixedTime{now: testNow}
	return s
}

func TestCancelByToken_Success(t *testing.T) {
	repo := &fakeRepo{
		appointment: &domain.Appointment{
			ID:          7,
			Token:       "tok-1",
			TokenExpiry: testNow.Add(time.Hour),
		},
	}
	svc := newTestService(repo)

	err := svc.CancelByToken(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.deletedID)
}

func TestCancelByToken_Expired(t *testing.T) {
	repo := &fakeRepo{
		appointment: &domain.Appointment{
			ID:          7,
			Token:       "tok-1",
			TokenExpiry: testNow.Add(-time.Minute),
		},
	}
	svc := newTestService(repo)

	err := svc.CancelByToken(context.Background(), "tok-1")

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Zero(t, repo.deletedID)
}

func TestCancelByToken_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := newTestService(repo)

	err := svc.CancelByToken(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelByToken_VanishedBetweenReadAndDelete(t *testing.T) {
	repo := &fakeRepo{
		appointment: &domain.Appointment{
			ID:          7,
			TokenExpiry: testNow.Add(time.Hour),
		},
		deleteErr: appointmentRepo.ErrAppointmentNotFound,
	}
	svc := newTestService(repo)

	// Запись удалили параллельно - для клиента это успешная отмена
	err := svc.CancelByToken(context.Background(), "tok-1")

	assert.NoError(t, err)
}

func TestGetByToken_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := newTestService(repo)

	_, err := svc.GetByToken(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
