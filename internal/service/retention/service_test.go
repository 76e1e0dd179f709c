package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeRanges struct {
	cutoff  time.Time
	deleted int64
	err     error
}

func (f *fakeRanges) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, f.err
}

func TestSweep_CutoffCalculation(t *testing.T) {
	ranges := &fakeRanges{deleted: 3}
	svc := NewService(ranges, fakeLogger{}, 30, "0 3 * * *")

	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	deleted, err := svc.Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), deleted)
	// Отсечка - полночь 30 дней назад
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), ranges.cutoff)
}

func TestSweep_RepositoryError(t *testing.T) {
	ranges := &fakeRanges{err: errors.New("connection refused")}
	svc := NewService(ranges, fakeLogger{}, 7, "0 3 * * *")

	_, err := svc.Sweep(context.Background(), time.Now())

	assert.Error(t, err)
}

func TestStart_DisabledWhenRetentionZero(t *testing.T) {
	svc := NewService(&fakeRanges{}, fakeLogger{}, 0, "0 3 * * *")

	require.NoError(t, svc.Start())
	assert.Nil(t, svc.cron)

	// Stop без запущенного cron не должен паниковать
	svc.Stop()
}

func TestStart_InvalidSchedule(t *testing.T) {
	svc := NewService(&fakeRanges{}, fakeLogger{}, 7, "not a schedule")

	assert.Error(t, svc.Start())
}

func TestStartStop(t *testing.T) {
	svc := NewService(&fakeRanges{}, fakeLogger{}, 7, "0 3 * * *")

	require.NoError(t, svc.Start())
	require.NotNil(t, svc.cron)

	svc.Stop()
}
