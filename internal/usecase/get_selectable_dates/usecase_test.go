package get_selectable_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTeams struct {
	team *domain.Team
	err  error
}

func (f *fakeTeams) GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.team, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func mustClock(t *testing.T, s string) types.ClockTime {
	t.Helper()
	ct, err := types.NewClockTimeFromString(s)
	require.NoError(t, err)
	return ct
}

// Среда, 10:00
var testNow = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

func newTestUseCase(teams *fakeTeams) *UseCase {
	uc := NewUseCase(teams, fakeLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func dateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}

func TestExecute_AllDaysEnabled(t *testing.T) {
	window := domain.TimeRange{Start: mustClock(t, "09:00 AM"), End: mustClock(t, "05:00 PM")}

	days := make([]domain.DaySchedule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, domain.DaySchedule{Weekday: d, Enabled: true, Windows: []domain.TimeRange{window}})
	}

	uc := newTestUseCase(&fakeTeams{team: &domain.Team{ID: 1, URLPath: "acme", Days: days}})

	resp, err := uc.Execute(context.Background(), &Request{URLPath: "acme"})
	require.NoError(t, err)

	// Сегодня (10:00) все окна уже идут, но вечерних стартов нет - день выпадает
	assert.Equal(t, []string{
		"2025-10-16", "2025-10-17", "2025-10-18", "2025-10-19",
		"2025-10-20", "2025-10-21", "2025-10-22",
	}, dateStrings(resp.Dates))
}

func TestExecute_TodayIncludedWhileWindowAhead(t *testing.T) {
	evening := domain.TimeRange{Start: mustClock(t, "06:00 PM"), End: mustClock(t, "08:00 PM")}

	days := []domain.DaySchedule{
		{Weekday: time.Wednesday, Enabled: true, Windows: []domain.TimeRange{evening}},
	}

	uc := newTestUseCase(&fakeTeams{team: &domain.Team{ID: 1, URLPath: "acme", Days: days}})

	resp, err := uc.Execute(context.Background(), &Request{URLPath: "acme"})
	require.NoError(t, err)

	// Только среды внутри горизонта: сегодня (окно впереди) и следующая
	assert.Equal(t, []string{"2025-10-15", "2025-10-22"}, dateStrings(resp.Dates))
}

func TestExecute_DisabledDaysSkipped(t *testing.T) {
	window := domain.TimeRange{Start: mustClock(t, "09:00 AM"), End: mustClock(t, "05:00 PM")}

	days := []domain.DaySchedule{
		{Weekday: time.Thursday, Enabled: true, Windows: []domain.TimeRange{window}},
		{Weekday: time.Friday, Enabled: false, Windows: []domain.TimeRange{window}},
	}

	uc := newTestUseCase(&fakeTeams{team: &domain.Team{ID: 1, URLPath: "acme", Days: days}})

	resp, err := uc.Execute(context.Background(), &Request{URLPath: "acme"})
	require.NoError(t, err)

	// Четверги проходят, пятницы выключены, остальных дней нет в расписании
	assert.Equal(t, []string{"2025-10-16"}, dateStrings(resp.Dates))
}

func TestExecute_TeamNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTeams{err: teamRepo.ErrTeamNotFound})

	_, err := uc.Execute(context.Background(), &Request{URLPath: "missing"})

	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestExecute_MissingURLPath(t *testing.T) {
	uc := newTestUseCase(&fakeTeams{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
