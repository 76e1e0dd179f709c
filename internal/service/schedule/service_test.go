package schedule

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
	team        *domain.Team
	getErr      error
	replaced    bool
	replacedDay []domain.DaySchedule
}

func (f *fakeTeams) GetByURLPath(ctx context.Context, urlPath string) (*domain.Team, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.team, nil
}

func (f *fakeTeams) ReplaceSchedule(ctx context.Context, teamID int64, days []domain.DaySchedule, durations []int) error {
	f.replaced = true
	f.replacedDay = days
	return nil
}

type fakeBookings struct {
	appointments []*domain.Appointment
}

func (f *fakeBookings) GetByTeam(ctx context.Context, teamID int64) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeRanges struct {
	ranges  []*domain.CancelledRange
	created *domain.CancelledRange
}

func (f *fakeRanges) Create(ctx context.Context, cr *domain.CancelledRange) (*domain.CancelledRange, error) {
	created := *cr
	created.ID = 9
	f.created = &created
	return &created, nil
}

func (f *fakeRanges) GetByTeam(ctx context.Context, teamID int64) ([]*domain.CancelledRange, error) {
	return f.ranges, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustClock(t *testing.T, s string) types.ClockTime {
	t.Helper()
	ct, err := types.NewClockTimeFromString(s)
	require.NoError(t, err)
	return ct
}

func testTeam() *domain.Team {
	return &domain.Team{
		ID:         1,
		URLPath:    "acme",
		OwnerEmail: "owner@example.com",
		Durations:  []int{30},
	}
}

func newTestService(teams *fakeTeams, ranges *fakeRanges) *Service {
	return NewService(teams, &fakeBookings{}, ranges, fakeTxManager{}, fakeLogger{})
}

func validDays(t *testing.T) []domain.DaySchedule {
	t.Helper()
	return []domain.DaySchedule{
		{
			Weekday: time.Monday,
			Enabled: true,
			Windows: []domain.TimeRange{
				{Start: mustClock(t, "09:00 AM"), End: mustClock(t, "05:00 PM")},
			},
		},
		{Weekday: time.Tuesday, Enabled: false},
	}
}

func TestGetTeamDetails(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	details, err := svc.GetTeamDetails(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, "acme", details.Team.URLPath)

	// Репозитории без строк отдают nil, агрегат всегда отдает пустые срезы
	require.NotNil(t, details.Appointments)
	require.NotNil(t, details.CancelledRanges)
	assert.Empty(t, details.Appointments)
	assert.Empty(t, details.CancelledRanges)
}

func TestGetTeamDetails_NotFound(t *testing.T) {
	teams := &fakeTeams{getErr: teamRepo.ErrTeamNotFound}
	svc := newTestService(teams, &fakeRanges{})

	_, err := svc.GetTeamDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestUpdateSchedule_Success(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	err := svc.UpdateSchedule(context.Background(), "acme", "owner@example.com", validDays(t), []int{30, 60})

	require.NoError(t, err)
	assert.True(t, teams.replaced)
	assert.Len(t, teams.replacedDay, 2)
}

func TestUpdateSchedule_AccessDenied(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	err := svc.UpdateSchedule(context.Background(), "acme", "intruder@example.com", validDays(t), []int{30})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, teams.replaced)
}

func TestUpdateSchedule_ValidationErrors(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	tests := []struct {
		name      string
		days      []domain.DaySchedule
		durations []int
		wantErr   error
	}{
		{
			name:      "no durations",
			days:      validDays(t),
			durations: nil,
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "disallowed duration",
			days:      validDays(t),
			durations: []int{25},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "duplicate weekday",
			days: []domain.DaySchedule{
				{Weekday: time.Monday, Enabled: false},
				{Weekday: time.Monday, Enabled: false},
			},
			durations: []int{30},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "enabled day without windows",
			days: []domain.DaySchedule{
				{Weekday: time.Monday, Enabled: true},
			},
			durations: []int{30},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "inverted window",
			days: []domain.DaySchedule{
				{
					Weekday: time.Monday,
					Enabled: true,
					Windows: []domain.TimeRange{
						{Start: mustClock(t, "05:00 PM"), End: mustClock(t, "09:00 AM")},
					},
				},
			},
			durations: []int{30},
			wantErr:   ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateSchedule(context.Background(), "acme", "owner@example.com", tt.days, tt.durations)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCancelRange_Success(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	ranges := &fakeRanges{}
	svc := newTestService(teams, ranges)

	cr := &domain.CancelledRange{
		Date: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		Window: domain.TimeRange{
			Start: mustClock(t, "09:00 AM"),
			End:   mustClock(t, "11:00 AM"),
		},
	}

	created, err := svc.CancelRange(context.Background(), "acme", "owner@example.com", cr)
	require.NoError(t, err)

	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, int64(1), created.TeamID)
}

func TestCancelRange_AccessDenied(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	cr := &domain.CancelledRange{
		Window: domain.TimeRange{
			Start: mustClock(t, "09:00 AM"),
			End:   mustClock(t, "11:00 AM"),
		},
	}

	_, err := svc.CancelRange(context.Background(), "acme", "intruder@example.com", cr)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancelRange_InvalidWindow(t *testing.T) {
	teams := &fakeTeams{team: testTeam()}
	svc := newTestService(teams, &fakeRanges{})

	cr := &domain.CancelledRange{
		Window: domain.TimeRange{
			Start: mustClock(t, "11:00 AM"),
			End:   mustClock(t, "09:00 AM"),
		},
	}

	_, err := svc.CancelRange(context.Background(), "acme", "owner@example.com", cr)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
