package poll_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	pollRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/poll"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakePolls struct {
	poll *domain.Poll
	err  error
}

func (f *fakePolls) GetByURLPath(ctx context.Context, urlPath string) (*domain.Poll, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.poll, nil
}

func validRequest() *Request {
	return &Request{
		URLPath:   "standup",
		Day:       "Monday",
		Time:      "10:00",
		UserEmail: "me@example.com",
	}
}

func TestExecute_Summary(t *testing.T) {
	cell := domain.Cell{Day: "Monday", Time: "10:00"}
	poll := &domain.Poll{
		URLPath: "standup",
		Participants: []domain.PollParticipant{
			{Email: "alice@example.com", Cells: []domain.Cell{cell}},
			{Email: "bob@example.com"},
		},
	}

	uc := NewUseCase(&fakePolls{poll: poll}, fakeLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Monday-10:00", resp.CellKey)
	// Текущий пользователь не синхронизирован: входит в итог как недоступный
	assert.Equal(t, 1, resp.AvailableCount)
	assert.Equal(t, 3, resp.TotalParticipants)
	assert.InDelta(t, 1.0/3.0, resp.Ratio, 1e-9)
	assert.Equal(t, 4, resp.Tier)        // ceil(1/3 * 11)
	assert.Equal(t, 2, resp.CompactTier) // ceil(1/3 * 5)
	assert.Equal(t, []string{"alice@example.com"}, resp.AvailableUsers)
	assert.Equal(t, []string{"bob@example.com", "me@example.com"}, resp.UnavailableUsers)
}

func TestExecute_UserSyncedCountedOnce(t *testing.T) {
	cell := domain.Cell{Day: "Monday", Time: "10:00"}
	poll := &domain.Poll{
		URLPath: "standup",
		Participants: []domain.PollParticipant{
			{Email: "me@example.com", Cells: []domain.Cell{cell}},
		},
	}

	uc := NewUseCase(&fakePolls{poll: poll}, fakeLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.AvailableCount)
	assert.Equal(t, 1, resp.TotalParticipants)
	assert.Equal(t, domain.TierBuckets, resp.Tier)
}

func TestExecute_PollNotFound(t *testing.T) {
	uc := NewUseCase(&fakePolls{err: pollRepo.ErrPollNotFound}, fakeLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakePolls{}, fakeLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing url", mutate: func(r *Request) { r.URLPath = "" }},
		{name: "missing day", mutate: func(r *Request) { r.Day = "" }},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }},
		{name: "missing user email", mutate: func(r *Request) { r.UserEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
