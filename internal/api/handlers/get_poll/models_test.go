package get_poll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
)

func TestFromDomain(t *testing.T) {
	poll := &domain.Poll{
		URLPath: "offsite-planning",
		Title:   "Offsite planning",
		Participants: []domain.PollParticipant{
			{
				Email: "alice@example.com",
				Cells: []domain.Cell{
					{Day: "Monday", Time: "10:00"},
					{Day: "Tuesday", Time: "09:30"},
				},
			},
		},
	}

	resp := FromDomain(poll)

	require.Len(t, resp.Participants, 1)
	assert.Equal(t, []string{"Monday-10:00", "Tuesday-09:30"}, resp.Participants[0].Schedule)
}

func TestPollResponseWireKeys(t *testing.T) {
	poll := &domain.Poll{
		URLPath: "offsite-planning",
		Participants: []domain.PollParticipant{
			{Email: "alice@example.com", Cells: []domain.Cell{{Day: "Monday", Time: "10:00"}}},
		},
	}

	raw, err := json.Marshal(FromDomain(poll))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"schedule":["Monday-10:00"]`)
}
