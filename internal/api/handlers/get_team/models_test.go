package get_team

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

func mustClock(t *testing.T, s string) types.ClockTime {
	t.Helper()
	ct, err := types.NewClockTimeFromString(s)
	require.NoError(t, err)
	return ct
}

func testDetails(t *testing.T) *schedule.TeamDetails {
	return &schedule.TeamDetails{
		Team: &domain.Team{
			ID:         1,
			URLPath:    "acme",
			Name:       "Acme",
			OwnerEmail: "owner@example.com",
			Durations:  []int{30, 60},
			Days: []domain.DaySchedule{
				{
					Weekday: time.Monday,
					Enabled: true,
					Windows: []domain.TimeRange{
						{Start: mustClock(t, "09:00 AM"), End: mustClock(t, "05:00 PM")},
					},
				},
			},
		},
		Appointments: []*domain.Appointment{
			{Day: "10-15-2025", Time: "10:00 AM", Name: "Alice", Email: "alice@example.com"},
		},
		CancelledRanges: []*domain.CancelledRange{
			{
				Date:   time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
				Window: domain.TimeRange{Start: mustClock(t, "01:00 PM"), End: mustClock(t, "02:00 PM")},
			},
		},
	}
}

func TestFromServiceResponse(t *testing.T) {
	resp := FromServiceResponse(testDetails(t))

	// Длительности уходят наружу строками
	assert.Equal(t, []string{"30", "60"}, resp.Durations)

	require.Len(t, resp.AvailableTime, 1)
	assert.Equal(t, "Monday", resp.AvailableTime[0].Weekday)
	assert.Equal(t, "09:00 AM", resp.AvailableTime[0].Windows[0].Start)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "10-15-2025", resp.Appointments[0].Day)

	require.Len(t, resp.CancelledMeetings, 1)
	assert.Equal(t, "2025-10-16", resp.CancelledMeetings[0].Date)
}

func TestTeamResponseWireKeys(t *testing.T) {
	raw, err := json.Marshal(FromServiceResponse(testDetails(t)))
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"availableTime":`)
	assert.Contains(t, body, `"cancelledMeetings":`)
	assert.Contains(t, body, `"durations":["30","60"]`)

	// Персональные данные посетителей наружу не уходят
	assert.NotContains(t, body, "alice@example.com")
	assert.NotContains(t, body, "Alice")
}
