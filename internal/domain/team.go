package domain

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// TimeRange is a single availability window within one day.
type TimeRange struct {
	Start types.ClockTime
	End   types.ClockTime
}

// IsValid reports whether the window is well-formed: Start strictly precedes
// End within the same day.
func (r TimeRange) IsValid() bool {
	return r.Start.IsBefore(r.End)
}

// Contains reports whether t falls inside the window, inclusive on both ends.
func (r TimeRange) Contains(t types.ClockTime) bool {
	return !t.IsBefore(r.Start) && !t.IsAfter(r.End)
}

// DaySchedule is one weekday's availability: the enabled flag plus the list
// of windows. Windows is non-empty whenever Enabled is true.
type DaySchedule struct {
	Weekday time.Weekday
	Enabled bool
	Windows []TimeRange
}

// Team is a bookable host calendar: a weekly recurring schedule, the set of
// offered slot durations and the owner identity.
type Team struct {
	ID         int64
	URLPath    string
	Name       string
	OwnerEmail string
	Durations  []int
	Days       []DaySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayFor returns the schedule entry for the given weekday. The second return
// value is false when the team has no entry for that weekday.
func (t *Team) DayFor(weekday time.Weekday) (DaySchedule, bool) {
	for _, d := range t.Days {
		if d.Weekday == weekday {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// EnabledWeekdays returns the set of weekdays with an enabled schedule.
func (t *Team) EnabledWeekdays() map[time.Weekday]bool {
	enabled := make(map[time.Weekday]bool, len(t.Days))
	for _, d := range t.Days {
		if d.Enabled {
			enabled[d.Weekday] = true
		}
	}
	return enabled
}

// OffersDuration reports whether the team offers slots of the given length.
func (t *Team) OffersDuration(minutes int) bool {
	for _, d := range t.Durations {
		if d == minutes {
			return true
		}
	}
	return false
}
