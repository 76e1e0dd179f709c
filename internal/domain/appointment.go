package domain

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// Appointment is one booked slot. It is immutable once created; the only
// mutation is deletion, either by the invitee (token) or by the host.
//
// Day and Time are kept as the literal wire strings (M-D-YYYY and
// "hh:mm AM"). Slot exclusion is an exact string match against them, with no
// cross-format normalization.
type Appointment struct {
	ID     int64
	TeamID int64

	Day   string
	Time  string
	Name  string
	Email string

	Token       string
	TokenExpiry time.Time

	CreatedAt time.Time
}

// Matches reports whether the appointment occupies the candidate slot:
// exact match of the formatted day and the formatted time string.
func (a *Appointment) Matches(day string, t types.ClockTime) bool {
	return a.Day == day && a.Time == t.String()
}

// CanBeCancelledAt reports whether the cancellation token is still valid.
func (a *Appointment) CanBeCancelledAt(now time.Time) bool {
	return now.Before(a.TokenExpiry)
}

// FormatAppointmentDay formats a calendar date in the appointment day format
// (M-D-YYYY, no zero padding).
func FormatAppointmentDay(date time.Time) string {
	return date.Format(AppointmentDayFormat)
}

// CancelledRange is a host-declared exception window removing otherwise
// available slots on one specific date.
type CancelledRange struct {
	ID     int64
	TeamID int64

	Date   time.Time
	Window TimeRange

	CreatedAt time.Time
}

// AppliesTo reports whether the range targets the given calendar date.
func (c *CancelledRange) AppliesTo(date time.Time) bool {
	y1, m1, d1 := c.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Covers reports whether the candidate start time falls inside the cancelled
// window. Both boundaries are excluded from booking, so the check is
// inclusive on both ends.
func (c *CancelledRange) Covers(t types.ClockTime) bool {
	return c.Window.Contains(t)
}
