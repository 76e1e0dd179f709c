package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidClockTime is returned when a string does not match the
// "hh:mm AM"/"hh:mm PM" wire format.
var ErrInvalidClockTime = errors.New("invalid clock time string format")

// clockTimeRE matches the 12-hour wire format: zero-padded hour 01-12,
// minutes 00-59, a single space, then AM or PM.
var clockTimeRE = regexp.MustCompile(`^(0[1-9]|1[0-2]):([0-5][0-9]) (AM|PM)$`)

// ClockTime is a wall-clock time of day carried on the wire as a 12-hour
// string ("09:00 AM"). Midnight is "12:00 AM" (minute 0), noon is "12:00 PM"
// (minute 720). Internally it is minutes since midnight, which makes range
// comparisons trivial.
type ClockTime struct {
	minutes int
}

// NewClockTime builds a ClockTime from the time-of-day part of t.
func NewClockTime(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

// NewClockTimeFromMinutes builds a ClockTime from minutes since midnight.
// Values outside [0, 1440) are rejected.
func NewClockTimeFromMinutes(m int) (ClockTime, error) {
	if m < 0 || m >= 24*60 {
		return ClockTime{}, fmt.Errorf("%w: %d minutes out of range", ErrInvalidClockTime, m)
	}
	return ClockTime{minutes: m}, nil
}

// NewClockTimeFromString parses the 12-hour wire format.
func NewClockTimeFromString(s string) (ClockTime, error) {
	m := clockTimeRE.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	// 12 AM is hour 0, 12 PM stays hour 12.
	if hour == 12 {
		hour = 0
	}
	if m[3] == "PM" {
		hour += 12
	}

	return ClockTime{minutes: hour*60 + minute}, nil
}

// String formats back to the wire format ("09:00 AM").
func (c ClockTime) String() string {
	hour := c.minutes / 60
	minute := c.minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour12, minute, period)
}

// MinutesSinceMidnight returns the minute offset within the day.
func (c ClockTime) MinutesSinceMidnight() int {
	return c.minutes
}

// AddMinutes returns the clock time n minutes later. Crossing midnight is an
// error: all schedules in this system live within a single day.
func (c ClockTime) AddMinutes(n int) (ClockTime, error) {
	return NewClockTimeFromMinutes(c.minutes + n)
}

// IsBefore reports whether c is strictly earlier than other.
func (c ClockTime) IsBefore(other ClockTime) bool {
	return c.minutes < other.minutes
}

// IsAfter reports whether c is strictly later than other.
func (c ClockTime) IsAfter(other ClockTime) bool {
	return c.minutes > other.minutes
}

// Equal reports whether both values name the same minute of the day.
func (c ClockTime) Equal(other ClockTime) bool {
	return c.minutes == other.minutes
}

// Scan implements sql.Scanner; the column is stored in the wire format.
func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewClockTimeFromString(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		parsed, err := NewClockTimeFromString(string(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidClockTime, src)
	}
}

// Value implements driver.Valuer.
func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}
