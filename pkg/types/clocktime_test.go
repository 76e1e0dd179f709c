package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClockTimeFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		wantErr bool
	}{
		{name: "morning", input: "09:00 AM", minutes: 540},
		{name: "afternoon", input: "02:30 PM", minutes: 870},
		{name: "midnight", input: "12:00 AM", minutes: 0},
		{name: "noon", input: "12:00 PM", minutes: 720},
		{name: "last minute of day", input: "11:59 PM", minutes: 1439},
		{name: "missing zero padding", input: "9:00 AM", wantErr: true},
		{name: "24-hour format", input: "14:30 PM", wantErr: true},
		{name: "hour zero", input: "00:30 AM", wantErr: true},
		{name: "lowercase period", input: "09:00 am", wantErr: true},
		{name: "no period", input: "09:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := NewClockTimeFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, ct.MinutesSinceMidnight())
		})
	}
}

func TestClockTimeString_RoundTrip(t *testing.T) {
	inputs := []string{"12:00 AM", "01:05 AM", "11:59 AM", "12:00 PM", "12:01 PM", "11:59 PM"}

	for _, s := range inputs {
		ct, err := NewClockTimeFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, ct.String())
	}
}

func TestNewClockTime(t *testing.T) {
	ct := NewClockTime(time.Date(2025, 10, 15, 14, 30, 45, 0, time.UTC))

	assert.Equal(t, 870, ct.MinutesSinceMidnight())
	assert.Equal(t, "02:30 PM", ct.String())
}

func TestNewClockTimeFromMinutes(t *testing.T) {
	ct, err := NewClockTimeFromMinutes(540)
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", ct.String())

	_, err = NewClockTimeFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidClockTime)

	_, err = NewClockTimeFromMinutes(1440)
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestClockTimeAddMinutes(t *testing.T) {
	start, err := NewClockTimeFromString("11:30 PM")
	require.NoError(t, err)

	later, err := start.AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, "11:59 PM", later.String())

	// Шаг через полночь недопустим
	_, err = start.AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestClockTimeComparisons(t *testing.T) {
	nine, err := NewClockTimeFromString("09:00 AM")
	require.NoError(t, err)
	ten, err := NewClockTimeFromString("10:00 AM")
	require.NoError(t, err)

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.False(t, nine.IsAfter(nine))
	assert.True(t, nine.Equal(nine))
	assert.False(t, nine.Equal(ten))
}

func TestClockTimeScan(t *testing.T) {
	var ct ClockTime
	require.NoError(t, ct.Scan("03:15 PM"))
	assert.Equal(t, "03:15 PM", ct.String())

	require.NoError(t, ct.Scan([]byte("09:00 AM")))
	assert.Equal(t, "09:00 AM", ct.String())

	assert.Error(t, ct.Scan(42))
}

func TestClockTimeValue(t *testing.T) {
	ct, err := NewClockTimeFromString("09:00 AM")
	require.NoError(t, err)

	v, err := ct.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", v)
}
