package domain

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// DeriveSlots converts one weekday's recurring windows into the ordered list
// of still-bookable start times for a concrete calendar date.
//
// Per window the cursor walks from Start in durationMinutes steps and emits a
// candidate at every position strictly before End, so the last slot may
// overrun End. A candidate is dropped when an appointment matches it exactly
// (same M-D-YYYY day string and same formatted time string) or when a
// cancelled range for the date contains it, inclusive on both boundaries.
//
// Windows are processed in their given order and never re-sorted: callers
// supply non-overlapping ascending windows to get a globally sorted result.
// A disabled or absent day yields an empty result, not an error.
func DeriveSlots(
	date time.Time,
	day DaySchedule,
	durationMinutes int,
	appointments []*Appointment,
	cancelledRanges []*CancelledRange,
) []types.ClockTime {
	if !day.Enabled || durationMinutes <= 0 {
		return []types.ClockTime{}
	}

	dayKey := FormatAppointmentDay(date)

	slots := make([]types.ClockTime, 0)
	for _, window := range day.Windows {
		if !window.IsValid() {
			continue
		}

		cursor := window.Start
		for cursor.IsBefore(window.End) {
			if !slotBooked(dayKey, cursor, appointments) && !slotCancelled(date, cursor, cancelledRanges) {
				slots = append(slots, cursor)
			}

			next, err := cursor.AddMinutes(durationMinutes)
			if err != nil {
				// Шаг пересек полночь - окно исчерпано
				break
			}
			cursor = next
		}
	}

	return slots
}

// slotBooked сообщает, занят ли кандидат существующей записью
// Сравнение строго строковое, без нормализации форматов
func slotBooked(dayKey string, candidate types.ClockTime, appointments []*Appointment) bool {
	for _, a := range appointments {
		if a.Matches(dayKey, candidate) {
			return true
		}
	}
	return false
}

// slotCancelled сообщает, попадает ли кандидат в отмененный диапазон
// Границы диапазона включаются с обеих сторон
func slotCancelled(date time.Time, candidate types.ClockTime, ranges []*CancelledRange) bool {
	for _, r := range ranges {
		if r.AppliesTo(date) && r.Covers(candidate) {
			return true
		}
	}
	return false
}

// IsDateSelectable reports whether a calendar cell may be offered for
// booking: the date lies within the fixed horizon (today..today+7), its
// weekday is enabled, and — for today only — at least one window start is
// still ahead of the current wall-clock time.
func IsDateSelectable(date, now time.Time, day DaySchedule, enabledWeekdays map[time.Weekday]bool) bool {
	dateOnly := truncateToDay(date)
	today := truncateToDay(now)

	if dateOnly.Before(today) {
		return false
	}
	if dateOnly.After(today.AddDate(0, 0, BookingHorizonDays)) {
		return false
	}

	if !enabledWeekdays[date.Weekday()] {
		return false
	}
	if !day.Enabled || len(day.Windows) == 0 {
		return false
	}

	// Сегодняшний день показываем только пока остались окна в будущем
	if dateOnly.Equal(today) {
		current := types.NewClockTime(now)
		for _, w := range day.Windows {
			if w.Start.IsAfter(current) {
				return true
			}
		}
		return false
	}

	return true
}

// truncateToDay обнуляет время, оставляя только календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
