package update_schedule

import (
	"fmt"
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Durations []int              `json:"durations"`
	Days      []DayScheduleModel `json:"days"`
}

// DayScheduleModel модель расписания одного дня недели
type DayScheduleModel struct {
	Weekday string           `json:"weekday"` // "Monday"
	Enabled bool             `json:"enabled"`
	Windows []TimeRangeModel `json:"windows"`
}

// TimeRangeModel модель окна доступности
type TimeRangeModel struct {
	Start string `json:"start"` // "09:00 AM"
	End   string `json:"end"`   // "05:00 PM"
}

var weekdaysByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ToDomainDays конвертирует HTTP модель в доменное расписание
func (r *UpdateScheduleRequest) ToDomainDays() ([]domain.DaySchedule, error) {
	days := make([]domain.DaySchedule, len(r.Days))
	for i, d := range r.Days {
		weekday, ok := weekdaysByName[d.Weekday]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", d.Weekday)
		}

		windows := make([]domain.TimeRange, len(d.Windows))
		for j, w := range d.Windows {
			start, err := types.NewClockTimeFromString(w.Start)
			if err != nil {
				return nil, fmt.Errorf("window start %q: %w", w.Start, err)
			}
			end, err := types.NewClockTimeFromString(w.End)
			if err != nil {
				return nil, fmt.Errorf("window end %q: %w", w.End, err)
			}
			windows[j] = domain.TimeRange{Start: start, End: end}
		}

		days[i] = domain.DaySchedule{
			Weekday: weekday,
			Enabled: d.Enabled,
			Windows: windows,
		}
	}
	return days, nil
}
