package get_team

import (
	"strconv"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
)

// TeamResponse HTTP response model
// Длительности уходят наружу строками
type TeamResponse struct {
	URLPath           string                `json:"urlPath"`
	Name              string                `json:"name"`
	Durations         []string              `json:"durations"`
	AvailableTime     []DayScheduleModel    `json:"availableTime"`
	Appointments      []AppointmentModel    `json:"appointments"`
	CancelledMeetings []CancelledRangeModel `json:"cancelledMeetings"`
}

// DayScheduleModel модель расписания одного дня недели
type DayScheduleModel struct {
	Weekday string           `json:"weekday"`
	Enabled bool             `json:"enabled"`
	Windows []TimeRangeModel `json:"windows"`
}

// TimeRangeModel модель окна доступности
type TimeRangeModel struct {
	Start string `json:"start"` // "09:00 AM"
	End   string `json:"end"`   // "05:00 PM"
}

// AppointmentModel модель занятого слота (без персональных данных)
type AppointmentModel struct {
	Day  string `json:"day"`  // "10-15-2025"
	Time string `json:"time"` // "10:00 AM"
}

// CancelledRangeModel модель отмененного диапазона
type CancelledRangeModel struct {
	Date  string `json:"date"` // "2025-10-15"
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromServiceResponse конвертирует агрегат сервиса в HTTP response
// Имена и email посетителей наружу не отдаются
func FromServiceResponse(details *schedule.TeamDetails) *TeamResponse {
	days := make([]DayScheduleModel, len(details.Team.Days))
	for i, d := range details.Team.Days {
		windows := make([]TimeRangeModel, len(d.Windows))
		for j, w := range d.Windows {
			windows[j] = TimeRangeModel{
				Start: w.Start.String(),
				End:   w.End.String(),
			}
		}
		days[i] = DayScheduleModel{
			Weekday: d.Weekday.String(),
			Enabled: d.Enabled,
			Windows: windows,
		}
	}

	appointments := make([]AppointmentModel, len(details.Appointments))
	for i, a := range details.Appointments {
		appointments[i] = AppointmentModel{
			Day:  a.Day,
			Time: a.Time,
		}
	}

	ranges := make([]CancelledRangeModel, len(details.CancelledRanges))
	for i, cr := range details.CancelledRanges {
		ranges[i] = CancelledRangeModel{
			Date:  cr.Date.Format(domain.DateFormat),
			Start: cr.Window.Start.String(),
			End:   cr.Window.End.String(),
		}
	}

	durations := make([]string, len(details.Team.Durations))
	for i, d := range details.Team.Durations {
		durations[i] = strconv.Itoa(d)
	}

	return &TeamResponse{
		URLPath:           details.Team.URLPath,
		Name:              details.Team.Name,
		Durations:         durations,
		AvailableTime:     days,
		Appointments:      appointments,
		CancelledMeetings: ranges,
	}
}
