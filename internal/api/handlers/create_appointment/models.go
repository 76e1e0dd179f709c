package create_appointment

import (
	"time"

	"github.com/bookyhq/Booky-SchedulingService/internal/domain"
	createAppointment "github.com/bookyhq/Booky-SchedulingService/internal/usecase/create_appointment"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00 AM"
	DurationMinutes int    `json:"durationMinutes"`
	Name            string `json:"name"`
	Email           string `json:"email"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Day         string `json:"day"`  // "10-15-2025"
	Time        string `json:"time"` // "10:00 AM"
	Token       string `json:"token"`
	TokenExpiry string `json:"tokenExpiry"` // RFC3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(urlPath string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewClockTimeFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		URLPath:         urlPath,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Name:            r.Name,
		Email:           r.Email,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.AppointmentID,
		Day:         resp.Day,
		Time:        resp.Time,
		Token:       resp.Token,
		TokenExpiry: resp.TokenExpiry.Format(time.RFC3339),
	}
}
