package get_poll

import "github.com/bookyhq/Booky-SchedulingService/internal/domain"

// PollResponse HTTP response model
type PollResponse struct {
	URLPath      string             `json:"urlPath"`
	Title        string             `json:"title"`
	Participants []ParticipantModel `json:"participants"`
}

// ParticipantModel модель участника опроса
type ParticipantModel struct {
	Email    string   `json:"email"`
	Schedule []string `json:"schedule"` // проводные ключи "Monday-10:00"
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(poll *domain.Poll) *PollResponse {
	participants := make([]ParticipantModel, len(poll.Participants))
	for i, p := range poll.Participants {
		schedule := make([]string, len(p.Cells))
		for j, c := range p.Cells {
			schedule[j] = c.Key()
		}
		participants[i] = ParticipantModel{
			Email:    p.Email,
			Schedule: schedule,
		}
	}

	return &PollResponse{
		URLPath:      poll.URLPath,
		Title:        poll.Title,
		Participants: participants,
	}
}
