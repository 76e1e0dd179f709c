package update_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	"github.com/bookyhq/Booky-SchedulingService/internal/api/middleware"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgTeamNotFound       = "команда не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/teams/{urlPath}/schedule
// Требует Auth middleware: email владельца приходит из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	userEmail, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.logger.Error("PUT /teams/{urlPath}/schedule - Missing user email in context: url=%s", urlPath)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /teams/{urlPath}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	days, err := req.ToDomainDays()
	if err != nil {
		h.logger.Warn("PUT /teams/{urlPath}/schedule - Failed to parse schedule: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	err = h.service.UpdateSchedule(r.Context(), urlPath, userEmail, days, req.Durations)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTeamNotFound):
			h.logger.Warn("PUT /teams/{urlPath}/schedule - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /teams/{urlPath}/schedule - Access denied: url=%s, user=%s", urlPath, userEmail)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput), errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /teams/{urlPath}/schedule - Invalid schedule: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /teams/{urlPath}/schedule - Failed to update schedule: url=%s, error=%v", urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /teams/{urlPath}/schedule - Schedule updated successfully: url=%s, user=%s", urlPath, userEmail)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
