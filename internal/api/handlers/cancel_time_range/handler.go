package cancel_time_range

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
	msgInvalidRange       = "некорректный диапазон отмены"
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

// Handle POST /api/v1/teams/{urlPath}/cancelled-ranges
// Требует Auth middleware: email владельца приходит из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	userEmail, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.logger.Error("POST /teams/{urlPath}/cancelled-ranges - Missing user email in context: url=%s", urlPath)
		handlers.RespondInternalError(w)
		return
	}

	var req CancelTimeRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teams/{urlPath}/cancelled-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cr, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /teams/{urlPath}/cancelled-ranges - Failed to parse range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	created, err := h.service.CancelRange(r.Context(), urlPath, userEmail, cr)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTeamNotFound):
			h.logger.Warn("POST /teams/{urlPath}/cancelled-ranges - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /teams/{urlPath}/cancelled-ranges - Access denied: url=%s, user=%s",
				urlPath, userEmail)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput), errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /teams/{urlPath}/cancelled-ranges - Invalid range: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /teams/{urlPath}/cancelled-ranges - Failed to cancel range: url=%s, error=%v",
				urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomain(created)

	h.logger.Info("POST /teams/{urlPath}/cancelled-ranges - Range cancelled successfully: range_id=%d, url=%s, date=%s",
		created.ID, urlPath, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
