package get_team

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
)

const (
	msgMissingURLPath = "url команды обязателен"
	msgTeamNotFound   = "команда не найдена"
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

// Handle GET /api/v1/teams/{urlPath}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]
	if urlPath == "" {
		h.logger.Warn("GET /teams/{urlPath} - Missing url path")
		handlers.RespondBadRequest(w, msgMissingURLPath)
		return
	}

	details, err := h.service.GetTeamDetails(r.Context(), urlPath)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTeamNotFound):
			h.logger.Warn("GET /teams/{urlPath} - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		default:
			h.logger.Error("GET /teams/{urlPath} - Failed to get team: url=%s, error=%v", urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(details)

	h.logger.Info("GET /teams/{urlPath} - Team retrieved successfully: url=%s", urlPath)
	handlers.RespondJSON(w, http.StatusOK, response)
}
