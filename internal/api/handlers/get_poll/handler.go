package get_poll

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/polls"
)

const msgPollNotFound = "опрос не найден"

type Handler struct {
	service PollService
	logger  Logger
}

func NewHandler(service PollService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/polls/{urlPath}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	poll, err := h.service.GetPoll(r.Context(), urlPath)
	if err != nil {
		switch {
		case errors.Is(err, polls.ErrPollNotFound):
			h.logger.Warn("GET /polls/{urlPath} - Poll not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgPollNotFound)

		default:
			h.logger.Error("GET /polls/{urlPath} - Failed to get poll: url=%s, error=%v", urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomain(poll)

	h.logger.Info("GET /polls/{urlPath} - Poll retrieved successfully: url=%s, participants=%d",
		urlPath, len(poll.Participants))
	handlers.RespondJSON(w, http.StatusOK, response)
}
