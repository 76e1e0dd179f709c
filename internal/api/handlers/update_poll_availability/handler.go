package update_poll_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	"github.com/bookyhq/Booky-SchedulingService/internal/api/middleware"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/polls"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlots       = "некорректные ключи слотов"
	msgPollNotFound       = "опрос не найден"
)

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

// Handle PATCH /api/v1/polls/{urlPath}/availability
// Требует Auth middleware: email участника приходит из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	userEmail, ok := middleware.UserEmail(r.Context())
	if !ok {
		h.logger.Error("PATCH /polls/{urlPath}/availability - Missing user email in context: url=%s", urlPath)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /polls/{urlPath}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateAvailability(r.Context(), urlPath, userEmail, req.SelectedSlots)
	if err != nil {
		switch {
		case errors.Is(err, polls.ErrPollNotFound):
			h.logger.Warn("PATCH /polls/{urlPath}/availability - Poll not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgPollNotFound)

		case errors.Is(err, polls.ErrInvalidInput):
			h.logger.Warn("PATCH /polls/{urlPath}/availability - Invalid slot keys: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("PATCH /polls/{urlPath}/availability - Failed to update availability: url=%s, error=%v",
				urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /polls/{urlPath}/availability - Availability updated successfully: url=%s, user=%s, slots=%d",
		urlPath, userEmail, len(req.SelectedSlots))
	handlers.RespondJSON(w, http.StatusOK, nil)
}
