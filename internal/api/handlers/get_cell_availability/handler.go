package get_cell_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	pollAvailability "github.com/bookyhq/Booky-SchedulingService/internal/usecase/poll_availability"
)

const (
	msgMissingCell      = "параметры day и time обязательны"
	msgMissingUserEmail = "параметр userEmail обязателен"
	msgPollNotFound     = "опрос не найден"
)

type Handler struct {
	useCase PollAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase PollAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/polls/{urlPath}/availability/summary
// Query params: day (required), time (required), userEmail (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	query := r.URL.Query()
	day := query.Get("day")
	timeStr := query.Get("time")
	if day == "" || timeStr == "" {
		h.logger.Warn("GET /polls/{urlPath}/availability/summary - Missing day or time: url=%s", urlPath)
		handlers.RespondBadRequest(w, msgMissingCell)
		return
	}

	userEmail := query.Get("userEmail")
	if userEmail == "" {
		h.logger.Warn("GET /polls/{urlPath}/availability/summary - Missing user email: url=%s", urlPath)
		handlers.RespondBadRequest(w, msgMissingUserEmail)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &pollAvailability.Request{
		URLPath:   urlPath,
		Day:       day,
		Time:      timeStr,
		UserEmail: userEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, pollAvailability.ErrPollNotFound):
			h.logger.Warn("GET /polls/{urlPath}/availability/summary - Poll not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgPollNotFound)

		case errors.Is(err, pollAvailability.ErrInvalidInput):
			h.logger.Warn("GET /polls/{urlPath}/availability/summary - Invalid input: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /polls/{urlPath}/availability/summary - Failed to get availability: url=%s, error=%v",
				urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /polls/{urlPath}/availability/summary - Availability retrieved: url=%s, cell=%s, available=%d/%d",
		urlPath, result.CellKey, result.AvailableCount, result.TotalParticipants)
	handlers.RespondJSON(w, http.StatusOK, response)
}
