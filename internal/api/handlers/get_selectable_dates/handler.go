package get_selectable_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	getSelectableDates "github.com/bookyhq/Booky-SchedulingService/internal/usecase/get_selectable_dates"
)

const msgTeamNotFound = "команда не найдена"

type Handler struct {
	useCase GetSelectableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetSelectableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teams/{urlPath}/selectable-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	result, err := h.useCase.Execute(r.Context(), &getSelectableDates.Request{URLPath: urlPath})
	if err != nil {
		switch {
		case errors.Is(err, getSelectableDates.ErrTeamNotFound):
			h.logger.Warn("GET /teams/{urlPath}/selectable-dates - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, getSelectableDates.ErrInvalidInput):
			h.logger.Warn("GET /teams/{urlPath}/selectable-dates - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /teams/{urlPath}/selectable-dates - Failed to get dates: url=%s, error=%v",
				urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /teams/{urlPath}/selectable-dates - Dates retrieved successfully: url=%s, dates_count=%d",
		urlPath, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
