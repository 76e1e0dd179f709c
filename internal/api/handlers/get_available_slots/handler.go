package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/bookyhq/Booky-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDuration  = "длительность обязательна"
	msgInvalidDuration  = "некорректная длительность слота"
	msgTeamNotFound     = "команда не найдена"
	msgDurationNotOffer = "команда не предлагает слоты такой длительности"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teams/{urlPath}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /teams/{urlPath}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров
	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /teams/{urlPath}/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /teams/{urlPath}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(urlPath, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /teams/{urlPath}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTeamNotFound):
			h.logger.Warn("GET /teams/{urlPath}/available-slots - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /teams/{urlPath}/available-slots - Duration not offered: url=%s, duration=%d",
				urlPath, durationMinutes)
			handlers.RespondBadRequest(w, msgDurationNotOffer)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /teams/{urlPath}/available-slots - Invalid input: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /teams/{urlPath}/available-slots - Failed to get slots: url=%s, date=%s, error=%v",
				urlPath, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /teams/{urlPath}/available-slots - Slots retrieved successfully: url=%s, date=%s, slots_count=%d",
		urlPath, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
