package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	createAppointment "github.com/bookyhq/Booky-SchedulingService/internal/usecase/create_appointment"
	"github.com/bookyhq/Booky-SchedulingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается hh:mm AM/PM"
	msgTeamNotFound       = "команда не найдена"
	msgInvalidDuration    = "некорректная длительность слота"
	msgDateNotSelectable  = "дата недоступна для бронирования"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/teams/{urlPath}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	urlPath := vars["urlPath"]

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teams/{urlPath}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(urlPath)
	if err != nil {
		h.logger.Warn("POST /teams/{urlPath}/appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidClockTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /teams/{urlPath}/appointments - Slot not available: url=%s, date=%s, time=%s",
				urlPath, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrTeamNotFound):
			h.logger.Warn("POST /teams/{urlPath}/appointments - Team not found: url=%s", urlPath)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /teams/{urlPath}/appointments - Invalid duration: url=%s, duration=%d",
				urlPath, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrDateNotSelectable):
			h.logger.Warn("POST /teams/{urlPath}/appointments - Date not selectable: url=%s, date=%s",
				urlPath, req.Date)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /teams/{urlPath}/appointments - Invalid input: url=%s, error=%v", urlPath, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /teams/{urlPath}/appointments - Failed to create appointment: url=%s, error=%v",
				urlPath, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /teams/{urlPath}/appointments - Appointment created successfully: appointment_id=%d, url=%s, slot=%s %s",
		result.AppointmentID, urlPath, result.Day, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
