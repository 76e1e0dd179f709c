package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
	"github.com/bookyhq/Booky-SchedulingService/internal/service/appointments"
)

const (
	msgMissingToken = "токен отмены обязателен"
	msgNotFound     = "запись не найдена"
	msgTokenExpired = "срок действия токена отмены истек"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{token}
// Отмена по токену не требует аутентификации: токен и есть право на отмену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]
	if token == "" {
		h.logger.Warn("DELETE /appointments/{token} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	err := h.service.CancelByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{token} - Appointment not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrTokenExpired):
			h.logger.Warn("DELETE /appointments/{token} - Token expired")
			handlers.RespondError(w, http.StatusGone, msgTokenExpired)

		default:
			h.logger.Error("DELETE /appointments/{token} - Failed to cancel appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{token} - Appointment cancelled successfully")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
