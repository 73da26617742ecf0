package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/charlitron/CitasService/internal/api/handlers"
	"github.com/charlitron/CitasService/internal/service/appointments"
)

const msgMissingEmail = "email обязателен"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{email}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgMissingEmail)
		return
	}

	result, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/{email}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgMissingEmail)

		default:
			h.logger.Error("GET /clients/{email}/appointments - Failed: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{email}/appointments - email=%s, total=%d", email, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
