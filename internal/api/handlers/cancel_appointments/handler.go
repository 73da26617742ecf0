package cancel_appointments

import (
	"errors"
	"net/http"

	"github.com/charlitron/CitasService/internal/api/handlers"
	cancelAppointments "github.com/charlitron/CitasService/internal/usecase/cancel_appointments"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidEmail = "email обязателен"
)

type Handler struct {
	useCase CancelAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointments.Request{Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidEmail)

		default:
			h.logger.Error("POST /appointments/cancel - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel - email=%s, cancelled=%d of %d",
		req.Email, result.CancelledCount, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
