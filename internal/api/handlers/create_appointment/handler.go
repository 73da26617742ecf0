package create_appointment

import (
	"errors"
	"net/http"

	"github.com/charlitron/CitasService/internal/api/handlers"
	createAppointment "github.com/charlitron/CitasService/internal/usecase/create_appointment"
)

const (
	msgInvalidBody           = "некорректное тело запроса"
	msgInvalidInput          = "некорректные данные записи"
	msgInvalidDuration       = "некорректная длительность, ожидается целое число часов от 1 до 6"
	msgSlotNoLongerAvailable = "слот уже занят, выберите другое время"
	msgCalendarUnavailable   = "календарь временно недоступен, запись не создана"
	msgGatewayTimeout        = "календарь не ответил вовремя, запись не создана"
	msgCalendarWriteFailed   = "не удалось создать событие в календаре, запись не создана"
	msgStoreWriteFailed      = "не удалось сохранить запись, попробуйте позже"
	msgCompensationFailed    = "запись не создана, обратитесь в поддержку"
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

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	h.logger.Info("POST /appointments - Created: id=%s, date=%s, start=%s, email=%s",
		result.ID, req.Date, req.StartTime, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateAppointmentRequest, err error) {
	switch {
	case errors.Is(err, createAppointment.ErrInvalidDuration):
		h.logger.Warn("POST /appointments - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDuration, msgInvalidDuration)

	case errors.Is(err, createAppointment.ErrInvalidInput):
		h.logger.Warn("POST /appointments - Invalid input: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidInput)

	case errors.Is(err, createAppointment.ErrSlotNoLongerAvailable):
		h.logger.Info("POST /appointments - Slot taken: date=%s, start=%s", req.Date, req.StartTime)
		handlers.RespondConflict(w, handlers.KindSlotNoLongerAvailable, msgSlotNoLongerAvailable)

	case errors.Is(err, createAppointment.ErrGatewayTimeout):
		h.logger.Error("POST /appointments - Gateway timeout: date=%s, start=%s", req.Date, req.StartTime)
		handlers.RespondGatewayTimeout(w, msgGatewayTimeout)

	case errors.Is(err, createAppointment.ErrCalendarUnavailable):
		h.logger.Error("POST /appointments - Calendar unavailable: date=%s, start=%s", req.Date, req.StartTime)
		handlers.RespondBadGateway(w, handlers.KindCalendarUnavailable, msgCalendarUnavailable)

	case errors.Is(err, createAppointment.ErrCalendarWriteFailed):
		h.logger.Error("POST /appointments - Calendar write failed: date=%s, start=%s, error=%v",
			req.Date, req.StartTime, err)
		handlers.RespondBadGateway(w, handlers.KindCalendarWriteFailed, msgCalendarWriteFailed)

	case errors.Is(err, createAppointment.ErrCompensationFailed):
		// Осталось висячее событие в календаре, требуется ручная сверка.
		// Детали (id события) уже записаны в лог на уровне use case.
		h.logger.Error("POST /appointments - Compensation failed: date=%s, start=%s, error=%v",
			req.Date, req.StartTime, err)
		handlers.RespondError(w, http.StatusInternalServerError, handlers.KindCompensationFailed, msgCompensationFailed)

	case errors.Is(err, createAppointment.ErrStoreWriteFailed):
		h.logger.Error("POST /appointments - Store write failed: date=%s, start=%s, error=%v",
			req.Date, req.StartTime, err)
		handlers.RespondError(w, http.StatusInternalServerError, handlers.KindStoreWriteFailed, msgStoreWriteFailed)

	default:
		h.logger.Error("POST /appointments - Failed: date=%s, start=%s, error=%v", req.Date, req.StartTime, err)
		handlers.RespondInternalError(w)
	}
}
