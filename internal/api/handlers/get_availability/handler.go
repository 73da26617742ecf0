package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charlitron/CitasService/internal/api/handlers"
	"github.com/charlitron/CitasService/internal/domain"
	getAvailability "github.com/charlitron/CitasService/internal/usecase/get_availability"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность, ожидается целое число часов от 1 до 6"
	msgCalendarUnavailable = "календарь временно недоступен, попробуйте позже"
	msgGatewayTimeout      = "календарь не ответил вовремя, попробуйте позже"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&durationHours=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}

	durationHours := 1
	if v := r.URL.Query().Get("durationHours"); v != "" {
		durationHours, err = strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid durationHours %q: %v", v, err)
			handlers.RespondBadRequest(w, handlers.KindInvalidDuration, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:          date,
		DurationHours: durationHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidDuration, msgInvalidDuration)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrGatewayTimeout):
			h.logger.Error("GET /availability - Gateway timeout: date=%s", dateStr)
			handlers.RespondGatewayTimeout(w, msgGatewayTimeout)

		case errors.Is(err, getAvailability.ErrCalendarUnavailable):
			h.logger.Error("GET /availability - Calendar unavailable: date=%s", dateStr)
			handlers.RespondBadGateway(w, handlers.KindCalendarUnavailable, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /availability - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, %d free slots, degraded=%t",
		dateStr, len(result.FreeSlots()), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
