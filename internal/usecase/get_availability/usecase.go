package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
)

// UseCase use case получения свободных и занятых слотов на день.
// Занятость всегда считается по свежим данным провайдера: состояние
// календаря между запросами не кешируется.
type UseCase struct {
	calendar      CalendarGateway
	policy        *domain.OperatingPolicy
	allowDegraded bool
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarGateway, policy *domain.OperatingPolicy, allowDegraded bool, logger Logger) *UseCase {
	return &UseCase{
		calendar:      calendar,
		policy:        policy,
		allowDegraded: allowDegraded,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, duration=%dh",
		req.Date.Format(domain.DateFormat), req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем сетку слотов
	slots, err := generateTimeSlots(uc.policy, req.DurationHours)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		uc.logger.Info("GetAvailability: duration %dh does not fit the operating window %s-%s",
			req.DurationHours, uc.policy.Opening, uc.policy.Closing)
		return &Response{
			Date:          req.Date,
			DurationHours: req.DurationHours,
			Slots:         slots,
			Busy:          []domain.BusyInterval{},
		}, nil
	}

	// 3. Запрашиваем события провайдера за весь день в бизнес-таймзоне
	dayStart, dayEnd := uc.policy.DayBounds(req.Date)

	events, err := uc.calendar.FetchEvents(ctx, dayStart, dayEnd)
	if err != nil {
		return uc.handleCalendarFailure(req, slots, err)
	}

	busy := toBusyIntervals(events)

	// 4. Помечаем занятые слоты по пересечению интервалов
	marked, err := markBusySlots(slots, busy, req.Date, uc.policy.Location())
	if err != nil {
		uc.logger.Error("GetAvailability: failed to mark busy slots: %v", err)
		return nil, fmt.Errorf("%w: failed to mark busy slots: %v", ErrInternal, err)
	}

	freeCount := 0
	for _, s := range marked {
		if s.Free {
			freeCount++
		}
	}
	uc.logger.Info("GetAvailability: date=%s, %d/%d slots free, %d busy intervals",
		req.Date.Format(domain.DateFormat), freeCount, len(marked), len(busy))

	return &Response{
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Slots:         marked,
		Busy:          busy,
	}, nil
}

// handleCalendarFailure обрабатывает недоступность провайдера.
// Молча отдать "все свободно" нельзя: либо явный деградированный режим
// с флагом Degraded, либо типизированная ошибка.
func (uc *UseCase) handleCalendarFailure(req *Request, slots []domain.TimeSlot, err error) (*Response, error) {
	if uc.allowDegraded {
		uc.logger.Warn("GetAvailability: calendar unavailable, serving degraded unfiltered grid: %v", err)
		return &Response{
			Date:          req.Date,
			DurationHours: req.DurationHours,
			Slots:         slots,
			Busy:          []domain.BusyInterval{},
			Degraded:      true,
		}, nil
	}

	if errors.Is(err, googlecalendar.ErrTimeout) {
		uc.logger.Error("GetAvailability: calendar timeout: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
	}

	uc.logger.Error("GetAvailability: calendar unavailable: %v", err)
	return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
}
