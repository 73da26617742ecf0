package cancel_appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/charlitron/CitasService/internal/domain"
)

// UseCase use case отмены всех активных записей клиента по email.
//
// Каждая запись обрабатывается независимо: сначала попытка удалить
// событие календаря (отказ логируется и не блокирует), затем запись
// помечается cancelled. Отказ по одной записи не прерывает обработку
// остальных - частичный успех отражается в поэлементных результатах.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        CalendarGateway
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, calendar CalendarGateway, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		logger:          logger,
	}
}

// Execute выполняет use case отмены записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := strings.TrimSpace(req.Email)
	uc.logger.Info("CancelAppointments: email=%s", email)

	if email == "" {
		uc.logger.Warn("CancelAppointments: empty email")
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	appointments, err := uc.appointmentRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("CancelAppointments: failed to find appointments for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to find appointments: %v", ErrInternal, err)
	}

	// "Нечего отменять" - нормальный исход, не ошибка
	if len(appointments) == 0 {
		uc.logger.Info("CancelAppointments: no active appointments for email=%s", email)
		return &Response{CancelledCount: 0, Items: []ItemOutcome{}}, nil
	}

	items := make([]ItemOutcome, 0, len(appointments))
	cancelled := 0

	for _, appt := range appointments {
		outcome := uc.cancelOne(ctx, appt)
		if outcome.Cancelled {
			cancelled++
		}
		items = append(items, outcome)
	}

	uc.logger.Info("CancelAppointments: email=%s, cancelled %d/%d appointments",
		email, cancelled, len(appointments))

	return &Response{
		CancelledCount: cancelled,
		Items:          items,
	}, nil
}

// cancelOne отменяет одну запись: календарь, затем БД
func (uc *UseCase) cancelOne(ctx context.Context, appt *domain.Appointment) ItemOutcome {
	outcome := ItemOutcome{
		AppointmentID: appt.ID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		ServiceKind:   appt.ServiceKind,
	}

	// Удаляем событие календаря. Отсутствующее или уже удаленное событие
	// не должно мешать пометить запись отмененной.
	if appt.GoogleEventID != nil && *appt.GoogleEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, *appt.GoogleEventID); err != nil {
			uc.logger.Warn("CancelAppointments: failed to delete calendar event id=%s for appointment id=%s: %v",
				*appt.GoogleEventID, appt.ID, err)
		} else {
			outcome.CalendarDeleted = true
		}
	} else {
		// Записи без события календаря (pending) откатывать в календаре нечего
		outcome.CalendarDeleted = true
	}

	if err := uc.appointmentRepo.UpdateStatus(ctx, appt.ID, domain.StatusCancelled); err != nil {
		uc.logger.Error("CancelAppointments: failed to mark appointment id=%s cancelled: %v", appt.ID, err)
		outcome.FailureReason = "failed to update appointment status"
		return outcome
	}

	outcome.Cancelled = true
	uc.logger.Info("CancelAppointments: appointment id=%s cancelled (calendar deleted: %t)",
		appt.ID, outcome.CalendarDeleted)
	return outcome
}
