package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
	availability "github.com/charlitron/CitasService/internal/usecase/get_availability"
)

// Напоминания события: email за сутки, popup за 30 минут
const (
	emailReminderMinutes = 24 * 60
	popupReminderMinutes = 30
)

// UseCase use case создания записи на прием.
//
// Последовательность внутри одной попытки строго упорядочена:
// перепроверка доступности → создание события в календаре → сохранение
// записи в БД. Календарь пишется первым: он источник правды о конфликтах
// для пользователя, и созданное событие дешево откатить удалением, тогда
// как обратный порядок рисковал бы подтвержденной строкой в БД без
// реального удержания слота.
//
// Дедупликации повторных вызовов с одинаковыми параметрами нет: гонку
// одновременных бронирований одного слота сужают перепроверка и
// advisory-блокировка по date+start, строгой сериализуемости не обещается.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        CalendarGateway
	resolver        AvailabilityResolver
	txManager       TransactionManager
	policy          *domain.OperatingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendar CalendarGateway,
	resolver AvailabilityResolver,
	txManager TransactionManager,
	policy *domain.OperatingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		resolver:        resolver,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, date=%s, time=%s, duration=%dh, service=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.ServiceKind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Бронирование под advisory-блокировкой слота.
	// Блокировка держится до конца транзакции и сериализует конкурентные
	// попытки занять один и тот же слот.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.appointmentRepo.LockSlot(txCtx, req.Date, req.StartTime); err != nil {
			uc.logger.Error("CreateAppointment: failed to lock slot: %v", err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		// 2.1. Перепроверка: слот все еще свободен по свежим данным календаря
		if err := uc.recheckSlot(txCtx, req); err != nil {
			return err
		}

		// 2.2. Создаем событие в Google Calendar
		eventID, err := uc.createCalendarEvent(txCtx, req)
		if err != nil {
			return err
		}

		// 2.3. Сохраняем запись со ссылкой на событие
		appt := &domain.Appointment{
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			ServiceKind:   req.ServiceKind,
			Date:          req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.DurationHours,
			Status:        domain.StatusConfirmed,
			GoogleEventID: &eventID,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// 2.4. Компенсация: откатываем календарную сторону
			return uc.compensate(txCtx, eventID, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, event=%s",
		result.ID, *result.GoogleEventID)

	return fromDomain(result), nil
}

// recheckSlot перепроверяет, что запрошенный интервал в свободном наборе.
// Закрывает окно гонки между просмотром доступности и отправкой брони.
func (uc *UseCase) recheckSlot(ctx context.Context, req *Request) error {
	resp, err := uc.resolver.Execute(ctx, &availability.Request{
		Date:          req.Date,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		if errors.Is(err, availability.ErrGatewayTimeout) {
			uc.logger.Error("CreateAppointment: recheck timed out: %v", err)
			return fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
		}
		uc.logger.Error("CreateAppointment: recheck failed: %v", err)
		return fmt.Errorf("%w: recheck failed: %v", ErrCalendarUnavailable, err)
	}

	// Деградированная сетка не подтверждает свободность слота:
	// коммитить бронирование по ней нельзя
	if resp.Degraded {
		uc.logger.Warn("CreateAppointment: recheck returned degraded grid, refusing to book")
		return fmt.Errorf("%w: recheck returned degraded availability", ErrCalendarUnavailable)
	}

	if !resp.IsSlotFree(req.StartTime.String()) {
		uc.logger.Warn("CreateAppointment: slot %s %s is no longer available",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return ErrSlotNoLongerAvailable
	}

	return nil
}

// createCalendarEvent создает событие в формате, который исторически
// использует бизнес: заголовок "Услуга - Имя", контактный блок в описании
func (uc *UseCase) createCalendarEvent(ctx context.Context, req *Request) (string, error) {
	start, err := req.StartTime.OnDate(req.Date, uc.policy.Location())
	if err != nil {
		return "", fmt.Errorf("%w: failed to compute event start: %v", ErrInternal, err)
	}

	endTime, err := req.StartTime.AddHours(req.DurationHours)
	if err != nil {
		return "", fmt.Errorf("%w: failed to compute event end: %v", ErrInternal, err)
	}
	end, err := endTime.OnDate(req.Date, uc.policy.Location())
	if err != nil {
		return "", fmt.Errorf("%w: failed to compute event end: %v", ErrInternal, err)
	}

	phone := req.Phone
	if phone == "" {
		phone = "No proporcionado"
	}

	input := googlecalendar.EventInput{
		Summary: fmt.Sprintf("%s - %s", req.ServiceKind, req.Name),
		Description: fmt.Sprintf("Cliente: %s\nEmail: %s\nTeléfono: %s\nServicio: %s\nDuración: %dh",
			req.Name, req.Email, phone, req.ServiceKind, req.DurationHours),
		Start:                start,
		End:                  end,
		Timezone:             uc.policy.Timezone,
		AttendeeEmail:        req.Email,
		EmailReminderMinutes: emailReminderMinutes,
		PopupReminderMinutes: popupReminderMinutes,
	}

	eventID, err := uc.calendar.CreateEvent(ctx, input)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrTimeout) {
			uc.logger.Error("CreateAppointment: calendar create timed out: %v", err)
			return "", fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
		}
		uc.logger.Error("CreateAppointment: calendar create failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCalendarWriteFailed, err)
	}

	uc.logger.Info("CreateAppointment: calendar event created, id=%s", eventID)
	return eventID, nil
}

// compensate удаляет только что созданное событие после отказа БД.
// Если удаление тоже не удалось, наружу уходит CompensationFailedError
// со ссылкой на повисшее событие: этот случай требует ручной сверки
// и не должен быть потерян.
func (uc *UseCase) compensate(ctx context.Context, eventID string, storeErr error) error {
	uc.logger.Error("CreateAppointment: store write failed, compensating by deleting event id=%s: %v",
		eventID, storeErr)

	if delErr := uc.calendar.DeleteEvent(ctx, eventID); delErr != nil {
		compErr := &CompensationFailedError{
			EventID:   eventID,
			StoreErr:  storeErr,
			DeleteErr: delErr,
		}
		uc.logger.Error("CreateAppointment: COMPENSATION FAILED, manual reconciliation required: %v", compErr)
		return compErr
	}

	uc.logger.Info("CreateAppointment: compensation succeeded, event id=%s deleted", eventID)
	return fmt.Errorf("%w: %v", ErrStoreWriteFailed, storeErr)
}
