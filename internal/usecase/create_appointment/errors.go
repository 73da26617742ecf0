package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDuration возвращается при длительности вне допустимого диапазона
	ErrInvalidDuration = errors.New("create_appointment: invalid duration")

	// ErrSlotNoLongerAvailable возвращается, когда перепроверка перед коммитом
	// показала, что слот уже занят. Никаких записей к этому моменту не сделано.
	ErrSlotNoLongerAvailable = errors.New("create_appointment: slot is no longer available")

	// ErrCalendarUnavailable возвращается, когда перепроверку выполнить
	// невозможно: без свежих данных календаря бронирование не коммитится
	ErrCalendarUnavailable = errors.New("create_appointment: calendar unavailable")

	// ErrGatewayTimeout возвращается при таймауте вызова провайдера
	ErrGatewayTimeout = errors.New("create_appointment: gateway timeout")

	// ErrCalendarWriteFailed возвращается при отказе создания события.
	// Побочных эффектов нет: запись в БД к этому моменту не делается.
	ErrCalendarWriteFailed = errors.New("create_appointment: calendar write failed")

	// ErrStoreWriteFailed возвращается, когда запись в БД не удалась,
	// а компенсация (удаление только что созданного события) прошла успешно
	ErrStoreWriteFailed = errors.New("create_appointment: store write failed")

	// ErrCompensationFailed возвращается, когда и запись в БД, и компенсация
	// не удались. Единственный невосстановимый случай: в календаре висит
	// событие без записи, требуется ручная сверка.
	ErrCompensationFailed = errors.New("create_appointment: compensation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// CompensationFailedError несет ссылку на повисшее событие календаря
// для ручной сверки. Разворачивается в ErrCompensationFailed.
type CompensationFailedError struct {
	EventID   string
	StoreErr  error
	DeleteErr error
}

func (e *CompensationFailedError) Error() string {
	return fmt.Sprintf("%v: dangling calendar event id=%s (store error: %v, delete error: %v)",
		ErrCompensationFailed, e.EventID, e.StoreErr, e.DeleteErr)
}

func (e *CompensationFailedError) Unwrap() error {
	return ErrCompensationFailed
}
