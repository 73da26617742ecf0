package cancel_appointments

import (
	"time"

	"github.com/charlitron/CitasService/pkg/types"
)

// Request модель запроса на отмену всех активных записей клиента
type Request struct {
	Email string
}

// Response агрегированный результат отмены
type Response struct {
	// CancelledCount число записей, помеченных cancelled.
	// Ноль - нормальный результат ("нечего отменять"), не ошибка.
	CancelledCount int
	Items          []ItemOutcome
}

// ItemOutcome результат обработки одной записи
type ItemOutcome struct {
	AppointmentID string
	Date          time.Time
	StartTime     types.TimeString
	ServiceKind   string

	// Cancelled - запись помечена cancelled в БД
	Cancelled bool

	// CalendarDeleted - событие календаря удалено (или уже отсутствовало).
	// Неудача удаления не блокирует отмену записи.
	CalendarDeleted bool

	// FailureReason заполняется, когда запись не удалось пометить cancelled
	FailureReason string
}
