package cancel_appointments

import (
	"context"

	"github.com/charlitron/CitasService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindActiveByEmail(ctx context.Context, email string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// CalendarGateway интерфейс клиента календарного провайдера
type CalendarGateway interface {
	// DeleteEvent удаляет событие; несуществующее событие - успех
	DeleteEvent(ctx context.Context, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
