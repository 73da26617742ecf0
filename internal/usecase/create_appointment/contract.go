package create_appointment

import (
	"context"
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
	availability "github.com/charlitron/CitasService/internal/usecase/get_availability"
	"github.com/charlitron/CitasService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)

	// LockSlot сериализует конкурентные бронирования одного слота
	// advisory-блокировкой в рамках текущей транзакции
	LockSlot(ctx context.Context, date time.Time, start types.TimeString) error
}

// CalendarGateway интерфейс клиента календарного провайдера
type CalendarGateway interface {
	CreateEvent(ctx context.Context, input googlecalendar.EventInput) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// AvailabilityResolver интерфейс перепроверки доступности слота
// непосредственно перед коммитом бронирования
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *availability.Request) (*availability.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
