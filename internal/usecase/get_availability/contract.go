package get_availability

import (
	"context"
	"time"

	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
)

// CalendarGateway интерфейс клиента календарного провайдера
type CalendarGateway interface {
	// FetchEvents возвращает события, пересекающие интервал [dayStart, dayEnd]
	FetchEvents(ctx context.Context, dayStart, dayEnd time.Time) ([]googlecalendar.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
