package get_availability

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
)

// Request модель запроса на получение доступности
type Request struct {
	Date          time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationHours int       // Желаемая длительность записи в часах (1-6)
}

// Response модель ответа с сеткой слотов и занятыми интервалами
type Response struct {
	Date          time.Time
	DurationHours int
	Slots         []domain.TimeSlot     // Полная сетка слотов с флагом Free
	Busy          []domain.BusyInterval // Занятые интервалы для отображения

	// Degraded выставляется, когда календарь был недоступен и сетка
	// отдана без фильтрации по занятости. Явное, видимое вызывающему
	// решение, а не умолчание.
	Degraded bool
}

// FreeSlots возвращает только свободные слоты
func (r *Response) FreeSlots() []domain.TimeSlot {
	free := make([]domain.TimeSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.Free {
			free = append(free, s)
		}
	}
	return free
}

// IsSlotFree проверяет, свободен ли слот с указанным временем начала
func (r *Response) IsSlotFree(startTime string) bool {
	for _, s := range r.Slots {
		if string(s.StartTime) == startTime {
			return s.Free
		}
	}
	return false
}
