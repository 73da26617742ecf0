package get_availability

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
)

// generateTimeSlots генерирует сетку кандидатов на день.
// Слоты идут от времени открытия с фиксированным шагом policy.StrideMinutes;
// генерация останавливается, как только конец слота (start + duration)
// вышел бы за время закрытия.
//
// Чистая функция: без I/O, детерминированная. Если длительность сама по себе
// больше рабочего окна, возвращается пустая сетка (не ошибка).
func generateTimeSlots(policy *domain.OperatingPolicy, durationHours int) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)
	current := policy.Opening

	for current.IsBefore(policy.Closing) {
		end, err := current.AddHours(durationHours)
		if err != nil {
			return nil, err
		}

		// AddHours заворачивается через полночь; слот, перешагнувший сутки,
		// окажется "раньше" начала и тоже отсекается этой проверкой
		if end.IsAfter(policy.Closing) || end.IsBefore(current) || end == current {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: current,
			EndTime:   end,
			Free:      true,
		})

		current, err = current.AddMinutes(policy.StrideMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// toBusyIntervals проецирует события провайдера в занятые интервалы [start, end)
func toBusyIntervals(events []googlecalendar.Event) []domain.BusyInterval {
	busy := make([]domain.BusyInterval, 0, len(events))
	for _, ev := range events {
		label := ev.Summary
		if label == "" {
			label = "Ocupado"
		}
		busy = append(busy, domain.BusyInterval{
			Start: ev.Start,
			End:   ev.End,
			Label: label,
		})
	}
	return busy
}

// markBusySlots помечает занятые слоты по настоящему пересечению интервалов:
// слот занят, если slot.start < busy.end И slot.end > busy.start.
// Это ловит и частичные пересечения (трехчасовой слот, в середину которого
// попала часовая встреча), а не только точное совпадение начала.
func markBusySlots(slots []domain.TimeSlot, busy []domain.BusyInterval, date time.Time, loc *time.Location) ([]domain.TimeSlot, error) {
	marked := make([]domain.TimeSlot, len(slots))

	for i, slot := range slots {
		slotStart, err := slot.StartTime.OnDate(date, loc)
		if err != nil {
			return nil, err
		}
		slotEnd, err := slot.EndTime.OnDate(date, loc)
		if err != nil {
			return nil, err
		}

		free := true
		for _, b := range busy {
			if b.Overlaps(slotStart, slotEnd) {
				free = false
				break
			}
		}

		marked[i] = domain.TimeSlot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Free:      free,
		}
	}

	return marked, nil
}
