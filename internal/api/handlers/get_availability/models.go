package get_availability

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	getAvailability "github.com/charlitron/CitasService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date          string         `json:"date"`
	DurationHours int            `json:"durationHours"`
	FreeSlots     []string       `json:"freeSlots"`
	Slots         []SlotResponse `json:"slots"`
	Busy          []BusyResponse `json:"busy"`
	Degraded      bool           `json:"degraded"`
}

// SlotResponse слот сетки с флагом занятости
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Free      bool   `json:"free"`
}

// BusyResponse занятый интервал для отображения
type BusyResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	free := make([]string, 0, len(resp.Slots))
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		if s.Free {
			free = append(free, s.StartTime.String())
		}
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Free:      s.Free,
		})
	}

	busy := make([]BusyResponse, 0, len(resp.Busy))
	for _, b := range resp.Busy {
		busy = append(busy, BusyResponse{Start: b.Start, End: b.End, Label: b.Label})
	}

	return &AvailabilityResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		FreeSlots:     free,
		Slots:         slots,
		Busy:          busy,
		Degraded:      resp.Degraded,
	}
}
