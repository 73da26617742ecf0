package create_appointment

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота ("10:00")
	DurationHours int              // Длительность в часах (1-6)
	Name          string
	Email         string
	Phone         string
	ServiceKind   string
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	ServiceKind   string
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	Status        string
	GoogleEventID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(appt *domain.Appointment) *Response {
	eventID := ""
	if appt.GoogleEventID != nil {
		eventID = *appt.GoogleEventID
	}
	return &Response{
		ID:            appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		Phone:         appt.Phone,
		ServiceKind:   appt.ServiceKind,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		DurationHours: appt.DurationHours,
		Status:        string(appt.Status),
		GoogleEventID: eventID,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}
