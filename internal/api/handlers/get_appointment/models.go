package get_appointment

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceKind   string    `json:"serviceKind"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	DurationHours int       `json:"durationHours"`
	Status        string    `json:"status"`
	GoogleEventID *string   `json:"googleEventId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(appt *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		Phone:         appt.Phone,
		ServiceKind:   appt.ServiceKind,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		DurationHours: appt.DurationHours,
		Status:        appt.Status,
		GoogleEventID: appt.GoogleEventID,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}
