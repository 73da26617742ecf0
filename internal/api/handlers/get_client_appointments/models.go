package get_client_appointments

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель одной записи
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

// AppointmentListResponse HTTP модель списка записей клиента
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list *models.AppointmentListResponse) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(list.Appointments))
	for i, appt := range list.Appointments {
		out[i] = &AppointmentResponse{
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
	return &AppointmentListResponse{
		Appointments: out,
		Total:        list.Total,
	}
}
