package create_appointment

import (
	"fmt"
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	createAppointment "github.com/charlitron/CitasService/internal/usecase/create_appointment"
	"github.com/charlitron/CitasService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceKind   string `json:"serviceKind"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime %q: %w", r.StartTime, err)
	}

	return &createAppointment.Request{
		Date:          date,
		StartTime:     start,
		DurationHours: r.DurationHours,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		ServiceKind:   r.ServiceKind,
	}, nil
}

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
	GoogleEventID string    `json:"googleEventId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Email:         resp.Email,
		Phone:         resp.Phone,
		ServiceKind:   resp.ServiceKind,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		GoogleEventID: resp.GoogleEventID,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
