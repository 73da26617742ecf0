package models

import (
	"time"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/pkg/types"
)

// AppointmentResponse модель записи для чтения
type AppointmentResponse struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	ServiceKind   string
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	Status        string
	GoogleEventID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		Phone:         appt.Phone,
		ServiceKind:   appt.ServiceKind,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		DurationHours: appt.DurationHours,
		Status:        string(appt.Status),
		GoogleEventID: appt.GoogleEventID,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i, a := range appts {
		out[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
