package domain

import (
	"time"

	"github.com/charlitron/CitasService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client appointment in the system.
// It is the durable record of a booking; the matching Google Calendar
// event is referenced through GoogleEventID.
type Appointment struct {
	ID            string // uuid
	Name          string
	Email         string
	Phone         string
	ServiceKind   string
	Date          time.Time // date-only, time part ignored
	StartTime     types.TimeString
	DurationHours int
	Status        AppointmentStatus

	// GoogleEventID ссылка на событие в Google Calendar.
	// Для статуса confirmed всегда заполнена.
	GoogleEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still counts toward availability
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// EndTime returns the end time of day of the appointment
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddHours(a.DurationHours)
}

// ValidStatus проверяет, что значение входит в допустимый набор статусов
func ValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
