package get_client_appointments

import (
	"context"

	"github.com/charlitron/CitasService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByEmail(ctx context.Context, email string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
