package cancel_appointments

import (
	"context"

	cancelAppointments "github.com/charlitron/CitasService/internal/usecase/cancel_appointments"
)

type CancelAppointmentsUseCase interface {
	Execute(ctx context.Context, req *cancelAppointments.Request) (*cancelAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
