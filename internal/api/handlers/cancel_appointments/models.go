package cancel_appointments

import (
	"github.com/charlitron/CitasService/internal/domain"
	cancelAppointments "github.com/charlitron/CitasService/internal/usecase/cancel_appointments"
)

// CancelAppointmentsRequest HTTP request model
type CancelAppointmentsRequest struct {
	Email string `json:"email"`
}

// CancelAppointmentsResponse агрегированный результат отмены
type CancelAppointmentsResponse struct {
	CancelledCount int            `json:"cancelledCount"`
	Items          []ItemResponse `json:"items"`
}

// ItemResponse результат по одной записи
type ItemResponse struct {
	AppointmentID   string `json:"appointmentId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	ServiceKind     string `json:"serviceKind"`
	Cancelled       bool   `json:"cancelled"`
	CalendarDeleted bool   `json:"calendarDeleted"`
	FailureReason   string `json:"failureReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointments.Response) *CancelAppointmentsResponse {
	items := make([]ItemResponse, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = ItemResponse{
			AppointmentID:   it.AppointmentID,
			Date:            it.Date.Format(domain.DateFormat),
			StartTime:       it.StartTime.String(),
			ServiceKind:     it.ServiceKind,
			Cancelled:       it.Cancelled,
			CalendarDeleted: it.CalendarDeleted,
			FailureReason:   it.FailureReason,
		}
	}
	return &CancelAppointmentsResponse{
		CancelledCount: resp.CancelledCount,
		Items:          items,
	}
}
