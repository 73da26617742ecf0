package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlitron/CitasService/internal/api/handlers"
	createAppointment "github.com/charlitron/CitasService/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

const validBody = `{
	"date": "2026-09-14",
	"startTime": "10:00",
	"durationHours": 2,
	"name": "Ana García",
	"email": "ana@example.com",
	"phone": "+52 55 1234 5678",
	"serviceKind": "Corte de pelo"
}`

func doRequest(t *testing.T, uc CreateAppointmentUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:            "appt-1",
		Name:          "Ana García",
		Email:         "ana@example.com",
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationHours: 2,
		Status:        "confirmed",
		GoogleEventID: "evt-42",
	}}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "evt-42", resp.GoogleEventID)
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown field", `{"date":"2026-09-14","unexpected":true}`},
		{"bad date", `{"date":"14/09/2026","startTime":"10:00","durationHours":1,"name":"A","email":"a@b.c","serviceKind":"Corte"}`},
		{"bad time", `{"date":"2026-09-14","startTime":"25:00","durationHours":1,"name":"A","email":"a@b.c","serviceKind":"Corte"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest, handlers.KindInvalidRequest},
		{"invalid duration", createAppointment.ErrInvalidDuration, http.StatusBadRequest, handlers.KindInvalidDuration},
		{"slot taken", createAppointment.ErrSlotNoLongerAvailable, http.StatusConflict, handlers.KindSlotNoLongerAvailable},
		{"calendar unavailable", createAppointment.ErrCalendarUnavailable, http.StatusBadGateway, handlers.KindCalendarUnavailable},
		{"gateway timeout", createAppointment.ErrGatewayTimeout, http.StatusGatewayTimeout, handlers.KindGatewayTimeout},
		{"calendar write failed", createAppointment.ErrCalendarWriteFailed, http.StatusBadGateway, handlers.KindCalendarWriteFailed},
		{"store write failed", createAppointment.ErrStoreWriteFailed, http.StatusInternalServerError, handlers.KindStoreWriteFailed},
		{
			"compensation failed",
			&createAppointment.CompensationFailedError{EventID: "evt-42"},
			http.StatusInternalServerError,
			handlers.KindCompensationFailed,
		},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError, handlers.KindInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKind, resp.ErrorKind)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
