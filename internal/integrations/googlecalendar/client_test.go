package googlecalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// newTestClient направляет token и api запросы в тестовые серверы
func newTestClient(t *testing.T, tokenHandler, apiHandler http.HandlerFunc) *Client {
	t.Helper()

	tokenSrv := httptest.NewServer(tokenHandler)
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(apiHandler)
	t.Cleanup(apiSrv.Close)

	c := NewClient("client-id", "client-secret", "refresh-token", "primary", 2*time.Second, nil, nopLogger{})
	c.tokenURL = tokenSrv.URL
	c.apiURL = apiSrv.URL
	return c
}

func okTokenHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))
		assert.Equal(t, "refresh-token", r.Form.Get("refresh_token"))

		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "access-token", ExpiresIn: 3600, TokenType: "Bearer"})
	}
}

func TestFetchEvents(t *testing.T) {
	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)

	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, "startTime", r.URL.Query().Get("orderBy"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMin"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMax"))

		json.NewEncoder(w).Encode(eventListResponse{Items: []eventResource{
			{
				ID:      "evt-1",
				Summary: "Corte - Ana",
				Start:   eventTime{DateTime: "2026-09-14T13:00:00Z"},
				End:     eventTime{DateTime: "2026-09-14T14:00:00Z"},
			},
			{
				ID:     "evt-2",
				Status: "cancelled",
				Start:  eventTime{DateTime: "2026-09-14T15:00:00Z"},
				End:    eventTime{DateTime: "2026-09-14T16:00:00Z"},
			},
			{
				ID:    "evt-3",
				Start: eventTime{Date: "2026-09-14"},
				End:   eventTime{Date: "2026-09-15"},
			},
		}})
	}

	c := newTestClient(t, okTokenHandler(t), apiHandler)

	events, err := c.FetchEvents(context.Background(), dayStart, dayEnd)
	require.NoError(t, err)

	// Отмененное событие пропущено, all-day событие занимает весь день
	require.Len(t, events, 2)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "Corte - Ana", events[0].Summary)
	assert.Equal(t, 13, events[0].Start.Hour())
	assert.Equal(t, "evt-3", events[1].ID)
	assert.Equal(t, 24*time.Hour, events[1].End.Sub(events[1].Start))
}

func TestFetchEvents_AuthFailure(t *testing.T) {
	tokenHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}
	c := newTestClient(t, tokenHandler, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("api must not be called when token exchange fails")
	})

	_, err := c.FetchEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestFetchEvents_ProviderRejectsToken(t *testing.T) {
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)

	_, err := c.FetchEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestFetchEvents_ProviderError(t *testing.T) {
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)

	_, err := c.FetchEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "backend error")
}

func TestFetchEvents_Timeout(t *testing.T) {
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)
	c.timeout = 50 * time.Millisecond
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.FetchEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCreateEvent(t *testing.T) {
	var captured eventResource
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(eventResource{ID: "evt-new"})
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)

	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	id, err := c.CreateEvent(context.Background(), EventInput{
		Summary:              "Corte de pelo - Ana García",
		Description:          "Cliente: Ana García",
		Start:                time.Date(2026, 9, 14, 10, 0, 0, 0, loc),
		End:                  time.Date(2026, 9, 14, 12, 0, 0, 0, loc),
		Timezone:             "America/Mexico_City",
		AttendeeEmail:        "ana@example.com",
		EmailReminderMinutes: 24 * 60,
		PopupReminderMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-new", id)

	assert.Equal(t, "Corte de pelo - Ana García", captured.Summary)
	assert.Equal(t, "America/Mexico_City", captured.Start.TimeZone)
	require.Len(t, captured.Attendees, 1)
	assert.Equal(t, "ana@example.com", captured.Attendees[0].Email)
	require.NotNil(t, captured.Reminders)
	assert.False(t, captured.Reminders.UseDefault)
	assert.Equal(t, []reminderOverride{
		{Method: "email", Minutes: 24 * 60},
		{Method: "popup", Minutes: 30},
	}, captured.Reminders.Overrides)
}

func TestCreateEvent_SurvivesCallerCancellation(t *testing.T) {
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventResource{ID: "evt-new"})
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	id, err := c.CreateEvent(ctx, EventInput{
		Summary:  "Corte - Ana",
		Start:    time.Now(),
		End:      time.Now().Add(time.Hour),
		Timezone: "UTC",
	})
	require.NoError(t, err, "in-flight write completes despite cancelled caller context")
	assert.Equal(t, "evt-new", id)
}

func TestCreateEvent_WriteFailure(t *testing.T) {
	apiHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":409,"message":"duplicate"}}`))
	}
	c := newTestClient(t, okTokenHandler(t), apiHandler)

	_, err := c.CreateEvent(context.Background(), EventInput{
		Start: time.Now(), End: time.Now().Add(time.Hour), Timezone: "UTC",
	})
	assert.ErrorIs(t, err, ErrProvider)
}

func TestDeleteEvent(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"deleted", http.StatusNoContent, nil},
		{"already gone 404", http.StatusNotFound, nil},
		{"already gone 410", http.StatusGone, nil},
		{"provider failure", http.StatusInternalServerError, ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiHandler := func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
			}
			c := newTestClient(t, okTokenHandler(t), apiHandler)

			err := c.DeleteEvent(context.Background(), "evt-1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
