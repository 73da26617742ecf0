package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCalendar struct {
	events []googlecalendar.Event
	err    error

	calls     int
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeCalendar) FetchEvents(_ context.Context, dayStart, dayEnd time.Time) ([]googlecalendar.Event, error) {
	f.calls++
	f.lastStart = dayStart
	f.lastEnd = dayEnd
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func TestExecute_MarksOverlappingSlots(t *testing.T) {
	policy := testPolicy(t)
	loc := policy.Location()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Встреча 13:00-14:00; при двухчасовых слотах заняты старты 12:00 и 13:00
	calendar := &fakeCalendar{
		events: []googlecalendar.Event{
			{
				ID:      "evt-1",
				Summary: "Corte - Ana",
				Start:   time.Date(2026, 9, 14, 13, 0, 0, 0, loc),
				End:     time.Date(2026, 9, 14, 14, 0, 0, 0, loc),
			},
		},
	}

	uc := NewUseCase(calendar, policy, false, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 2})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 10)
	assert.False(t, resp.Degraded)
	require.Len(t, resp.Busy, 1)
	assert.Equal(t, "Corte - Ana", resp.Busy[0].Label)

	for _, s := range resp.Slots {
		switch s.StartTime.String() {
		case "12:00", "13:00":
			assert.False(t, s.Free, "slot %s overlaps the event", s.StartTime)
		default:
			assert.True(t, s.Free, "slot %s does not overlap the event", s.StartTime)
		}
	}

	assert.False(t, resp.IsSlotFree("13:00"))
	assert.True(t, resp.IsSlotFree("14:00"))
	assert.False(t, resp.IsSlotFree("23:00"), "unknown start is not free")
}

func TestExecute_FetchWindowCoversWholeDay(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	uc := NewUseCase(calendar, policy, false, nopLogger{})

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
	require.NoError(t, err)

	require.Equal(t, 1, calendar.calls)
	assert.Equal(t, 0, calendar.lastStart.Hour())
	assert.Equal(t, 23, calendar.lastEnd.Hour())
	assert.Equal(t, policy.Location(), calendar.lastStart.Location())
}

func TestExecute_Validation(t *testing.T) {
	policy := testPolicy(t)
	uc := NewUseCase(&fakeCalendar{}, policy, false, nopLogger{})
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "zero date",
			req:     &Request{DurationHours: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration below minimum",
			req:     &Request{Date: date, DurationHours: 0},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration above maximum",
			req:     &Request{Date: date, DurationHours: 7},
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CalendarFailure(t *testing.T) {
	policy := testPolicy(t)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("timeout maps to gateway timeout", func(t *testing.T) {
		calendar := &fakeCalendar{err: googlecalendar.ErrTimeout}
		uc := NewUseCase(calendar, policy, false, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
		assert.ErrorIs(t, err, ErrGatewayTimeout)
	})

	t.Run("provider error maps to calendar unavailable", func(t *testing.T) {
		calendar := &fakeCalendar{err: errors.New("boom")}
		uc := NewUseCase(calendar, policy, false, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
		assert.ErrorIs(t, err, ErrCalendarUnavailable)
	})

	t.Run("degraded mode serves unfiltered grid", func(t *testing.T) {
		calendar := &fakeCalendar{err: errors.New("boom")}
		uc := NewUseCase(calendar, policy, true, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
		require.NoError(t, err)

		assert.True(t, resp.Degraded)
		assert.Empty(t, resp.Busy)
		require.Len(t, resp.Slots, 11)
		for _, s := range resp.Slots {
			assert.True(t, s.Free)
		}
	})
}

func TestExecute_SameInputsSameGrid(t *testing.T) {
	policy := testPolicy(t)
	loc := policy.Location()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	calendar := &fakeCalendar{
		events: []googlecalendar.Event{
			{
				ID:    "evt-1",
				Start: time.Date(2026, 9, 14, 10, 0, 0, 0, loc),
				End:   time.Date(2026, 9, 14, 11, 0, 0, 0, loc),
			},
		},
	}
	uc := NewUseCase(calendar, policy, false, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: date, DurationHours: 1})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, first.Busy, second.Busy)
}
