package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlitron/CitasService/internal/domain"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
)

func testPolicy(t *testing.T) *domain.OperatingPolicy {
	t.Helper()
	policy, err := domain.NewOperatingPolicy("09:00", "20:00", 60, "America/Mexico_City")
	require.NoError(t, err)
	return policy
}

func TestGenerateTimeSlots(t *testing.T) {
	policy := testPolicy(t)

	tests := []struct {
		name          string
		durationHours int
		wantCount     int
		wantFirst     string
		wantLastStart string
		wantLastEnd   string
	}{
		{
			name:          "one hour fills the whole window",
			durationHours: 1,
			wantCount:     11,
			wantFirst:     "09:00",
			wantLastStart: "19:00",
			wantLastEnd:   "20:00",
		},
		{
			name:          "two hours drops the last start",
			durationHours: 2,
			wantCount:     10,
			wantFirst:     "09:00",
			wantLastStart: "18:00",
			wantLastEnd:   "20:00",
		},
		{
			name:          "six hours leaves six starts",
			durationHours: 6,
			wantCount:     6,
			wantFirst:     "09:00",
			wantLastStart: "14:00",
			wantLastEnd:   "20:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(policy, tt.durationHours)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			assert.Equal(t, tt.wantFirst, slots[0].StartTime.String())
			assert.Equal(t, tt.wantLastStart, slots[len(slots)-1].StartTime.String())
			assert.Equal(t, tt.wantLastEnd, slots[len(slots)-1].EndTime.String())

			for _, s := range slots {
				assert.True(t, s.Free, "generated slots start free")
			}
		})
	}
}

func TestGenerateTimeSlots_DurationLargerThanWindow(t *testing.T) {
	policy, err := domain.NewOperatingPolicy("09:00", "11:00", 60, "America/Mexico_City")
	require.NoError(t, err)

	slots, err := generateTimeSlots(policy, 3)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	policy := testPolicy(t)

	first, err := generateTimeSlots(policy, 2)
	require.NoError(t, err)
	second, err := generateTimeSlots(policy, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarkBusySlots_OverlapPositions(t *testing.T) {
	policy := testPolicy(t)
	loc := policy.Location()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	at := func(hour, min int) time.Time {
		return time.Date(2026, 9, 14, hour, min, 0, 0, loc)
	}

	// Слот 12:00-14:00, занятость в пяти взаимных положениях
	slot := domain.TimeSlot{
		StartTime: "12:00",
		EndTime:   "14:00",
		Free:      true,
	}

	tests := []struct {
		name     string
		busy     domain.BusyInterval
		wantFree bool
	}{
		{
			name:     "busy entirely before",
			busy:     domain.BusyInterval{Start: at(10, 0), End: at(11, 0)},
			wantFree: true,
		},
		{
			name:     "busy ends exactly at slot start",
			busy:     domain.BusyInterval{Start: at(11, 0), End: at(12, 0)},
			wantFree: true,
		},
		{
			name:     "busy overlaps slot head",
			busy:     domain.BusyInterval{Start: at(11, 30), End: at(12, 30)},
			wantFree: false,
		},
		{
			name:     "busy inside slot",
			busy:     domain.BusyInterval{Start: at(12, 30), End: at(13, 30)},
			wantFree: false,
		},
		{
			name:     "busy covers slot entirely",
			busy:     domain.BusyInterval{Start: at(11, 0), End: at(15, 0)},
			wantFree: false,
		},
		{
			name:     "busy overlaps slot tail",
			busy:     domain.BusyInterval{Start: at(13, 30), End: at(14, 30)},
			wantFree: false,
		},
		{
			name:     "busy starts exactly at slot end",
			busy:     domain.BusyInterval{Start: at(14, 0), End: at(15, 0)},
			wantFree: true,
		},
		{
			name:     "busy entirely after",
			busy:     domain.BusyInterval{Start: at(16, 0), End: at(17, 0)},
			wantFree: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marked, err := markBusySlots([]domain.TimeSlot{slot}, []domain.BusyInterval{tt.busy}, date, loc)
			require.NoError(t, err)
			require.Len(t, marked, 1)
			assert.Equal(t, tt.wantFree, marked[0].Free)
		})
	}
}

func TestToBusyIntervals_DefaultLabel(t *testing.T) {
	now := time.Now()
	events := []googlecalendar.Event{
		{ID: "a", Summary: "Corte - Ana", Start: now, End: now.Add(time.Hour)},
		{ID: "b", Summary: "", Start: now, End: now.Add(time.Hour)},
	}

	busy := toBusyIntervals(events)
	require.Len(t, busy, 2)
	assert.Equal(t, "Corte - Ana", busy[0].Label)
	assert.Equal(t, "Ocupado", busy[1].Label)
}
