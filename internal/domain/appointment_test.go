package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_StatusPredicates(t *testing.T) {
	tests := []struct {
		status      AppointmentStatus
		active      bool
		cancellable bool
		isCancelled bool
	}{
		{StatusPending, true, true, false},
		{StatusConfirmed, true, true, false},
		{StatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, tt.cancellable, a.CanBeCancelled())
			assert.Equal(t, tt.isCancelled, a.IsCancelled())
		})
	}
}

func TestAppointment_EndTime(t *testing.T) {
	a := &Appointment{StartTime: "10:00", DurationHours: 3}
	end, err := a.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "13:00", end.String())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("pending"))
	assert.True(t, ValidStatus("confirmed"))
	assert.True(t, ValidStatus("cancelled"))
	assert.False(t, ValidStatus("pendiente"))
	assert.False(t, ValidStatus(""))
}
