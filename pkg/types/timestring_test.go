package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"9:5", true},
		{"09:5", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"mediodía", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddHours(t *testing.T) {
	tests := []struct {
		start string
		hours int
		want  string
	}{
		{"09:00", 1, "10:00"},
		{"09:00", 6, "15:00"},
		{"18:00", 2, "20:00"},
		{"23:00", 2, "01:00"}, // wraps past midnight
	}

	for _, tt := range tests {
		got, err := TimeString(tt.start).AddHours(tt.hours)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:30"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("13:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 14, 13, 30, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String(), "TIME column seconds are trimmed")

	require.NoError(t, ts.Scan([]byte("11:30")))
	assert.Equal(t, "11:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
