package domain

import (
	"time"

	"github.com/charlitron/CitasService/pkg/types"
)

// TimeSlot represents a candidate bookable interval within business hours
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Free      bool
}

// BusyInterval is a read-only projection of one calendar provider event.
// Derived fresh on every availability query, never persisted.
type BusyInterval struct {
	Start time.Time
	End   time.Time
	Label string
}

// Overlaps reports whether the closed-open interval [slotStart, slotEnd)
// intersects the busy interval. Boundary contact is not an overlap.
func (b BusyInterval) Overlaps(slotStart, slotEnd time.Time) bool {
	return slotStart.Before(b.End) && slotEnd.After(b.Start)
}
