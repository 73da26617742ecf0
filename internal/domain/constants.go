package domain

// Default operating window (original business schedule: 9 AM - 8 PM, Mexico City)
const (
	DefaultOpeningTime   = "09:00"
	DefaultClosingTime   = "20:00"
	DefaultStrideMinutes = 60
	DefaultTimezone      = "America/Mexico_City"
)

// Business validation constants
const (
	MinDurationHours = 1
	MaxDurationHours = 6

	MaxNameLength        = 200
	MaxEmailLength       = 254
	MaxPhoneLength       = 30
	MaxServiceKindLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, учитываемых при отмене и подсчете занятости
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
