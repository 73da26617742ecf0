package googlecalendar

import "time"

// Event событие календаря, возвращаемое при чтении
type Event struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

// EventInput параметры создаваемого события
type EventInput struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	Timezone      string
	AttendeeEmail string

	// Напоминания: email за 24 часа, popup за 30 минут
	EmailReminderMinutes int
	PopupReminderMinutes int
}

// tokenResponse ответ oauth2.googleapis.com/token
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// apiError тело ошибки Google API
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// eventTime start/end события в формате Google Calendar API
type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type eventAttendee struct {
	Email string `json:"email"`
}

type reminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

type eventReminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []reminderOverride `json:"overrides,omitempty"`
}

// eventResource тело события для создания и чтения
type eventResource struct {
	ID          string          `json:"id,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Description string          `json:"description,omitempty"`
	Start       eventTime       `json:"start"`
	End         eventTime       `json:"end"`
	Attendees   []eventAttendee `json:"attendees,omitempty"`
	Reminders   *eventReminders `json:"reminders,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// eventListResponse ответ на listing событий
type eventListResponse struct {
	Items []eventResource `json:"items"`
}
