package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultAPIURL   = "https://www.googleapis.com/calendar/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver записывает метрики вызовов провайдера.
// Опционален: nil отключает сбор.
type MetricsObserver interface {
	ObserveGatewayRequest(operation, outcome string, seconds float64)
}

// Client клиент Google Calendar API.
// Аутентификация: долгоживущий refresh token обменивается на короткоживущий
// access token в начале каждой операции. Отказ обмена = ErrAuthFailed,
// повторных попыток нет.
type Client struct {
	clientID     string
	clientSecret string
	refreshToken string
	calendarID   string
	timeout      time.Duration

	tokenURL   string
	apiURL     string
	httpClient *http.Client
	metrics    MetricsObserver
	log        Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(clientID, clientSecret, refreshToken, calendarID string, timeout time.Duration, metrics MetricsObserver, log Logger) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		calendarID:   calendarID,
		timeout:      timeout,
		tokenURL:     defaultTokenURL,
		apiURL:       defaultAPIURL,
		httpClient:   &http.Client{Timeout: timeout},
		metrics:      metrics,
		log:          log,
	}
}

// accessToken обменивает refresh token на access token
func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {c.refreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.wrapTransportError("token refresh", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token endpoint returned %d: %s", ErrAuthFailed, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrInvalidResponse, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrAuthFailed)
	}

	return token.AccessToken, nil
}

// FetchEvents возвращает события календаря, пересекающие интервал [dayStart, dayEnd].
// События разворачиваются в одиночные экземпляры (singleEvents) и сортируются
// по времени начала.
func (c *Client) FetchEvents(ctx context.Context, dayStart, dayEnd time.Time) ([]Event, error) {
	start := time.Now()

	events, err := c.fetchEvents(ctx, dayStart, dayEnd)
	c.observe("fetch_events", start, err)
	return events, err
}

func (c *Client) fetchEvents(ctx context.Context, dayStart, dayEnd time.Time) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"timeMin":      {dayStart.Format(time.RFC3339)},
		"timeMax":      {dayEnd.Format(time.RFC3339)},
		"singleEvents": {"true"},
		"orderBy":      {"startTime"},
	}
	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.apiURL, url.PathEscape(c.calendarID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.wrapTransportError("fetch events", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.providerError(resp)
	}

	var list eventListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode events response: %v", ErrInvalidResponse, err)
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		// Отмененные на стороне провайдера события не занимают время
		if item.Status == "cancelled" {
			continue
		}

		eventStart, eventEnd, err := parseEventTimes(item)
		if err != nil {
			c.log.Warn("FetchEvents: skipping event id=%s with unparseable times: %v", item.ID, err)
			continue
		}

		events = append(events, Event{
			ID:      item.ID,
			Summary: item.Summary,
			Start:   eventStart,
			End:     eventEnd,
		})
	}

	return events, nil
}

// CreateEvent создает событие и возвращает его идентификатор.
// Запрос выполняется в отвязанном от вызывающего контексте: начатая запись
// в провайдер доводится до конца, даже если клиент оборвал HTTP запрос.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (string, error) {
	start := time.Now()

	id, err := c.createEvent(ctx, input)
	c.observe("create_event", start, err)
	return id, err
}

func (c *Client) createEvent(ctx context.Context, input EventInput) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	resource := eventResource{
		Summary:     input.Summary,
		Description: input.Description,
		Start: eventTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
		End: eventTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
	}

	if input.AttendeeEmail != "" {
		resource.Attendees = []eventAttendee{{Email: input.AttendeeEmail}}
	}

	if input.EmailReminderMinutes > 0 || input.PopupReminderMinutes > 0 {
		reminders := &eventReminders{UseDefault: false}
		if input.EmailReminderMinutes > 0 {
			reminders.Overrides = append(reminders.Overrides, reminderOverride{Method: "email", Minutes: input.EmailReminderMinutes})
		}
		if input.PopupReminderMinutes > 0 {
			reminders.Overrides = append(reminders.Overrides, reminderOverride{Method: "popup", Minutes: input.PopupReminderMinutes})
		}
		resource.Reminders = reminders
	}

	body, err := json.Marshal(resource)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.apiURL, url.PathEscape(c.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.wrapTransportError("create event", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", c.providerError(resp)
	}

	var created eventResource
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode created event: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: created event has empty id", ErrInvalidResponse)
	}

	return created.ID, nil
}

// DeleteEvent удаляет событие по идентификатору.
// 404 и 410 трактуются как успех: событие уже удалено.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	start := time.Now()

	err := c.deleteEvent(ctx, eventID)
	c.observe("delete_event", start, err)
	return err
}

func (c *Client) deleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", c.apiURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.wrapTransportError("delete event", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusGone:
		c.log.Info("DeleteEvent: event id=%s already gone, treating as success", eventID)
		return nil
	default:
		return c.providerError(resp)
	}
}

// providerError конвертирует ошибочный HTTP ответ в типизированную ошибку
func (c *Client) providerError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: provider rejected credentials (status %d)", ErrAuthFailed, resp.StatusCode)
	}

	var payload apiError
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return fmt.Errorf("%w: code=%d message=%s", ErrProvider, payload.Error.Code, payload.Error.Message)
	}

	return fmt.Errorf("%w: unexpected status %d: %s", ErrProvider, resp.StatusCode, string(body))
}

func (c *Client) wrapTransportError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s did not complete within %s", ErrTimeout, operation, c.timeout)
	}
	// net/http оборачивает таймаут клиента в url.Error с Timeout() == true
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %s did not complete within %s", ErrTimeout, operation, c.timeout)
	}
	return fmt.Errorf("%w: %s failed: %v", ErrInternal, operation, err)
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, ErrTimeout):
		outcome = "timeout"
	case errors.Is(err, ErrAuthFailed):
		outcome = "auth_failed"
	case err != nil:
		outcome = "error"
	}
	c.metrics.ObserveGatewayRequest(operation, outcome, time.Since(start).Seconds())
}

// parseEventTimes извлекает интервал события.
// All-day события приходят с полем date вместо dateTime и занимают весь день.
func parseEventTimes(item eventResource) (time.Time, time.Time, error) {
	start, err := parseEventTime(item.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	end, err := parseEventTime(item.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

func parseEventTime(et eventTime) (time.Time, error) {
	if et.DateTime != "" {
		return time.Parse(time.RFC3339, et.DateTime)
	}
	if et.Date != "" {
		return time.Parse("2006-01-02", et.Date)
	}
	return time.Time{}, fmt.Errorf("event time has neither dateTime nor date")
}
