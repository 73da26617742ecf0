package googlecalendar

import "errors"

var (
	// ErrAuthFailed возвращается, когда обмен refresh token на access token отклонен.
	// Ошибка фатальна для текущего запроса и не ретраится.
	ErrAuthFailed = errors.New("googlecalendar client: auth failed")

	// ErrProvider возвращается при ошибочном ответе Google Calendar API
	ErrProvider = errors.New("googlecalendar client: provider error")

	// ErrTimeout возвращается, когда вызов провайдера не уложился в таймаут
	ErrTimeout = errors.New("googlecalendar client: gateway timeout")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
