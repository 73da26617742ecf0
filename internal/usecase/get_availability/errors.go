package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidDuration возвращается при длительности вне допустимого диапазона
	ErrInvalidDuration = errors.New("get_availability: invalid duration")

	// ErrCalendarUnavailable возвращается, когда календарный провайдер недоступен.
	// Недоступность календаря никогда не трактуется как "все слоты свободны".
	ErrCalendarUnavailable = errors.New("get_availability: calendar unavailable")

	// ErrGatewayTimeout возвращается, когда вызов провайдера не уложился в таймаут
	ErrGatewayTimeout = errors.New("get_availability: gateway timeout")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
