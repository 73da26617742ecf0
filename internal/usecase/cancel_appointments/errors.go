package cancel_appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_appointments: invalid input data")

	// ErrInternal возвращается, когда список записей получить не удалось.
	// Отказы по отдельным записям ошибкой usecase не являются и
	// отражаются в поэлементных результатах.
	ErrInternal = errors.New("cancel_appointments: internal error")
)
