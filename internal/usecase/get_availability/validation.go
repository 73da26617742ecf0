package get_availability

import (
	"fmt"

	"github.com/charlitron/CitasService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidDuration, domain.MinDurationHours, domain.MaxDurationHours)
	}

	return nil
}
