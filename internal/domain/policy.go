package domain

import (
	"fmt"
	"time"

	"github.com/charlitron/CitasService/pkg/types"
)

// OperatingPolicy задает рабочее окно и параметры генерации слотов.
// Заполняется один раз из конфигурации и дальше не меняется.
type OperatingPolicy struct {
	Opening       types.TimeString
	Closing       types.TimeString
	StrideMinutes int
	Timezone      string

	location *time.Location
}

// NewOperatingPolicy validates the policy values and resolves the timezone
func NewOperatingPolicy(opening, closing string, strideMinutes int, timezone string) (*OperatingPolicy, error) {
	open, err := types.NewTimeStringFromString(opening)
	if err != nil {
		return nil, fmt.Errorf("operating policy: invalid opening time: %w", err)
	}

	closeT, err := types.NewTimeStringFromString(closing)
	if err != nil {
		return nil, fmt.Errorf("operating policy: invalid closing time: %w", err)
	}

	if !open.IsBefore(closeT) {
		return nil, fmt.Errorf("operating policy: opening %s must be before closing %s", open, closeT)
	}

	if strideMinutes <= 0 {
		return nil, fmt.Errorf("operating policy: stride must be positive, got %d", strideMinutes)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("operating policy: invalid timezone %q: %w", timezone, err)
	}

	return &OperatingPolicy{
		Opening:       open,
		Closing:       closeT,
		StrideMinutes: strideMinutes,
		Timezone:      timezone,
		location:      loc,
	}, nil
}

// Location returns the business timezone
func (p *OperatingPolicy) Location() *time.Location {
	return p.location
}

// DayBounds возвращает границы рабочего дня [date 00:00, date 23:59:59]
// в бизнес-таймзоне
func (p *OperatingPolicy) DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, p.location)
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, p.location)
	return start, end
}
