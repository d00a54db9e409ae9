package careplans

import (
	"time"

	"pet-care-scheduler/internal/platform/apperr"
	"pet-care-scheduler/internal/platform/calendar"
)

var (
	ErrInvalidFrequency = apperr.New(apperr.KindValidation, "invalid frequency").
				WithField("frequency", "must be one of once, daily, weekly, monthly, custom")
	ErrMissingInterval = apperr.New(apperr.KindValidation, "missing custom interval").
				WithField("custom_interval_days", "required when frequency is custom")
	ErrInvalidInterval = apperr.New(apperr.KindValidation, "invalid custom interval").
				WithField("custom_interval_days", "must be an integer >= 1")
	ErrUnexpectedInterval = apperr.New(apperr.KindValidation, "unexpected custom interval").
				WithField("custom_interval_days", "only allowed when frequency is custom")
	ErrMissingStartDate = apperr.New(apperr.KindValidation, "missing start date").
				WithField("start_date", "required")
)

// ValidateSchedule aplica frequency == custom <=> customIntervalDays seteado (>= 1).
func ValidateSchedule(freq Frequency, customIntervalDays *int) error {
	if !freq.Valid() {
		return ErrInvalidFrequency
	}
	if freq != FrequencyCustom {
		if customIntervalDays != nil {
			return ErrUnexpectedInterval
		}
		return nil
	}
	if customIntervalDays == nil {
		return ErrMissingInterval
	}
	if *customIntervalDays < 1 {
		return ErrInvalidInterval
	}
	return nil
}

// NextDue calcula la próxima fecha de vencimiento. Función pura, sin "now":
// si el resultado ya pasó se devuelve igual (sin saltar ocurrencias perdidas),
// el caller lo verá como overdue.
//
// once devuelve siempre startDate; para el resto la base es lastCompletedAt si
// existe, si no startDate.
func NextDue(freq Frequency, startDate time.Time, customIntervalDays *int, lastCompletedAt *time.Time) (time.Time, error) {
	if err := ValidateSchedule(freq, customIntervalDays); err != nil {
		return time.Time{}, err
	}
	if startDate.IsZero() {
		return time.Time{}, ErrMissingStartDate
	}

	start := calendar.DateOf(startDate)
	if freq == FrequencyOnce {
		return start, nil
	}

	base := start
	if lastCompletedAt != nil {
		base = calendar.DateOf(*lastCompletedAt)
	}

	switch freq {
	case FrequencyDaily:
		return calendar.AddDays(base, 1), nil
	case FrequencyWeekly:
		return calendar.AddDays(base, 7), nil
	case FrequencyMonthly:
		return calendar.AddMonthsClamped(base, 1), nil
	default: // custom
		return calendar.AddDays(base, *customIntervalDays), nil
	}
}
