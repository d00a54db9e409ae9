// Package calendar trabaja con fechas de calendario: time.Time en medianoche UTC,
// sin significado de hora.
package calendar

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("must be YYYY-MM-DD or RFC3339")

// DateOf trunca t a su fecha de calendario (en UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse acepta YYYY-MM-DD y, por compatibilidad, RFC3339 (se descarta la hora).
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func Format(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// AddMonthsClamped avanza n meses conservando el día del mes; si el mes destino
// es más corto se usa su último día (31 ene + 1 = 28/29 feb).
// time.AddDate normalizaría 31 feb a marzo, por eso no se usa aquí.
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := DateOf(t).Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := DaysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Before compara solo fechas.
func Before(a, b time.Time) bool {
	return DateOf(a).Before(DateOf(b))
}
