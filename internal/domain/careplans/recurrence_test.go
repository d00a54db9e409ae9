package careplans

import (
	"errors"
	"testing"
	"time"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func intPtr(n int) *int { return &n }

func TestNextDue(t *testing.T) {
	cases := []struct {
		name     string
		freq     Frequency
		start    string
		interval *int
		last     *time.Time
		want     string
	}{
		{"once ignores completion", FrequencyOnce, "2025-02-10", nil, datePtr("2025-02-12"), "2025-02-10"},
		{"once without completion", FrequencyOnce, "2025-02-10", nil, nil, "2025-02-10"},
		{"daily from start", FrequencyDaily, "2025-01-01", nil, nil, "2025-01-02"},
		{"daily from last completion", FrequencyDaily, "2025-01-01", nil, datePtr("2025-01-09"), "2025-01-10"},
		{"weekly from start", FrequencyWeekly, "2025-01-01", nil, nil, "2025-01-08"},
		{"weekly from last completion", FrequencyWeekly, "2025-01-01", nil, datePtr("2025-01-03"), "2025-01-10"},
		{"monthly clamps non-leap", FrequencyMonthly, "2025-01-31", nil, datePtr("2025-01-31"), "2025-02-28"},
		{"monthly clamps leap", FrequencyMonthly, "2024-01-31", nil, nil, "2024-02-29"},
		{"monthly keeps day", FrequencyMonthly, "2025-01-15", nil, nil, "2025-02-15"},
		{"monthly crosses year", FrequencyMonthly, "2025-12-20", nil, nil, "2026-01-20"},
		{"custom from last completion", FrequencyCustom, "2025-01-01", intPtr(10), datePtr("2025-03-01"), "2025-03-11"},
		{"custom from start", FrequencyCustom, "2025-01-01", intPtr(3), nil, "2025-01-04"},
		{"past result is not caught up", FrequencyWeekly, "2020-01-01", nil, nil, "2020-01-08"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextDue(tc.freq, date(tc.start), tc.interval, tc.last)
			require.NoError(t, err)
			assert.Equal(t, date(tc.want), got)
		})
	}
}

func TestNextDue_IgnoresTimeOfDay(t *testing.T) {
	completed := time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC)
	got, err := NextDue(FrequencyDaily, date("2025-01-01"), nil, &completed)
	require.NoError(t, err)
	assert.Equal(t, date("2025-01-04"), got)
}

func TestNextDue_Errors(t *testing.T) {
	_, err := NextDue(Frequency("hourly"), date("2025-01-01"), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = NextDue(FrequencyCustom, date("2025-01-01"), nil, nil)
	assert.ErrorIs(t, err, ErrMissingInterval)

	_, err = NextDue(FrequencyCustom, date("2025-01-01"), intPtr(0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NextDue(FrequencyWeekly, date("2025-01-01"), intPtr(3), nil)
	assert.ErrorIs(t, err, ErrUnexpectedInterval)

	_, err = NextDue(FrequencyDaily, time.Time{}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingStartDate)

	for _, e := range []error{ErrInvalidFrequency, ErrMissingInterval, ErrInvalidInterval} {
		assert.True(t, errors.Is(e, apperr.ErrValidation))
	}
}

func TestResolveStatus(t *testing.T) {
	now := date("2025-01-16")

	assert.Equal(t, StatusUpcoming, ResolveStatus(now, FrequencyDaily, nil, now), "equality favors upcoming")
	assert.Equal(t, StatusUpcoming, ResolveStatus(date("2025-01-20"), FrequencyWeekly, nil, now))
	assert.Equal(t, StatusOverdue, ResolveStatus(date("2025-01-15"), FrequencyWeekly, nil, now))

	// Hora del día irrelevante: vence hoy a la tarde sigue siendo upcoming.
	late := time.Date(2025, 1, 16, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusUpcoming, ResolveStatus(now, FrequencyDaily, nil, late))

	// once + completado es terminal sin importar fechas.
	assert.Equal(t, StatusCompleted, ResolveStatus(date("2020-01-01"), FrequencyOnce, datePtr("2020-01-01"), now))
	// Recurrente con lastCompletedAt no es completed.
	assert.Equal(t, StatusOverdue, ResolveStatus(date("2025-01-10"), FrequencyDaily, datePtr("2025-01-09"), now))

	// Idempotente.
	a := ResolveStatus(date("2025-01-15"), FrequencyMonthly, nil, now)
	b := ResolveStatus(date("2025-01-15"), FrequencyMonthly, nil, now)
	assert.Equal(t, a, b)
}

func TestRevision_Matches(t *testing.T) {
	at := time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)
	same := at
	p := CarePlan{Status: StatusUpcoming, LastCompletedAt: &at}

	assert.True(t, Revision{Status: StatusUpcoming, LastCompletedAt: &same}.Matches(p))
	assert.False(t, Revision{Status: StatusOverdue, LastCompletedAt: &same}.Matches(p))
	assert.False(t, Revision{Status: StatusUpcoming}.Matches(p))
	assert.True(t, Revision{Status: StatusOverdue}.Matches(CarePlan{Status: StatusOverdue}))
}
