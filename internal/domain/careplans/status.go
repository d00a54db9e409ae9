package careplans

import (
	"time"

	"pet-care-scheduler/internal/platform/calendar"
)

// ResolveStatus deriva el estado de un plan. Compara fechas de calendario:
// vencer hoy es upcoming, no overdue. completed es terminal y no mira fechas.
func ResolveStatus(nextDueDate time.Time, freq Frequency, lastCompletedAt *time.Time, now time.Time) Status {
	if freq == FrequencyOnce && lastCompletedAt != nil {
		return StatusCompleted
	}
	if calendar.Before(nextDueDate, now) {
		return StatusOverdue
	}
	return StatusUpcoming
}
