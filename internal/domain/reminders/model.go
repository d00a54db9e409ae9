package reminders

import (
	"time"

	"pet-care-scheduler/internal/domain/careplans"
	"pet-care-scheduler/internal/domain/healthrecords"
)

// @Enum care_plan, health_record
type Kind string

const (
	KindCarePlan     Kind = "care_plan"
	KindHealthRecord Kind = "health_record"
)

// Reminder es un ítem del feed. Solo hay dos variantes, CarePlanReminder y
// HealthRecordReminder; el método sin exportar cierra el conjunto.
type Reminder interface {
	Kind() Kind
	DueDate() time.Time
	Title() string
	ID() string
	PetID() string

	isReminder()
}

type CarePlanReminder struct {
	Plan careplans.CarePlan
}

func (CarePlanReminder) Kind() Kind           { return KindCarePlan }
func (r CarePlanReminder) DueDate() time.Time { return r.Plan.NextDueDate }
func (r CarePlanReminder) Title() string      { return r.Plan.Title }
func (r CarePlanReminder) ID() string         { return r.Plan.ID }
func (r CarePlanReminder) PetID() string      { return r.Plan.PetID }
func (CarePlanReminder) isReminder()          {}

type HealthRecordReminder struct {
	Record healthrecords.Record
}

func (HealthRecordReminder) Kind() Kind { return KindHealthRecord }

// DueDate es el seguimiento del registro; solo se construyen con NextDueDate seteado.
func (r HealthRecordReminder) DueDate() time.Time {
	if r.Record.NextDueDate == nil {
		return time.Time{}
	}
	return *r.Record.NextDueDate
}
func (r HealthRecordReminder) Title() string { return r.Record.Title }
func (r HealthRecordReminder) ID() string    { return r.Record.ID }
func (r HealthRecordReminder) PetID() string { return r.Record.PetID }
func (HealthRecordReminder) isReminder()     {}

// kindRank: en empate de fecha los planes van antes que los registros.
func kindRank(k Kind) int {
	if k == KindCarePlan {
		return 0
	}
	return 1
}
