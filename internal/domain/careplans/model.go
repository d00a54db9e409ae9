package careplans

import "time"

// @Enum once, daily, weekly, monthly, custom
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	}
	return false
}

// @Enum nutrition, exercise, grooming, medication, wellness, other
type Category string

const (
	CategoryNutrition  Category = "nutrition"
	CategoryExercise   Category = "exercise"
	CategoryGrooming   Category = "grooming"
	CategoryMedication Category = "medication"
	CategoryWellness   Category = "wellness"
	CategoryOther      Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryNutrition, CategoryExercise, CategoryGrooming, CategoryMedication, CategoryWellness, CategoryOther:
		return true
	}
	return false
}

// Status es derivado (ResolveStatus); lo persistido es una cache.
// @Enum upcoming, overdue, completed
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

// CarePlan es una tarea de cuidado, única o recurrente, de una mascota.
// Clave estable: (PetID, ID).
type CarePlan struct {
	ID     string
	PetID  string
	UserID string

	Title       string
	Description string
	Category    Category

	Frequency Frequency
	// Solo con FrequencyCustom, >= 1.
	CustomIntervalDays *int

	StartDate time.Time
	// Escrita solo por Service; nunca por el caller.
	NextDueDate time.Time

	ReminderLeadDays int
	RemindersEnabled bool

	Status          Status
	LastCompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Revision es el token de concurrencia optimista de Complete.
type Revision struct {
	Status          Status
	LastCompletedAt *time.Time
}

func (p CarePlan) Revision() Revision {
	return Revision{Status: p.Status, LastCompletedAt: p.LastCompletedAt}
}

// Matches reporta si p sigue en la revisión r.
func (r Revision) Matches(p CarePlan) bool {
	if r.Status != p.Status {
		return false
	}
	switch {
	case r.LastCompletedAt == nil && p.LastCompletedAt == nil:
		return true
	case r.LastCompletedAt == nil || p.LastCompletedAt == nil:
		return false
	default:
		return r.LastCompletedAt.Equal(*p.LastCompletedAt)
	}
}

func (p CarePlan) IsTerminal() bool {
	return p.Status == StatusCompleted
}

// Clone copia los punteros para que stores y callers no compartan memoria.
func (p CarePlan) Clone() CarePlan {
	if p.CustomIntervalDays != nil {
		v := *p.CustomIntervalDays
		p.CustomIntervalDays = &v
	}
	if p.LastCompletedAt != nil {
		v := *p.LastCompletedAt
		p.LastCompletedAt = &v
	}
	return p
}

// StatusAt devuelve una copia con Status recalculado contra now (sin persistir).
func (p CarePlan) StatusAt(now time.Time) CarePlan {
	p = p.Clone()
	p.Status = ResolveStatus(p.NextDueDate, p.Frequency, p.LastCompletedAt, now)
	return p
}
