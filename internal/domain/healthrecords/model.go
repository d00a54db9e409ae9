package healthrecords

import "time"

// @Enum vaccination, checkup, medication, surgery, grooming, other
type RecordType string

const (
	RecordTypeVaccination RecordType = "vaccination"
	RecordTypeCheckup     RecordType = "checkup"
	RecordTypeMedication  RecordType = "medication"
	RecordTypeSurgery     RecordType = "surgery"
	RecordTypeGrooming    RecordType = "grooming"
	RecordTypeOther       RecordType = "other"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeVaccination, RecordTypeCheckup, RecordTypeMedication, RecordTypeSurgery, RecordTypeGrooming, RecordTypeOther:
		return true
	}
	return false
}

type Metrics struct {
	Weight      *float64
	Temperature *float64
	HealthScore *int
}

func (m Metrics) IsZero() bool {
	return m.Weight == nil && m.Temperature == nil && m.HealthScore == nil
}

// Record es un evento de salud puntual. Inmutable una vez creado.
type Record struct {
	ID     string
	PetID  string
	UserID string

	RecordType RecordType
	Title      string
	Notes      string

	Date time.Time
	// Seguimiento opcional (próxima vacuna, control).
	NextDueDate *time.Time

	Metrics Metrics

	CreatedAt time.Time
}

func (r Record) HasFollowUp() bool { return r.NextDueDate != nil }

func (r Record) Clone() Record {
	if r.NextDueDate != nil {
		v := *r.NextDueDate
		r.NextDueDate = &v
	}
	if r.Metrics.Weight != nil {
		v := *r.Metrics.Weight
		r.Metrics.Weight = &v
	}
	if r.Metrics.Temperature != nil {
		v := *r.Metrics.Temperature
		r.Metrics.Temperature = &v
	}
	if r.Metrics.HealthScore != nil {
		v := *r.Metrics.HealthScore
		r.Metrics.HealthScore = &v
	}
	return r
}
