package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Pet es la mascota de un usuario. Planes y registros la referencian por ID,
// no la contienen.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species

	// Inactivas (fallecidas, dadas en adopción) no aparecen en recordatorios.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
