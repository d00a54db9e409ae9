package careplans

import (
	"context"

	"pet-care-scheduler/internal/platform/apperr"
)

// Errores que las implementaciones de Repository deben devolver.
var (
	ErrNotFound = apperr.New(apperr.KindNotFound, "care plan not found")
	// La revisión esperada ya no coincide (otro request ganó).
	ErrStale = apperr.New(apperr.KindConflict, "care plan was modified concurrently")
)

type Repository interface {
	Create(ctx context.Context, p CarePlan) error
	Get(ctx context.Context, petID, planID string) (CarePlan, error)
	ListByPet(ctx context.Context, petID string) ([]CarePlan, error)

	// CompareAndSwap reemplaza el plan solo si el guardado sigue en prev.
	// Lectura-modificación-escritura atómica por plan.
	CompareAndSwap(ctx context.Context, prev Revision, next CarePlan) error

	Delete(ctx context.Context, petID, planID string) error
}
