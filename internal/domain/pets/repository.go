package pets

import (
	"context"

	"pet-care-scheduler/internal/platform/apperr"
)

// ErrNotFound es lo que devuelven las implementaciones cuando el ID no existe.
var ErrNotFound = apperr.New(apperr.KindNotFound, "pet not found")

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
}
