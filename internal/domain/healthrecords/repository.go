package healthrecords

import (
	"context"

	"pet-care-scheduler/internal/platform/apperr"
)

var ErrNotFound = apperr.New(apperr.KindNotFound, "health record not found")

type Repository interface {
	Create(ctx context.Context, r Record) error
	Get(ctx context.Context, petID, recordID string) (Record, error)
	// ListByPet ordena por Date desc (más reciente primero).
	ListByPet(ctx context.Context, petID string) ([]Record, error)
}
