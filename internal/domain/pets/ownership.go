package pets

import (
	"context"
	"errors"
	"strings"
)

// OwnsPet responde "petID pertenece a userID". Un pet inexistente es (false, nil):
// el caller no distingue "no existe" de "no es tuyo". Errores de store se propagan.
func (s *Service) OwnsPet(ctx context.Context, petID, userID string) (bool, error) {
	petID = strings.TrimSpace(petID)
	userID = strings.TrimSpace(userID)
	if petID == "" || userID == "" {
		return false, nil
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.OwnerUserID == userID, nil
}

// ActivePetIDs lista las mascotas activas de userID (para el feed de recordatorios).
func (s *Service) ActivePetIDs(ctx context.Context, userID string) ([]string, error) {
	items, err := s.repo.ListByOwner(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			out = append(out, p.ID)
		}
	}
	return out, nil
}
