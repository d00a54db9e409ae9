package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	const op = "pets.Create"

	fe := apperr.FieldErrors{}
	if strings.TrimSpace(ownerUserID) == "" {
		fe.Add("owner_user_id", "required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		fe.Add("name", "required")
	}
	species := Species(strings.ToLower(strings.TrimSpace(in.Species)))
	if !species.Valid() {
		fe.Add("species", "must be one of dog, cat, other")
	}
	if err := fe.Err(op, nil); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: strings.TrimSpace(ownerUserID),
		Name:        name,
		Species:     species,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, apperr.Classify(op, err)
	}
	return p, nil
}

// GetOwned devuelve el pet solo si es de ownerUserID; si no, ErrNotFound.
func (s *Service) GetOwned(ctx context.Context, id, ownerUserID string) (Pet, error) {
	const op = "pets.GetOwned"

	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, apperr.Classify(op, err)
	}
	if p.OwnerUserID != strings.TrimSpace(ownerUserID) {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	items, err := s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
	if err != nil {
		return nil, apperr.Classify("pets.ListByOwner", err)
	}
	return items, nil
}

// SetActive activa/desactiva la mascota. Idempotente.
func (s *Service) SetActive(ctx context.Context, id, ownerUserID string, active bool) (Pet, error) {
	const op = "pets.SetActive"

	p, err := s.GetOwned(ctx, id, ownerUserID)
	if err != nil {
		return Pet{}, err
	}
	if p.IsActive == active {
		return p, nil
	}

	p.IsActive = active
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, apperr.Classify(op, err)
	}
	return p, nil
}
