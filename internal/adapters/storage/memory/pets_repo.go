package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/platform/apperr"
)

var (
	ErrAlreadyExists = apperr.New(apperr.KindConflict, "already exists")
	errIDRequired    = errors.New("id required")
)

// petRepo indexa por dueño: el feed de recordatorios pide las mascotas del
// usuario en cada request.
type petRepo struct {
	mu      sync.RWMutex
	pets    map[string]pets.Pet
	byOwner map[string][]string // owner -> ids en orden de alta
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		pets:    make(map[string]pets.Pet),
		byOwner: make(map[string][]string),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(p.ID) == "" {
		return errIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.pets[p.ID]; dup {
		return ErrAlreadyExists
	}
	r.pets[p.ID] = p
	r.byOwner[p.OwnerUserID] = append(r.byOwner[p.OwnerUserID], p.ID)
	return nil
}

// Update no permite cambiar de dueño.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(p.ID) == "" {
		return errIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.pets[p.ID]
	if !ok {
		return pets.ErrNotFound
	}
	p.OwnerUserID = cur.OwnerUserID
	p.CreatedAt = cur.CreatedAt
	r.pets[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if err := ctx.Err(); err != nil {
		return pets.Pet{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.pets[id]; ok {
		return p, nil
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	ids := slices.Clone(r.byOwner[ownerUserID])
	out := make([]pets.Pet, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.pets[id])
	}
	r.mu.RUnlock()
	return out, nil
}
