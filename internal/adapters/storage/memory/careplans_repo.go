package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-care-scheduler/internal/domain/careplans"
)

type planKey struct {
	petID  string
	planID string
}

// carePlanRepo guarda copias (Clone) para que nadie mute el estado por fuera del lock.
type carePlanRepo struct {
	mu    sync.RWMutex
	byKey map[planKey]careplans.CarePlan
}

func NewCarePlanRepo() careplans.Repository {
	return &carePlanRepo{
		byKey: make(map[planKey]careplans.CarePlan),
	}
}

func (r *carePlanRepo) Create(ctx context.Context, p careplans.CarePlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.PetID) == "" {
		return errIDRequired
	}
	k := planKey{p.PetID, p.ID}
	if _, exists := r.byKey[k]; exists {
		return ErrAlreadyExists
	}
	r.byKey[k] = p.Clone()
	return nil
}

func (r *carePlanRepo) Get(ctx context.Context, petID, planID string) (careplans.CarePlan, error) {
	if err := ctx.Err(); err != nil {
		return careplans.CarePlan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byKey[planKey{petID, planID}]
	if !ok {
		return careplans.CarePlan{}, careplans.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *carePlanRepo) ListByPet(ctx context.Context, petID string) ([]careplans.CarePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]careplans.CarePlan, 0)
	for k, p := range r.byKey {
		if k.petID == petID {
			out = append(out, p.Clone())
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextDueDate.Equal(out[j].NextDueDate) {
			return out[i].NextDueDate.Before(out[j].NextDueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CompareAndSwap: chequeo de revisión y escritura bajo el mismo lock.
func (r *carePlanRepo) CompareAndSwap(ctx context.Context, prev careplans.Revision, next careplans.CarePlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := planKey{next.PetID, next.ID}
	cur, ok := r.byKey[k]
	if !ok {
		return careplans.ErrNotFound
	}
	if !prev.Matches(cur) {
		return careplans.ErrStale
	}
	r.byKey[k] = next.Clone()
	return nil
}

func (r *carePlanRepo) Delete(ctx context.Context, petID, planID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := planKey{petID, planID}
	if _, ok := r.byKey[k]; !ok {
		return careplans.ErrNotFound
	}
	delete(r.byKey, k)
	return nil
}
