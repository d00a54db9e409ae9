package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-care-scheduler/internal/domain/healthrecords"
)

type recordKey struct {
	petID    string
	recordID string
}

type healthRecordRepo struct {
	mu    sync.RWMutex
	byKey map[recordKey]healthrecords.Record
}

func NewHealthRecordRepo() healthrecords.Repository {
	return &healthRecordRepo{
		byKey: make(map[recordKey]healthrecords.Record),
	}
}

func (r *healthRecordRepo) Create(ctx context.Context, rec healthrecords.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.PetID) == "" {
		return errIDRequired
	}
	k := recordKey{rec.PetID, rec.ID}
	if _, exists := r.byKey[k]; exists {
		return ErrAlreadyExists
	}

	r.byKey[k] = rec.Clone()
	return nil
}

func (r *healthRecordRepo) Get(ctx context.Context, petID, recordID string) (healthrecords.Record, error) {
	if err := ctx.Err(); err != nil {
		return healthrecords.Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byKey[recordKey{petID, recordID}]
	if !ok {
		return healthrecords.Record{}, healthrecords.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *healthRecordRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]healthrecords.Record, 0)
	for k, rec := range r.byKey {
		if k.petID == petID {
			out = append(out, rec.Clone())
		}
	}

	// Orden por date desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
