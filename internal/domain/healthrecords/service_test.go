package healthrecords

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	mu    sync.Mutex
	items []Record
	err   error
}

func (r *testRepo) Create(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, rec.Clone())
	return nil
}

func (r *testRepo) Get(_ context.Context, petID, recordID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.items {
		if rec.PetID == petID && rec.ID == recordID {
			return rec.Clone(), nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *testRepo) ListByPet(_ context.Context, petID string) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Record, 0)
	for _, rec := range r.items {
		if rec.PetID == petID {
			out = append(out, rec.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type testOwners map[string]string

func (o testOwners) OwnsPet(_ context.Context, petID, userID string) (bool, error) {
	return o[petID] == userID, nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo, testOwners{"pet-A": "user-A"},
		WithClock(func() time.Time { return date("2025-01-16") }))
	return svc, repo
}

func TestCreate_OK(t *testing.T) {
	svc, _ := newTestService()
	next := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	weight := 12.5

	rec, err := svc.Create(context.Background(), "pet-A", "user-A", CreateInput{
		RecordType:  RecordTypeVaccination,
		Title:       " Rabies ",
		Date:        date("2025-01-10"),
		NextDueDate: &next,
		Metrics:     Metrics{Weight: &weight},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Rabies", rec.Title)
	assert.Equal(t, "user-A", rec.UserID)
	require.NotNil(t, rec.NextDueDate)
	assert.Equal(t, date("2026-01-10"), *rec.NextDueDate, "follow-up reduced to calendar date")
	assert.True(t, rec.HasFollowUp())

	// El registro no comparte punteros con el input.
	weight = 99
	assert.Equal(t, 12.5, *rec.Metrics.Weight)
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := newTestService()
	neg := -1.0
	score := 101

	_, err := svc.Create(context.Background(), "pet-A", "user-A", CreateInput{
		RecordType:  RecordType("xray"),
		Date:        date("2025-01-10"),
		NextDueDate: func() *time.Time { d := date("2025-01-01"); return &d }(),
		Metrics:     Metrics{Weight: &neg, Temperature: &neg, HealthScore: &score},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	fields := apperr.FieldsOf(err)
	for _, f := range []string{"record_type", "title", "next_due_date", "metrics.weight", "metrics.temperature", "metrics.health_score"} {
		assert.Contains(t, fields, f)
	}
	assert.Empty(t, repo.items)
}

func TestOwnershipAndListing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, d := range []string{"2024-06-01", "2025-01-10", "2024-11-20"} {
		_, err := svc.Create(ctx, "pet-A", "user-A", CreateInput{RecordType: RecordTypeCheckup, Title: "Checkup " + d, Date: date(d)})
		require.NoError(t, err)
	}

	items, err := svc.ListByPet(ctx, "pet-A", "user-A")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, date("2025-01-10"), items[0].Date)
	assert.Equal(t, date("2024-06-01"), items[2].Date)

	_, err = svc.ListByPet(ctx, "pet-A", "user-B")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, "pet-A", "user-B", CreateInput{RecordType: RecordTypeOther, Title: "x", Date: date("2025-01-01")})
	assert.ErrorIs(t, err, ErrPetNotFound)

	_, err = svc.Get(ctx, "pet-A", items[0].ID, "user-B")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.Get(ctx, "pet-A", items[0].ID, "user-A")
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, got.ID)

	_, err = svc.Get(ctx, "pet-A", "missing", "user-A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreErrorsAreClassified(t *testing.T) {
	svc, repo := newTestService()
	repo.err = context.DeadlineExceeded

	_, err := svc.ListByPet(context.Background(), "pet-A", "user-A")
	assert.ErrorIs(t, err, apperr.ErrTransient)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
