package healthrecords

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-scheduler/internal/platform/apperr"
	"pet-care-scheduler/internal/platform/calendar"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrPetNotFound = apperr.New(apperr.KindNotFound, "pet not found")

type PetOwnership interface {
	OwnsPet(ctx context.Context, petID, userID string) (bool, error)
}

type Service struct {
	repo   Repository
	owners PetOwnership

	now          func() time.Time
	storeTimeout time.Duration
	log          zerolog.Logger
}

type Option func(*Service)

func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) { s.storeTimeout = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, owners PetOwnership, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	RecordType  RecordType
	Title       string
	Notes       string
	Date        time.Time
	NextDueDate *time.Time
	Metrics     Metrics
}

func (s *Service) Create(ctx context.Context, petID, userID string, in CreateInput) (Record, error) {
	const op = "healthrecords.Create"

	petID = strings.TrimSpace(petID)
	userID = strings.TrimSpace(userID)
	if err := s.ensureOwner(ctx, op, petID, userID); err != nil {
		return Record{}, err
	}

	fe := apperr.FieldErrors{}
	if !in.RecordType.Valid() {
		fe.Add("record_type", "must be one of vaccination, checkup, medication, surgery, grooming, other")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		fe.Add("title", "required")
	}
	if in.Date.IsZero() {
		fe.Add("date", "required")
	}
	if in.NextDueDate != nil && !in.Date.IsZero() && calendar.Before(*in.NextDueDate, in.Date) {
		fe.Add("next_due_date", "must be on or after date")
	}
	if w := in.Metrics.Weight; w != nil && *w <= 0 {
		fe.Add("metrics.weight", "must be > 0")
	}
	if t := in.Metrics.Temperature; t != nil && *t <= 0 {
		fe.Add("metrics.temperature", "must be > 0")
	}
	if hs := in.Metrics.HealthScore; hs != nil && (*hs < 0 || *hs > 100) {
		fe.Add("metrics.health_score", "must be between 0 and 100")
	}
	if err := fe.Err(op, nil); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:         uuid.NewString(),
		PetID:      petID,
		UserID:     userID,
		RecordType: in.RecordType,
		Title:      title,
		Notes:      strings.TrimSpace(in.Notes),
		Date:       calendar.DateOf(in.Date),
		Metrics:    in.Metrics,
		CreatedAt:  s.now(),
	}
	if in.NextDueDate != nil {
		d := calendar.DateOf(*in.NextDueDate)
		rec.NextDueDate = &d
	}
	rec = rec.Clone()

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.repo.Create(sctx, rec); err != nil {
		return Record{}, apperr.Classify(op, err)
	}

	s.log.Debug().
		Str("pet_id", petID).
		Str("record_id", rec.ID).
		Str("record_type", string(rec.RecordType)).
		Bool("follow_up", rec.HasFollowUp()).
		Msg("health record created")
	return rec.Clone(), nil
}

func (s *Service) Get(ctx context.Context, petID, recordID, userID string) (Record, error) {
	const op = "healthrecords.Get"

	petID = strings.TrimSpace(petID)
	if err := s.ensureOwner(ctx, op, petID, strings.TrimSpace(userID)); err != nil {
		return Record{}, err
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	rec, err := s.repo.Get(sctx, petID, strings.TrimSpace(recordID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, apperr.Classify(op, err)
	}
	return rec, nil
}

// ListByPet lista los registros de la mascota, más recientes primero.
func (s *Service) ListByPet(ctx context.Context, petID, userID string) ([]Record, error) {
	const op = "healthrecords.ListByPet"

	petID = strings.TrimSpace(petID)
	if err := s.ensureOwner(ctx, op, petID, strings.TrimSpace(userID)); err != nil {
		return nil, err
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	items, err := s.repo.ListByPet(sctx, petID)
	if err != nil {
		return nil, apperr.Classify(op, err)
	}
	return items, nil
}

func (s *Service) ensureOwner(ctx context.Context, op, petID, userID string) error {
	if petID == "" || userID == "" {
		return ErrPetNotFound
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	ok, err := s.owners.OwnsPet(sctx, petID, userID)
	if err != nil {
		return apperr.Classify(op, err)
	}
	if !ok {
		return ErrPetNotFound
	}
	return nil
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
