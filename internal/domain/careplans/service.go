package careplans

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-care-scheduler/internal/platform/apperr"
	"pet-care-scheduler/internal/platform/calendar"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultReminderLeadDays = 1

var (
	ErrPetNotFound      = apperr.New(apperr.KindNotFound, "pet not found")
	ErrAlreadyCompleted = apperr.New(apperr.KindConflict, "care plan already completed")
)

// PetOwnership es el único colaborador externo del ciclo de vida.
type PetOwnership interface {
	OwnsPet(ctx context.Context, petID, userID string) (bool, error)
}

// Recorder recibe el resultado de cada operación (métricas).
type Recorder interface {
	RecordLifecycle(op, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordLifecycle(string, string) {}

type Service struct {
	repo   Repository
	owners PetOwnership

	now          func() time.Time
	storeTimeout time.Duration
	leadDays     int
	log          zerolog.Logger
	rec          Recorder
}

type Option func(*Service)

// WithStoreTimeout acota cada llamada a store/ownership. <= 0 deja solo el ctx del caller.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) { s.storeTimeout = d }
}

func WithDefaultLeadDays(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.leadDays = n
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.rec = r
		}
	}
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
		repo:     repo,
		owners:   owners,
		now:      time.Now,
		leadDays: DefaultReminderLeadDays,
		log:      zerolog.Nop(),
		rec:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	Title              string
	Description        string
	Category           Category
	Frequency          Frequency
	CustomIntervalDays *int
	StartDate          time.Time

	// nil => default del servicio / true.
	ReminderLeadDays *int
	RemindersEnabled *bool
}

func (s *Service) Create(ctx context.Context, petID, userID string, in CreateInput) (CarePlan, error) {
	const op = "careplans.Create"

	petID = strings.TrimSpace(petID)
	userID = strings.TrimSpace(userID)
	if err := s.ensureOwner(ctx, op, petID, userID); err != nil {
		s.rec.RecordLifecycle("create", outcome(err))
		return CarePlan{}, err
	}

	fe := apperr.FieldErrors{}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		fe.Add("title", "required")
	}
	if !in.Category.Valid() {
		fe.Add("category", "must be one of nutrition, exercise, grooming, medication, wellness, other")
	}
	if in.StartDate.IsZero() {
		fe.Add("start_date", "required")
	}
	scheduleErr := ValidateSchedule(in.Frequency, in.CustomIntervalDays)
	fe.Merge(scheduleErr)

	lead := s.leadDays
	if in.ReminderLeadDays != nil {
		lead = *in.ReminderLeadDays
		if lead < 0 {
			fe.Add("reminder_lead_days", "must be >= 0")
		}
	}
	if err := fe.Err(op, scheduleErr); err != nil {
		s.rec.RecordLifecycle("create", outcome(err))
		return CarePlan{}, err
	}

	enabled := true
	if in.RemindersEnabled != nil {
		enabled = *in.RemindersEnabled
	}

	var interval *int
	if in.CustomIntervalDays != nil {
		v := *in.CustomIntervalDays
		interval = &v
	}

	start := calendar.DateOf(in.StartDate)
	next, err := NextDue(in.Frequency, start, interval, nil)
	if err != nil {
		return CarePlan{}, apperr.Internal(op, err)
	}

	now := s.now()
	p := CarePlan{
		ID:                 uuid.NewString(),
		PetID:              petID,
		UserID:             userID,
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		Category:           in.Category,
		Frequency:          in.Frequency,
		CustomIntervalDays: interval,
		StartDate:          start,
		NextDueDate:        next,
		ReminderLeadDays:   lead,
		RemindersEnabled:   enabled,
		Status:             ResolveStatus(next, in.Frequency, nil, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.repo.Create(sctx, p); err != nil {
		err = apperr.Classify(op, err)
		s.rec.RecordLifecycle("create", outcome(err))
		return CarePlan{}, err
	}

	s.rec.RecordLifecycle("create", "ok")
	s.log.Debug().
		Str("pet_id", petID).
		Str("plan_id", p.ID).
		Str("frequency", string(p.Frequency)).
		Str("next_due_date", calendar.Format(p.NextDueDate)).
		Str("status", string(p.Status)).
		Msg("care plan created")
	return p.Clone(), nil
}

// Complete marca una ocurrencia como hecha. Un plan once pasa a completed
// (terminal, NextDueDate queda como referencia); el resto recalcula desde now.
// Dos Complete concurrentes: uno gana, el otro recibe Conflict.
func (s *Service) Complete(ctx context.Context, petID, planID, userID string) (CarePlan, error) {
	const op = "careplans.Complete"

	current, err := s.load(ctx, op, petID, planID, userID)
	if err != nil {
		s.rec.RecordLifecycle("complete", outcome(err))
		return CarePlan{}, err
	}
	if current.IsTerminal() {
		s.rec.RecordLifecycle("complete", "conflict")
		return CarePlan{}, ErrAlreadyCompleted
	}

	now := s.now()
	completedAt := now
	next := current.Clone()
	next.LastCompletedAt = &completedAt
	next.UpdatedAt = now

	if current.Frequency == FrequencyOnce {
		next.Status = StatusCompleted
	} else {
		due, err := NextDue(current.Frequency, current.StartDate, current.CustomIntervalDays, &completedAt)
		if err != nil {
			// dato persistido inválido, no es culpa del caller
			return CarePlan{}, apperr.Internal(op, err)
		}
		next.NextDueDate = due
		next.Status = ResolveStatus(due, current.Frequency, &completedAt, now)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.repo.CompareAndSwap(sctx, current.Revision(), next); err != nil {
		err = s.mapPlanErr(op, err)
		s.rec.RecordLifecycle("complete", outcome(err))
		if errors.Is(err, apperr.ErrConflict) {
			s.log.Info().Str("pet_id", current.PetID).Str("plan_id", current.ID).Msg("concurrent completion rejected")
		}
		return CarePlan{}, err
	}

	s.rec.RecordLifecycle("complete", "ok")
	s.log.Debug().
		Str("pet_id", next.PetID).
		Str("plan_id", next.ID).
		Str("status", string(next.Status)).
		Str("next_due_date", calendar.Format(next.NextDueDate)).
		Msg("care plan completed")
	return next.Clone(), nil
}

// Delete es hard delete con chequeo de dueño.
func (s *Service) Delete(ctx context.Context, petID, planID, userID string) error {
	const op = "careplans.Delete"

	current, err := s.load(ctx, op, petID, planID, userID)
	if err != nil {
		s.rec.RecordLifecycle("delete", outcome(err))
		return err
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.repo.Delete(sctx, current.PetID, current.ID); err != nil {
		err = s.mapPlanErr(op, err)
		s.rec.RecordLifecycle("delete", outcome(err))
		return err
	}

	s.rec.RecordLifecycle("delete", "ok")
	s.log.Debug().Str("pet_id", current.PetID).Str("plan_id", current.ID).Msg("care plan deleted")
	return nil
}

// ListByPet devuelve los planes de la mascota con Status recalculado contra now.
// Es solo lectura: la cache persistida no se reescribe.
func (s *Service) ListByPet(ctx context.Context, petID, userID string) ([]CarePlan, error) {
	const op = "careplans.ListByPet"

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

	now := s.now()
	out := make([]CarePlan, 0, len(items))
	for _, p := range items {
		out = append(out, p.StatusAt(now))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextDueDate.Equal(out[j].NextDueDate) {
			return out[i].NextDueDate.Before(out[j].NextDueDate)
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (s *Service) load(ctx context.Context, op, petID, planID, userID string) (CarePlan, error) {
	petID = strings.TrimSpace(petID)
	planID = strings.TrimSpace(planID)
	userID = strings.TrimSpace(userID)

	if err := s.ensureOwner(ctx, op, petID, userID); err != nil {
		return CarePlan{}, err
	}
	if planID == "" {
		return CarePlan{}, ErrNotFound
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	p, err := s.repo.Get(sctx, petID, planID)
	if err != nil {
		return CarePlan{}, s.mapPlanErr(op, err)
	}
	// Mismo 404 que "no existe": no se filtra la existencia de datos ajenos.
	if p.PetID != petID || p.UserID != userID {
		return CarePlan{}, ErrNotFound
	}
	return p, nil
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

func (s *Service) mapPlanErr(op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrStale):
		return ErrStale
	default:
		return apperr.Classify(op, err)
	}
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(apperr.KindOf(err))
}
