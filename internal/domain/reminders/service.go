package reminders

import (
	"context"
	"sort"
	"strings"
	"time"

	"pet-care-scheduler/internal/domain/careplans"
	"pet-care-scheduler/internal/domain/healthrecords"
	"pet-care-scheduler/internal/platform/apperr"
	"pet-care-scheduler/internal/platform/calendar"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHorizonDays = 30
	MaxHorizonDays     = 365
	defaultConcurrency = 4
)

var ErrInvalidHorizon = apperr.New(apperr.KindValidation, "invalid horizon").
	WithField("days", "must be an integer between 0 and 365")

// PetDirectory resuelve qué mascotas entran al feed de un usuario.
type PetDirectory interface {
	ActivePetIDs(ctx context.Context, userID string) ([]string, error)
}

// Las fuentes son lecturas por mascota; el dueño ya lo validó PetDirectory.
type CarePlanSource interface {
	ListByPet(ctx context.Context, petID string) ([]careplans.CarePlan, error)
}

type HealthRecordSource interface {
	ListByPet(ctx context.Context, petID string) ([]healthrecords.Record, error)
}

type Recorder interface {
	RecordReminders(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordReminders(int) {}

type Service struct {
	pets    PetDirectory
	plans   CarePlanSource
	records HealthRecordSource

	now          func() time.Time
	storeTimeout time.Duration
	maxHorizon   int
	concurrency  int
	log          zerolog.Logger
	rec          Recorder
}

type Option func(*Service)

func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) { s.storeTimeout = d }
}

// WithMaxHorizonDays acota el horizonte aceptado (nunca por encima de MaxHorizonDays).
func WithMaxHorizonDays(n int) Option {
	return func(s *Service) {
		if n >= 0 && n <= MaxHorizonDays {
			s.maxHorizon = n
		}
	}
}

// WithConcurrency limita cuántas mascotas se leen en paralelo.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
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

func NewService(pets PetDirectory, plans CarePlanSource, records HealthRecordSource, opts ...Option) *Service {
	s := &Service{
		pets:        pets,
		plans:       plans,
		records:     records,
		now:         time.Now,
		maxHorizon:  MaxHorizonDays,
		concurrency: defaultConcurrency,
		log:         zerolog.Nop(),
		rec:         nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) MaxHorizonDays() int { return s.maxHorizon }

// ListReminders arma el feed unificado de userID: seguimientos de registros de
// salud que vencen antes de hoy+horizonDays (incluye vencidos) y planes activos
// cuyo aviso (NextDueDate - ReminderLeadDays) cae dentro del horizonte.
// Orden ascendente por fecha; empates: planes, luego título, luego id.
// Sin efectos: ningún plan se reescribe, el status se proyecta contra now.
func (s *Service) ListReminders(ctx context.Context, userID string, horizonDays int) ([]Reminder, error) {
	const op = "reminders.ListReminders"

	if horizonDays < 0 || horizonDays > s.maxHorizon {
		return nil, ErrInvalidHorizon
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []Reminder{}, nil
	}

	now := s.now()
	limit := calendar.AddDays(now, horizonDays)

	pctx, cancel := s.storeCtx(ctx)
	petIDs, err := s.pets.ActivePetIDs(pctx, userID)
	cancel()
	if err != nil {
		return nil, apperr.Classify(op, err)
	}

	perPet := make([][]Reminder, len(petIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, petID := range petIDs {
		g.Go(func() error {
			items, err := s.collectPet(gctx, petID, now, limit)
			if err != nil {
				return err
			}
			perPet[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Classify(op, err)
	}
	// Un ctx cancelado a mitad de camino no devuelve un feed parcial.
	if err := ctx.Err(); err != nil {
		return nil, apperr.Classify(op, err)
	}

	out := make([]Reminder, 0)
	for _, items := range perPet {
		out = append(out, items...)
	}
	sortReminders(out)

	s.rec.RecordReminders(len(out))
	s.log.Debug().
		Int("pets", len(petIDs)).
		Int("horizon_days", horizonDays).
		Int("reminders", len(out)).
		Msg("reminder feed built")
	return out, nil
}

func (s *Service) collectPet(ctx context.Context, petID string, now, limit time.Time) ([]Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	records, err := s.records.ListByPet(sctx, petID)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.ListByPet(sctx, petID)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(records)+len(plans))
	for _, rec := range records {
		if includeRecord(rec, limit) {
			out = append(out, HealthRecordReminder{Record: rec.Clone()})
		}
	}
	for _, p := range plans {
		if includePlan(p, limit) {
			out = append(out, CarePlanReminder{Plan: p.StatusAt(now)})
		}
	}
	return out, nil
}

// includeRecord: sin cota inferior, un seguimiento vencido sigue apareciendo.
func includeRecord(rec healthrecords.Record, limit time.Time) bool {
	if rec.NextDueDate == nil {
		return false
	}
	return calendar.Before(*rec.NextDueDate, limit)
}

func includePlan(p careplans.CarePlan, limit time.Time) bool {
	if !p.RemindersEnabled || p.IsTerminal() {
		return false
	}
	notifyAt := calendar.AddDays(p.NextDueDate, -p.ReminderLeadDays)
	return !calendar.Before(limit, notifyAt)
}

func sortReminders(items []Reminder) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		da, db := calendar.DateOf(a.DueDate()), calendar.DateOf(b.DueDate())
		if !da.Equal(db) {
			return da.Before(db)
		}
		if ra, rb := kindRank(a.Kind()), kindRank(b.Kind()); ra != rb {
			return ra < rb
		}
		if a.Title() != b.Title() {
			return a.Title() < b.Title()
		}
		return a.ID() < b.ID()
	})
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
