package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "pet-care-scheduler/docs"
	mem "pet-care-scheduler/internal/adapters/storage/memory"
	pg "pet-care-scheduler/internal/adapters/storage/postgres"
	"pet-care-scheduler/internal/domain/careplans"
	"pet-care-scheduler/internal/domain/healthrecords"
	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/domain/reminders"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/metrics"
	"pet-care-scheduler/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  zerolog.Logger
	Metrics *metrics.Metrics // nil => uno nuevo por router

	// Reloj de los servicios; nil => time.Now.
	Now func() time.Time

	StoreTimeout       time.Duration
	DefaultHorizonDays int
	MaxHorizonDays     int  // 0 => reminders.MaxHorizonDays
	DefaultLeadDays    *int // nil => careplans.DefaultReminderLeadDays
}

func NewRouter(opts Options) http.Handler {
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo    pets.Repository
		planRepo   careplans.Repository
		recordRepo healthrecords.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		planRepo = pg.NewCarePlansRepo(opts.DB)
		recordRepo = pg.NewHealthRecordsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		planRepo = mem.NewCarePlanRepo()
		recordRepo = mem.NewHealthRecordRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)

	planOpts := []careplans.Option{
		careplans.WithStoreTimeout(opts.StoreTimeout),
		careplans.WithLogger(opts.Logger.With().Str("component", "careplans").Logger()),
		careplans.WithRecorder(m),
		careplans.WithClock(opts.Now),
	}
	if opts.DefaultLeadDays != nil {
		planOpts = append(planOpts, careplans.WithDefaultLeadDays(*opts.DefaultLeadDays))
	}
	plansSvc := careplans.NewService(planRepo, petsSvc, planOpts...)

	recordsSvc := healthrecords.NewService(recordRepo, petsSvc,
		healthrecords.WithStoreTimeout(opts.StoreTimeout),
		healthrecords.WithLogger(opts.Logger.With().Str("component", "healthrecords").Logger()),
		healthrecords.WithClock(opts.Now),
	)

	reminderOpts := []reminders.Option{
		reminders.WithStoreTimeout(opts.StoreTimeout),
		reminders.WithLogger(opts.Logger.With().Str("component", "reminders").Logger()),
		reminders.WithRecorder(m),
		reminders.WithClock(opts.Now),
	}
	if opts.MaxHorizonDays > 0 {
		reminderOpts = append(reminderOpts, reminders.WithMaxHorizonDays(opts.MaxHorizonDays))
	}
	remindersSvc := reminders.NewService(petsSvc, planRepo, recordRepo, reminderOpts...)

	defaultDays := opts.DefaultHorizonDays
	if defaultDays == 0 {
		defaultDays = reminders.DefaultHorizonDays
	}

	// Rutas por módulo. /pets/health-reminders es estático y chi lo prioriza
	// sobre /pets/{petID}.
	reminders.RegisterRoutes(r, remindersSvc, defaultDays)
	pets.RegisterRoutes(r, petsSvc)
	careplans.RegisterRoutes(r, plansSvc)
	healthrecords.RegisterRoutes(r, recordsSvc)

	return r
}
