package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-scheduler/internal/adapters/auth/jwtauth"
	pg "pet-care-scheduler/internal/adapters/storage/postgres"
	"pet-care-scheduler/internal/platform/config"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/ports/auth"
	"pet-care-scheduler/internal/router"

	"github.com/rs/zerolog"
)

// @title Pet Care Scheduler API
// @version 1.0
// @description Planes de cuidado recurrentes y feed unificado de recordatorios de salud.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// sin config todavía no hay logger configurado
		bootLog := logger.New(logger.Options{Level: zerolog.InfoLevel})
		bootLog.Fatal().Err(err).Msg("config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN, cfg.DBConnectTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres")
		}
		defer db.Close()

		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("migrate")
			}
		}
		log.Info().Msg("using postgres stores")
	} else {
		log.Warn().Msg("PETCARE_DB_DSN not set, using in-memory stores")
	}

	// Una interfaz con puntero nil adentro no es nil: solo se asigna si hay secret.
	var verifier auth.AuthVerifier
	if cfg.JWTSecret != "" {
		v, err := jwtauth.NewVerifier(jwtauth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, Leeway: 30 * time.Second})
		if err != nil {
			log.Fatal().Err(err).Msg("jwt verifier")
		}
		verifier = v
	} else {
		log.Warn().Str("header", "X-Debug-User-ID").Msg("no JWT secret, dev auth mode")
	}

	leadDays := cfg.DefaultLeadDays
	r := router.NewRouter(router.Options{
		AuthVerifier:       verifier,
		DB:                 db,
		Logger:             log,
		StoreTimeout:       cfg.StoreTimeout,
		DefaultHorizonDays: cfg.DefaultHorizonDays,
		MaxHorizonDays:     cfg.MaxHorizonDays,
		DefaultLeadDays:    &leadDays,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
