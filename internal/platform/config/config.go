package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix de las variables de entorno: PETCARE_HTTP_PORT, PETCARE_DB_DSN, ...
const Prefix = "PETCARE"

type Config struct {
	AppName   string `envconfig:"APP_NAME" default:"pet-care-scheduler"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Vacío => stores in-memory (modo dev).
	DBDSN            string        `envconfig:"DB_DSN"`
	DBConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
	AutoMigrate      bool          `envconfig:"AUTO_MIGRATE" default:"true"`

	// Timeout por llamada al store (lecturas y escrituras).
	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"3s"`

	DefaultHorizonDays int `envconfig:"REMINDER_DEFAULT_HORIZON_DAYS" default:"30"`
	MaxHorizonDays     int `envconfig:"REMINDER_MAX_HORIZON_DAYS" default:"365"`
	DefaultLeadDays    int `envconfig:"DEFAULT_LEAD_DAYS" default:"1"`

	// Vacío => sin verifier, se acepta X-Debug-User-ID.
	JWTSecret string `envconfig:"JWT_SECRET"`
	JWTIssuer string `envconfig:"JWT_ISSUER"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		problems = append(problems, "HTTP_PORT must be 1..65535")
	}
	if c.StoreTimeout <= 0 {
		problems = append(problems, "STORE_TIMEOUT must be > 0")
	}
	if c.MaxHorizonDays < 1 {
		problems = append(problems, "REMINDER_MAX_HORIZON_DAYS must be >= 1")
	}
	if c.DefaultHorizonDays < 0 || c.DefaultHorizonDays > c.MaxHorizonDays {
		problems = append(problems, "REMINDER_DEFAULT_HORIZON_DAYS must be within 0..REMINDER_MAX_HORIZON_DAYS")
	}
	if c.DefaultLeadDays < 0 {
		problems = append(problems, "DEFAULT_LEAD_DAYS must be >= 0")
	}
	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
