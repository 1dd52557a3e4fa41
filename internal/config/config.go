package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT"        envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL"   envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"  envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION"     envDefault:"dev"`

	DBUser          string        `env:"DB_USER"            envDefault:"postgres"`
	DBPassword      string        `env:"DB_PASSWORD"        envDefault:"postgres"`
	DBHost          string        `env:"DB_HOST"            envDefault:"localhost"`
	DBPort          string        `env:"DB_PORT"            envDefault:"5432"`
	DBName          string        `env:"DB_NAME"            envDefault:"teambuilder"`
	DBSSLMode       string        `env:"DB_SSLMODE"         envDefault:"disable"`
	DBMaxConns      int           `env:"DB_MAX_CONNS"       envDefault:"20"`
	DBMaxConnIdle   time.Duration `env:"DB_MAX_CONN_IDLE"   envDefault:"5m"`
	DBMaxConnLife   time.Duration `env:"DB_MAX_CONN_LIFE"   envDefault:"1h"`
	RunMigrations   bool          `env:"DB_RUN_MIGRATIONS"  envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"15s"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES"    envSeparator:","`

	APIKey    string        `env:"API_KEY"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"teambuilder"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"24h"`

	SeedPath              string        `env:"CONSTELLATION_SEED_PATH"  envDefault:"configs/constellations.yaml"`
	ConstellationCacheTTL time.Duration `env:"CONSTELLATION_CACHE_TTL"  envDefault:"10m"`
	ConstellationCacheMax int           `env:"CONSTELLATION_CACHE_SIZE" envDefault:"64"`
	StartingKizunaStars   int           `env:"STARTING_KIZUNA_STARS"    envDefault:"100"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadUnvalidated()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUnvalidated parses the environment without checking secrets. Tooling
// that only talks to the database uses it.
func LoadUnvalidated() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", envKeyErrors(err))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return &cfg, nil
}

// envKeyErrors rewrites field parse failures to name the environment
// variable instead of the Go field
func envKeyErrors(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	t := reflect.TypeOf(Config{})
	errs := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) {
			if f, ok := t.FieldByName(pe.Name); ok {
				key, _, _ := strings.Cut(f.Tag.Get("env"), ",")
				errs = append(errs, fmt.Errorf("%s: %w", key, pe.Err))
				continue
			}
		}
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Validate checks required secrets and value ranges
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable must be set"))
	} else if c.Environment != EnvironmentDev && len(c.JWTSecret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes outside dev", MinJWTSecretLength))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.StartingKizunaStars < 0 {
		errs = append(errs, fmt.Errorf("STARTING_KIZUNA_STARS must not be negative, got %d", c.StartingKizunaStars))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}
