package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // API key for authentication
	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// ConfigDir holds jobs.yaml and, for the file driver, accounts.yaml
	ConfigDir   string `env:"CONFIG_DIR" envDefault:"config"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"file"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/jobs.db"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"jobeconomy"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// RedisURL switches presence to Redis when set
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"jobs:"`

	// JobPermissions gates SetJob on main.job.<name>
	JobPermissions bool `env:"JOB_PERMISSIONS" envDefault:"false"`
	// LoadSalary turns the salary timer on
	LoadSalary     bool   `env:"LOAD_SALARY" envDefault:"true"`
	CurrencyName   string `env:"CURRENCY_NAME" envDefault:"dollar"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"$"`

	PlayerCacheSize int           `env:"PLAYER_CACHE_SIZE" envDefault:"1024"`
	PlayerCacheTTL  time.Duration `env:"PLAYER_CACHE_TTL" envDefault:"10m"`
	WorkerCount     int           `env:"WORKER_COUNT" envDefault:"2"`
	WorkerQueueSize int           `env:"WORKER_QUEUE_SIZE" envDefault:"16"`

	// EventLogRetention is how long job history is kept; 0 turns the history off
	EventLogRetention time.Duration `env:"EVENT_LOG_RETENTION" envDefault:"720h"`

	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"3"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads an optional .env file, then parses the environment and
// validates the result
func Load() (*Config, error) {
	// Real environment variables win over .env
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
}

// Validate checks enumerations and required values. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q must be one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	if !slices.Contains(validDrivers, c.StoreDriver) {
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q must be one of %s", c.StoreDriver, strings.Join(validDrivers, ", ")))
	}
	if c.StoreDriver == StoreDriverSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite driver"))
	}
	if c.CurrencyName == "" {
		errs = append(errs, errors.New("CURRENCY_NAME must not be empty"))
	}
	if c.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("WORKER_COUNT %d must be at least 1", c.WorkerCount))
	}

	return errors.Join(errs...)
}

// Warnings reports settings that work but look unsafe
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.StoreDriver == StoreDriverPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	return warnings
}

// PresenceBackend returns which presence store to use
func (c *Config) PresenceBackend() string {
	if c.RedisURL != "" {
		return PresenceRedis
	}
	return PresenceMemory
}

// CatalogPath is the job catalog location
func (c *Config) CatalogPath() string {
	return filepath.Join(c.ConfigDir, CatalogFileName)
}

// AccountsPath is the player record file used by the file driver
func (c *Config) AccountsPath() string {
	return filepath.Join(c.ConfigDir, AccountsFileName)
}

// DeadLetterPath is where undeliverable events are appended
func (c *Config) DeadLetterPath() string {
	return filepath.Join(c.LogDir, DeadLetterFile)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
