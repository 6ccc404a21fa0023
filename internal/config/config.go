package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var (
	ErrUnknownEnv    = errors.New("unknown env")
	ErrUnknownDriver = errors.New("unknown database driver")
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	Service  ServiceConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
}

// ServiceConfig identifies the deployment in status payloads
type ServiceConfig struct {
	Name    string `env:"SERVICE_NAME" env-default:"jcp-backend-service"`
	Version string `env:"SERVICE_VERSION" env-default:"1.0.0-SNAPSHOT"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" env-default:"postgres"`
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            string        `env:"DB_PORT" env-default:"5432"`
	User            string        `env:"DB_USER" env-default:"jcp"`
	Password        string        `env:"DB_PASSWORD" env-default:"jcp"`
	Name            string        `env:"DB_NAME" env-default:"jcp"`
	SSLMode         string        `env:"DB_SSL_MODE" env-default:"disable"`
	SQLitePath      string        `env:"DB_SQLITE_PATH" env-default:"jcp.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
	PingTimeout     time.Duration `env:"DB_PING_TIMEOUT" env-default:"2s"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv fills unset variables from path. A missing file is fine, real
// deployments set the environment directly.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the rest of the service cannot act on
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Env)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}

	return nil
}

// Addr is the host:port the HTTP server listens on
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}
