package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	CORSAllow string `env:"CORS_ALLOW_ORIGINS, default=http://localhost:3000,http://localhost:5173"`

	// ListMaxLimit caps the page size of activity listings.
	ListMaxLimit int `env:"LIST_MAX_LIMIT, default=500"`

	Auth  AuthConfig
	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	Issuer     string        `env:"TOKEN_ISSUER, default=sustainlite"`
	TokenTTL   time.Duration `env:"TOKEN_TTL, default=30m"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type StoreConfig struct {
	Driver          string        `env:"STORE_DRIVER, default=sqlite"`
	DSN             string        `env:"DATABASE_URL, default=file:sustainlite.db?_pragma=foreign_keys(1)"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=5m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sustainlite"`
}

type RedisConfig struct {
	Enabled      bool          `env:"REDIS_ENABLED, default=false"`
	Addr         string        `env:"REDIS_ADDR,    default=localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB,      default=0"`
	DashboardTTL time.Duration `env:"DASHBOARD_CACHE_TTL, default=1m"`
}

// IsDevelopment reports whether the service runs with developer defaults
// (pretty logs).
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllow, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.Store.Driver {
	case DriverSQLite, DriverPostgres, DriverMongo:
	default:
		return nil, fmt.Errorf("config: unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return &cfg, nil
}
