package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers for the settings key-value store.
const (
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL      time.Duration `env:"SESSION_TTL,      default=24h"`
	DemoPassword    string        `env:"DEMO_PASSWORD,    default=password123"`
	SeedDemoData    bool          `env:"SEED_DEMO_DATA,   default=true"`
	SuggestionCount int           `env:"SUGGESTION_COUNT, default=3"`

	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type StorageConfig struct {
	Driver    string `env:"STORAGE_DRIVER,     default=redis"`
	KeyPrefix string `env:"STORAGE_KEY_PREFIX, default=familyHub_"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=family_hub"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Development reports whether human-friendly logs should be used.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.Storage.Driver {
	case StorageRedis, StorageMongo, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not one of redis, mongo, memory", c.Storage.Driver))
	}
	if c.SuggestionCount < 0 {
		errs = append(errs, errors.New("SUGGESTION_COUNT must not be negative"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
