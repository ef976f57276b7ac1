package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/glossary/internal/store"
	"github.com/dmitrymomot/glossary/pkg/job"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

// EnvPrefix is prepended to every environment variable, so database.url is
// read from GLOSSARY_DATABASE_URL.
const EnvPrefix = "GLOSSARY"

// DefaultConfigName is looked up in the working directory when Load gets no
// explicit path.
const DefaultConfigName = "glossary"

// Cache drivers.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

var (
	ErrLoad    = errors.New("config: failed to load")
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Glossary GlossaryConfig `mapstructure:"glossary"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Log      LogConfig      `mapstructure:"log"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

type GlossaryConfig struct {
	ChapterBaseURL string `mapstructure:"chapter_base_url"`
	Title          string `mapstructure:"title"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// StorageConfig configures the S3-compatible bucket the publish command
// uploads to. An empty bucket disables publishing.
type StorageConfig struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	PublicURL string `mapstructure:"public_url"`
	PathStyle bool   `mapstructure:"path_style"`
	Key       string `mapstructure:"key"`
}

type JobsConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	PublishSchedule string `mapstructure:"publish_schedule"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

// Load reads defaults, then the config file, then GLOSSARY_* environment
// variables, later sources winning. An empty path looks for glossary.yaml in
// the working directory and carries on without it when absent. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Join(ErrLoad, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(ErrLoad, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.driver", store.DriverSQLite)
	v.SetDefault("database.url", "glossary.db")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)

	v.SetDefault("glossary.chapter_base_url", "")
	v.SetDefault("glossary.title", "Glossary")

	v.SetDefault("cache.driver", CacheMemory)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("redis.url", "")

	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.public_url", "")
	v.SetDefault("storage.path_style", false)
	v.SetDefault("storage.key", "glossary/index.html")

	v.SetDefault("jobs.enabled", false)
	v.SetDefault("jobs.publish_schedule", "0 3 * * *")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatJSON)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
}

// Validate checks cross-field constraints. All problems are reported at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case store.DriverSQLite:
	case store.DriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not one of sqlite, postgres", c.Database.Driver))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, errors.New("database.min_conns exceeds database.max_conns"))
	}

	switch c.Cache.Driver {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("redis.url is required for the redis cache"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.driver %q is not one of memory, redis, none", c.Cache.Driver))
	}

	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must not be negative"))
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Log.Format) {
	case logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of json, text", c.Log.Format))
	}

	if c.Jobs.Enabled {
		if c.Database.Driver != store.DriverPostgres {
			errs = append(errs, errors.New("jobs.enabled requires the postgres driver"))
		}
		if err := job.ValidateSchedule(c.Jobs.PublishSchedule); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Storage.Bucket != "" && c.Storage.Key == "" {
		errs = append(errs, errors.New("storage.key is required when storage.bucket is set"))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalid}, errs...)...)
	}
	return nil
}

// StoreConfig maps the database section onto store.Config.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Driver:   c.Database.Driver,
		URL:      c.Database.URL,
		MaxConns: c.Database.MaxConns,
		MinConns: c.Database.MinConns,
	}
}

// StorageEnabled reports whether a publish target is configured.
func (c *Config) StorageEnabled() bool {
	return c.Storage.Bucket != ""
}
