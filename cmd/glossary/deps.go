package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/glossary/internal/config"
	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/importer"
	"github.com/dmitrymomot/glossary/internal/publisher"
	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/internal/store"
	"github.com/dmitrymomot/glossary/internal/tasks"
	"github.com/dmitrymomot/glossary/middlewares"
	"github.com/dmitrymomot/glossary/pkg/cache"
	"github.com/dmitrymomot/glossary/pkg/job"
	"github.com/dmitrymomot/glossary/pkg/logger"
	"github.com/dmitrymomot/glossary/pkg/redis"
	"github.com/dmitrymomot/glossary/pkg/storage"
)

var errJobsNeedPostgres = errors.New("glossary: background jobs need the postgres driver")

// deps holds the services shared by every command.
type deps struct {
	cfg   *config.Config
	log   *slog.Logger
	store store.Store
	redis goredis.UniversalClient
	pages cache.Cache[string]
	svc   *glossary.Service
}

// bootstrap loads and validates the configuration named by the --config
// flag of cmd, builds the logger and opens the store. The caller must call
// close.
func bootstrap(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("read --config flag: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.StoreConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	d := &deps{cfg: cfg, log: log, store: st}

	if err := d.openCache(ctx); err != nil {
		d.close()
		return nil, err
	}

	d.svc = glossary.NewService(st, d.constants(), glossary.WithLogger(log))
	return d, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(cfg.Log.Format),
		logger.WithWriter(os.Stderr),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
	}

	if cfg.Sentry.DSN != "" {
		return logger.NewWithSentry(logger.SentryConfig{
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}, opts...), nil
	}
	return logger.New(opts...), nil
}

func (d *deps) openCache(ctx context.Context) error {
	switch d.cfg.Cache.Driver {
	case config.CacheRedis:
		client, err := redis.Open(ctx, d.cfg.Redis.URL, redis.WithLogger(d.log))
		if err != nil {
			return fmt.Errorf("open redis: %w", err)
		}
		d.redis = client
		d.pages = cache.NewRedis[string](client, cache.StringMarshaler{},
			cache.WithRedisDefaultTTL(d.cfg.Cache.TTL),
		)
	case config.CacheNone:
		d.pages = cache.NewNoop[string]()
	default:
		d.pages = cache.NewMemory[string](cache.WithDefaultTTL(d.cfg.Cache.TTL))
	}
	return nil
}

func (d *deps) constants() reference.Constants {
	return reference.Constants{ChapterBaseURL: d.cfg.Glossary.ChapterBaseURL}
}

func (d *deps) title() string {
	return d.cfg.Glossary.Title
}

func (d *deps) importer() *importer.Importer {
	return importer.New(d.store, d.constants(),
		importer.WithLogger(d.log.With(slog.String("component", "importer"))),
		importer.WithCache(d.pages),
	)
}

// publisher returns a publisher with an uploader when a bucket is configured.
// Without one only rendering works.
func (d *deps) publisher() (*publisher.Publisher, error) {
	opts := []publisher.Option{
		publisher.WithLogger(d.log.With(slog.String("component", "publisher"))),
		publisher.WithKey(d.cfg.Storage.Key),
	}

	if d.cfg.StorageEnabled() {
		s3, err := storage.New(storage.Config{
			Bucket:    d.cfg.Storage.Bucket,
			AccessKey: d.cfg.Storage.AccessKey,
			SecretKey: d.cfg.Storage.SecretKey,
			Endpoint:  d.cfg.Storage.Endpoint,
			Region:    d.cfg.Storage.Region,
			PublicURL: d.cfg.Storage.PublicURL,
			PathStyle: d.cfg.Storage.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		opts = append(opts, publisher.WithUploader(s3))
	}

	return publisher.New(d.svc, d.title(), opts...), nil
}

// postgres returns the postgres store, the only backend River can run on.
func (d *deps) postgres() (*store.Postgres, error) {
	pg, ok := d.store.(*store.Postgres)
	if !ok {
		return nil, errJobsNeedPostgres
	}
	return pg, nil
}

// jobs builds the job manager with the import task and, when storage is
// configured, the scheduled publish.
func (d *deps) jobs(ctx context.Context) (*job.Manager, error) {
	pg, err := d.postgres()
	if err != nil {
		return nil, err
	}

	log := d.log.With(slog.String("component", "jobs"))
	if err := job.Migrate(ctx, pg.Pool(), log); err != nil {
		return nil, err
	}

	opts := []job.Option{
		job.WithLogger(log),
		job.WithTask[tasks.ImportPayload](tasks.NewImport(d.importer())),
	}

	if d.cfg.StorageEnabled() {
		pub, err := d.publisher()
		if err != nil {
			return nil, err
		}
		opts = append(opts, job.WithScheduledTask(tasks.NewPublish(pub, d.cfg.Jobs.PublishSchedule, log)))
	} else {
		log.WarnContext(ctx, "storage is not configured, scheduled publish disabled")
	}

	return job.NewManager(pg.Pool(), opts...)
}

func (d *deps) close() {
	if d.pages != nil {
		if err := d.pages.Close(); err != nil {
			d.log.Error("close cache", slog.Any("error", err))
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			d.log.Error("close redis", slog.Any("error", err))
		}
	}
	if err := d.store.Close(); err != nil {
		d.log.Error("close store", slog.Any("error", err))
	}
}
