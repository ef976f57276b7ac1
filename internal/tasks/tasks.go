// Package tasks holds the background jobs of the glossary: imports handed
// off by the CLI and the periodic publish.
package tasks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/glossary/internal/importer"
	"github.com/dmitrymomot/glossary/internal/publisher"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

// Task names as stored in the queue.
const (
	ImportTaskName  = "glossary_import"
	PublishTaskName = "glossary_publish"
)

// DefaultPublishSchedule republishes every night at 03:00.
const DefaultPublishSchedule = "0 3 * * *"

var ErrEmptyPath = errors.New("tasks: import path is empty")

// ImportPayload names the definitions file to import. The path must be
// readable by the worker process.
type ImportPayload struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace,omitempty"`
}

// Importer runs an import. *importer.Importer satisfies it.
type Importer interface {
	Import(ctx context.Context, path string, opts ...importer.ImportOption) (importer.Result, error)
}

// ImportTask imports a definitions file. The importer logs the outcome.
type ImportTask struct {
	imp Importer
}

// NewImport creates the import task.
func NewImport(imp Importer) *ImportTask {
	return &ImportTask{imp: imp}
}

func (t *ImportTask) Name() string { return ImportTaskName }

func (t *ImportTask) Handle(ctx context.Context, p ImportPayload) error {
	if p.Path == "" {
		return ErrEmptyPath
	}

	_, err := t.imp.Import(ctx, p.Path, importer.Replace(p.Replace))
	return err
}

// Publisher uploads the standalone page. *publisher.Publisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context) (publisher.Result, error)
}

// PublishTask republishes the page on a cron schedule.
type PublishTask struct {
	pub      Publisher
	logger   *slog.Logger
	schedule string
}

// NewPublish creates the publish task. An empty schedule means
// DefaultPublishSchedule.
func NewPublish(pub Publisher, schedule string, log *slog.Logger) *PublishTask {
	if schedule == "" {
		schedule = DefaultPublishSchedule
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &PublishTask{pub: pub, schedule: schedule, logger: log}
}

func (t *PublishTask) Name() string     { return PublishTaskName }
func (t *PublishTask) Schedule() string { return t.schedule }

func (t *PublishTask) Handle(ctx context.Context) error {
	res, err := t.pub.Publish(ctx)
	if err != nil {
		return err
	}
	t.logger.InfoContext(ctx, "scheduled publish finished", slog.String("url", res.URL))
	return nil
}
