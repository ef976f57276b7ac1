// Package publisher exports the glossary as one self-contained HTML file and
// uploads it to object storage.
package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/views"
	"github.com/dmitrymomot/glossary/pkg/logger"
	"github.com/dmitrymomot/glossary/pkg/storage"
)

// DefaultKey is the object key of the published page.
const DefaultKey = "glossary/index.html"

const defaultCacheControl = "public, max-age=300"

var (
	ErrStorageNotConfigured = errors.New("publisher: storage is not configured")
	ErrRender               = errors.New("publisher: render failed")
	ErrUpload               = errors.New("publisher: upload failed")
	ErrRemove               = errors.New("publisher: remove failed")
)

// Uploader is the part of storage.Storage the publisher needs.
type Uploader interface {
	Put(ctx context.Context, r io.Reader, size int64, opts ...storage.Option) (*storage.FileInfo, error)
	URL(ctx context.Context, key string, opts ...storage.URLOption) (string, error)
	Delete(ctx context.Context, key string) error
}

// Result describes a published page.
type Result struct {
	Key  string
	URL  string
	Size int64
}

// Publisher renders the standalone page.
type Publisher struct {
	svc          *glossary.Service
	uploader     Uploader
	logger       *slog.Logger
	title        string
	key          string
	cacheControl string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithUploader sets the storage the page is uploaded to.
func WithUploader(u Uploader) Option {
	return func(p *Publisher) {
		p.uploader = u
	}
}

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(p *Publisher) {
		if key != "" {
			p.key = key
		}
	}
}

// WithCacheControl sets the Cache-Control stored with the object.
func WithCacheControl(cc string) Option {
	return func(p *Publisher) {
		if cc != "" {
			p.cacheControl = cc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Publisher. Without WithUploader only Render is usable.
func New(svc *glossary.Service, title string, opts ...Option) *Publisher {
	p := &Publisher{
		svc:          svc,
		title:        title,
		key:          DefaultKey,
		cacheControl: defaultCacheControl,
		logger:       logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render writes the standalone page to w. The page inlines its stylesheet
// and script and works opened from disk.
func (p *Publisher) Render(ctx context.Context, w io.Writer) error {
	fs, err := p.svc.Fragments(ctx)
	if err != nil {
		return errors.Join(ErrRender, err)
	}

	page := views.Page(views.PageData{Title: p.title, Fragments: fs, Standalone: true})
	if err := page.Render(ctx, w); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// Publish renders the page and uploads it with a public-read ACL.
func (p *Publisher) Publish(ctx context.Context) (Result, error) {
	if p.uploader == nil {
		return Result{}, ErrStorageNotConfigured
	}

	start := time.Now()

	var buf bytes.Buffer
	if err := p.Render(ctx, &buf); err != nil {
		return Result{}, err
	}
	size := int64(buf.Len())

	info, err := p.uploader.Put(ctx, &buf, size,
		storage.WithKey(p.key),
		storage.WithContentType("text/html; charset=utf-8"),
		storage.WithCacheControl(p.cacheControl),
		storage.WithACL(storage.ACLPublicRead),
	)
	if err != nil {
		return Result{}, errors.Join(ErrUpload, err)
	}

	url, err := p.uploader.URL(ctx, info.Key)
	if err != nil {
		return Result{}, errors.Join(ErrUpload, fmt.Errorf("url for %s: %w", info.Key, err))
	}

	p.logger.InfoContext(ctx, "glossary published",
		slog.String("key", info.Key),
		slog.String("url", url),
		slog.Int64("size", size),
		slog.Duration("duration", time.Since(start)),
	)

	return Result{Key: info.Key, URL: url, Size: size}, nil
}

// Unpublish deletes the published page. Removing a page that was never
// published succeeds.
func (p *Publisher) Unpublish(ctx context.Context) error {
	if p.uploader == nil {
		return ErrStorageNotConfigured
	}
	if err := p.uploader.Delete(ctx, p.key); err != nil {
		return errors.Join(ErrRemove, err)
	}
	p.logger.InfoContext(ctx, "glossary unpublished", slog.String("key", p.key))
	return nil
}
