package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/pkg/logger"
	"github.com/dmitrymomot/glossary/pkg/sanitizer"
	"github.com/dmitrymomot/glossary/pkg/slug"
)

// Writer is the part of the store the importer writes to. ImportTerms must
// store all drafts or none of them.
type Writer interface {
	ImportTerms(ctx context.Context, drafts []glossary.Draft, replace bool) error
}

// Invalidator drops cached renderings after the data changed.
type Invalidator interface {
	Clear(ctx context.Context) error
}

// Warning is a non-fatal problem found while importing.
type Warning struct {
	Term    string
	Message string
	Index   int
}

func (w Warning) String() string {
	return fmt.Sprintf("definition %d (%s): %s", w.Index, w.Term, w.Message)
}

// Result summarises an import.
type Result struct {
	Warnings []Warning
	Imported int
}

// Importer loads definition files into the store.
type Importer struct {
	store    Writer
	cache    Invalidator
	logger   *slog.Logger
	markdown goldmark.Markdown
	consts   reference.Constants
	replace  bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Importer) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithCache sets the cache cleared once an import has written to the store.
func WithCache(c Invalidator) Option {
	return func(i *Importer) {
		i.cache = c
	}
}

// WithReplace removes all stored terms before importing.
func WithReplace(replace bool) Option {
	return func(i *Importer) {
		i.replace = replace
	}
}

// ImportOption adjusts a single Import call.
type ImportOption func(*importRun)

type importRun struct {
	replace bool
}

// Replace overrides WithReplace for one call.
func Replace(replace bool) ImportOption {
	return func(r *importRun) {
		r.replace = replace
	}
}

// New creates an Importer writing to store. Constants are used to pre-check
// see-also references.
func New(store Writer, c reference.Constants, opts ...Option) *Importer {
	i := &Importer{
		store:  store,
		consts: c,
		logger: logger.NewNope(),
		// Raw HTML is kept; descriptions are sanitized when rendered.
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import reads the definitions file at path and stores every definition.
// The whole file is parsed and validated before anything is written.
func (i *Importer) Import(ctx context.Context, path string, opts ...ImportOption) (Result, error) {
	run := importRun{replace: i.replace}
	for _, opt := range opts {
		opt(&run)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", err, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Join(ErrReadFile, err)
	}
	defer f.Close()

	defs, err := Parse(f, format)
	if err != nil {
		return Result{}, err
	}

	baseDir := filepath.Dir(path)
	for idx := range defs {
		desc, err := i.loadDescription(baseDir, defs[idx].Description)
		if err != nil {
			return Result{}, fmt.Errorf("definition %d: %w", idx, err)
		}
		defs[idx].Description = desc
	}

	if err := checkUnique(defs); err != nil {
		return Result{}, err
	}

	var res Result
	res.Warnings = i.check(defs)
	for _, w := range res.Warnings {
		i.logger.WarnContext(ctx, "import warning",
			slog.Int("index", w.Index),
			slog.String("term", w.Term),
			slog.String("message", w.Message),
		)
	}

	drafts := make([]glossary.Draft, len(defs))
	for idx, d := range defs {
		drafts[idx] = d.Draft()
	}

	err = i.store.ImportTerms(ctx, drafts, run.replace)
	// A failed commit is not guaranteed to have left the database untouched.
	i.clearCache(ctx)
	if err != nil {
		return res, errors.Join(ErrStore, err)
	}
	res.Imported = len(drafts)

	i.logger.InfoContext(ctx, "definitions imported",
		slog.String("path", path),
		slog.Int("imported", res.Imported),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

func (i *Importer) clearCache(ctx context.Context) {
	if i.cache == nil {
		return
	}
	if err := i.cache.Clear(ctx); err != nil {
		i.logger.WarnContext(ctx, "failed to clear cache after import", slog.String("error", err.Error()))
	}
}

// loadDescription replaces an "@file" description with the contents of that
// file, relative to baseDir. Markdown files are converted to HTML.
func (i *Importer) loadDescription(baseDir, desc string) (string, error) {
	ref := strings.TrimSpace(desc)
	if !strings.HasPrefix(ref, "@") {
		return desc, nil
	}

	name := strings.TrimSpace(ref[1:])
	if name == "" {
		return "", fmt.Errorf("%w: empty description file reference", ErrFormat)
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(baseDir, name)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Join(ErrReadFile, err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := i.markdown.Convert(data, &buf); err != nil {
			return "", errors.Join(ErrFormat, err)
		}
		return buf.String(), nil
	default:
		return string(data), nil
	}
}

// check reports references that will render as invalid markers, slugs that
// will be rewritten and descriptions without any visible text.
func (i *Importer) check(defs []Definition) []Warning {
	var out []Warning
	for idx, d := range defs {
		for _, sa := range d.SeeAlso {
			if _, err := reference.Resolve(sa, i.consts); err != nil {
				out = append(out, Warning{Index: idx, Term: d.Term, Message: err.Error()})
			}
		}
		if d.Slug != "" && !slug.Valid(d.Slug+"-term") {
			out = append(out, Warning{Index: idx, Term: d.Term, Message: fmt.Sprintf("slug %q is not anchor-safe and will be sanitized", d.Slug)})
		}
		if strings.TrimSpace(sanitizer.StripHTML(d.Description)) == "" {
			out = append(out, Warning{Index: idx, Term: d.Term, Message: "description has no text"})
		}
	}
	return out
}

// checkUnique rejects files that repeat a term/sequence pair or a slug, which
// the store would refuse halfway through the import.
func checkUnique(defs []Definition) error {
	type key struct {
		term string
		seq  int
	}
	terms := make(map[key]int, len(defs))
	slugs := make(map[string]int)
	for idx, d := range defs {
		k := key{term: d.Term, seq: d.SeqNum}
		if prev, ok := terms[k]; ok {
			return formatError(idx, "%s duplicates definition %d", glossary.Display(d.ToTerm()), prev)
		}
		terms[k] = idx

		if d.Slug == "" {
			continue
		}
		if prev, ok := slugs[d.Slug]; ok {
			return formatError(idx, "slug %q already used by definition %d", d.Slug, prev)
		}
		slugs[d.Slug] = idx
	}
	return nil
}
