package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

// Repository is the read side of the term store used by Service.
type Repository interface {
	// TermsByLetter returns terms starting with letter, ordered by term then
	// sequence number. The match is case-insensitive.
	TermsByLetter(ctx context.Context, letter string) ([]Term, error)
	// SeeAlso returns the see-also rows of a term ordered by URL.
	SeeAlso(ctx context.Context, termID int64) ([]SeeAlso, error)
	// Search returns terms matching a SQL LIKE pattern ordered by term then
	// sequence number.
	Search(ctx context.Context, pattern string) ([]Term, error)
	// TermBySlug returns the term with the given stored slug, or
	// ErrTermNotFound.
	TermBySlug(ctx context.Context, slug string) (Term, error)
}

// Service assembles glossary fragments from a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
	consts reference.Constants
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used to report unresolvable references.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service reading from repo.
func NewService(repo Repository, c reference.Constants, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		consts: c,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Constants returns the reference constants the service resolves against.
func (s *Service) Constants() reference.Constants {
	return s.consts
}

// Fragments builds the whole glossary: one section per letter that has at
// least one term, in alphabetical order.
func (s *Service) Fragments(ctx context.Context) ([]Fragment, error) {
	var (
		out   []Fragment
		state = NoSectionOpen
	)

	for _, letter := range Letters {
		entries, err := s.entriesByLetter(ctx, letter)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}

		var f []Fragment
		state, f = state.Open(letter)
		out = append(out, f...)
		out = appendEntries(out, letter, entries)
	}

	_, f := state.Finish()
	return append(out, f...), nil
}

// Section builds the fragments of a single letter. A letter without terms
// yields no fragments.
func (s *Service) Section(ctx context.Context, letter string) ([]Fragment, error) {
	letter, err := ParseLetter(letter)
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesByLetter(ctx, letter)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	state, out := NoSectionOpen.Open(letter)
	out = appendEntries(out, letter, entries)
	_, f := state.Finish()
	return append(out, f...), nil
}

// Search returns the entries whose term matches pattern. A pattern without
// LIKE wildcards matches anywhere in the term. An empty pattern yields no
// entries.
func (s *Service) Search(ctx context.Context, pattern string) ([]Entry, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, nil
	}
	if !strings.ContainsAny(pattern, "%_") {
		pattern = "%" + pattern + "%"
	}

	terms, err := s.repo.Search(ctx, pattern)
	if err != nil {
		return nil, errors.Join(ErrFetchTerms, err)
	}
	return s.entries(ctx, terms)
}

// EntryBySlug returns the entry of the term stored with slug.
func (s *Service) EntryBySlug(ctx context.Context, slug string) (Entry, error) {
	t, err := s.repo.TermBySlug(ctx, slug)
	if err != nil {
		return Entry{}, errors.Join(ErrFetchTerms, fmt.Errorf("slug %q: %w", slug, err))
	}
	entries, err := s.entries(ctx, []Term{t})
	if err != nil {
		return Entry{}, err
	}
	return entries[0], nil
}

func (s *Service) entriesByLetter(ctx context.Context, letter string) ([]Entry, error) {
	terms, err := s.repo.TermsByLetter(ctx, letter)
	if err != nil {
		return nil, errors.Join(ErrFetchTerms, fmt.Errorf("letter %s: %w", letter, err))
	}
	return s.entries(ctx, terms)
}

func (s *Service) entries(ctx context.Context, terms []Term) ([]Entry, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	out := make([]Entry, 0, len(terms))
	for _, t := range terms {
		rows, err := s.repo.SeeAlso(ctx, t.ID)
		if err != nil {
			return nil, errors.Join(ErrFetchSeeAlso, fmt.Errorf("term %d: %w", t.ID, err))
		}

		e, err := NewEntry(t, rows, s.consts)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", t.ID, err)
		}

		for _, r := range e.InvalidRefs() {
			s.logger.WarnContext(ctx, "unresolvable see also reference",
				slog.Int64("term_id", t.ID),
				slog.String("term", t.Term),
				slog.String("raw", r.Raw),
				slog.String("error", r.Err.Error()),
			)
		}

		out = append(out, e)
	}
	return out, nil
}

func appendEntries(out []Fragment, letter string, entries []Entry) []Fragment {
	for i := range entries {
		out = append(out, Fragment{Kind: FragmentEntry, Letter: letter, Entry: &entries[i]})
	}
	return out
}
