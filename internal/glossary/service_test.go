package glossary_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

// memRepo is an in-memory Repository. Search supports only a leading and
// trailing % wildcard, which is all the service produces for plain patterns.
type memRepo struct {
	seeAlsoErr error
	termsErr   error
	seeAlso    map[int64][]glossary.SeeAlso
	terms      []glossary.Term
	patterns   []string
}

func (r *memRepo) TermsByLetter(_ context.Context, letter string) ([]glossary.Term, error) {
	if r.termsErr != nil {
		return nil, r.termsErr
	}
	var out []glossary.Term
	for _, t := range r.terms {
		if strings.EqualFold(t.Term[:1], letter) {
			out = append(out, t)
		}
	}
	sortTerms(out)
	return out, nil
}

func (r *memRepo) SeeAlso(_ context.Context, termID int64) ([]glossary.SeeAlso, error) {
	if r.seeAlsoErr != nil {
		return nil, r.seeAlsoErr
	}
	out := append([]glossary.SeeAlso(nil), r.seeAlso[termID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out, nil
}

func (r *memRepo) Search(_ context.Context, pattern string) ([]glossary.Term, error) {
	r.patterns = append(r.patterns, pattern)
	needle := strings.ToLower(strings.Trim(pattern, "%"))
	var out []glossary.Term
	for _, t := range r.terms {
		if strings.Contains(strings.ToLower(t.Term), needle) {
			out = append(out, t)
		}
	}
	sortTerms(out)
	return out, nil
}

func (r *memRepo) TermBySlug(_ context.Context, slug string) (glossary.Term, error) {
	for _, t := range r.terms {
		if t.Slug != "" && t.Slug == slug {
			return t, nil
		}
	}
	return glossary.Term{}, glossary.ErrTermNotFound
}

func sortTerms(ts []glossary.Term) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Term != ts[j].Term {
			return ts[i].Term < ts[j].Term
		}
		return ts[i].SeqNum < ts[j].SeqNum
	})
}

func newRepo() *memRepo {
	return &memRepo{
		terms: []glossary.Term{
			{ID: 1, Term: "array", Description: "<p>An indexed collection.</p>"},
			{ID: 2, Term: "class", SeqNum: 2, Description: "<p>Second meaning.</p>"},
			{ID: 3, Term: "class", SeqNum: 1, Description: "<p>First meaning.</p>"},
			{ID: 4, Term: "Abstract", Description: "<p>Cannot be instantiated.</p>"},
			{ID: 5, Term: "zero", Description: "<p>Nothing.</p>"},
		},
		seeAlso: map[int64][]glossary.SeeAlso{
			1: {{ID: 1, TermID: 1, URL: "-3"}, {ID: 2, TermID: 1, URL: "#list"}},
			5: {{ID: 3, TermID: 5, URL: "-"}},
		},
	}
}

type shape struct {
	Kind    glossary.FragmentKind
	Letter  string
	Display string
}

func shapes(fs []glossary.Fragment) []shape {
	out := make([]shape, 0, len(fs))
	for _, f := range fs {
		s := shape{Kind: f.Kind, Letter: f.Letter}
		if f.Entry != nil {
			s.Display = f.Entry.Display
		}
		out = append(out, s)
	}
	return out
}

func TestService_Fragments(t *testing.T) {
	t.Parallel()

	svc := glossary.NewService(newRepo(), consts)
	fs, err := svc.Fragments(context.Background())
	require.NoError(t, err)

	want := []shape{
		{Kind: glossary.FragmentOpenSection, Letter: "A"},
		{Kind: glossary.FragmentEntry, Letter: "A", Display: "Abstract"},
		{Kind: glossary.FragmentEntry, Letter: "A", Display: "array"},
		{Kind: glossary.FragmentCloseSection, Letter: "A"},
		{Kind: glossary.FragmentOpenSection, Letter: "C"},
		{Kind: glossary.FragmentEntry, Letter: "C", Display: "class(1)"},
		{Kind: glossary.FragmentEntry, Letter: "C", Display: "class(2)"},
		{Kind: glossary.FragmentCloseSection, Letter: "C"},
		{Kind: glossary.FragmentOpenSection, Letter: "Z"},
		{Kind: glossary.FragmentEntry, Letter: "Z", Display: "zero"},
		{Kind: glossary.FragmentCloseSection, Letter: "Z"},
	}
	if diff := cmp.Diff(want, shapes(fs)); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}

	// see-also rows are ordered by URL
	array := fs[2].Entry
	require.Len(t, array.Refs, 2)
	assert.Equal(t, "#list", array.Refs[0].Raw)
	assert.Equal(t, "-3", array.Refs[1].Raw)

	// an unresolvable reference does not fail the page
	zero := fs[9].Entry
	require.Len(t, zero.Refs, 1)
	assert.False(t, zero.Refs[0].Valid())
}

func TestService_Fragments_Balanced(t *testing.T) {
	t.Parallel()

	fs, err := glossary.NewService(newRepo(), consts).Fragments(context.Background())
	require.NoError(t, err)

	open := ""
	for _, f := range fs {
		switch f.Kind {
		case glossary.FragmentOpenSection:
			require.Empty(t, open, "section %s opened while %s is open", f.Letter, open)
			open = f.Letter
		case glossary.FragmentEntry:
			require.Equal(t, open, f.Letter)
			require.NotNil(t, f.Entry)
		case glossary.FragmentCloseSection:
			require.Equal(t, open, f.Letter)
			open = ""
		}
	}
	assert.Empty(t, open, "section left open")
}

func TestService_Fragments_Empty(t *testing.T) {
	t.Parallel()

	fs, err := glossary.NewService(&memRepo{}, consts).Fragments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestService_Fragments_RepositoryErrors(t *testing.T) {
	t.Parallel()

	t.Run("terms", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		repo.termsErr = errors.New("connection reset")
		_, err := glossary.NewService(repo, consts).Fragments(context.Background())
		require.ErrorIs(t, err, glossary.ErrFetchTerms)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("see also", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		repo.seeAlsoErr = errors.New("timeout")
		_, err := glossary.NewService(repo, consts).Fragments(context.Background())
		require.ErrorIs(t, err, glossary.ErrFetchSeeAlso)
	})
}

func TestService_Section(t *testing.T) {
	t.Parallel()

	svc := glossary.NewService(newRepo(), consts)

	t.Run("letter with terms", func(t *testing.T) {
		t.Parallel()

		fs, err := svc.Section(context.Background(), "c")
		require.NoError(t, err)
		want := []shape{
			{Kind: glossary.FragmentOpenSection, Letter: "C"},
			{Kind: glossary.FragmentEntry, Letter: "C", Display: "class(1)"},
			{Kind: glossary.FragmentEntry, Letter: "C", Display: "class(2)"},
			{Kind: glossary.FragmentCloseSection, Letter: "C"},
		}
		if diff := cmp.Diff(want, shapes(fs)); diff != "" {
			t.Errorf("fragments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("letter without terms", func(t *testing.T) {
		t.Parallel()

		fs, err := svc.Section(context.Background(), "Q")
		require.NoError(t, err)
		assert.Empty(t, fs)
	})

	t.Run("invalid letter", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Section(context.Background(), "42")
		require.ErrorIs(t, err, glossary.ErrInvalidLetter)
	})
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	t.Run("plain pattern is wrapped", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		entries, err := glossary.NewService(repo, consts).Search(context.Background(), " ass ")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "class(1)", entries[0].Display)
		assert.Equal(t, "class(2)", entries[1].Display)
		assert.Equal(t, []string{"%ass%"}, repo.patterns)
	})

	t.Run("explicit wildcard is kept", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		_, err := glossary.NewService(repo, consts).Search(context.Background(), "arr%")
		require.NoError(t, err)
		assert.Equal(t, []string{"arr%"}, repo.patterns)
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		entries, err := glossary.NewService(repo, consts).Search(context.Background(), "  ")
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, repo.patterns)
	})
}

func TestService_EntryBySlug(t *testing.T) {
	t.Parallel()

	repo := newRepo()
	repo.terms[0].Slug = "arr"
	svc := glossary.NewService(repo, consts)

	e, err := svc.EntryBySlug(context.Background(), "arr")
	require.NoError(t, err)
	assert.Equal(t, "arr-term", e.TermAnchor)
	assert.Equal(t, "arr-def", e.DefAnchor)
	assert.Len(t, e.Refs, 2)

	_, err = svc.EntryBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, glossary.ErrTermNotFound)
	assert.ErrorIs(t, err, glossary.ErrFetchTerms)
}
