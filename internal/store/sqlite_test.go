package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/store"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

func setupSQLite(t *testing.T) *store.SQLite {
	t.Helper()

	s, err := store.NewSQLite(context.Background(), ":memory:", logger.NewNope())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s store.Store) map[string]int64 {
	t.Helper()

	ctx := context.Background()
	ids := make(map[string]int64)
	fixtures := []struct {
		term    glossary.Term
		seeAlso []string
	}{
		{term: glossary.Term{Term: "class", SeqNum: 2, Description: "<p>Second.</p>"}, seeAlso: []string{"-3", "#object"}},
		{term: glossary.Term{Term: "class", SeqNum: 1, Description: "<p>First.</p>", Slug: "class_first"}},
		{term: glossary.Term{Term: "Cast", Description: "<p>Conversion.</p>"}, seeAlso: []string{"@jls Java spec"}},
		{term: glossary.Term{Term: "array", Description: "<p>Indexed.</p>"}},
		{term: glossary.Term{Term: "object", Description: "<p>Instance.</p>"}},
	}
	for _, f := range fixtures {
		term := f.term
		require.NoError(t, s.CreateTerm(ctx, &term, f.seeAlso))
		require.NotZero(t, term.ID)
		ids[glossary.Display(term)] = term.ID
	}
	return ids
}

func TestSQLite_TermsByLetter(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	seed(t, s)

	terms, err := s.TermsByLetter(context.Background(), "c")
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "Cast", terms[0].Term)
	assert.Equal(t, "class", terms[1].Term)
	assert.Equal(t, 1, terms[1].SeqNum)
	assert.Equal(t, "class_first", terms[1].Slug)
	assert.Equal(t, 2, terms[2].SeqNum)
	assert.Empty(t, terms[2].Slug)

	none, err := s.TermsByLetter(context.Background(), "Q")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_SeeAlso(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	ids := seed(t, s)

	rows, err := s.SeeAlso(context.Background(), ids["class(2)"])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "#object", rows[0].URL)
	assert.Equal(t, "-3", rows[1].URL)
	assert.Equal(t, ids["class(2)"], rows[0].TermID)

	rows, err = s.SeeAlso(context.Background(), ids["array"])
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLite_Search(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	seed(t, s)

	terms, err := s.Search(context.Background(), "%AS%")
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "Cast", terms[0].Term)
	assert.Equal(t, "class", terms[1].Term)
}

func TestSQLite_TermBySlug(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	seed(t, s)

	term, err := s.TermBySlug(context.Background(), "class_first")
	require.NoError(t, err)
	assert.Equal(t, 1, term.SeqNum)

	_, err = s.TermBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLite_CreateTerm(t *testing.T) {
	t.Parallel()

	t.Run("duplicate term and sequence", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		seed(t, s)

		dup := glossary.Term{Term: "class", SeqNum: 1, Description: "again"}
		require.ErrorIs(t, s.CreateTerm(context.Background(), &dup, nil), store.ErrDuplicateTerm)
		assert.Zero(t, dup.ID)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		seed(t, s)

		dup := glossary.Term{Term: "klass", Slug: "class_first", Description: "again"}
		require.ErrorIs(t, s.CreateTerm(context.Background(), &dup, nil), store.ErrDuplicateSlug)
	})

	t.Run("invalid term", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		require.ErrorIs(t, s.CreateTerm(context.Background(), &glossary.Term{Term: "x"}, nil), store.ErrInvalidTerm)
		require.ErrorIs(t, s.CreateTerm(context.Background(), nil, nil), store.ErrInvalidTerm)
	})

	t.Run("failed insert leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		seed(t, s)
		before, err := s.Count(context.Background())
		require.NoError(t, err)

		dup := glossary.Term{Term: "array", Description: "dup"}
		require.Error(t, s.CreateTerm(context.Background(), &dup, []string{"#x"}))

		after, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestSQLite_DeleteAll(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	ids := seed(t, s)

	require.NoError(t, s.DeleteAll(context.Background()))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := s.SeeAlso(context.Background(), ids["class(2)"])
	require.NoError(t, err)
	assert.Empty(t, rows, "see also rows must cascade")
}

func TestSQLite_ImportTerms(t *testing.T) {
	t.Parallel()

	drafts := []glossary.Draft{
		{Term: glossary.Term{Term: "beta", Description: "<p>B.</p>"}, SeeAlso: []string{"#alpha"}},
		{Term: glossary.Term{Term: "alpha", Description: "<p>A.</p>"}},
	}

	t.Run("replace", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		seed(t, s)
		require.NoError(t, s.ImportTerms(context.Background(), drafts, true))

		n, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		terms, err := s.TermsByLetter(context.Background(), "b")
		require.NoError(t, err)
		require.Len(t, terms, 1)
		rows, err := s.SeeAlso(context.Background(), terms[0].ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "#alpha", rows[0].URL)
	})

	t.Run("failure rolls back every insert", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		require.NoError(t, s.ImportTerms(context.Background(), drafts[1:], false))

		err := s.ImportTerms(context.Background(), drafts, false)
		require.ErrorIs(t, err, store.ErrDuplicateTerm)
		assert.Contains(t, err.Error(), "definition 1 (alpha)")

		n, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		beta, err := s.TermsByLetter(context.Background(), "b")
		require.NoError(t, err)
		assert.Empty(t, beta)
	})

	t.Run("failure keeps replaced terms", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		seed(t, s)
		dup := append([]glossary.Draft{}, drafts...)
		dup = append(dup, drafts[0])

		require.ErrorIs(t, s.ImportTerms(context.Background(), dup, true), store.ErrDuplicateTerm)

		n, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("invalid draft", func(t *testing.T) {
		t.Parallel()

		s := setupSQLite(t)
		err := s.ImportTerms(context.Background(), []glossary.Draft{{Term: glossary.Term{Term: "x"}}}, true)
		require.ErrorIs(t, err, store.ErrInvalidTerm)
	})
}

func TestSQLite_FileDatabase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "glossary.db")
	ctx := context.Background()

	s, err := store.NewSQLite(ctx, path, logger.NewNope())
	require.NoError(t, err)
	seed(t, s)
	require.NoError(t, s.Healthcheck(ctx))
	require.NoError(t, s.Close())

	// reopening runs migrations again, which must be a no-op
	s, err = store.NewSQLite(ctx, path, logger.NewNope())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := store.Open(context.Background(), store.Config{Driver: "oracle"}, logger.NewNope())
	require.ErrorIs(t, err, store.ErrUnsupportedDriver)
}

func TestSQLite_ServiceRoundTrip(t *testing.T) {
	t.Parallel()

	s := setupSQLite(t)
	seed(t, s)

	svc := glossary.NewService(s, consts)
	fs, err := svc.Fragments(context.Background())
	require.NoError(t, err)

	var letters []string
	for _, f := range fs {
		if f.Kind == glossary.FragmentOpenSection {
			letters = append(letters, f.Letter)
		}
	}
	assert.Equal(t, []string{"A", "C", "O"}, letters)
}
