package glossary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/reference"
)

var consts = reference.Constants{ChapterBaseURL: "https://example.edu/jones/"}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	t.Run("anchors derived from term", func(t *testing.T) {
		t.Parallel()

		e, err := glossary.NewEntry(glossary.Term{ID: 1, Term: "access modifier"}, nil, consts)
		require.NoError(t, err)
		assert.Equal(t, "access modifier", e.Display)
		assert.Equal(t, "access_modifier-term", e.TermAnchor)
		assert.Equal(t, "access_modifier-def", e.DefAnchor)
		assert.False(t, e.HasSeeAlso())
	})

	t.Run("sequence number in display and anchors", func(t *testing.T) {
		t.Parallel()

		e, err := glossary.NewEntry(glossary.Term{ID: 2, Term: "class", SeqNum: 2}, nil, consts)
		require.NoError(t, err)
		assert.Equal(t, "class(2)", e.Display)
		assert.Equal(t, "class-2-term", e.TermAnchor)
		assert.Equal(t, "class-2-def", e.DefAnchor)
	})

	t.Run("stored slug wins", func(t *testing.T) {
		t.Parallel()

		e, err := glossary.NewEntry(glossary.Term{ID: 3, Term: "class", SeqNum: 3, Slug: "klass"}, nil, consts)
		require.NoError(t, err)
		assert.Equal(t, "class(3)", e.Display)
		assert.Equal(t, "klass-term", e.TermAnchor)
		assert.Equal(t, "klass-def", e.DefAnchor)
	})

	t.Run("anchors are sanitized", func(t *testing.T) {
		t.Parallel()

		e, err := glossary.NewEntry(glossary.Term{ID: 4, Term: "2D array"}, nil, consts)
		require.NoError(t, err)
		assert.Equal(t, "xD_array-term", e.TermAnchor)
		assert.Equal(t, "xD_array-def", e.DefAnchor)
	})

	t.Run("empty term", func(t *testing.T) {
		t.Parallel()

		_, err := glossary.NewEntry(glossary.Term{ID: 5}, nil, consts)
		require.ErrorIs(t, err, glossary.ErrInvalidTerm)
	})
}

func TestNewEntry_SeeAlso(t *testing.T) {
	t.Parallel()

	rows := []glossary.SeeAlso{
		{ID: 1, TermID: 9, URL: "#iterator"},
		{ID: 2, TermID: 9, URL: "-4"},
		{ID: 3, TermID: 9, URL: "-"},
		{ID: 4, TermID: 9, URL: "@api Java API"},
		{ID: 5, TermID: 9, URL: "see the index"},
	}

	e, err := glossary.NewEntry(glossary.Term{ID: 9, Term: "loop"}, rows, consts)
	require.NoError(t, err)
	require.True(t, e.HasSeeAlso())
	require.Len(t, e.Refs, len(rows))

	assert.Equal(t, reference.KindGlossary, e.Refs[0].Ref.Kind)
	assert.Equal(t, "#iterator-term", e.Refs[0].Ref.Href)

	assert.Equal(t, reference.KindChapter, e.Refs[1].Ref.Kind)
	assert.Equal(t, "Jones, Chapter 04", e.Refs[1].Ref.Label)

	assert.False(t, e.Refs[2].Valid())
	assert.ErrorIs(t, e.Refs[2].Err, reference.ErrInvalidInput)
	assert.Equal(t, "-", e.Refs[2].Raw)

	assert.Equal(t, reference.KindURL, e.Refs[3].Ref.Kind)
	assert.Equal(t, "Java API", e.Refs[3].Ref.Label)

	assert.Equal(t, reference.KindPlain, e.Refs[4].Ref.Kind)

	invalid := e.InvalidRefs()
	require.Len(t, invalid, 1)
	assert.Equal(t, "-", invalid[0].Raw)
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bit", glossary.Display(glossary.Term{Term: "bit"}))
	assert.Equal(t, "bit(1)", glossary.Display(glossary.Term{Term: "bit", SeqNum: 1}))
}
