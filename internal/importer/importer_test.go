package importer_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/importer"
	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/internal/store"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

var consts = reference.Constants{ChapterBaseURL: "https://example.edu/jones/"}

type stored struct {
	term    glossary.Term
	seeAlso []string
}

type fakeWriter struct {
	failOn  string
	terms   []stored
	deleted int
}

// ImportTerms applies drafts to a copy and keeps it only when every draft
// succeeds.
func (w *fakeWriter) ImportTerms(_ context.Context, drafts []glossary.Draft, replace bool) error {
	terms := append([]stored{}, w.terms...)
	if replace {
		terms = nil
	}
	for idx, d := range drafts {
		if d.Term.Term == w.failOn {
			return fmt.Errorf("definition %d (%s): constraint violation", idx, glossary.Display(d.Term))
		}
		d.Term.ID = int64(len(terms) + 1)
		terms = append(terms, stored{term: d.Term, seeAlso: d.SeeAlso})
	}
	if replace {
		w.deleted++
	}
	w.terms = terms
	return nil
}

type fakeCache struct{ cleared int }

func (c *fakeCache) Clear(context.Context) error {
	c.cleared++
	return nil
}

func TestImport_XML(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := &fakeCache{}
	res, err := importer.New(w, consts, importer.WithCache(c)).Import(context.Background(), "testdata/glossary.xml")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Imported)
	require.Len(t, w.terms, 3)
	assert.Equal(t, 1, c.cleared)

	iter := w.terms[0]
	assert.Equal(t, "iterator", iter.term.Term)
	assert.Zero(t, iter.term.SeqNum)
	assert.Contains(t, iter.term.Description, "<strong>collection</strong>")
	assert.Equal(t, []string{"#collection", "-7"}, iter.seeAlso)

	first := w.terms[1]
	assert.Equal(t, 1, first.term.SeqNum)
	assert.Equal(t, "class_first", first.term.Slug)
	assert.Equal(t, "<p>A blueprint for objects.</p>", first.term.Description)

	second := w.terms[2]
	assert.Equal(t, "<p>The keyword that declares a class.</p>\n", second.term.Description)

	// the lone "-" is stored but reported
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 2, res.Warnings[0].Index)
	assert.Contains(t, res.Warnings[0].Message, reference.ErrInvalidInput.Error())
}

func TestImport_YAML(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	res, err := importer.New(w, consts).Import(context.Background(), "testdata/glossary.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, "array", w.terms[0].term.Term)
	assert.Equal(t, []string{"#iterator", "-3"}, w.terms[0].seeAlso)

	// decomposed e + combining acute is stored composed
	assert.Equal(t, "Café", w.terms[1].term.Term)
	assert.Equal(t, "cafe", w.terms[1].term.Slug)
	assert.Equal(t, 1, w.terms[1].term.SeqNum)
}

func TestImport_Replace(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{terms: []stored{{term: glossary.Term{Term: "old"}}}}
	res, err := importer.New(w, consts, importer.WithReplace(true)).Import(context.Background(), "testdata/glossary.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, w.deleted)
	assert.Equal(t, 2, res.Imported)
	assert.Len(t, w.terms, 2)
}

func TestImport_ReplacePerCall(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{terms: []stored{{term: glossary.Term{Term: "old"}}}}
	imp := importer.New(w, consts, importer.WithReplace(true))

	_, err := imp.Import(context.Background(), "testdata/glossary.yaml", importer.Replace(false))
	require.NoError(t, err)
	assert.Zero(t, w.deleted)
	assert.Len(t, w.terms, 3)

	_, err = importer.New(w, consts).Import(context.Background(), "testdata/glossary.yaml", importer.Replace(true))
	require.NoError(t, err)
	assert.Equal(t, 1, w.deleted)
	assert.Len(t, w.terms, 2)
}

func TestImport_StoreFailure(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{failOn: "class"}
	c := &fakeCache{}
	res, err := importer.New(w, consts, importer.WithCache(c)).Import(context.Background(), "testdata/glossary.xml")
	require.ErrorIs(t, err, importer.ErrStore)
	assert.Contains(t, err.Error(), "class(1)")
	assert.Zero(t, res.Imported)
	assert.Empty(t, w.terms)
	assert.Equal(t, 1, c.cleared)
}

func TestImport_SQLiteIsAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := store.NewSQLite(ctx, ":memory:", logger.NewNope())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	require.NoError(t, os.WriteFile(first, []byte("definitions:\n  - term: alpha\n    description: <p>A.</p>\n"), 0o600))
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(second, []byte("definitions:\n  - term: beta\n    description: <p>B.</p>\n  - term: alpha\n    description: <p>A again.</p>\n"), 0o600))

	c := &fakeCache{}
	imp := importer.New(s, consts, importer.WithCache(c))

	res, err := imp.Import(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	res, err = imp.Import(ctx, second)
	require.ErrorIs(t, err, importer.ErrStore)
	require.ErrorIs(t, err, store.ErrDuplicateTerm)
	assert.Contains(t, err.Error(), "definition 1 (alpha)")
	assert.Zero(t, res.Imported)
	assert.Equal(t, 2, c.cleared)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	beta, err := s.TermsByLetter(ctx, "B")
	require.NoError(t, err)
	assert.Empty(t, beta)
}

func TestImport_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := importer.New(&fakeWriter{}, consts).Import(context.Background(), "glossary.json")
		require.ErrorIs(t, err, importer.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := importer.New(&fakeWriter{}, consts).Import(context.Background(), "testdata/missing.xml")
		require.ErrorIs(t, err, importer.ErrReadFile)
	})

	t.Run("missing description file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "g.xml", `<glossary><definition><term>a</term><description>@nope.md</description></definition></glossary>`)
		w := &fakeWriter{}
		_, err := importer.New(w, consts).Import(context.Background(), path)
		require.ErrorIs(t, err, importer.ErrReadFile)
		assert.Empty(t, w.terms)
	})

	t.Run("duplicate term", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "g.yaml", "definitions:\n  - {term: a, description: x}\n  - {term: a, description: y}\n")
		w := &fakeWriter{}
		_, err := importer.New(w, consts).Import(context.Background(), path)
		require.ErrorIs(t, err, importer.ErrFormat)
		assert.Contains(t, err.Error(), "definition 1")
		assert.Empty(t, w.terms, "nothing is written when validation fails")
	})

	t.Run("duplicate slug", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "g.yaml", "definitions:\n  - {term: a, slug: s, description: x}\n  - {term: b, slug: s, description: y}\n")
		_, err := importer.New(&fakeWriter{}, consts).Import(context.Background(), path)
		require.ErrorIs(t, err, importer.ErrFormat)
	})
}

func TestImport_SlugWarning(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "g.yaml", "definitions:\n  - {term: a, slug: \"has space\", description: x}\n")
	res, err := importer.New(&fakeWriter{}, consts).Import(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].String(), "sanitized")
}

func TestImport_EmptyTextWarning(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "g.yaml", "definitions:\n  - {term: a, description: \"<p> </p><script>x</script>\"}\n  - {term: b, description: \"<p>b</p>\"}\n")
	w := &fakeWriter{}
	res, err := importer.New(w, consts).Import(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 0, res.Warnings[0].Index)
	assert.Equal(t, "description has no text", res.Warnings[0].Message)
	assert.Len(t, w.terms, 2)
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "no term", body: `<definition><description>d</description></definition>`, want: "term element not found"},
		{name: "two terms", body: `<definition><term>a</term><term>b</term><description>d</description></definition>`, want: "multiple term elements"},
		{name: "empty term", body: `<definition><term>  </term><description>d</description></definition>`, want: "invalid term"},
		{name: "bad seq", body: `<definition><term>a</term><seq_num>one</seq_num><description>d</description></definition>`, want: "invalid sequence number"},
		{name: "two seq", body: `<definition><term>a</term><seq_num>1</seq_num><seq_num>2</seq_num><description>d</description></definition>`, want: "multiple seq_num"},
		{name: "empty slug", body: `<definition><term>a</term><slug></slug><description>d</description></definition>`, want: "invalid slug"},
		{name: "two slugs", body: `<definition><term>a</term><slug>a</slug><slug>b</slug><description>d</description></definition>`, want: "multiple slug"},
		{name: "no description", body: `<definition><term>a</term></definition>`, want: "description element not found"},
		{name: "two descriptions", body: `<definition><term>a</term><description>d</description><description>e</description></definition>`, want: "multiple description"},
		{name: "empty see also", body: `<definition><term>a</term><description>d</description><see_also> </see_also></definition>`, want: "invalid see_also"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := importer.Parse(strings.NewReader("<glossary>"+tt.body+"</glossary>"), importer.FormatXML)
			require.ErrorIs(t, err, importer.ErrFormat)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "definition 0")
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := importer.Parse(strings.NewReader("<glossary><definition>"), importer.FormatXML)
	require.ErrorIs(t, err, importer.ErrFormat)

	_, err = importer.Parse(strings.NewReader("definitions: [ {term: a, seq_num: x} ]"), importer.FormatYAML)
	require.ErrorIs(t, err, importer.ErrFormat)

	_, err = importer.Parse(strings.NewReader("definitions:\n  - {term: a, description: d, colour: red}\n"), importer.FormatYAML)
	require.ErrorIs(t, err, importer.ErrFormat, "unknown fields are rejected")
}

func TestParse_EmptyYAML(t *testing.T) {
	t.Parallel()

	defs, err := importer.Parse(strings.NewReader(""), importer.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]importer.Format{
		"a.xml":  importer.FormatXML,
		"a.XML":  importer.FormatXML,
		"a.yaml": importer.FormatYAML,
		"a.yml":  importer.FormatYAML,
	} {
		got, err := importer.DetectFormat(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := importer.DetectFormat("a.txt")
	require.ErrorIs(t, err, importer.ErrUnsupportedFormat)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
