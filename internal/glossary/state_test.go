package glossary_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

func TestSectionState(t *testing.T) {
	t.Parallel()

	t.Run("initial state", func(t *testing.T) {
		t.Parallel()

		assert.False(t, glossary.NoSectionOpen.IsOpen())
		_, ok := glossary.NoSectionOpen.Letter()
		assert.False(t, ok)
	})

	t.Run("open from closed", func(t *testing.T) {
		t.Parallel()

		s, out := glossary.NoSectionOpen.Open("A")
		letter, ok := s.Letter()
		require.True(t, ok)
		assert.Equal(t, "A", letter)

		want := []glossary.Fragment{{Kind: glossary.FragmentOpenSection, Letter: "A"}}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("fragments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("open while open closes previous", func(t *testing.T) {
		t.Parallel()

		s, out := glossary.SectionOpen("A").Open("B")
		assert.Equal(t, glossary.SectionOpen("B"), s)

		want := []glossary.Fragment{
			{Kind: glossary.FragmentCloseSection, Letter: "A"},
			{Kind: glossary.FragmentOpenSection, Letter: "B"},
		}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("fragments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("close when nothing open", func(t *testing.T) {
		t.Parallel()

		s, out := glossary.NoSectionOpen.Close()
		assert.Equal(t, glossary.NoSectionOpen, s)
		assert.Empty(t, out)
	})

	t.Run("finish closes open section", func(t *testing.T) {
		t.Parallel()

		s, out := glossary.SectionOpen("Z").Finish()
		assert.False(t, s.IsOpen())
		want := []glossary.Fragment{{Kind: glossary.FragmentCloseSection, Letter: "Z"}}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("fragments mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "A", want: "A"},
		{in: "q", want: "Q"},
		{in: " z ", want: "Z"},
		{in: "", wantErr: true},
		{in: "AB", wantErr: true},
		{in: "1", wantErr: true},
		{in: "É", wantErr: true},
	}

	for _, tt := range tests {
		got, err := glossary.ParseLetter(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, glossary.ErrInvalidLetter, "ParseLetter(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLetters(t *testing.T) {
	t.Parallel()

	require.Len(t, glossary.Letters, 26)
	assert.Equal(t, "A", glossary.Letters[0])
	assert.Equal(t, "Z", glossary.Letters[25])
}
