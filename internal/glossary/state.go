package glossary

import "strings"

// Alphabet is the ordered set of section letters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letters lists the section letters in render order.
var Letters = strings.Split(Alphabet, "")

// ParseLetter normalises s to an upper-case section letter.
func ParseLetter(s string) (string, error) {
	l := strings.ToUpper(strings.TrimSpace(s))
	if len(l) != 1 || !strings.Contains(Alphabet, l) {
		return "", ErrInvalidLetter
	}
	return l, nil
}

// FragmentKind identifies a piece of rendered output.
type FragmentKind int

const (
	FragmentOpenSection FragmentKind = iota + 1
	FragmentEntry
	FragmentCloseSection
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentOpenSection:
		return "open"
	case FragmentEntry:
		return "entry"
	case FragmentCloseSection:
		return "close"
	default:
		return "unknown"
	}
}

// Fragment is one step of the rendered glossary. Entry is set only for
// FragmentEntry.
type Fragment struct {
	Entry  *Entry
	Letter string
	Kind   FragmentKind
}

// SectionState tracks which letter section, if any, is open.
// The zero value is NoSectionOpen.
type SectionState struct {
	letter string
	open   bool
}

// NoSectionOpen is the initial state.
var NoSectionOpen = SectionState{}

// SectionOpen returns the state with the section of letter open.
func SectionOpen(letter string) SectionState {
	return SectionState{letter: letter, open: true}
}

// IsOpen reports whether a section is open.
func (s SectionState) IsOpen() bool {
	return s.open
}

// Letter returns the open section letter.
func (s SectionState) Letter() (string, bool) {
	return s.letter, s.open
}

// Open starts the section of letter. An already open section is closed first.
func (s SectionState) Open(letter string) (SectionState, []Fragment) {
	_, out := s.Close()
	out = append(out, Fragment{Kind: FragmentOpenSection, Letter: letter})
	return SectionOpen(letter), out
}

// Close ends the open section. It is a no-op when nothing is open.
func (s SectionState) Close() (SectionState, []Fragment) {
	if !s.open {
		return NoSectionOpen, nil
	}
	return NoSectionOpen, []Fragment{{Kind: FragmentCloseSection, Letter: s.letter}}
}

// Finish closes any open section. The returned state is always NoSectionOpen.
func (s SectionState) Finish() (SectionState, []Fragment) {
	return s.Close()
}
