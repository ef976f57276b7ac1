package slug

import (
	"strconv"
	"strings"
)

// Placeholder replaces a first rune that is not an ASCII letter.
const Placeholder = 'x'

// Replacement replaces every disallowed rune after the first one.
const Replacement = '_'

// Sanitize converts s into an identifier safe for HTML ids.
// The output rune count always equals the input rune count.
func Sanitize(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}

	var b strings.Builder
	b.Grow(len(s))

	first := true
	for _, r := range s {
		switch {
		case first && isLetter(r):
			b.WriteRune(r)
		case first:
			b.WriteRune(Placeholder)
		case isAllowed(r):
			b.WriteRune(r)
		default:
			b.WriteRune(Replacement)
		}
		first = false
	}

	return b.String(), nil
}

// MustSanitize is like Sanitize but panics on empty input.
// Use it for compile-time constant labels.
func MustSanitize(s string) string {
	out, err := Sanitize(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Valid reports whether s is non-empty and already sanitized.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isLetter(r) {
				return false
			}
			continue
		}
		if !isAllowed(r) {
			return false
		}
	}
	return true
}

// Derive builds the fallback slug base for a term without a stored slug.
// A zero sequence number adds no suffix.
func Derive(term string, seq int) string {
	if seq == 0 {
		return term
	}
	return term + "-" + strconv.Itoa(seq)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAllowed(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_'
}
