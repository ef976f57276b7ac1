// Package slug turns arbitrary labels into identifiers that are safe to use as
// HTML element ids and URL fragment targets.
//
// Unlike a URL slugifier, [Sanitize] never drops or collapses characters: the
// output has exactly as many runes as the input, so two labels that differ only
// in punctuation keep distinct positions. The rules are:
//
//   - the first rune is kept when it is an ASCII letter, otherwise it becomes
//     [Placeholder];
//   - every other rune is kept when it is an ASCII letter, an ASCII digit or
//     one of '.', '-' and '_';
//   - anything else, including every non-ASCII rune, becomes '_'.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/glossary/pkg/slug"
//
//	id, err := slug.Sanitize("access modifier-term")
//	// id: "access_modifier-term"
//
//	id, err = slug.Sanitize("2D graphics")
//	// id: "xD_graphics"
//
// Already sanitized strings are fixed points:
//
//	a, _ := slug.Sanitize(s)
//	b, _ := slug.Sanitize(a)
//	// a == b
//
// # Derived slugs
//
// Glossary rows carry an optional stored slug. When it is missing the base is
// derived from the term text and its sequence number:
//
//	slug.Derive("iterator", 0) // "iterator"
//	slug.Derive("iterator", 2) // "iterator-2"
//
// # Errors
//
// [Sanitize] returns [ErrEmptyInput] for the empty string; there is no first
// character to check and no sensible id to produce.
package slug
