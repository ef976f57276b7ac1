// Package reference classifies raw "see also" strings into link kinds.
//
// A see-also row stores a single opaque string. Its first character selects
// the interpretation:
//
//	#access_modifier      glossary reference to another term
//	-9                    textbook chapter, rendered as "Jones, Chapter 09"
//	@docs.oracle.com Docs external reference with fragment and label
//	anything else         plain text, no link
//
// [Resolve] performs the whole classification in one step and returns a
// [Reference] value tagged with its [Kind]. Rendering code switches on the kind
// and never inspects the raw string again.
package reference
