// Package handlers serves the glossary over HTTP.
//
// Routes:
//
//	GET /                   full page; ?standalone=true returns the offline export
//	GET /letters/{letter}   one letter section, a fragment for htmx swaps
//	GET /search?q=          matching entries, a fragment for htmx swaps
//	GET /terms/{slug}       redirect to the entry anchor of a stored slug
//
// Rendered pages and sections are cached as HTML strings. The importer
// clears the same cache after every import, so readers never see stale
// sections.
package handlers
