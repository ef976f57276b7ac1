// Package views renders the glossary as HTML.
//
// Components implement [templ.Component] and are written with
// [templ.ComponentFunc], so they compose with any templ layout and can be
// passed to the HTTP context Render helpers directly.
//
// The page layout links /static/glossary.css and /static/glossary.js, both
// embedded in this package and exposed through [StaticFS]. A static export
// (see [PageData.Standalone]) inlines both so the page works without a server.
package views
