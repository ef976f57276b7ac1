package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy      *bluemonday.Policy
	descriptionPolicy *bluemonday.Policy
	initOnce          sync.Once
)

// descriptionID matches anchor-safe ids that do not end in "-term" or "-def",
// the suffixes of generated entry anchors. RE2 has no lookahead, so the
// suffixes are excluded by spelling out every allowed ending; ids of up to
// four characters cannot carry either suffix.
var descriptionID = regexp.MustCompile(
	`^[A-Za-z](?:m|rm|erm|term|f|ef|def)$` +
		`|^[A-Za-z](?:[A-Za-z0-9._-]*(?:` +
		`[A-Za-eg-ln-z0-9._-]` +
		`|[A-Za-qs-z0-9._-]m|[A-Za-df-z0-9._-]rm|[A-Za-su-z0-9._-]erm|[A-Za-z0-9._]term` +
		`|[A-Za-df-z0-9._-]f|[A-Za-ce-z0-9._-]ef|[A-Za-z0-9._]def` +
		`))?$`,
)

var codeLanguage = regexp.MustCompile(`^language-[\w-]+$`)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// Definition bodies are authored content: formatting, lists, tables,
		// images and in-page links. No scripts, styles or handlers, and only
		// descriptionID may set an id.
		p := bluemonday.NewPolicy()
		p.RequireParseableURLs(true)
		p.AllowRelativeURLs(true)
		p.AllowURLSchemes("mailto", "http", "https")
		p.RequireNoFollowOnFullyQualifiedLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)

		p.AllowAttrs("id").Matching(descriptionID).Globally()
		p.AllowAttrs("title").Matching(bluemonday.Paragraph).Globally()

		p.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr", "div", "span", "figure", "figcaption",
			"b", "i", "u", "s", "em", "strong", "small", "mark",
			"abbr", "dfn", "cite", "kbd", "var", "samp", "sub", "sup",
			"pre", "code",
		)
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("cite").OnElements("blockquote", "q")
		p.AllowElements("blockquote", "q")
		p.AllowAttrs("class").Matching(codeLanguage).OnElements("code")
		p.AllowLists()
		p.AllowTables()
		p.AllowImages()
		descriptionPolicy = p
	})
}

// StripHTML removes every tag and returns the remaining text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeDescription prepares a stored term description for rendering.
// It keeps common formatting, definition lists, tables, description anchors
// and code language classes.
func SanitizeDescription(s string) string {
	initPolicies()
	return descriptionPolicy.Sanitize(s)
}
