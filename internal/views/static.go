package views

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

var (
	//go:embed static/glossary.css
	stylesheet string
	//go:embed static/glossary.js
	script string
)

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
