package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorMessage renders the body of an error response.
func ErrorMessage(status int, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<div class="error" role="alert"><h2>`)
		hw.text(strconv.Itoa(status) + " " + http.StatusText(status))
		hw.raw("</h2>")
		if message != "" {
			hw.raw("<p>")
			hw.text(message)
			hw.raw("</p>")
		}
		hw.raw("</div>")
		return hw.err
	})
}

// ErrorPage renders a full error document.
func ErrorPage(title string, status int, message string) templ.Component {
	return Layout(title, ErrorMessage(status, message))
}
