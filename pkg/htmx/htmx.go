package htmx

import "net/http"

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsHistoryRestore reports whether htmx is restoring a page from history
// after a cache miss. Those requests expect a full document.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get(HeaderHXHistoryRestoreRequest) == "true"
}

// Partial reports whether a fragment response is appropriate.
func Partial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// Target returns the id of the element htmx will swap into, without the
// leading '#'. Empty when the request has no target.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
