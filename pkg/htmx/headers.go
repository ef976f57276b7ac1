package htmx

// Response headers.
const (
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXReplaceURL = "HX-Replace-Url"
)

// Request headers.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXTarget                = "HX-Target"
)
