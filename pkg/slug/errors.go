package slug

import "errors"

// ErrEmptyInput is returned when there is nothing to sanitize.
var ErrEmptyInput = errors.New("slug: empty input")
