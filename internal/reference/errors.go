package reference

import "errors"

// ErrInvalidInput is returned for references that cannot be classified or are
// missing the part their marker requires.
var ErrInvalidInput = errors.New("reference: invalid input")
