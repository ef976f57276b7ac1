package cache

import "errors"

var (
	// ErrNotFound reports a miss: the key was never set, expired or was
	// cleared after an import.
	ErrNotFound = errors.New("cache: miss")
	ErrClosed   = errors.New("cache: use of closed memory cache")

	// Codec failures of GetOrSet and the redis backend.
	ErrMarshal   = errors.New("cache: encode cached value")
	ErrUnmarshal = errors.New("cache: decode cached value")
)
