package storage

import "time"

// URLOption configures URL generation.
type URLOption func(*urlOptions)

type urlOptions struct {
	expiry time.Duration
	signed bool
}

// DefaultURLExpiry is the default expiry for signed URLs.
const DefaultURLExpiry = 15 * time.Minute

// WithSigned returns a presigned GET URL instead of the public one.
// A zero expiry means DefaultURLExpiry.
func WithSigned(expiry time.Duration) URLOption {
	return func(o *urlOptions) {
		o.signed = true
		if expiry > 0 {
			o.expiry = expiry
		}
	}
}
