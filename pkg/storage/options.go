package storage

// Option configures Put operations.
type Option func(*putOptions)

type putOptions struct {
	key          string
	contentType  string
	cacheControl string
	acl          ACL
}

// WithKey sets the object key. Segments are sanitized; Put fails with
// ErrInvalidKey when nothing usable is left.
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithContentType sets the Content-Type. Without it Put sniffs the body.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithCacheControl sets the Cache-Control header stored with the object.
func WithCacheControl(cc string) Option {
	return func(o *putOptions) {
		o.cacheControl = cc
	}
}

// WithACL overrides the default ACL for this upload.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}
