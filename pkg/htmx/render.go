package htmx

import (
	"net/http"
)

// Config holds HTMX render configuration.
type Config struct {
	ReplaceURL string
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets HTMX headers on the response. It must run before
// WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	if c.ReplaceURL != "" {
		w.Header().Set(HeaderHXReplaceURL, c.ReplaceURL)
	}
}

// WithReplaceURL sets the HX-Replace-Url header, so the browser location
// follows a swapped-in result without adding a history entry.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}
