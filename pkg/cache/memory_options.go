package cache

import "time"

// Defaults of NewMemory. The glossary caches at most the two page variants
// and one rendering per letter section, so the entry limit is generous.
const (
	DefaultMemoryTTL        = 5 * time.Minute
	DefaultCleanupInterval  = time.Minute
	DefaultMemoryMaxEntries = 64
)

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      DefaultMemoryTTL,
		cleanupInterval: DefaultCleanupInterval,
		maxEntries:      DefaultMemoryMaxEntries,
	}
}

// WithDefaultTTL is the lifetime of entries stored with a zero TTL. A
// non-positive d keeps DefaultMemoryTTL.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d > 0 {
			o.defaultTTL = d
		}
	}
}

// WithCleanupInterval sets the janitor period. Zero disables the janitor;
// expired entries are then dropped when they are read.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries bounds the cache; the least recently used entry goes first.
// Zero removes the bound.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}
