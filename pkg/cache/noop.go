package cache

import (
	"context"
	"time"
)

// Noop never stores anything. It backs the "none" cache driver so callers
// do not need a nil check.
type Noop[V any] struct{}

// NewNoop returns a cache that always misses.
func NewNoop[V any]() Noop[V] { return Noop[V]{} }

func (Noop[V]) Get(context.Context, string) (V, error) {
	var zero V
	return zero, ErrNotFound
}

func (Noop[V]) Set(context.Context, string, V, time.Duration) error { return nil }

func (Noop[V]) Delete(context.Context, string) error { return nil }

func (Noop[V]) Clear(context.Context) error { return nil }

func (Noop[V]) Close() error { return nil }

var _ Cache[any] = Noop[any]{}
