// Package cache provides a generic Cache interface with in-memory, Redis
// and no-op implementations. The glossary server keeps rendered pages and
// letter sections in it; the importer clears it after writing.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: item never expires
//
// # Backends
//
// [NewMemory] keeps entries in process with TTL expiration, an optional
// LRU bound and a janitor goroutine that stops on Close:
//
//	pages := cache.NewMemory[string](cache.WithMaxEntries(64))
//	defer pages.Close()
//
// [NewRedis] shares entries between server instances. Keys live under a
// prefix ("glossary" unless WithPrefix says otherwise) and Clear only scans
// that prefix. [StringMarshaler] stores HTML without a JSON envelope:
//
//	pages := cache.NewRedis[string](client, cache.StringMarshaler{}, cache.WithPrefix("glossary:pages"))
//
// [NewNoop] always misses and backs the "none" driver.
//
// # GetOrSet
//
// [GetOrSet] reads through the cache and collapses concurrent misses for
// one key into a single computation with singleflight:
//
//	html, err := cache.GetOrSet(ctx, pages, "page", func(ctx context.Context) (string, time.Duration, error) {
//	    s, err := render(ctx)
//	    return s, 0, err
//	})
package cache
