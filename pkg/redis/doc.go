// Package redis opens go-redis clients for the glossary page cache.
//
// [Open] parses a redis:// or rediss:// URL, applies pool and timeout
// options and pings the server, retrying with linear backoff while the
// server comes up:
//
//	client, err := redis.Open(ctx, cfg.Redis.URL,
//		redis.WithPoolSize(20),
//		redis.WithRetry(5, time.Second),
//		redis.WithLogger(log),
//	)
//
// [Healthcheck] returns a readiness check and [Shutdown] a shutdown hook:
//
//	internal.WithReadinessCheck("redis", redis.Healthcheck(client))
//	app.Run(addr, internal.ShutdownHook(redis.Shutdown(client)))
//
// Errors wrap the sentinels [ErrEmptyConnectionURL], [ErrFailedToParseURL],
// [ErrConnectionFailed] and [ErrHealthcheckFailed] with [errors.Join].
package redis
