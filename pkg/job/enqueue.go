package job

import "time"

type enqueueConfig struct {
	queue       string
	uniqueKey   string
	maxAttempts int
	delay       time.Duration
	uniqueFor   time.Duration
}

// EnqueueOption configures job enqueueing.
type EnqueueOption func(*enqueueConfig)

// InQueue puts the job on a named queue instead of the default one.
func InQueue(name string) EnqueueOption {
	return func(c *enqueueConfig) {
		if name != "" {
			c.queue = name
		}
	}
}

// ScheduledIn delays the job by d.
func ScheduledIn(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) {
		if d > 0 {
			c.delay = d
		}
	}
}

// MaxAttempts caps retries. River defaults to 25.
func MaxAttempts(n int) EnqueueOption {
	return func(c *enqueueConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// UniqueFor skips the insert when a job with the same task name and key was
// inserted within d. Two imports of the same file a second apart become one:
//
//	e.Enqueue(ctx, "glossary_import", p, job.UniqueFor(time.Minute), job.UniqueKey(p.Path))
func UniqueFor(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) {
		c.uniqueFor = d
	}
}

// UniqueKey narrows UniqueFor to jobs sharing key.
func UniqueKey(key string) EnqueueOption {
	return func(c *enqueueConfig) {
		c.uniqueKey = key
	}
}
