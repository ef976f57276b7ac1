package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: redis.url is empty")
	ErrFailedToParseURL   = errors.New("redis: invalid redis.url")
	ErrConnectionFailed   = errors.New("redis: server unreachable after retries")
	ErrHealthcheckFailed  = errors.New("redis: ping failed")
)
