package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the shared Redis client. Redis carries three things
// here: the receipt render queue, its dead letter list, and the revoked
// token denylist written by logout.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opts.ClientName = "surti-khaman"

	rdb := redis.NewClient(opts)

	// Fail at startup rather than on the first enqueue
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
