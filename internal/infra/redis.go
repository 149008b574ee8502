package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client backing the price-board cache and the PDF
// render queue. A dead redis at boot is fatal, so the connection is pinged
// before it is handed out.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
