package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 5 * time.Second
	opTimeout    = 500 * time.Millisecond
	minIdleConns = 2
)

// Config captures the settings for the Redis instance backing the auth rate
// limiter.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds individual limiter operations. Defaults to opTimeout.
	Timeout time.Duration
}

// Connect opens the rate limiter store and validates connectivity with a
// ping. The limiter runs on the request path of every /api/auth call, so the
// client is tuned for short round trips: tight per-operation deadlines and a
// warm idle pool. Failing fast at startup beats serving with an unenforced
// limit.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = opTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		ClientName:   "account-system",
		DialTimeout:  dialTimeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		MinIdleConns: minIdleConns,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("rate limiter store ping: %w", err)
	}

	return client, nil
}
