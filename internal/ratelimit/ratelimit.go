package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect parses a redis:// URL and verifies the connection.
func Connect(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Limiter allows one action per subject per window using SET NX EX.
// Without a Redis client every call is allowed.
type Limiter struct {
	rdb    *redis.Client
	window time.Duration
}

func New(rdb *redis.Client, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, window: window}
}

// Enabled reports whether a Redis client backs the limiter.
func (l *Limiter) Enabled() bool {
	return l != nil && l.rdb != nil && l.window > 0
}

// Key builds the Redis key for scope/subject. Subjects are hashed so raw
// credentials never reach Redis.
func Key(scope, subject string) string {
	h := sha256.Sum256([]byte(subject))
	return fmt.Sprintf("rate:%s:%s", scope, hex.EncodeToString(h[:8]))
}

// Allow reports whether subject may act now. Redis errors fail open.
func (l *Limiter) Allow(ctx context.Context, scope, subject string) bool {
	if !l.Enabled() {
		return true
	}
	ok, err := l.rdb.SetNX(ctx, Key(scope, subject), "1", l.window).Result()
	if err != nil {
		log.Printf("[RATELIMIT] redis error for scope=%s: %v", scope, err)
		return true
	}
	return ok
}
