package redisad

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"hotel_inventory/internal/adapters/observability"
	"hotel_inventory/internal/domain"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a single-instance Redis lock (SET NX PX + token-checked release).
type Locker struct {
	c        *redis.Client
	retry    time.Duration
	maxRetry int
}

func New(addr, pass string, db int) *Locker {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(c *redis.Client) *Locker {
	return &Locker{c: c, retry: 25 * time.Millisecond, maxRetry: 40}
}

func (l *Locker) Ping(ctx context.Context) error { return l.c.Ping(ctx).Err() }

func (l *Locker) Close() error { return l.c.Close() }

// Acquire blocks until key is held, ctx ends, or the retry budget is spent.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	for i := 0; ; i++ {
		ok, err := l.c.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, domain.Unavailable("lock backend unavailable", err)
		}
		if ok {
			observability.ObserveLock("redis", "acquired")
			return l.releaser(key, token), nil
		}
		observability.ObserveLock("redis", "contended")
		if i >= l.maxRetry {
			observability.ObserveLock("redis", "timeout")
			return nil, domain.Unavailable("another write for this hotel is in progress, retry", errors.New(key))
		}
		t := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, domain.Unavailable("lock wait cancelled", ctx.Err())
		case <-t.C:
		}
	}
}

func (l *Locker) releaser(key, token string) func() {
	return func() {
		// detached from the request so a cancelled ctx still frees the key
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.c, []string{key}, token).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("lock release failed; key will expire")
			return
		}
		observability.ObserveLock("redis", "released")
	}
}
