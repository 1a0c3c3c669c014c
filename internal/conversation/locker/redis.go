package locker

import (
	"context"
	"fmt"
	"time"

	"fulano-assistant/pkg/log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	LogPrefixRedisUnlock = "internal.conversation.locker.Redis.unlock"

	keyPrefix         = "fulano:conversation-lock:"
	defaultTTL        = 2 * time.Minute
	defaultRetryDelay = 25 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Redis is a lock shared by every replica using the same Redis. The TTL bounds
// how long a crashed holder can block a conversation.
type Redis struct {
	client     redis.Cmdable
	ttl        time.Duration
	retryDelay time.Duration
	newToken   func() string
	l          log.Logger
}

func NewRedis(client redis.Cmdable, ttl time.Duration, l log.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{
		client:     client,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
		newToken:   uuid.NewString,
		l:          l,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := r.newToken()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
			}
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-time.After(r.retryDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		}
	}

	return func() { r.unlock(redisKey, token) }, nil
}

func (r *Redis) unlock(redisKey, token string) {
	// the request context may already be done; release on a short context of its own
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err(); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixRedisUnlock, redisKey, err)
	}
}

var _ Locker = (*Redis)(nil)
