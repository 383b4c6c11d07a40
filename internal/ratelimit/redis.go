package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// limiterScript implements the same reset-window semantics as MemoryLimiter
// atomically on the redis side: first hit seeds the counter with a TTL,
// hitting the cap denies without incrementing.
var limiterScript = redis.NewScript(`
	local count = tonumber(redis.call('GET', KEYS[1]) or '0')
	if count == 0 then
		redis.call('SET', KEYS[1], 1, 'PX', tonumber(ARGV[2]))
		return 1
	end
	if count >= tonumber(ARGV[1]) then
		return 0
	end
	redis.call('INCR', KEYS[1])
	return 1
`)

// RedisLimiter shares counters across instances through redis.
type RedisLimiter struct {
	rdb *redis.Client
}

func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb}
}

func (l *RedisLimiter) Allow(ctx context.Context, principalID, action string, max int, window time.Duration) bool {
	if l.rdb == nil {
		return true
	}

	key := fmt.Sprintf("rate_limit:user:%s:%s", principalID, action)
	res, err := limiterScript.Run(ctx, l.rdb, []string{key}, max, window.Milliseconds()).Int()
	if err != nil {
		// advisory throttle: redis down tidak boleh memblokir aksi
		log.Printf("[ratelimit] redis error for key=%s: %v", key, err)
		return true
	}
	return res == 1
}
