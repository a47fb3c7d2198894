package admission

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"slotbook/utils"

	"github.com/go-redis/redis/v8"
)

// RedisGate is a Gate backed by Redis, for deployments where the limit
// must hold across service instances.
type RedisGate struct {
	client *redis.Client
	limit  int
	window time.Duration
}

var incrWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisGate(client *redis.Client, limit int, window time.Duration) *RedisGate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisGate{client: client, limit: limit, window: window}
}

func (g *RedisGate) Allow(ctx context.Context, key string) (bool, error) {
	res, err := incrWindowScript.Run(ctx, g.client,
		[]string{utils.GateKeyPrefix + key},
		g.window.Milliseconds(),
	).Result()
	if err != nil {
		return false, fmt.Errorf("gate counter increment failed: %w", err)
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		count, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unexpected redis script result type %T", res)
	}
	return count <= int64(g.limit), nil
}

func (g *RedisGate) TimeUntilReset(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := g.client.PTTL(ctx, utils.GateKeyPrefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("gate ttl lookup failed: %w", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
