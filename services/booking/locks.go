package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"slotbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ProviderLocker serializes booking commits per provider. The lock is
// held only across the conflict check and the insert.
type ProviderLocker interface {
	Lock(ctx context.Context, providerID string) (release func(), err error)
}

// RedisProviderLocker implements ProviderLocker with a Redis SET NX
// lock so submissions serialize across service instances.
type RedisProviderLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *RedisProviderLocker) Lock(ctx context.Context, providerID string) (func(), error) {
	ttl := l.TTL
	if ttl <= 0 {
		ttl = utils.BookingLockTTL
	}
	key := utils.BookingLockPrefix + providerID
	token := uuid.New().String()

	deadline := time.Now().Add(2 * time.Second)
	for {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("provider lock acquire failed: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("provider lock busy: %s", providerID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(25 * time.Millisecond):
		}
	}

	release := func() {
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, _ = releaseScript.Run(rctx, l.Client, []string{key}, token).Result()
	}
	return release, nil
}

// MutexProviderLocker is the process-local fallback used when no
// shared store is configured; it serializes submissions within one
// instance only.
type MutexProviderLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMutexProviderLocker() *MutexProviderLocker {
	return &MutexProviderLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MutexProviderLocker) Lock(ctx context.Context, providerID string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[providerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[providerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
