package admission

import (
	"context"
	"sync"
	"time"
)

type visitor struct {
	count   int
	resetAt time.Time
}

// MemoryGate is a process-local Gate; with multiple service instances
// the effective limit is per-instance.
type MemoryGate struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewMemoryGate(limit int, window time.Duration) *MemoryGate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryGate{
		limit:    limit,
		window:   window,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// WithClock overrides the gate's clock. Test hook.
func (g *MemoryGate) WithClock(now func() time.Time) *MemoryGate {
	g.now = now
	return g
}

func (g *MemoryGate) Allow(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	v := g.visitors[key]
	if v == nil || !now.Before(v.resetAt) {
		g.visitors[key] = &visitor{count: 1, resetAt: now.Add(g.window)}
		return true, nil
	}
	if v.count >= g.limit {
		return false, nil
	}
	v.count++
	return true, nil
}

func (g *MemoryGate) TimeUntilReset(_ context.Context, key string) (time.Duration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.visitors[key]
	if v == nil {
		return 0, nil
	}
	remaining := v.resetAt.Sub(g.now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}
