package admission

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGate_AllowsUpToLimit(t *testing.T) {
	gate := NewMemoryGate(5, 15*time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		ok, err := gate.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d must be admitted", i)
	}

	ok, err := gate.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "sixth attempt must be denied")
}

func TestMemoryGate_KeysAreIndependent(t *testing.T) {
	gate := NewMemoryGate(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := gate.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
	}
	ok, err := gate.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = gate.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok, "a different key has its own counter")
}

func TestMemoryGate_WindowExpiryResetsCount(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	gate := NewMemoryGate(5, 15*time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := gate.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
	}

	// One second before expiry the key is still blocked.
	now = now.Add(15*time.Minute - time.Second)
	ok, err := gate.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// At expiry the next attempt starts a fresh window with count 1.
	now = now.Add(time.Second)
	ok, err = gate.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	remaining, err := gate.TimeUntilReset(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, remaining)
}

func TestMemoryGate_TimeUntilReset(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	gate := NewMemoryGate(5, 15*time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	remaining, err := gate.TimeUntilReset(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.Zero(t, remaining, "no window is active before the first attempt")

	_, err = gate.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)
	remaining, err = gate.TimeUntilReset(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, remaining)

	now = now.Add(11 * time.Minute)
	remaining, err = gate.TimeUntilReset(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.Zero(t, remaining, "an expired window reports zero")
}

func TestMemoryGate_ConcurrentAttemptsAdmitExactlyLimit(t *testing.T) {
	gate := NewMemoryGate(5, 15*time.Minute)
	ctx := context.Background()

	const attempts = 40
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := gate.Allow(ctx, "1.2.3.4")
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, ok := range results {
		if ok {
			admitted++
		}
	}
	assert.Equal(t, 5, admitted)
}

func TestNewMemoryGate_DefaultsApplyOnZeroValues(t *testing.T) {
	gate := NewMemoryGate(0, 0)
	ctx := context.Background()

	admitted := 0
	for i := 0; i < DefaultLimit+3; i++ {
		ok, err := gate.Allow(ctx, "key")
		require.NoError(t, err)
		if ok {
			admitted++
		}
	}
	assert.Equal(t, DefaultLimit, admitted)
}
