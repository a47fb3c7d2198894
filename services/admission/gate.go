// Package admission implements the per-client rate gate guarding the
// public slot-query and booking endpoints.
package admission

import (
	"context"
	"time"
)

const (
	// DefaultLimit is the maximum number of attempts per key per window.
	DefaultLimit = 5
	// DefaultWindow is the counting window.
	DefaultWindow = 15 * time.Minute
)

// Gate decides whether a client identity may make another attempt.
// It is advisory defense-in-depth, not a substitute for the booking
// conflict check.
type Gate interface {
	// Allow records an attempt for key and reports whether it is
	// admitted. The first attempt for a key, or the first after window
	// expiry, resets the count to 1.
	Allow(ctx context.Context, key string) (bool, error)
	// TimeUntilReset reports how long until the key's window resets;
	// zero when no window is active.
	TimeUntilReset(ctx context.Context, key string) (time.Duration, error)
}
