package availabilityRepo

import (
	"context"

	"slotbook/models"
)

// AvailabilityRuleRepository defines data access for recurring weekly
// availability rules.
type AvailabilityRuleRepository interface {
	// ReplaceForProvider atomically swaps a provider's rule set.
	ReplaceForProvider(ctx context.Context, providerID string, rules []models.AvailabilityRule) error
	ListForProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	// ListActiveForDay returns active rules for the given weekday,
	// ordered by start minute.
	ListActiveForDay(ctx context.Context, providerID string, weekday int) ([]models.AvailabilityRule, error)
	EnsureIndexes() error
}
