package providerRepo

import (
	"context"

	"slotbook/models"
)

// ProviderRepository defines data access for providers.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	// GetByID returns (nil, nil) when the provider does not exist.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	EnsureIndexes() error
}
