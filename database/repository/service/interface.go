package serviceRepo

import (
	"context"

	"slotbook/models"
)

// ServiceRepository defines data access for bookable services.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	// GetByID returns (nil, nil) when the service does not exist.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	EnsureIndexes() error
}
