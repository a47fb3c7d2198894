package models

import "time"

// Service is a bookable offering owned by a provider. Its duration
// drives slot computation and conflict windows.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
