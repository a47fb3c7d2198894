package models

import "time"

// Provider is an independent service provider that publishes bookable time.
type Provider struct {
	ID                    string    `bson:"id" json:"id"`
	Name                  string    `bson:"name" json:"name"`
	Email                 string    `bson:"email" json:"email"`
	Timezone              string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Active                bool      `bson:"active" json:"active"`
	AcceptsPublicBookings bool      `bson:"acceptsPublicBookings" json:"acceptsPublicBookings"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
}
