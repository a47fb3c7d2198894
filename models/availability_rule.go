package models

// AvailabilityRule is a recurring weekly open window for a provider.
// Start and end are minutes from midnight with start < end; rules for
// the same provider/weekday may overlap and are treated as a union.
type AvailabilityRule struct {
	ID          string `bson:"id" json:"id"`
	ProviderID  string `bson:"providerId" json:"providerId"`
	Weekday     int    `bson:"weekday" json:"weekday"` // 0 = Sunday … 6 = Saturday
	StartMinute int    `bson:"startMinute" json:"startMinute"`
	EndMinute   int    `bson:"endMinute" json:"endMinute"`
	Active      bool   `bson:"active" json:"active"`
}
