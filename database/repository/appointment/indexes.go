package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Store-enforced uniqueness for occupying appointments at the
		// same start: the concurrency backstop for same-slot races.
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_provider_start_occupying").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.OccupyingStatuses},
				}),
		},
		// Primary overlap query pattern.
		{
			Keys: bson.D{
				{Key: "providerId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "scheduledAt", Value: 1},
				{Key: "endAt", Value: 1},
			},
			Options: options.Index().SetName("provider_status_range_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
