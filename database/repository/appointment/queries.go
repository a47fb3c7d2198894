package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// occupyingOverlapFilter matches occupying appointments whose
// half-open interval [scheduledAt, endAt) overlaps [from, to).
func occupyingOverlapFilter(providerID string, from, to time.Time) bson.M {
	return bson.M{
		"providerId":  providerID,
		"status":      bson.M{"$in": models.OccupyingStatuses},
		"scheduledAt": bson.M{"$lt": to},
		"endAt":       bson.M{"$gt": from},
	}
}

func (r *mongoAppointmentRepo) ListOccupyingInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, occupyingOverlapFilter(providerID, from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupying appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListByProviderDay(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId":  providerID,
		"scheduledAt": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for day: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
