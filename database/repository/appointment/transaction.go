package appointmentRepo

import (
	"context"
	"fmt"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookTransactionally performs the conflict re-check and the insert as
// a single atomic decision point. The in-session count catches
// overlaps visible at snapshot time; the unique partial index on
// (providerId, scheduledAt) for occupying statuses makes the loser of
// a same-slot race fail at commit with a duplicate-key error, which is
// reported as ErrConflict.
func (r *mongoAppointmentRepo) BookTransactionally(ctx context.Context, appt *models.Appointment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := occupyingOverlapFilter(appt.ProviderID, appt.ScheduledAt, appt.EndAt)
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
