package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRuleRepository.
func NewMongoAvailabilityRepo() AvailabilityRuleRepository {
	db := database.MongoClient.Database("slotbook")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_rules"),
	}
}

func (r *mongoAvailabilityRepo) ReplaceForProvider(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			rule.ID = uuid.New().String()
		}
		rule.ProviderID = providerID
		docs[i] = rule
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return fmt.Errorf("failed to clear rules for provider %s: %w", providerID, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert rules for provider %s: %w", providerID, err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) ListForProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

func (r *mongoAvailabilityRepo) ListActiveForDay(ctx context.Context, providerID string, weekday int) ([]models.AvailabilityRule, error) {
	return r.list(ctx, bson.M{
		"providerId": providerID,
		"weekday":    weekday,
		"active":     true,
	})
}

func (r *mongoAvailabilityRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "startMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}
