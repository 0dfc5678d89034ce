package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotRepository struct {
	collection *mongo.Collection
}

func NewSlotRepository(db *mongo.Database) interfaces.SlotRepository {
	return &slotRepository{
		collection: db.Collection(slotsCollection),
	}
}

func (r *slotRepository) Create(ctx context.Context, slot *models.Slot) error {
	slot.ID = primitive.NewObjectID()
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, slot)
	if err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}

	return nil
}

func (r *slotRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Slot, error) {
	var slot models.Slot
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("slot")
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return &slot, nil
}

func (r *slotRepository) GetUpcomingByExperience(ctx context.Context, experienceID primitive.ObjectID, from time.Time) ([]*models.Slot, error) {
	filter := bson.M{
		"experience_id": experienceID,
		"start_time":    bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []*models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}

	return slots, nil
}

// Reserve performs the guarded capacity increment. The filter only matches
// while booked_count + quantity <= total_capacity, so two concurrent
// reservations can never jointly overbook a slot: the second one matches
// zero documents and fails with CapacityExceeded.
func (r *slotRepository) Reserve(ctx context.Context, id primitive.ObjectID, quantity int) error {
	filter := bson.M{
		"_id": id,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$booked_count", quantity}},
				"$total_capacity",
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"booked_count": quantity},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to check slot existence: %w", err)
		}
		if count == 0 {
			return models.NewNotFoundError("slot")
		}
		return models.NewCapacityExceededError()
	}

	return nil
}

func (r *slotRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to delete slots: %w", err)
	}
	return nil
}
