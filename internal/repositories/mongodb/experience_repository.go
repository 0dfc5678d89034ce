package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type experienceRepository struct {
	collection *mongo.Collection
	cache      Cache
}

func NewExperienceRepository(db *mongo.Database, cache Cache) interfaces.ExperienceRepository {
	return &experienceRepository{
		collection: db.Collection(experiencesCollection),
		cache:      cache,
	}
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	experience.ID = primitive.NewObjectID()
	experience.CreatedAt = time.Now()
	experience.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, experience)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	return nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	// Experiences are immutable for booking purposes, so a cached read is
	// safe even inside a booking transaction.
	cacheKey := experienceCacheKey(id.Hex())
	if r.cache != nil {
		var experience models.Experience
		if err := r.cache.Get(ctx, cacheKey, &experience); err == nil {
			return &experience, nil
		}
	}

	var experience models.Experience
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&experience)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("experience")
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, experience, utils.ExperienceCacheTTL)
	}

	return &experience, nil
}

func (r *experienceRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Experience, int64, error) {
	filter := params.GetSearchFilter([]string{"title", "description", "location"})

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count experiences: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var experiences []*models.Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, 0, fmt.Errorf("failed to decode experiences: %w", err)
	}

	return experiences, total, nil
}

func (r *experienceRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to delete experiences: %w", err)
	}
	return nil
}

func experienceCacheKey(id string) string {
	return "experience_" + id
}
