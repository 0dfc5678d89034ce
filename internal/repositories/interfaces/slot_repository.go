package interfaces

import (
	"context"
	"time"

	"experio/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *models.Slot) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Slot, error)

	// GetUpcomingByExperience returns slots starting at or after the given
	// time, ordered by start time ascending.
	GetUpcomingByExperience(ctx context.Context, experienceID primitive.ObjectID, from time.Time) ([]*models.Slot, error)

	// Reserve increments booked_count by quantity only when the result stays
	// within total_capacity. Returns CapacityExceeded when the guard fails.
	// Must be called inside a booking transaction.
	Reserve(ctx context.Context, id primitive.ObjectID, quantity int) error

	DeleteAll(ctx context.Context) error
}
