package interfaces

import (
	"context"

	"experio/internal/models"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)

	// List returns experiences matching the pagination params, where the
	// search term is matched case-insensitively against title, description
	// and location.
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Experience, int64, error)

	DeleteAll(ctx context.Context) error
}
