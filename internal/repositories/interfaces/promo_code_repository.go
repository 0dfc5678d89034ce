package interfaces

import (
	"context"

	"experio/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PromoCodeRepository interface {
	Create(ctx context.Context, promoCode *models.PromoCode) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.PromoCode, error)

	// GetByCode looks a code up case-insensitively; codes are stored uppercase.
	GetByCode(ctx context.Context, code string) (*models.PromoCode, error)

	// Redeem increments used_count by one, guarded by usage_limit when one is
	// set. Returns InvalidPromo when the guard fails. Must be called inside a
	// booking transaction.
	Redeem(ctx context.Context, id primitive.ObjectID) error

	DeleteAll(ctx context.Context) error
}
