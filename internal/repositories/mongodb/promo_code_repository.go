package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type promoCodeRepository struct {
	collection *mongo.Collection
}

// NewPromoCodeRepository builds the promo ledger. Promo reads are never
// cached: used_count changes with every redemption and the transactional
// path must see the authoritative document.
func NewPromoCodeRepository(db *mongo.Database) interfaces.PromoCodeRepository {
	return &promoCodeRepository{
		collection: db.Collection(promoCodesCollection),
	}
}

func (r *promoCodeRepository) Create(ctx context.Context, promoCode *models.PromoCode) error {
	promoCode.ID = primitive.NewObjectID()
	promoCode.Code = strings.ToUpper(strings.TrimSpace(promoCode.Code))
	promoCode.CreatedAt = time.Now()
	promoCode.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, promoCode)
	if err != nil {
		return fmt.Errorf("failed to create promo code: %w", err)
	}

	return nil
}

func (r *promoCodeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PromoCode, error) {
	var promoCode models.PromoCode
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&promoCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("promo code")
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	return &promoCode, nil
}

func (r *promoCodeRepository) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var promoCode models.PromoCode
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&promoCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("promo code")
		}
		return nil, fmt.Errorf("failed to get promo code by code: %w", err)
	}

	return &promoCode, nil
}

// Redeem performs the guarded usage increment. When a usage limit is set the
// filter only matches while used_count < usage_limit, so a code at its last
// remaining use can be redeemed by at most one of two concurrent bookings.
func (r *promoCodeRepository) Redeem(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"usage_limit": bson.M{"$lte": 0}},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$used_count", "$usage_limit"}}},
		},
	}
	update := bson.M{
		"$inc": bson.M{"used_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to redeem promo code: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to check promo code existence: %w", err)
		}
		if count == 0 {
			return models.NewNotFoundError("promo code")
		}
		return models.NewInvalidPromoError("promo code usage limit reached")
	}

	return nil
}

func (r *promoCodeRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to delete promo codes: %w", err)
	}
	return nil
}
