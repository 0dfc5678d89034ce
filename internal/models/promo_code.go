package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

// PromoCode is a discount rule. Codes are stored uppercase and looked up
// case-insensitively. UsedCount is only incremented inside a booking
// transaction, guarded by UsageLimit when one is set.
type PromoCode struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code" validate:"required"`
	DiscountType  DiscountType       `json:"discount_type" bson:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue float64            `json:"discount_value" bson:"discount_value" validate:"required,gte=0"`
	IsActive      bool               `json:"is_active" bson:"is_active" default:"true"`
	ExpiresAt     *time.Time         `json:"expires_at" bson:"expires_at"`
	MinOrderValue float64            `json:"min_order_value" bson:"min_order_value" default:"0"`
	UsageLimit    int                `json:"usage_limit" bson:"usage_limit"` // 0 means unbounded
	UsedCount     int                `json:"used_count" bson:"used_count" default:"0"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidateAt checks whether the code is redeemable at the given time.
func (p *PromoCode) ValidateAt(now time.Time) error {
	if !p.IsActive {
		return NewInvalidPromoError("promo code is inactive")
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
		return NewInvalidPromoError("promo code has expired")
	}
	if p.IsExhausted() {
		return NewInvalidPromoError("promo code usage limit reached")
	}
	return nil
}

// IsExhausted reports whether the usage limit has been reached.
func (p *PromoCode) IsExhausted() bool {
	return p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit
}

// PromoCodePublic is the subset of promo fields safe to return from the
// advisory apply endpoint.
type PromoCodePublic struct {
	ID            primitive.ObjectID `json:"id"`
	Code          string             `json:"code"`
	DiscountType  DiscountType       `json:"discount_type"`
	DiscountValue float64            `json:"discount_value"`
}

// Public strips internal bookkeeping fields from the promo code.
func (p *PromoCode) Public() *PromoCodePublic {
	return &PromoCodePublic{
		ID:            p.ID,
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}
}
