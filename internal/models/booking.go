package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is the immutable record produced by a committed booking
// transaction. TotalPrice is always the server-computed amount.
type Booking struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ExperienceID  primitive.ObjectID  `json:"experience_id" bson:"experience_id" validate:"required"`
	SlotID        primitive.ObjectID  `json:"slot_id" bson:"slot_id" validate:"required"`
	StartTime     time.Time           `json:"start_time" bson:"start_time"`
	CustomerName  string              `json:"customer_name" bson:"customer_name" validate:"required"`
	CustomerEmail string              `json:"customer_email" bson:"customer_email" validate:"required,email"`
	Quantity      int                 `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	TotalPrice    float64             `json:"total_price" bson:"total_price" validate:"gte=0"`
	PromoCodeID   *primitive.ObjectID `json:"promo_code_id" bson:"promo_code_id"`
	Status        BookingStatus       `json:"status" bson:"status" default:"confirmed"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}

// BookingRequest is the payload accepted by the create-booking endpoint.
// Any client-supplied total is treated as a display hint and ignored.
type BookingRequest struct {
	ExperienceID  string  `json:"experience_id" validate:"required"`
	SlotID        string  `json:"slot_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	Quantity      int     `json:"quantity" validate:"omitempty,gte=1"`
	PromoCodeID   string  `json:"promo_code_id"`
	TotalPrice    float64 `json:"total_price"` // display hint only, never persisted
}

// ApplyPromoRequest is the payload for the advisory promo check.
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// QuoteRequest asks for a display price breakdown.
type QuoteRequest struct {
	ExperienceID string `json:"experience_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"omitempty,gte=1"`
	PromoCodeID  string `json:"promo_code_id"`
}

// PriceBreakdown is the output of the pricing calculator.
type PriceBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
