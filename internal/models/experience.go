package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Experience struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
	About       string             `json:"about" bson:"about"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	BasePrice   float64            `json:"base_price" bson:"base_price" validate:"required,gte=0"`
	MainImage   string             `json:"main_image" bson:"main_image"`
	Images      []string           `json:"images" bson:"images"`
	Duration    string             `json:"duration" bson:"duration" default:"1 Day"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
