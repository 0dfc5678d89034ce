package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot is a bookable time instance of an Experience. BookedCount is only
// ever incremented, and only inside a booking transaction.
type Slot struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ExperienceID  primitive.ObjectID `json:"experience_id" bson:"experience_id" validate:"required"`
	StartTime     time.Time          `json:"start_time" bson:"start_time" validate:"required"`
	TotalCapacity int                `json:"total_capacity" bson:"total_capacity" validate:"required,gt=0"`
	BookedCount   int                `json:"booked_count" bson:"booked_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// HasCapacity reports whether quantity more seats fit into the slot.
func (s *Slot) HasCapacity(quantity int) bool {
	return s.BookedCount+quantity <= s.TotalCapacity
}

// AvailableCount returns the number of unbooked seats.
func (s *Slot) AvailableCount() int {
	remaining := s.TotalCapacity - s.BookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Slot) IsFull() bool {
	return s.BookedCount >= s.TotalCapacity
}
