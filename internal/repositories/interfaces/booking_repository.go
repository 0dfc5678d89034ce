package interfaces

import (
	"context"

	"experio/internal/models"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	// Create inserts the booking. Must be called inside a booking transaction
	// so the insert commits together with the slot and promo updates.
	Create(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	DeleteAll(ctx context.Context) error
}
