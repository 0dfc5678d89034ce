package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection(bookingsCollection),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CustomerEmail = strings.ToLower(strings.TrimSpace(booking.CustomerEmail))
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("booking")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) GetByCustomerEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	filter := bson.M{"customer_email": strings.ToLower(strings.TrimSpace(email))}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, total, nil
}

func (r *bookingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	return nil
}
