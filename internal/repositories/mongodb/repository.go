package mongodb

import (
	"context"
	"time"
)

// Collection names
const (
	experiencesCollection = "experiences"
	slotsCollection       = "slots"
	promoCodesCollection  = "promo_codes"
	bookingsCollection    = "bookings"
)

// Cache is the read-through cache contract used by repositories. A nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
