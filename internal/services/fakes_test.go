package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"experio/internal/models"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the storage layer. Its transaction
// runner serializes transactions with a mutex and restores a snapshot on
// failure, matching the all-or-nothing semantics of the real store.
type fakeStore struct {
	mu          sync.Mutex
	experiences map[primitive.ObjectID]*models.Experience
	slots       map[primitive.ObjectID]*models.Slot
	promos      map[primitive.ObjectID]*models.PromoCode
	bookings    map[primitive.ObjectID]*models.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		experiences: make(map[primitive.ObjectID]*models.Experience),
		slots:       make(map[primitive.ObjectID]*models.Slot),
		promos:      make(map[primitive.ObjectID]*models.PromoCode),
		bookings:    make(map[primitive.ObjectID]*models.Booking),
	}
}

func (s *fakeStore) addExperience(exp *models.Experience) *models.Experience {
	if exp.ID.IsZero() {
		exp.ID = primitive.NewObjectID()
	}
	s.experiences[exp.ID] = exp
	return exp
}

func (s *fakeStore) addSlot(slot *models.Slot) *models.Slot {
	if slot.ID.IsZero() {
		slot.ID = primitive.NewObjectID()
	}
	s.slots[slot.ID] = slot
	return slot
}

func (s *fakeStore) addPromo(promo *models.PromoCode) *models.PromoCode {
	if promo.ID.IsZero() {
		promo.ID = primitive.NewObjectID()
	}
	s.promos[promo.ID] = promo
	return promo
}

func (s *fakeStore) snapshot() (map[primitive.ObjectID]models.Slot, map[primitive.ObjectID]models.PromoCode, map[primitive.ObjectID]models.Booking) {
	slots := make(map[primitive.ObjectID]models.Slot, len(s.slots))
	for id, slot := range s.slots {
		slots[id] = *slot
	}
	promos := make(map[primitive.ObjectID]models.PromoCode, len(s.promos))
	for id, promo := range s.promos {
		promos[id] = *promo
	}
	bookings := make(map[primitive.ObjectID]models.Booking, len(s.bookings))
	for id, booking := range s.bookings {
		bookings[id] = *booking
	}
	return slots, promos, bookings
}

func (s *fakeStore) restore(slots map[primitive.ObjectID]models.Slot, promos map[primitive.ObjectID]models.PromoCode, bookings map[primitive.ObjectID]models.Booking) {
	s.slots = make(map[primitive.ObjectID]*models.Slot, len(slots))
	for id, slot := range slots {
		copied := slot
		s.slots[id] = &copied
	}
	s.promos = make(map[primitive.ObjectID]*models.PromoCode, len(promos))
	for id, promo := range promos {
		copied := promo
		s.promos[id] = &copied
	}
	s.bookings = make(map[primitive.ObjectID]*models.Booking, len(bookings))
	for id, booking := range bookings {
		copied := booking
		s.bookings[id] = &copied
	}
}

// fakeTxRunner gives each transaction exclusive access to the store and
// rolls the store back when the transaction function fails.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slots, promos, bookings := r.store.snapshot()
	if err := fn(ctx); err != nil {
		r.store.restore(slots, promos, bookings)
		return err
	}
	return nil
}

type fakeExperienceRepo struct {
	store *fakeStore
}

func (r *fakeExperienceRepo) Create(ctx context.Context, experience *models.Experience) error {
	r.store.addExperience(experience)
	return nil
}

func (r *fakeExperienceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	exp, ok := r.store.experiences[id]
	if !ok {
		return nil, models.NewNotFoundError("experience")
	}
	copied := *exp
	return &copied, nil
}

func (r *fakeExperienceRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Experience, int64, error) {
	var out []*models.Experience
	for _, exp := range r.store.experiences {
		copied := *exp
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeExperienceRepo) DeleteAll(ctx context.Context) error {
	r.store.experiences = make(map[primitive.ObjectID]*models.Experience)
	return nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) Create(ctx context.Context, slot *models.Slot) error {
	r.store.addSlot(slot)
	return nil
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Slot, error) {
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, models.NewNotFoundError("slot")
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) GetUpcomingByExperience(ctx context.Context, experienceID primitive.ObjectID, from time.Time) ([]*models.Slot, error) {
	var out []*models.Slot
	for _, slot := range r.store.slots {
		if slot.ExperienceID == experienceID && !slot.StartTime.Before(from) {
			copied := *slot
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Reserve(ctx context.Context, id primitive.ObjectID, quantity int) error {
	slot, ok := r.store.slots[id]
	if !ok {
		return models.NewNotFoundError("slot")
	}
	if slot.BookedCount+quantity > slot.TotalCapacity {
		return models.NewCapacityExceededError()
	}
	slot.BookedCount += quantity
	return nil
}

func (r *fakeSlotRepo) DeleteAll(ctx context.Context) error {
	r.store.slots = make(map[primitive.ObjectID]*models.Slot)
	return nil
}

type fakePromoRepo struct {
	store *fakeStore
}

func (r *fakePromoRepo) Create(ctx context.Context, promoCode *models.PromoCode) error {
	r.store.addPromo(promoCode)
	return nil
}

func (r *fakePromoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PromoCode, error) {
	promo, ok := r.store.promos[id]
	if !ok {
		return nil, models.NewNotFoundError("promo code")
	}
	copied := *promo
	return &copied, nil
}

func (r *fakePromoRepo) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	for _, promo := range r.store.promos {
		if promo.Code == strings.ToUpper(code) {
			copied := *promo
			return &copied, nil
		}
	}
	return nil, models.NewNotFoundError("promo code")
}

func (r *fakePromoRepo) Redeem(ctx context.Context, id primitive.ObjectID) error {
	promo, ok := r.store.promos[id]
	if !ok {
		return models.NewNotFoundError("promo code")
	}
	if promo.UsageLimit > 0 && promo.UsedCount >= promo.UsageLimit {
		return models.NewInvalidPromoError("promo code usage limit reached")
	}
	promo.UsedCount++
	return nil
}

func (r *fakePromoRepo) DeleteAll(ctx context.Context) error {
	r.store.promos = make(map[primitive.ObjectID]*models.PromoCode)
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	copied := *booking
	r.store.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, models.NewNotFoundError("booking")
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByCustomerEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var out []*models.Booking
	for _, booking := range r.store.bookings {
		if booking.CustomerEmail == email {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) DeleteAll(ctx context.Context) error {
	r.store.bookings = make(map[primitive.ObjectID]*models.Booking)
	return nil
}
