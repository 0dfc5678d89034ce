package services

import (
	"context"
	"errors"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"
	"experio/internal/utils"
	"experio/pkg/database"
	"experio/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionRunner runs fn inside a single atomic storage transaction. The
// context handed to fn must be used for every read and write that belongs to
// the transaction; fn returning an error aborts it with no state change.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookingService interface {
	// CreateBooking runs the full booking transaction: load, validate,
	// price authoritatively, then commit the booking insert, the slot
	// reservation and the optional promo redemption as one unit. Any
	// failure aborts with no partial writes.
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)

	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// QuotePrice computes a display breakdown outside any transaction. It
	// is advisory: the committed total is always recomputed inside
	// CreateBooking.
	QuotePrice(ctx context.Context, req *models.QuoteRequest) (*models.PriceBreakdown, error)
}

type bookingService struct {
	experienceRepo interfaces.ExperienceRepository
	slotRepo       interfaces.SlotRepository
	promoRepo      interfaces.PromoCodeRepository
	bookingRepo    interfaces.BookingRepository
	tx             TransactionRunner
	logger         *logger.Logger
	now            func() time.Time
}

func NewBookingService(
	experienceRepo interfaces.ExperienceRepository,
	slotRepo interfaces.SlotRepository,
	promoRepo interfaces.PromoCodeRepository,
	bookingRepo interfaces.BookingRepository,
	tx TransactionRunner,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		promoRepo:      promoRepo,
		bookingRepo:    bookingRepo,
		tx:             tx,
		logger:         log,
		now:            time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	if req.Quantity == 0 {
		req.Quantity = utils.DefaultBookingQuantity
	}
	if err := utils.ValidateRequest(req); err != nil {
		return nil, err
	}

	experienceID, err := primitive.ObjectIDFromHex(req.ExperienceID)
	if err != nil {
		return nil, models.NewNotFoundError("experience")
	}
	slotID, err := primitive.ObjectIDFromHex(req.SlotID)
	if err != nil {
		return nil, models.NewNotFoundError("slot")
	}

	var promoID *primitive.ObjectID
	if req.PromoCodeID != "" {
		id, err := primitive.ObjectIDFromHex(req.PromoCodeID)
		if err != nil {
			return nil, models.NewNotFoundError("promo code")
		}
		promoID = &id
	}

	var booking *models.Booking
	txErr := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		experience, err := s.experienceRepo.GetByID(txCtx, experienceID)
		if err != nil {
			return err
		}

		slot, err := s.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			return err
		}

		if !slot.HasCapacity(req.Quantity) {
			return models.NewCapacityExceededError()
		}

		var promo *models.PromoCode
		if promoID != nil {
			promo, err = s.promoRepo.GetByID(txCtx, *promoID)
			if err != nil {
				return err
			}
			if err := promo.ValidateAt(s.now()); err != nil {
				return err
			}
			if promo.MinOrderValue > 0 && experience.BasePrice*float64(req.Quantity) < promo.MinOrderValue {
				return models.NewInvalidPromoError("order total is below the promo code minimum")
			}
		}

		// Authoritative pricing. req.TotalPrice is never consulted.
		breakdown := CalculatePrice(experience.BasePrice, req.Quantity, promo)

		// Commit set. The guarded updates fail the transaction when a
		// concurrent booking got there first.
		if err := s.slotRepo.Reserve(txCtx, slotID, req.Quantity); err != nil {
			return err
		}
		if promo != nil {
			if err := s.promoRepo.Redeem(txCtx, promo.ID); err != nil {
				return err
			}
		}

		booking = &models.Booking{
			ExperienceID:  experienceID,
			SlotID:        slotID,
			StartTime:     slot.StartTime,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Quantity:      req.Quantity,
			TotalPrice:    breakdown.Total,
			PromoCodeID:   promoID,
			Status:        models.BookingStatusConfirmed,
		}
		return s.bookingRepo.Create(txCtx, booking)
	})

	if txErr != nil {
		return nil, s.classifyError(txErr)
	}

	s.logger.WithFields(map[string]interface{}{
		"booking_id": booking.ID.Hex(),
		"slot_id":    slotID.Hex(),
		"quantity":   req.Quantity,
		"total":      booking.TotalPrice,
	}).Info("booking created")

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("booking")
	}

	return s.bookingRepo.GetByID(ctx, objectID)
}

func (s *bookingService) GetBookingsByEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	if email == "" {
		return nil, 0, models.NewMissingFieldError("missing required field: customer_email")
	}
	return s.bookingRepo.GetByCustomerEmail(ctx, email, params)
}

func (s *bookingService) QuotePrice(ctx context.Context, req *models.QuoteRequest) (*models.PriceBreakdown, error) {
	if req.Quantity == 0 {
		req.Quantity = utils.DefaultBookingQuantity
	}
	if err := utils.ValidateRequest(req); err != nil {
		return nil, err
	}

	experience, err := s.getExperience(ctx, req.ExperienceID)
	if err != nil {
		return nil, err
	}

	var promo *models.PromoCode
	if req.PromoCodeID != "" {
		promoID, err := primitive.ObjectIDFromHex(req.PromoCodeID)
		if err != nil {
			return nil, models.NewNotFoundError("promo code")
		}
		promo, err = s.promoRepo.GetByID(ctx, promoID)
		if err != nil {
			return nil, err
		}
		if err := promo.ValidateAt(s.now()); err != nil {
			return nil, err
		}
	}

	return CalculatePrice(experience.BasePrice, req.Quantity, promo), nil
}

func (s *bookingService) getExperience(ctx context.Context, id string) (*models.Experience, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("experience")
	}
	return s.experienceRepo.GetByID(ctx, objectID)
}

// classifyError keeps typed booking errors, maps storage write conflicts to
// TRANSACTION_CONFLICT and everything else to INTERNAL. Internal failures
// are the only kind logged with full detail.
func (s *bookingService) classifyError(err error) error {
	var be *models.BookingError
	if errors.As(err, &be) {
		return be
	}
	if database.IsTransientTransactionError(err) {
		s.logger.WithError(err).Warn("booking transaction conflict")
		return models.NewTransactionConflictError(err)
	}
	s.logger.WithError(err).Error("booking transaction failed")
	return models.NewInternalError(err)
}
