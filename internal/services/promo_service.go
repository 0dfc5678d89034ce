package services

import (
	"context"
	"strings"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"
	"experio/pkg/logger"
)

type PromoService interface {
	// ApplyPromoCode is the advisory pre-check: it validates the code
	// outside any transaction and returns its public fields. The booking
	// coordinator re-validates inside the transaction, since usage and
	// expiry state may change between the two.
	ApplyPromoCode(ctx context.Context, code string) (*models.PromoCodePublic, error)
}

type promoService struct {
	promoRepo interfaces.PromoCodeRepository
	logger    *logger.Logger
	now       func() time.Time
}

func NewPromoService(promoRepo interfaces.PromoCodeRepository, log *logger.Logger) PromoService {
	return &promoService{
		promoRepo: promoRepo,
		logger:    log,
		now:       time.Now,
	}
}

func (s *promoService) ApplyPromoCode(ctx context.Context, code string) (*models.PromoCodePublic, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, models.NewMissingFieldError("missing required field: code")
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := promo.ValidateAt(s.now()); err != nil {
		s.logger.WithField("code", promo.Code).Info("rejected promo code pre-check")
		return nil, err
	}

	return promo.Public(), nil
}
