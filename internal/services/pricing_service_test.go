package services

import (
	"testing"

	"experio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	percentage := func(value float64) *models.PromoCode {
		return &models.PromoCode{DiscountType: models.DiscountTypePercentage, DiscountValue: value}
	}
	flat := func(value float64) *models.PromoCode {
		return &models.PromoCode{DiscountType: models.DiscountTypeFlat, DiscountValue: value}
	}

	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		promo     *models.PromoCode
		want      models.PriceBreakdown
	}{
		{
			name:      "no promo",
			unitPrice: 1000,
			quantity:  2,
			want:      models.PriceBreakdown{Subtotal: 2000, Discount: 0, Tax: 200, Total: 2200},
		},
		{
			name:      "percentage promo",
			unitPrice: 1000,
			quantity:  1,
			promo:     percentage(10),
			want:      models.PriceBreakdown{Subtotal: 1000, Discount: 100, Tax: 90, Total: 990},
		},
		{
			name:      "percentage over 100 capped at subtotal",
			unitPrice: 500,
			quantity:  1,
			promo:     percentage(150),
			want:      models.PriceBreakdown{Subtotal: 500, Discount: 500, Tax: 0, Total: 0},
		},
		{
			name:      "flat promo",
			unitPrice: 1000,
			quantity:  2,
			promo:     flat(100),
			want:      models.PriceBreakdown{Subtotal: 2000, Discount: 100, Tax: 190, Total: 2090},
		},
		{
			name:      "flat promo exceeding subtotal capped",
			unitPrice: 100,
			quantity:  1,
			promo:     flat(1000),
			want:      models.PriceBreakdown{Subtotal: 100, Discount: 100, Tax: 0, Total: 0},
		},
		{
			name:      "zero unit price",
			unitPrice: 0,
			quantity:  3,
			want:      models.PriceBreakdown{Subtotal: 0, Discount: 0, Tax: 0, Total: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.unitPrice, tt.quantity, tt.promo)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestCalculatePriceDeterministic(t *testing.T) {
	promo := &models.PromoCode{DiscountType: models.DiscountTypePercentage, DiscountValue: 25}

	first := CalculatePrice(1299, 4, promo)
	second := CalculatePrice(1299, 4, promo)

	assert.Equal(t, first, second)
}

func TestCalculatePriceOutputsNonNegative(t *testing.T) {
	promo := &models.PromoCode{DiscountType: models.DiscountTypeFlat, DiscountValue: 99999}

	got := CalculatePrice(50, 1, promo)

	assert.GreaterOrEqual(t, got.Subtotal, 0.0)
	assert.GreaterOrEqual(t, got.Discount, 0.0)
	assert.GreaterOrEqual(t, got.Tax, 0.0)
	assert.GreaterOrEqual(t, got.Total, 0.0)
}
