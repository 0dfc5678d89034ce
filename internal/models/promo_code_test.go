package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromoCodeValidateAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name    string
		promo   PromoCode
		wantErr bool
	}{
		{"active unbounded", PromoCode{IsActive: true}, false},
		{"active with future expiry", PromoCode{IsActive: true, ExpiresAt: &future}, false},
		{"active under usage limit", PromoCode{IsActive: true, UsageLimit: 5, UsedCount: 4}, false},
		{"inactive", PromoCode{IsActive: false}, true},
		{"expired", PromoCode{IsActive: true, ExpiresAt: &past}, true},
		{"at usage limit", PromoCode{IsActive: true, UsageLimit: 5, UsedCount: 5}, true},
		{"over usage limit", PromoCode{IsActive: true, UsageLimit: 5, UsedCount: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.promo.ValidateAt(now)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, ErrorKindInvalidPromo, KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromoCodeIsExhausted(t *testing.T) {
	assert.False(t, (&PromoCode{UsageLimit: 0, UsedCount: 100}).IsExhausted())
	assert.False(t, (&PromoCode{UsageLimit: 5, UsedCount: 4}).IsExhausted())
	assert.True(t, (&PromoCode{UsageLimit: 5, UsedCount: 5}).IsExhausted())
}

func TestPromoCodePublic(t *testing.T) {
	promo := &PromoCode{
		Code:          "SAVE10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		UsageLimit:    100,
		UsedCount:     42,
	}

	public := promo.Public()
	assert.Equal(t, "SAVE10", public.Code)
	assert.Equal(t, DiscountTypePercentage, public.DiscountType)
	assert.InDelta(t, 10, public.DiscountValue, 1e-9)
}
