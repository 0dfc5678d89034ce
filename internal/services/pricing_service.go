package services

import (
	"experio/internal/models"
)

// TaxRate is the fixed tax applied to the discounted subtotal.
const TaxRate = 0.10

// CalculatePrice turns a unit price, quantity and optional promo into a
// price breakdown. It is pure and deterministic: identical inputs always
// yield identical output. The booking coordinator calls it a second time
// server-side and only that result is ever persisted; any client-side
// evaluation is a display hint.
func CalculatePrice(unitPrice float64, quantity int, promo *models.PromoCode) *models.PriceBreakdown {
	subtotal := unitPrice * float64(quantity)

	var discount float64
	if promo != nil {
		if promo.DiscountType == models.DiscountTypePercentage {
			discount = subtotal * promo.DiscountValue / 100
		} else {
			discount = promo.DiscountValue
		}
		// Discount can never exceed the subtotal, so the total never goes
		// negative.
		if discount > subtotal {
			discount = subtotal
		}
	}

	taxable := subtotal - discount
	tax := taxable * TaxRate

	total := taxable + tax
	if total < 0 {
		total = 0
	}

	return &models.PriceBreakdown{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}
}
