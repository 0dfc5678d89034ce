package routes

import (
	"experio/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPromoCodeRoutes sets up routes for promo code pre-checks
func SetupPromoCodeRoutes(r *gin.RouterGroup, promoCodeHandler *handlers.PromoCodeHandler) {
	promoCodes := r.Group("/promo-codes")
	{
		promoCodes.POST("/apply", promoCodeHandler.ApplyPromoCode)
	}
}
