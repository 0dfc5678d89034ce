package handlers

import (
	"experio/internal/models"
	"experio/internal/services"
	"experio/internal/utils"

	"github.com/gin-gonic/gin"
)

type PromoCodeHandler struct {
	promoService services.PromoService
}

func NewPromoCodeHandler(promoService services.PromoService) *PromoCodeHandler {
	return &PromoCodeHandler{
		promoService: promoService,
	}
}

// ApplyPromoCode validates a promo code and returns its public fields. This
// check is advisory; the booking transaction re-validates the code.
func (h *PromoCodeHandler) ApplyPromoCode(c *gin.Context) {
	var request models.ApplyPromoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	promo, err := h.promoService.ApplyPromoCode(c.Request.Context(), request.Code)
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Promo code applied successfully", promo)
}
