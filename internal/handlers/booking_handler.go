package handlers

import (
	"experio/internal/models"
	"experio/internal/services"
	"experio/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking submits a booking request to the transaction coordinator
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var request models.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &request)
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Booking created successfully", booking)
}

// GetBooking retrieves a committed booking by id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking retrieved successfully", booking)
}

// GetBookingsByEmail lists a customer's bookings
func (h *BookingHandler) GetBookingsByEmail(c *gin.Context) {
	email := c.Query("email")
	params := utils.GetPaginationParams(c)

	bookings, total, err := h.bookingService.GetBookingsByEmail(c.Request.Context(), email, params)
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(bookings),
	}
	utils.SuccessResponseWithMeta(c, "Bookings retrieved successfully", bookings, meta)
}

// QuotePrice returns a display price breakdown; the committed total is
// always recomputed server-side during booking creation
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	var request models.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	breakdown, err := h.bookingService.QuotePrice(c.Request.Context(), &request)
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Price quoted successfully", breakdown)
}
