package handlers

import (
	"experio/internal/services"
	"experio/internal/utils"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceService services.ExperienceService
}

func NewExperienceHandler(experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
	}
}

// ListExperiences returns experiences, optionally filtered by a search term
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	experiences, total, err := h.experienceService.ListExperiences(c.Request.Context(), params)
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(experiences),
	}
	utils.SuccessResponseWithMeta(c, "Experiences retrieved successfully", experiences, meta)
}

// GetExperience returns a single experience by id
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	experience, err := h.experienceService.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Experience retrieved successfully", experience)
}

// GetExperienceSlots returns the experience's upcoming slots, earliest first
func (h *ExperienceHandler) GetExperienceSlots(c *gin.Context) {
	slots, err := h.experienceService.GetExperienceSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BookingErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Slots retrieved successfully", slots)
}
