package routes

import (
	"experio/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupExperienceRoutes sets up routes for the experience catalog
func SetupExperienceRoutes(r *gin.RouterGroup, experienceHandler *handlers.ExperienceHandler) {
	experiences := r.Group("/experiences")
	{
		experiences.GET("/", experienceHandler.ListExperiences)
		experiences.GET("/:id", experienceHandler.GetExperience)
		experiences.GET("/:id/slots", experienceHandler.GetExperienceSlots)
	}
}
