package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-course-generator/internal/models"
)

// HandleHealth handles GET /api/health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "OK",
		Message: "AI Course Generator API is running",
	})
}
