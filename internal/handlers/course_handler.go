package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/models"
	"alfredoptarigan/ai-course-generator/internal/services"
)

var requestValidator = validator.New()

type CourseHandler struct {
	courseGenerator services.CourseGeneratorService
}

func NewCourseHandler(courseGenerator services.CourseGeneratorService) *CourseHandler {
	return &CourseHandler{
		courseGenerator: courseGenerator,
	}
}

// HandleGenerateCourse handles POST /api/generate-course
func (h *CourseHandler) HandleGenerateCourse(c *fiber.Ctx) error {
	var req models.GenerateCourseRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if req.CVAnalysis == nil || req.Preferences == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Missing required data",
		})
	}

	if err := requestValidator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
	}

	course, err := h.courseGenerator.GenerateCourse(c.UserContext(), req.CVAnalysis, req.Preferences)
	if err != nil {
		logger.Error().Err(err).Msg("Course generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to generate course",
			Details: err.Error(),
			Code:    errorCode(err),
		})
	}

	return c.JSON(models.GenerateCourseResponse{
		Success: true,
		Course:  course,
	})
}
