package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-course-generator/internal/models"
	"alfredoptarigan/ai-course-generator/internal/services"
)

type ProbeHandler struct {
	probe services.ProbeService
}

func NewProbeHandler(probe services.ProbeService) *ProbeHandler {
	return &ProbeHandler{probe: probe}
}

// HandleTestConnection handles GET /api/test-openai and GET /api/test-llm.
// Known provider failures answer 400, unclassified ones 500.
func (h *ProbeHandler) HandleTestConnection(c *fiber.Ctx) error {
	result := h.probe.TestConnection(c.UserContext())

	if result.Success {
		return c.JSON(models.ProbeSuccessResponse{
			Success: true,
			Message: fmt.Sprintf("%s API is working correctly!", result.Provider),
			Details: models.ProbeDetails{
				Response: result.Message,
				Model:    result.Model,
				Usage: &models.TokenUsage{
					PromptTokens:     result.Usage.PromptTokens,
					CompletionTokens: result.Usage.CompletionTokens,
					TotalTokens:      result.Usage.TotalTokens,
				},
			},
		})
	}

	if result.Kind == services.KindUnknown {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ProbeFailureResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to test %s API", result.Provider),
			Details: result.Error,
			Code:    result.Code,
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(models.ProbeFailureResponse{
		Success: false,
		Error:   result.Error,
		Code:    result.Code,
	})
}
