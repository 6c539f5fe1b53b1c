package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/services"
)

// errorCode gives the machine-readable kind of a pipeline failure, empty when
// the raw provider message is all there is.
func errorCode(err error) string {
	switch {
	case errors.Is(err, services.ErrSchemaViolation):
		return "schema_violation"
	case errors.Is(err, services.ErrMalformedOutput):
		return "malformed_output"
	case errors.Is(err, services.ErrEmptyDocument):
		return "empty_document"
	case errors.Is(err, services.ErrMissingCredential):
		return services.KindMissingCredential.Code()
	}
	return ""
}

// ErrorHandler turns errors that escape a handler (framework errors,
// recovered panics) into a JSON body scoped to the failing request.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("Unhandled request error")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
