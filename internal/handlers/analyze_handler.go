package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/models"
	"alfredoptarigan/ai-course-generator/internal/services"
)

const rawTextPreviewLength = 500

type AnalyzeHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	analyzer       services.AnalyzerService
	maxFileSize    int64
	allowedTypes   map[string]struct{}
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
	allowedMIMETypes []string,
) *AnalyzeHandler {
	allowed := make(map[string]struct{}, len(allowedMIMETypes))
	for _, t := range allowedMIMETypes {
		allowed[models.NormalizeMIMEType(t)] = struct{}{}
	}

	return &AnalyzeHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
		allowedTypes:   allowed,
	}
}

// HandleAnalyzeCV handles POST /api/analyze-cv
func (h *AnalyzeHandler) HandleAnalyzeCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil || fileHeader == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No file uploaded",
		})
	}

	doc := &models.UploadedDocument{
		OriginalFileName: fileHeader.Filename,
		MIMEType:         models.NormalizeMIMEType(fileHeader.Header.Get("Content-Type")),
		Size:             fileHeader.Size,
	}

	if _, ok := h.allowedTypes[doc.MIMEType]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid file type. Only PDF, DOC, and DOCX files are allowed.",
		})
	}

	if doc.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	doc.StoredName, doc.StoredPath, err = h.storageService.SaveFile(fileHeader, "cv")
	if err != nil {
		logger.Error().Err(err).Str("filename", doc.OriginalFileName).Msg("Failed to store upload")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to analyze CV",
			Details: err.Error(),
		})
	}

	// The temporary file goes away right after extraction, and on every early return.
	released := false
	release := func() {
		if released {
			return
		}
		released = true
		if err := h.storageService.DeleteFile(doc.StoredName); err != nil {
			logger.Error().Err(err).Str("file", doc.StoredName).Msg("Failed to delete temporary upload")
		}
	}
	defer release()

	if !doc.IsPDF() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Currently only PDF files are supported",
		})
	}

	content, err := h.pdfParser.ExtractTextWithMetaData(doc.StoredPath)
	release()
	if err != nil {
		logger.Error().Err(err).Str("filename", doc.OriginalFileName).Msg("CV text extraction failed")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to analyze CV",
			Details: err.Error(),
			Code:    errorCode(err),
		})
	}

	logger.Info().
		Str("filename", doc.OriginalFileName).
		Int64("size", doc.Size).
		Int("pages", content.PageCount).
		Int("chars", len(content.Text)).
		Msg("CV text extracted")

	analysis, err := h.analyzer.AnalyzeCV(c.UserContext(), content.Text)
	if err != nil {
		logger.Error().Err(err).Msg("CV analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Failed to analyze CV",
			Details: err.Error(),
			Code:    errorCode(err),
		})
	}

	return c.JSON(models.AnalyzeCVResponse{
		Success:  true,
		Analysis: analysis,
		RawText:  preview(content.Text, rawTextPreviewLength),
	})
}

// preview returns the first n runes of text, marked with "..." when cut.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
