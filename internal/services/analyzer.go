package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/models"
)

const (
	analysisTemperature     = 0.3
	analysisMaxOutputTokens = 4096
)

type AnalyzerService interface {
	AnalyzeCV(ctx context.Context, cvText string) (*models.CVAnalysis, error)
}

type analyzerService struct {
	llm           LLMProvider
	validator     *SchemaValidator
	promptBuilder *PromptBuilder
	retry         RetryPolicy
}

func NewAnalyzerService(llm LLMProvider, validator *SchemaValidator, retry RetryPolicy) AnalyzerService {
	return &analyzerService{
		llm:           llm,
		validator:     validator,
		promptBuilder: NewPromptBuilder(),
		retry:         retry,
	}
}

// AnalyzeCV sends the extracted CV text to the model and returns the
// schema-checked analysis.
func (a *analyzerService) AnalyzeCV(ctx context.Context, cvText string) (*models.CVAnalysis, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, ErrEmptyDocument
	}

	prompt := a.promptBuilder.BuildCVAnalysisPrompt(cvText)
	logger.Info().
		Str("provider", a.llm.Name()).
		Int("prompt_chars", len(prompt)).
		Msg("Analyzing CV")

	var analysis models.CVAnalysis
	err := generateJSON(ctx, a.llm, a.retry, GenerateRequest{
		SystemInstruction: analysisSystemInstruction,
		Prompt:            prompt,
		Temperature:       analysisTemperature,
		MaxOutputTokens:   analysisMaxOutputTokens,
		JSON:              true,
	}, &analysis, a.validator.ValidateCVAnalysis)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze CV: %w", err)
	}

	logger.Info().
		Int("skills", len(analysis.Skills)).
		Int("gaps", len(analysis.Gaps)).
		Str("target_role", analysis.TargetRole).
		Msg("CV analysis completed")

	return &analysis, nil
}
