package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

// decodeModelJSON parses a model reply into a generic document and into
// target. The generic form is what the schema check runs against.
func decodeModelJSON(response string, target interface{}) (map[string]interface{}, error) {
	jsonStr := extractJSON(response)
	if strings.TrimSpace(jsonStr) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedOutput)
	}

	var document map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	return document, nil
}

// extractJSON strips markdown fences and any prose around the outermost JSON object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

// generateJSON runs one structured model call: generate, decode, then check
// the decoded document with validate. Output problems are not retried.
func generateJSON(ctx context.Context, provider LLMProvider, policy RetryPolicy, req GenerateRequest, target interface{}, validate func(interface{}) error) error {
	resp, err := generateWithRetry(ctx, provider, req, policy)
	if err != nil {
		return err
	}

	document, err := decodeModelJSON(resp.Text, target)
	if err != nil {
		logger.Warn().Err(err).Int("chars", len(resp.Text)).Msg("Model reply is not valid JSON")
		return err
	}

	if err := validate(document); err != nil {
		logger.Warn().Err(err).Msg("Model reply failed schema validation")
		return err
	}

	return nil
}
