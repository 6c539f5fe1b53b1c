package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiOptions struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

type geminiProvider struct {
	client    *genai.Client
	modelName string
}

func NewGeminiProvider(ctx context.Context, opts GeminiOptions) (LLMProvider, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiProvider{
		client:    client,
		modelName: model,
	}, nil
}

// Generate implements LLMProvider.
func (g *geminiProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}
	if req.DisableThinking {
		budget := int32(0)
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), config)
	if err != nil {
		logger.Error().Err(err).Str("model", g.modelName).Msg("Gemini API error")
		return nil, g.wrapError(err)
	}

	if resp == nil {
		return nil, &ProviderError{Provider: g.Name(), Kind: KindUnknown, Err: errors.New("no response generated (nil response)")}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, &ProviderError{
			Provider: g.Name(),
			Kind:     KindUnknown,
			Err:      fmt.Errorf("prompt blocked by provider: %s", resp.PromptFeedback.BlockReason),
		}
	}

	out := &GenerateResponse{
		Text:  resp.Text(),
		Model: g.modelName,
	}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}
	if usage := resp.UsageMetadata; usage != nil {
		out.Usage = Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}

	logger.Debug().
		Str("model", out.Model).
		Int("chars", len(out.Text)).
		Int("total_tokens", out.Usage.TotalTokens).
		Msg("Gemini response received")

	return out, nil
}

func (g *geminiProvider) Configured() bool { return true }

func (g *geminiProvider) Name() string { return "Gemini" }

func (g *geminiProvider) CredentialEnv() string { return "GEMINI_API_KEY" }

func (g *geminiProvider) wrapError(err error) error {
	pe := &ProviderError{Provider: g.Name(), Kind: KindUnknown, Err: err}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return pe
	}

	pe.Status = apiErr.Code
	pe.Kind = classifyGeminiError(apiErr.Code, apiErr.Status, apiErr.Message)
	return pe
}

// classifyGeminiError maps Gemini API error fields onto the probe taxonomy.
// Gemini reports both quota and rate limits as RESOURCE_EXHAUSTED; the
// message mentions billing only for the former.
func classifyGeminiError(code int, status, message string) ErrorKind {
	msg := strings.ToLower(message)

	switch {
	case code == 401 || code == 403 || status == "UNAUTHENTICATED" || status == "PERMISSION_DENIED":
		return KindInvalidCredential
	case strings.Contains(msg, "api key not valid") || strings.Contains(msg, "api_key_invalid") || strings.Contains(msg, "api key expired"):
		return KindInvalidCredential
	case code == 429 || status == "RESOURCE_EXHAUSTED":
		if strings.Contains(msg, "billing") || (strings.Contains(msg, "quota exceeded for") && strings.Contains(msg, "per day")) {
			return KindQuotaExhausted
		}
		return KindRateLimited
	default:
		return KindUnknown
	}
}
