package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

const defaultClaudeMaxTokens = 4096

type ClaudeOptions struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

type claudeProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

func NewClaudeProvider(opts ClaudeOptions) LLMProvider {
	// The SDK retries 429/5xx on its own by default; retries are decided by RetryPolicy instead.
	requestOptions := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(opts.BaseURL))
	}

	model := anthropic.ModelClaude3_7SonnetLatest
	if opts.Model != "" {
		model = anthropic.Model(opts.Model)
	}

	return &claudeProvider{
		client: anthropic.NewClient(requestOptions...),
		model:  model,
	}
}

// Generate implements LLMProvider.
func (c *claudeProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	maxTokens := int64(req.MaxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = defaultClaudeMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.SystemInstruction != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemInstruction}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		logger.Error().Err(err).Str("model", string(c.model)).Msg("Claude API error")
		return nil, c.wrapError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	out := &GenerateResponse{
		Text:  text.String(),
		Model: string(message.Model),
		Usage: Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}

	logger.Debug().
		Str("model", out.Model).
		Int("chars", len(out.Text)).
		Int("total_tokens", out.Usage.TotalTokens).
		Msg("Claude response received")

	return out, nil
}

func (c *claudeProvider) Configured() bool { return true }

func (c *claudeProvider) Name() string { return "Claude" }

func (c *claudeProvider) CredentialEnv() string { return "ANTHROPIC_API_KEY" }

func (c *claudeProvider) wrapError(err error) error {
	pe := &ProviderError{Provider: c.Name(), Kind: KindUnknown, Err: err}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) || apiErr == nil {
		return pe
	}

	pe.Status = apiErr.StatusCode
	pe.Kind = classifyClaudeError(apiErr.StatusCode, err.Error())
	return pe
}

func classifyClaudeError(status int, message string) ErrorKind {
	msg := strings.ToLower(message)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindInvalidCredential
	case status == http.StatusPaymentRequired || strings.Contains(msg, "credit balance"):
		return KindQuotaExhausted
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindUnknown
	}
}
