package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/ai-course-generator/internal/config"
	"alfredoptarigan/ai-course-generator/internal/logger"
)

// LLMProvider is a generative model backend. One instance is created at
// startup and shared by all requests.
type LLMProvider interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	// Configured reports whether a credential is present.
	Configured() bool
	Name() string
	// CredentialEnv is the environment variable holding the credential.
	CredentialEnv() string
}

type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	Temperature       float32
	MaxOutputTokens   int32
	// JSON asks for a JSON-only reply when the backend supports it.
	JSON              bool
	// DisableThinking turns off model reasoning where the backend has it, so
	// a small MaxOutputTokens is spent on the visible reply.
	DisableThinking   bool
}

type GenerateResponse struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewLLMProvider builds the provider selected in cfg. A provider without a
// credential is still returned so the server can start and the probe can
// report the missing key.
func NewLLMProvider(ctx context.Context, cfg config.LLMConfig) (LLMProvider, error) {
	apiKey, envVar := cfg.APIKey()

	switch cfg.Provider {
	case config.ProviderGemini:
		if apiKey == "" {
			return &unconfiguredProvider{name: "Gemini", envVar: envVar}, nil
		}
		return NewGeminiProvider(ctx, GeminiOptions{APIKey: apiKey, Model: cfg.Model})
	case config.ProviderClaude:
		if apiKey == "" {
			return &unconfiguredProvider{name: "Claude", envVar: envVar}, nil
		}
		return NewClaudeProvider(ClaudeOptions{APIKey: apiKey, Model: cfg.Model}), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// SupportedProviders lists the values accepted for LLM_PROVIDER.
func SupportedProviders() []string {
	return []string{config.ProviderGemini, config.ProviderClaude}
}

type unconfiguredProvider struct {
	name   string
	envVar string
}

func (p *unconfiguredProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return nil, &ProviderError{
		Provider: p.name,
		Kind:     KindMissingCredential,
		Err:      fmt.Errorf("%s environment variable is not set: %w", p.envVar, ErrMissingCredential),
	}
}

func (p *unconfiguredProvider) Configured() bool { return false }

func (p *unconfiguredProvider) Name() string { return p.name }

func (p *unconfiguredProvider) CredentialEnv() string { return p.envVar }

// RetryPolicy controls generateWithRetry. MaxAttempts of 1 or less means a
// single call with no retry.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// generateWithRetry re-issues the call only for rate-limit failures, with
// exponential backoff. Malformed or schema-violating output is never retried here.
func generateWithRetry(ctx context.Context, provider LLMProvider, req GenerateRequest, policy RetryPolicy) (*GenerateResponse, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := provider.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == attempts || KindOf(err) != KindRateLimited {
			break
		}

		backoff := policy.InitialDelay * time.Duration(1<<(attempt-1))
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Str("provider", provider.Name()).
			Msg("LLM call rate limited, retrying")

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		}
	}

	return nil, lastErr
}
