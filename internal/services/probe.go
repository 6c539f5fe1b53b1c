package services

import (
	"context"
	"fmt"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

const probeMaxOutputTokens = 20

type ProbeService interface {
	TestConnection(ctx context.Context) *ProbeResult
}

// ProbeResult is the outcome of a connectivity check. On failure Kind and
// Code identify the class of problem and Error is the user-facing message.
type ProbeResult struct {
	Success  bool
	Provider string
	Message  string
	Model    string
	Usage    Usage
	Error    string
	Kind     ErrorKind
	Code     string
}

type probeService struct {
	llm           LLMProvider
	promptBuilder *PromptBuilder
}

func NewProbeService(llm LLMProvider) ProbeService {
	return &probeService{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
	}
}

// TestConnection sends one fixed prompt with zero temperature. It never
// retries and does not touch the network when no credential is configured.
func (p *probeService) TestConnection(ctx context.Context) *ProbeResult {
	provider := p.llm.Name()

	if !p.llm.Configured() {
		return failedProbe(provider, KindMissingCredential, fmt.Sprintf("%s environment variable is not set", p.llm.CredentialEnv()))
	}

	resp, err := p.llm.Generate(ctx, GenerateRequest{
		SystemInstruction: p.promptBuilder.BuildProbeSystemInstruction(provider),
		Prompt:            probeUserPrompt,
		Temperature:       0,
		MaxOutputTokens:   probeMaxOutputTokens,
		DisableThinking:   true,
	})
	if err != nil {
		kind := KindOf(err)
		logger.Error().Err(err).Str("provider", provider).Str("kind", string(kind)).Msg("LLM connectivity test failed")
		return failedProbe(provider, kind, p.messageFor(kind, err))
	}

	logger.Info().Str("provider", provider).Str("model", resp.Model).Msg("LLM connectivity test succeeded")

	return &ProbeResult{
		Success:  true,
		Provider: provider,
		Message:  resp.Text,
		Model:    resp.Model,
		Usage:    resp.Usage,
	}
}

func (p *probeService) messageFor(kind ErrorKind, err error) string {
	switch kind {
	case KindMissingCredential:
		return fmt.Sprintf("%s environment variable is not set", p.llm.CredentialEnv())
	case KindInvalidCredential:
		return "Invalid API key provided"
	case KindQuotaExhausted:
		return fmt.Sprintf("Insufficient quota - check your %s billing", p.llm.Name())
	case KindRateLimited:
		return "Rate limit exceeded - too many requests"
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Unknown error occurred"
}

func failedProbe(provider string, kind ErrorKind, message string) *ProbeResult {
	return &ProbeResult{
		Success:  false,
		Provider: provider,
		Error:    message,
		Kind:     kind,
		Code:     kind.Code(),
	}
}
