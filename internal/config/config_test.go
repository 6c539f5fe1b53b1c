package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LLM_PROVIDER", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
		"MAX_FILE_SIZE", "ALLOWED_MIME_TYPES", "LLM_MAX_ATTEMPTS", "UPLOAD_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, DefaultAllowedMIMETypes, cfg.Storage.AllowedMIMETypes)
	assert.Equal(t, 1, cfg.LLM.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.LLM.RetryInitialDelay)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_PROVIDER", "Claude")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("ALLOWED_MIME_TYPES", " application/pdf , ,text/plain")
	t.Setenv("LLM_RETRY_INITIAL_DELAY", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderClaude, cfg.LLM.Provider)
	assert.Equal(t, int64(1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, []string{"application/pdf", "text/plain"}, cfg.Storage.AllowedMIMETypes)
	assert.Equal(t, 2*time.Second, cfg.LLM.RetryInitialDelay)

	key, envVar := cfg.LLM.APIKey()
	assert.Equal(t, "sk-ant-test", key)
	assert.Equal(t, "ANTHROPIC_API_KEY", envVar)
}

func TestLLMConfig_APIKey_Gemini(t *testing.T) {
	c := LLMConfig{Provider: ProviderGemini, GeminiAPIKey: "g-key", AnthropicAPIKey: "a-key"}

	key, envVar := c.APIKey()
	assert.Equal(t, "g-key", key)
	assert.Equal(t, "GEMINI_API_KEY", envVar)
}

func TestLoad_MissingDotEnvIsLogged(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	previous := logger.Logger
	logger.Logger = zerolog.New(&buf)
	t.Cleanup(func() { logger.Logger = previous })

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "No .env file found")
}
