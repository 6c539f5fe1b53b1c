package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/ai-course-generator/internal/logger"
)

const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// DefaultAllowedMIMETypes is the upload allow-list: PDF, legacy Word and Word XML.
var DefaultAllowedMIMETypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	AllowOrigins string
}

type LLMConfig struct {
	Provider          string
	Model             string
	GeminiAPIKey      string
	AnthropicAPIKey   string
	MaxAttempts       int
	RetryInitialDelay time.Duration
}

type StorageConfig struct {
	UploadPath       string
	MaxFileSize      int64
	AllowedMIMETypes []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3001"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "120s"),
			BodyLimit:    getEnvAsInt("BODY_LIMIT", 10*1024*1024),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		LLM: LLMConfig{
			Provider:          strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
			Model:             getEnv("LLM_MODEL", ""),
			GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
			AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
			MaxAttempts:       getEnvAsInt("LLM_MAX_ATTEMPTS", 1),
			RetryInitialDelay: getEnvAsDuration("LLM_RETRY_INITIAL_DELAY", "2s"),
		},
		Storage: StorageConfig{
			UploadPath:       getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:      getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024),
			AllowedMIMETypes: getEnvAsList("ALLOWED_MIME_TYPES", DefaultAllowedMIMETypes),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
	}
}

// APIKey returns the credential of the selected provider and the
// environment variable it is read from.
func (c *LLMConfig) APIKey() (key string, envVar string) {
	if c.Provider == ProviderClaude {
		return c.AnthropicAPIKey, "ANTHROPIC_API_KEY"
	}
	return c.GeminiAPIKey, "GEMINI_API_KEY"
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
