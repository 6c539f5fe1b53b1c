package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"alfredoptarigan/ai-course-generator/internal/config"
	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/services"
)

// Checks the configured LLM credential from the command line, without starting the server.
func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: "pretty"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	llm, err := services.NewLLMProvider(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize LLM provider")
	}

	fmt.Printf("🔍 Testing %s API connection...\n", llm.Name())

	result := services.NewProbeService(llm).TestConnection(ctx)
	if !result.Success {
		fmt.Printf("❌ %s API test failed: %s (%s)\n", result.Provider, result.Error, result.Code)
		os.Exit(1)
	}

	fmt.Printf("✅ %s API is working correctly!\n", result.Provider)
	fmt.Printf("   Model:    %s\n", result.Model)
	fmt.Printf("   Response: %s\n", result.Message)
	fmt.Printf("   Tokens:   %d prompt, %d completion, %d total\n",
		result.Usage.PromptTokens, result.Usage.CompletionTokens, result.Usage.TotalTokens)
}
