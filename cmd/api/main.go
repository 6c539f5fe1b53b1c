package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/ai-course-generator/internal/config"
	"alfredoptarigan/ai-course-generator/internal/handlers"
	"alfredoptarigan/ai-course-generator/internal/logger"
	"alfredoptarigan/ai-course-generator/internal/server"
	"alfredoptarigan/ai-course-generator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to create upload directory")
	}

	pdfParser := services.NewPDFParserService()

	schemaValidator, err := services.NewSchemaValidator()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to compile output schemas")
	}

	// One model client for the whole process
	llm, err := services.NewLLMProvider(context.Background(), cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Strs("supported", services.SupportedProviders()).Msg("❌ Failed to initialize LLM provider")
	}
	if !llm.Configured() {
		logger.Warn().
			Str("provider", llm.Name()).
			Msgf("⚠️  %s is not set; model calls will fail until it is configured", llm.CredentialEnv())
	} else {
		logger.Info().Str("provider", llm.Name()).Msg("✅ LLM provider initialized")
	}

	retry := services.RetryPolicy{
		MaxAttempts:  cfg.LLM.MaxAttempts,
		InitialDelay: cfg.LLM.RetryInitialDelay,
	}
	analyzer := services.NewAnalyzerService(llm, schemaValidator, retry)
	courseGenerator := services.NewCourseGeneratorService(llm, schemaValidator, retry)
	probe := services.NewProbeService(llm)

	// Initialize handlers
	app := server.NewApp(cfg, server.Handlers{
		Analyze: handlers.NewAnalyzeHandler(
			storageService,
			pdfParser,
			analyzer,
			cfg.Storage.MaxFileSize,
			cfg.Storage.AllowedMIMETypes,
		),
		Course: handlers.NewCourseHandler(courseGenerator),
		Probe:  handlers.NewProbeHandler(probe),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msgf("🚀 %s starting", server.AppName)
	for _, endpoint := range server.Endpoints {
		logger.Info().Msgf("   %s", endpoint)
	}

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
