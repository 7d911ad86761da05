package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MessageComply/ComplyGate/pkg/app/evaluation"
	"github.com/MessageComply/ComplyGate/pkg/app/report"
	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/extraction"
	handlers "github.com/MessageComply/ComplyGate/pkg/handlers/http"
	infraLogger "github.com/MessageComply/ComplyGate/pkg/infra/logger"
	"github.com/MessageComply/ComplyGate/pkg/middleware"
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
	"github.com/MessageComply/ComplyGate/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	registry := rulesets.NewRegistry()
	if err := registry.ApplyOverrides(cfg.RuleSets); err != nil {
		logger.Fatalf("Invalid ruleset overrides: %v", err)
	}
	if err := registry.Validate(); err != nil {
		logger.Fatalf("Invalid rule table: %v", err)
	}

	// evaluation pipeline
	requirementEvaluator := evaluation.NewRequirementEvaluator(cfg.Thresholds, logger)
	documentEvaluator := evaluation.NewDocumentEvaluator(registry, requirementEvaluator, logger)
	composer := report.NewComposer(registry)

	// extraction
	urlExtractor := extraction.NewURLExtractor(cfg.Extraction, logger)
	ocrClient := extraction.NewOCRClient(cfg.Extraction, logger)

	middlewareTransport := middleware.Transport{
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger),
		RecoverMiddleware:   middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		EvaluateDocumentHandler:   handlers.NewEvaluateDocumentHandler(logger, documentEvaluator, composer),
		EvaluateSubmissionHandler: handlers.NewEvaluateSubmissionHandler(logger, documentEvaluator, composer, urlExtractor, ocrClient),
		ListRuleSetsHandler:       handlers.NewListRuleSetsHandler(logger, registry),
		GetVersionHandler:         handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewCheckerServer(server.CheckerServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
