package main

import (
	"log"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/server"

	"go.uber.org/zap"
)

// @title           Task Service API
// @version         1.0
// @description     Projects, tasks, subtasks, comments and attachments with deadline alerts.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using system environment variables")
	}
	if !cfg.AuthEnabled() {
		logger.Warn("JWT_SECRET not set, API is unauthenticated")
	}

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	s.Run()
}
