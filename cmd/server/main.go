// Package main implements the entry point for the IntelliHealth API server,
// which scores daily physiological and activity measurements into stress,
// sleep-quality, and calorie-expenditure indices and keeps a per-user
// history of completed assessments.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/intellihealth/api/internal/config"
	"github.com/intellihealth/api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_driver", cfg.Storage.Driver,
		"password_scheme", cfg.Auth.PasswordScheme)

	// Model artifacts load once here; a missing or unreadable artifact is
	// fatal, since serving with partially loaded models is never allowed.
	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
