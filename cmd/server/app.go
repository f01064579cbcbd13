package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/intellihealth/api/internal/config"
	"github.com/intellihealth/api/internal/model"
	"github.com/intellihealth/api/internal/platform/csvfile"
	"github.com/intellihealth/api/internal/platform/postgres"
	"github.com/intellihealth/api/internal/service"
	"github.com/intellihealth/api/internal/service/auth"
	"github.com/intellihealth/api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	jwtService  auth.JWTService
	sessions    *service.SessionRegistry
	identity    *service.IdentityService
	assessments *service.AssessmentService
	db          *sql.DB // nil for the csv backend
}

// newApplication wires the application together: model artifacts, storage
// backend, password scheme, token service, and the services on top of them.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	registry, err := model.Load(cfg.Models.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading model artifacts: %w", err)
	}

	users, history, db, err := openStores(cfg.Storage)
	if err != nil {
		return nil, err
	}

	scheme, err := auth.SchemeByName(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("creating JWT service: %w", err)
	}

	sessions := service.NewSessionRegistry()

	return &application{
		config:      cfg,
		logger:      logger,
		jwtService:  jwtService,
		sessions:    sessions,
		identity:    service.NewIdentityService(users, sessions, scheme, logger),
		assessments: service.NewAssessmentService(registry, history, logger),
		db:          db,
	}, nil
}

// openStores builds the identity and history stores for the configured
// backend. For postgres it also connects and applies pending migrations.
func openStores(cfg config.StorageConfig) (store.UserStore, store.HistoryStore, *sql.DB, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, nil, fmt.Errorf("migrating database: %w", err)
		}
		return postgres.NewUserStore(db), postgres.NewHistoryStore(db), db, nil

	default: // "csv"
		users := csvfile.NewUserStore(filepath.Join(cfg.DataDir, "users.csv"))
		history := csvfile.NewHistoryStore(filepath.Join(cfg.DataDir, "health_history.csv"))
		return users, history, nil, nil
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database", "error", err)
		}
	}
}
