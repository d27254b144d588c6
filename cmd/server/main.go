package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "gameshelf-backend/internal/api/http"
	"gameshelf-backend/internal/config"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
	filerepo "gameshelf-backend/internal/repository/file"
	"gameshelf-backend/internal/repository/postgres"
	"gameshelf-backend/internal/security"
	"gameshelf-backend/internal/service"
	"gameshelf-backend/internal/utils"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GameShelf Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Storage configuration", "type", cfg.Storage.Type)

	// Initialize State Repository
	var repo repository.StateRepository
	switch cfg.Storage.Type {
	case "postgres":
		logger.Debug("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}

		store := postgres.NewStore(db)
		if err := store.Migrate(context.Background()); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			log.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Info("Database connection established")
		repo = store
	default:
		logger.Info("Using file storage", "state_dir", cfg.Storage.StateDir)
		store, err := filerepo.NewStore(cfg.Storage.StateDir)
		if err != nil {
			logger.Error("Failed to initialize file storage", "error", err)
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		repo = store
	}

	// Restore persisted state so the app resumes at the right stage
	state := service.NewAppState(repo)
	state.Restore(context.Background())

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	onboardingSvc := service.NewOnboardingService(state, cfg.Rental.SupportedCity, *cfg.Rental.CelebrationDelaySeconds)
	authSvc := service.NewAuthService(repo, tokenManager, onboardingSvc)
	var notifier service.Notifier
	if cfg.SMTP.From == "" {
		logger.Warn("No SMTP sender configured, reminders will only be logged")
		notifier = service.NewLogNotifier()
	} else {
		notifier = service.NewReminderScheduler(emailSvc, func() string {
			return onboardingSvc.Profile().Email
		})
	}
	rentalSvc := service.NewRentalService(
		state,
		utils.SystemCalendar(),
		notifier,
		emailSvc,
		cfg.Rental.ConfirmationPrefix,
		cfg.Rental.PickupReminderLeadMins,
		*cfg.Rental.ReturnReminderHour,
	)

	// Initialize HTTP handlers
	onboardingHandler := api.NewOnboardingHandler(authSvc, onboardingSvc, service.NewMockLocationResolver())
	rentalHandler := api.NewRentalHandler(rentalSvc)

	router := api.NewRouter(onboardingHandler, rentalHandler, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
