package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"gameshelf-backend/internal/config"
	"gameshelf-backend/internal/jobs"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
	filerepo "gameshelf-backend/internal/repository/file"
	"gameshelf-backend/internal/repository/postgres"
	"gameshelf-backend/internal/scheduler"
	"gameshelf-backend/internal/service"
	"gameshelf-backend/internal/utils"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-pickup-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GameShelf Reminder Runner...", "log_level", cfg.Log.Level)

	// Initialize State Repository
	var repo repository.StateRepository
	switch cfg.Storage.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(repo, emailSvc, utils.SystemCalendar(), cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Reminder scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down reminder scheduler...")
	cronScheduler.Stop()
	logger.Info("Reminder scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-pickup-reminders":
		jobRunner.SendPickupReminders()
	case "send-return-reminders":
		jobRunner.SendReturnReminders()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
	}
}
