package jobs

import (
	"gameshelf-backend/internal/config"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
	"gameshelf-backend/internal/service"
	"gameshelf-backend/internal/utils"
)

// JobRunner coordinates the scheduled reminder sweeps. The in-process
// reminder timers die with the process; these sweeps re-derive due reminders
// from the durable rental state so a restart never loses them.
type JobRunner struct {
	repo     repository.StateRepository
	emailSvc service.EmailService
	calendar utils.Calendar
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(repo repository.StateRepository, emailSvc service.EmailService, calendar utils.Calendar, cfg *config.Config) *JobRunner {
	return &JobRunner{
		repo:     repo,
		emailSvc: emailSvc,
		calendar: calendar,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every sweep once (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendPickupReminders()
	jr.SendReturnReminders()
}
