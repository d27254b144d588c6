package service

import (
	"context"
	"time"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
)

// reminderScheduler is the in-process Notifier implementation: it holds a
// timer per intent and delivers through the email service when the timer
// fires. Timers do not survive a restart; the cron sweep jobs are the
// restart-safe backstop for reminders that would otherwise be lost.
type reminderScheduler struct {
	emailSvc EmailService
	// recipient resolves the current user's email at fire time, since the
	// profile can change between scheduling and delivery.
	recipient func() string
}

func NewReminderScheduler(emailSvc EmailService, recipient func() string) Notifier {
	return &reminderScheduler{
		emailSvc:  emailSvc,
		recipient: recipient,
	}
}

// logNotifier records intents in the log instead of delivering them. It is
// the fallback when no outbound mail sender is configured.
type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Schedule(ctx context.Context, intent domain.ReminderIntent) error {
	logger.Info("Reminder (log only)", "reminder_id", intent.ID, "title", intent.Title, "fire_at", intent.FireAt)
	return nil
}

func (r *reminderScheduler) Schedule(ctx context.Context, intent domain.ReminderIntent) error {
	delay := time.Until(intent.FireAt)
	if delay < 0 {
		// Fire-at already passed (e.g. same-hour pickup); deliver now.
		delay = 0
	}

	time.AfterFunc(delay, func() {
		to := r.recipient()
		if to == "" {
			logger.Debug("Dropping reminder, no signed-in user", "reminder_id", intent.ID)
			return
		}
		if err := r.emailSvc.SendReminder(context.Background(), to, intent.Title, intent.Body); err != nil {
			logger.Warn("Failed to deliver reminder", "reminder_id", intent.ID, "error", err)
		}
	})

	logger.Debug("Reminder scheduled", "reminder_id", intent.ID, "fire_at", intent.FireAt)
	return nil
}
