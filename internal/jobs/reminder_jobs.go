package jobs

import (
	"context"
	"fmt"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
)

// SendPickupReminders emails a reminder for every booked rental whose pickup
// day is today.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()

		profile, err := jr.repo.LoadProfile(ctx)
		if err != nil || profile.Email == "" {
			logger.Debug("Skipping pickup reminders, no signed-in user", "error", err)
			return
		}

		state, err := jr.repo.LoadRentalState(ctx)
		if err != nil {
			logger.Error("Failed to load rental state", "error", err)
			return
		}

		today := jr.calendar.Now()
		count := 0
		for _, rental := range state.Active {
			if rental.Status != domain.RentalStatusBooked {
				continue
			}
			py, pm, pd := rental.PickupDate.Date()
			ty, tm, td := today.Date()
			if py != ty || pm != tm || pd != td {
				continue
			}

			body := fmt.Sprintf("%s is ready for pickup today at %s. Confirmation code %s.",
				rental.Game.Title,
				rental.PickupDate.Format("3:04 PM"),
				rental.ConfirmationCode)
			if err := jr.emailSvc.SendReminder(ctx, profile.Email, "Pickup reminder", body); err != nil {
				logger.Warn("Failed to send pickup reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Pickup reminders sent", "count", count)
	})
}

// SendReturnReminders emails a reminder for every active rental due back
// today.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		profile, err := jr.repo.LoadProfile(ctx)
		if err != nil || profile.Email == "" {
			logger.Debug("Skipping return reminders, no signed-in user", "error", err)
			return
		}

		state, err := jr.repo.LoadRentalState(ctx)
		if err != nil {
			logger.Error("Failed to load rental state", "error", err)
			return
		}

		today := jr.calendar.Now()
		count := 0
		for _, rental := range state.Active {
			ry, rm, rd := rental.ReturnDate.Date()
			ty, tm, td := today.Date()
			if ry != ty || rm != tm || rd != td {
				continue
			}

			body := fmt.Sprintf("%s is due back today. Your $%.2f deposit is refunded on return.",
				rental.Game.Title, rental.Deposit)
			if err := jr.emailSvc.SendReminder(ctx, profile.Email, "Return reminder", body); err != nil {
				logger.Warn("Failed to send return reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Return reminders sent", "count", count)
	})
}
