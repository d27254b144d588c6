package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/utils"
)

type rentalService struct {
	state              *AppState
	calendar           utils.Calendar
	notifier           Notifier
	emailSvc           EmailService
	confirmationPrefix string
	pickupLead         time.Duration
	returnHour         int
}

func NewRentalService(
	state *AppState,
	calendar utils.Calendar,
	notifier Notifier,
	emailSvc EmailService,
	confirmationPrefix string,
	pickupLeadMinutes int,
	returnHour int,
) RentalService {
	return &rentalService{
		state:              state,
		calendar:           calendar,
		notifier:           notifier,
		emailSvc:           emailSvc,
		confirmationPrefix: confirmationPrefix,
		pickupLead:         time.Duration(pickupLeadMinutes) * time.Minute,
		returnHour:         returnHour,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, game domain.BoardGame, pickup time.Time, days int) (*domain.Rental, error) {
	s.state.mu.Lock()
	rental, err := s.create(ctx, game, pickup, days)
	to := s.state.profile.Email
	s.state.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.dispatchSideEffects(ctx, *rental, to)
	return rental, nil
}

func (s *rentalService) CreateBundleRentals(ctx context.Context, games []domain.BoardGame, pickup time.Time, days int) ([]domain.Rental, error) {
	s.state.mu.Lock()

	// Each game is booked independently. A failure partway through does not
	// roll back rentals already created; callers get the partial set and the
	// error. Stronger batch-or-none semantics were considered and rejected to
	// keep the observed behavior.
	var created []domain.Rental
	var bookErr error
	for _, game := range games {
		rental, err := s.create(ctx, game, pickup, days)
		if err != nil {
			bookErr = fmt.Errorf("bundle booking stopped at %s: %w", game.Title, err)
			break
		}
		created = append(created, *rental)
	}
	to := s.state.profile.Email
	s.state.mu.Unlock()

	for _, rental := range created {
		s.dispatchSideEffects(ctx, rental, to)
	}
	return created, bookErr
}

// create books a single rental. Caller holds the state mutex.
func (s *rentalService) create(ctx context.Context, game domain.BoardGame, pickup time.Time, days int) (*domain.Rental, error) {
	if days < domain.MinRentalDays || days > domain.MaxRentalDays {
		return nil, domain.ErrInvalidDuration
	}

	now := s.calendar.Now()
	rental := domain.Rental{
		ID:               uuid.New().String(),
		Game:             game,
		PickupDate:       pickup,
		ReturnDate:       s.calendar.AddDays(pickup, days),
		Days:             days,
		DailyPrice:       game.DailyPrice,
		Deposit:          game.Deposit,
		TotalPaid:        utils.RoundCents(utils.SingleRentalTotal(game, days)),
		Status:           domain.RentalStatusBooked,
		PaymentStatus:    domain.PaymentStatusPaid, // payment is mocked, it always succeeds
		ConfirmationCode: utils.ConfirmationCode(s.confirmationPrefix, now),
		CreatedOn:        now,
	}

	s.state.rentals.Active = append(s.state.rentals.Active, rental)
	s.state.persist(ctx)

	logger.Info("Rental created",
		"rental_id", rental.ID,
		"game", game.Title,
		"days", days,
		"total_paid", rental.TotalPaid,
		"confirmation_code", rental.ConfirmationCode)

	return &rental, nil
}

// dispatchSideEffects hands the reminder intents to the notification
// collaborator and sends the confirmation email. It runs after the state
// mutex is released: the rental is already recorded, and a slow SMTP host
// must not stall other operations. Failures are logged and never block the
// rental from being recorded.
func (s *rentalService) dispatchSideEffects(ctx context.Context, rental domain.Rental, to string) {
	for _, intent := range s.reminderIntents(rental) {
		if err := s.notifier.Schedule(ctx, intent); err != nil {
			logger.Warn("Failed to schedule reminder", "reminder_id", intent.ID, "error", err)
		}
	}

	if to != "" {
		if err := s.emailSvc.SendRentalConfirmation(ctx, to, rental); err != nil {
			logger.Warn("Failed to send rental confirmation email", "rental_id", rental.ID, "error", err)
		}
	}
}

// reminderIntents builds the two reminders every rental gets: one hour before
// pickup, and at a fixed local hour on the return day.
func (s *rentalService) reminderIntents(rental domain.Rental) []domain.ReminderIntent {
	ret := rental.ReturnDate
	returnAt := time.Date(ret.Year(), ret.Month(), ret.Day(), s.returnHour, 0, 0, 0, ret.Location())

	return []domain.ReminderIntent{
		{
			ID:     rental.ID + "-pickup",
			Title:  "Pickup reminder",
			Body:   fmt.Sprintf("%s is ready for pickup in one hour. Confirmation code %s.", rental.Game.Title, rental.ConfirmationCode),
			FireAt: rental.PickupDate.Add(-s.pickupLead),
		},
		{
			ID:     rental.ID + "-return",
			Title:  "Return reminder",
			Body:   fmt.Sprintf("%s is due back today. Your %.2f deposit is refunded on return.", rental.Game.Title, rental.Deposit),
			FireAt: returnAt,
		},
	}
}

func (s *rentalService) MarkPickedUp(ctx context.Context, rentalID string) *domain.Rental {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.rentals.Active {
		if s.state.rentals.Active[i].ID != rentalID {
			continue
		}
		s.state.rentals.Active[i].Status = domain.RentalStatusPickedUp
		s.state.persist(ctx)
		rental := s.state.rentals.Active[i]
		logger.Info("Rental picked up", "rental_id", rentalID, "game", rental.Game.Title)
		return &rental
	}

	// Not in the active collection: a stale UI acting on old state, not an
	// error.
	logger.Debug("MarkPickedUp ignored, rental not active", "rental_id", rentalID)
	return nil
}

func (s *rentalService) MarkReturned(ctx context.Context, rentalID string) *domain.Rental {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.rentals.Active {
		if s.state.rentals.Active[i].ID != rentalID {
			continue
		}
		rental := s.state.rentals.Active[i]
		rental.Status = domain.RentalStatusReturned
		rental.PaymentStatus = domain.PaymentStatusRefunded

		s.state.rentals.Active = append(s.state.rentals.Active[:i], s.state.rentals.Active[i+1:]...)
		// Most-recent-first archive ordering.
		s.state.rentals.Past = append([]domain.Rental{rental}, s.state.rentals.Past...)
		s.state.persist(ctx)

		logger.Info("Rental returned", "rental_id", rentalID, "game", rental.Game.Title, "deposit_refunded", rental.Deposit)
		return &rental
	}

	logger.Debug("MarkReturned ignored, rental not active", "rental_id", rentalID)
	return nil
}

func (s *rentalService) ActiveRentals() []domain.Rental {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]domain.Rental, len(s.state.rentals.Active))
	copy(out, s.state.rentals.Active)
	return out
}

func (s *rentalService) PastRentals() []domain.Rental {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]domain.Rental, len(s.state.rentals.Past))
	copy(out, s.state.rentals.Past)
	return out
}
