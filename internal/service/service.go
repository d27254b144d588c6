package service

import (
	"context"
	"time"

	"gameshelf-backend/internal/domain"
)

type RentalService interface {
	// CreateRental books one game for [days] calendar days starting at pickup.
	// Returns domain.ErrInvalidDuration when days is outside the allowed
	// range; payment is mocked as always succeeding.
	CreateRental(ctx context.Context, game domain.BoardGame, pickup time.Time, days int) (*domain.Rental, error)

	// CreateBundleRentals books each bundle game independently. There is no
	// atomicity across the set: rentals created before a failure stay
	// created. Callers get whatever was booked plus the first error.
	CreateBundleRentals(ctx context.Context, games []domain.BoardGame, pickup time.Time, days int) ([]domain.Rental, error)

	// MarkPickedUp advances a booked rental to PICKED_UP. An unknown or
	// already-archived ID is a benign no-op (stale UI racing current state)
	// and returns nil.
	MarkPickedUp(ctx context.Context, rentalID string) *domain.Rental

	// MarkReturned archives an active rental: status RETURNED, deposit
	// refunded, moved to the front of the past list. Unknown IDs no-op and
	// return nil, so calling twice is safe.
	MarkReturned(ctx context.Context, rentalID string) *domain.Rental

	ActiveRentals() []domain.Rental
	PastRentals() []domain.Rental
}

type OnboardingService interface {
	// SignedIn moves auth -> profile. Name fields are always cleared: the
	// upstream identity provider's display name is never trusted, the user
	// re-enters it on the profile screen.
	SignedIn(ctx context.Context, email string) domain.AppStage

	// CompleteProfile moves profile -> location. Inputs are pre-validated by
	// the caller (non-blank after trimming); the machine does not re-check.
	CompleteProfile(ctx context.Context, firstName, lastName, phone string) domain.AppStage

	// SetLocation classifies the resolved location text. A supported city
	// moves location -> celebration and returns a random city fact; anything
	// else moves to unavailable, keeping the rejected text for display.
	SetLocation(ctx context.Context, location string) (domain.AppStage, string)

	// CompleteCelebration is the timer-driven celebration -> main step.
	CompleteCelebration(ctx context.Context) domain.AppStage

	// ChangeLocation recovers unavailable -> location.
	ChangeLocation(ctx context.Context) domain.AppStage

	// SignOut resets to auth from main or unavailable and clears the profile.
	SignOut(ctx context.Context) domain.AppStage

	Stage() domain.AppStage
	Profile() domain.UserProfile
	CurrentFact() string
}

type AuthService interface {
	// SignIn registers the email on first use (bcrypt-hashed password) and
	// verifies it afterwards, then advances the stage machine and issues a
	// session token.
	SignIn(ctx context.Context, email, password string) (string, domain.AppStage, error)
}

// Notifier is the notification collaborator. The core hands it reminder
// intents fire-and-forget; scheduling failures are logged by callers and
// never propagated.
type Notifier interface {
	Schedule(ctx context.Context, intent domain.ReminderIntent) error
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, to string, rental domain.Rental) error
	SendReminder(ctx context.Context, to, title, body string) error
}

// LocationResolver is the location-services collaborator: it turns a device
// position into a human-readable "City, Region, Country" string. The core
// only ever consumes the resulting text through SetLocation.
type LocationResolver interface {
	Resolve(ctx context.Context, latitude, longitude float64) (string, error)
}
