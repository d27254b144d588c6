package service

import (
	"context"
	"sync"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
)

// AppState is the single owner of all mutable domain state: the onboarding
// stage, the user profile, and the active/past rental collections. Every
// mutating operation in the rental and onboarding services runs under its
// mutex, which gives the linearizable single-writer access the design
// assumes even though handlers arrive on multiple goroutines.
type AppState struct {
	mu      sync.Mutex
	stage   domain.AppStage
	profile domain.UserProfile
	rentals domain.RentalState
	repo    repository.StateRepository
}

func NewAppState(repo repository.StateRepository) *AppState {
	return &AppState{
		stage: domain.StageAuth,
		repo:  repo,
	}
}

// Restore loads the persisted records so the application resumes at the
// correct stage after a restart. Read failures fall back to defaults.
func (a *AppState) Restore(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stage, err := a.repo.LoadStage(ctx)
	if err != nil {
		logger.Warn("Failed to load stage record, starting at AUTH", "error", err)
		stage = domain.StageAuth
	}
	a.stage = stage

	profile, err := a.repo.LoadProfile(ctx)
	if err != nil {
		logger.Warn("Failed to load profile record, starting blank", "error", err)
		profile = domain.UserProfile{}
	}
	a.profile = profile

	rentals, err := a.repo.LoadRentalState(ctx)
	if err != nil {
		logger.Warn("Failed to load rental state record, starting empty", "error", err)
		rentals = domain.RentalState{}
	}
	a.rentals = rentals

	logger.Info("Application state restored",
		"stage", a.stage,
		"active_rentals", len(a.rentals.Active),
		"past_rentals", len(a.rentals.Past))
}

// persist writes the full snapshot. Durability is best-effort: a write
// failure is logged and swallowed, never surfaced to the mutation that
// triggered it.
func (a *AppState) persist(ctx context.Context) {
	snap := domain.Snapshot{
		Stage:   a.stage,
		Profile: a.profile,
		Rentals: a.rentals,
	}
	if err := a.repo.SaveSnapshot(ctx, snap); err != nil {
		logger.Warn("Failed to persist state snapshot", "error", err)
	}
}
