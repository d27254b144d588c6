package repository

import (
	"context"

	"gameshelf-backend/internal/domain"
)

// Record keys for the durable key-value store.
const (
	RecordRentalState = "rental_state"
	RecordProfile     = "profile"
	RecordStage       = "stage"
	RecordCredentials = "credentials"
)

// StateRepository is the persistence collaborator: a durable key-value store
// holding JSON-serialized snapshots of the application state.
//
// Load methods never fail on a missing or corrupt record; they return the
// type-appropriate empty default (empty rental state, blank profile,
// stage=AUTH). An error is returned only for genuine I/O failures, and
// callers are expected to fall back to defaults then too.
type StateRepository interface {
	LoadRentalState(ctx context.Context) (domain.RentalState, error)
	SaveRentalState(ctx context.Context, state domain.RentalState) error

	LoadProfile(ctx context.Context) (domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error

	LoadStage(ctx context.Context) (domain.AppStage, error)
	SaveStage(ctx context.Context, stage domain.AppStage) error

	LoadCredentials(ctx context.Context) (domain.Credentials, error)
	SaveCredentials(ctx context.Context, creds domain.Credentials) error

	// SaveSnapshot persists stage, profile and rental state as one logical
	// save. The postgres backend does this in a single transaction.
	SaveSnapshot(ctx context.Context, snap domain.Snapshot) error
}
