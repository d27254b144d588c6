package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
)

// Store persists each record as a JSONB row in a single app_state table,
// keyed by record name.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the app_state table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

// load reads a record into out. A missing row or corrupt value leaves out at
// its default and is not an error.
func (s *Store) load(ctx context.Context, key string, out any) error {
	var data []byte
	query := `SELECT value FROM app_state WHERE key = $1`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s record: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Discarding corrupt state record", "record", key, "error", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", key, err)
	}
	query := `INSERT INTO app_state (key, value, updated_on) VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = $2, updated_on = $3`
	if _, err := s.db.ExecContext(ctx, query, key, data, time.Now()); err != nil {
		return fmt.Errorf("failed to write %s record: %w", key, err)
	}
	return nil
}

func (s *Store) LoadRentalState(ctx context.Context) (domain.RentalState, error) {
	var state domain.RentalState
	err := s.load(ctx, repository.RecordRentalState, &state)
	return state, err
}

func (s *Store) SaveRentalState(ctx context.Context, state domain.RentalState) error {
	return s.save(ctx, repository.RecordRentalState, state)
}

func (s *Store) LoadProfile(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := s.load(ctx, repository.RecordProfile, &profile)
	return profile, err
}

func (s *Store) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return s.save(ctx, repository.RecordProfile, profile)
}

func (s *Store) LoadStage(ctx context.Context) (domain.AppStage, error) {
	var stage domain.AppStage
	if err := s.load(ctx, repository.RecordStage, &stage); err != nil {
		return domain.StageAuth, err
	}
	if !stage.Valid() {
		return domain.StageAuth, nil
	}
	return stage, nil
}

func (s *Store) SaveStage(ctx context.Context, stage domain.AppStage) error {
	return s.save(ctx, repository.RecordStage, stage)
}

func (s *Store) LoadCredentials(ctx context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{}
	err := s.load(ctx, repository.RecordCredentials, &creds)
	return creds, err
}

func (s *Store) SaveCredentials(ctx context.Context, creds domain.Credentials) error {
	return s.save(ctx, repository.RecordCredentials, creds)
}

// SaveSnapshot upserts stage, profile and rental state in one transaction so
// a stage transition's save is all-or-nothing.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	records := []struct {
		key   string
		value any
	}{
		{repository.RecordStage, snap.Stage},
		{repository.RecordProfile, snap.Profile},
		{repository.RecordRentalState, snap.Rentals},
	}

	query := `INSERT INTO app_state (key, value, updated_on) VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = $2, updated_on = $3`
	now := time.Now()
	for _, rec := range records {
		data, err := json.Marshal(rec.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", rec.key, err)
		}
		if _, err := tx.ExecContext(ctx, query, rec.key, data, now); err != nil {
			return fmt.Errorf("failed to write %s record: %w", rec.key, err)
		}
	}

	return tx.Commit()
}
