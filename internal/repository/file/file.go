package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/logger"
	"gameshelf-backend/internal/repository"
)

// Store persists each record as a JSON file in a state directory. This is the
// default backend for the single-device demo; the postgres backend serves
// deployments that want a real database.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed and returns a file store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(record string) string {
	return filepath.Join(s.dir, record+".json")
}

// load reads a record into out. A missing or unparseable file leaves out at
// its default and is not an error; corrupt records are logged once on read.
func (s *Store) load(record string, out any) error {
	data, err := os.ReadFile(s.path(record))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s record: %w", record, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Discarding corrupt state record", "record", record, "error", err)
	}
	return nil
}

// save writes a record through a temp file and rename so a crash mid-write
// never leaves a truncated record behind.
func (s *Store) save(record string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", record, err)
	}
	tmp := s.path(record) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s record: %w", record, err)
	}
	if err := os.Rename(tmp, s.path(record)); err != nil {
		return fmt.Errorf("failed to replace %s record: %w", record, err)
	}
	return nil
}

func (s *Store) LoadRentalState(ctx context.Context) (domain.RentalState, error) {
	var state domain.RentalState
	err := s.load(repository.RecordRentalState, &state)
	return state, err
}

func (s *Store) SaveRentalState(ctx context.Context, state domain.RentalState) error {
	return s.save(repository.RecordRentalState, state)
}

func (s *Store) LoadProfile(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := s.load(repository.RecordProfile, &profile)
	return profile, err
}

func (s *Store) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return s.save(repository.RecordProfile, profile)
}

func (s *Store) LoadStage(ctx context.Context) (domain.AppStage, error) {
	var stage domain.AppStage
	if err := s.load(repository.RecordStage, &stage); err != nil {
		return domain.StageAuth, err
	}
	if !stage.Valid() {
		return domain.StageAuth, nil
	}
	return stage, nil
}

func (s *Store) SaveStage(ctx context.Context, stage domain.AppStage) error {
	return s.save(repository.RecordStage, stage)
}

func (s *Store) LoadCredentials(ctx context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{}
	err := s.load(repository.RecordCredentials, &creds)
	return creds, err
}

func (s *Store) SaveCredentials(ctx context.Context, creds domain.Credentials) error {
	return s.save(repository.RecordCredentials, creds)
}

// SaveSnapshot writes the three records of one logical save. Each file write
// is individually atomic; atomicity across records is best-effort.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	if err := s.save(repository.RecordStage, snap.Stage); err != nil {
		return err
	}
	if err := s.save(repository.RecordProfile, snap.Profile); err != nil {
		return err
	}
	return s.save(repository.RecordRentalState, snap.Rentals)
}
