package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"gameshelf-backend/internal/domain"
)

// memRepo is an in-memory StateRepository for tests. Saves can be forced to
// fail to exercise the swallowed-write-failure paths.
type memRepo struct {
	mu          sync.Mutex
	rentals     domain.RentalState
	profile     domain.UserProfile
	stage       domain.AppStage
	creds       domain.Credentials
	hasStage    bool
	failSaves   bool
	failLoads   bool
	snapshotted int
}

func newMemRepo() *memRepo {
	return &memRepo{creds: domain.Credentials{}}
}

var errForced = errors.New("forced failure")

func (m *memRepo) LoadRentalState(ctx context.Context) (domain.RentalState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return domain.RentalState{}, errForced
	}
	return m.rentals, nil
}

func (m *memRepo) SaveRentalState(ctx context.Context, state domain.RentalState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errForced
	}
	m.rentals = state
	return nil
}

func (m *memRepo) LoadProfile(ctx context.Context) (domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return domain.UserProfile{}, errForced
	}
	return m.profile, nil
}

func (m *memRepo) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errForced
	}
	m.profile = profile
	return nil
}

func (m *memRepo) LoadStage(ctx context.Context) (domain.AppStage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return domain.StageAuth, errForced
	}
	if !m.hasStage {
		return domain.StageAuth, nil
	}
	return m.stage, nil
}

func (m *memRepo) SaveStage(ctx context.Context, stage domain.AppStage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errForced
	}
	m.stage = stage
	m.hasStage = true
	return nil
}

func (m *memRepo) LoadCredentials(ctx context.Context) (domain.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return domain.Credentials{}, errForced
	}
	out := domain.Credentials{}
	for k, v := range m.creds {
		out[k] = v
	}
	return out, nil
}

func (m *memRepo) SaveCredentials(ctx context.Context, creds domain.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errForced
	}
	m.creds = creds
	return nil
}

func (m *memRepo) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errForced
	}
	m.stage = snap.Stage
	m.hasStage = true
	m.profile = snap.Profile
	m.rentals = snap.Rentals
	m.snapshotted++
	return nil
}

// fixedCalendar pins Now to a known instant; AddDays stays calendar-correct.
type fixedCalendar struct {
	now time.Time
}

func (c fixedCalendar) Now() time.Time {
	return c.now
}

func (c fixedCalendar) AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
