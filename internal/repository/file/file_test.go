package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf-backend/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadMissingRecordsReturnDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stage, err := store.LoadStage(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.StageAuth, stage)

	profile, err := store.LoadProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserProfile{}, profile)

	rentals, err := store.LoadRentalState(ctx)
	assert.NoError(t, err)
	assert.Empty(t, rentals.Active)
	assert.Empty(t, rentals.Past)

	creds, err := store.LoadCredentials(ctx)
	assert.NoError(t, err)
	assert.Empty(t, creds)
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := domain.UserProfile{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "407-555-0142",
		Location:  "Orlando, FL",
	}
	require.NoError(t, store.SaveProfile(ctx, profile))

	loaded, err := store.LoadProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, profile, loaded)
}

func TestRentalStateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pickup := time.Date(2026, time.March, 16, 14, 0, 0, 0, time.UTC)
	state := domain.RentalState{
		Active: []domain.Rental{{
			ID:               "r1",
			Game:             domain.BoardGame{ID: "catan", Title: "Catan", DailyPrice: 7.99, Deposit: 25},
			PickupDate:       pickup,
			ReturnDate:       pickup.AddDate(0, 0, 3),
			Days:             3,
			DailyPrice:       7.99,
			Deposit:          25,
			TotalPaid:        48.97,
			Status:           domain.RentalStatusBooked,
			PaymentStatus:    domain.PaymentStatusPaid,
			ConfirmationCode: "BG260314-ABCDEF",
			CreatedOn:        pickup.AddDate(0, 0, -2),
		}},
		Past: []domain.Rental{{ID: "r0", Status: domain.RentalStatusReturned, PaymentStatus: domain.PaymentStatusRefunded}},
	}
	require.NoError(t, store.SaveRentalState(ctx, state))

	loaded, err := store.LoadRentalState(ctx)
	assert.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestLoadStageRejectsUnknownValue(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stage.json"), []byte(`"TIME_TRAVEL"`), 0644))

	stage, err := store.LoadStage(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.StageAuth, stage)
}

func TestLoadCorruptRecordFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{not json"), 0644))

	profile, err := store.LoadProfile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.UserProfile{}, profile)
}

func TestSaveSnapshotWritesAllRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := domain.Snapshot{
		Stage:   domain.StageMain,
		Profile: domain.UserProfile{Email: "jane@example.com", Location: "Orlando, FL"},
		Rentals: domain.RentalState{Active: []domain.Rental{{ID: "r1"}}},
	}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	stage, err := store.LoadStage(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.StageMain, stage)

	profile, err := store.LoadProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, snap.Profile, profile)

	rentals, err := store.LoadRentalState(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals.Active, 1)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SaveStage(context.Background(), domain.StageProfile))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}
