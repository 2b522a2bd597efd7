package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi/internal/repository/storage/sqlite"
)

func newSQLiteRepo(t *testing.T) (context.Context, GameRepository) {
	t.Helper()

	ctx := context.Background()

	storage, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = storage.Close()
	})

	require.NoError(t, storage.Init(ctx))

	return ctx, NewSQLiteGameRepository(storage.Connection)
}

func TestSQLiteGameRepository_RoundTrip(t *testing.T) {
	ctx, gameRepo := newSQLiteRepo(t)

	// Given: a stored game state
	state := sampleState()
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "slot1", state))

	// When: loading it back
	retrieved, err := gameRepo.GetByName(ctx, "slot1")

	// Then: the state survives unchanged
	require.NoError(t, err)
	require.Equal(t, state, retrieved)
}

func TestSQLiteGameRepository_Upsert(t *testing.T) {
	ctx, gameRepo := newSQLiteRepo(t)

	// Given: a slot saved twice with different turns
	state := sampleState()
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "slot1", state))

	state.Turn = 1
	state.Skipped = 0
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "slot1", state))

	// When: loading the slot
	retrieved, err := gameRepo.GetByName(ctx, "slot1")

	// Then: the second save won
	require.NoError(t, err)
	require.Equal(t, 1, retrieved.Turn)
	require.Equal(t, 0, retrieved.Skipped)
}

func TestSQLiteGameRepository_NotFoundAndDelete(t *testing.T) {
	ctx, gameRepo := newSQLiteRepo(t)

	// When: loading a slot that was never saved
	_, err := gameRepo.GetByName(ctx, "no-such-slot")

	// Then: an ErrGameNotFound error should be returned
	require.ErrorIs(t, err, ErrGameNotFound)

	// Given: a saved slot
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, "slot1", sampleState()))

	// When: deleting it
	require.NoError(t, gameRepo.DeleteByName(ctx, "slot1"))

	// Then: the slot is gone
	_, err = gameRepo.GetByName(ctx, "slot1")
	assert.ErrorIs(t, err, ErrGameNotFound)
}
