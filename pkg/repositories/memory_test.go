package repositories

import (
	"context"
	"testing"

	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryRepository()

	for want := int64(1); want <= 3; want++ {
		id, err := repository.CreateGame(ctx, &gametypes.Game{FirstParty: "alice", Stake: 10})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestInMemoryRepository_GetUpdate(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryRepository()

	id, err := repository.CreateGame(ctx, &gametypes.Game{FirstParty: "alice", Stake: 10})
	require.NoError(t, err)

	game, err := repository.GetGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, game.ID)
	assert.Equal(t, "alice", game.FirstParty)

	// Mutating the returned copy must not affect the stored record.
	game.SecondParty = "bob"
	stored, err := repository.GetGame(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, stored.SecondParty)

	game.Phase = gametypes.PhaseJoined
	require.NoError(t, repository.UpdateGame(ctx, game))
	stored, err = repository.GetGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bob", stored.SecondParty)
	assert.Equal(t, gametypes.PhaseJoined, stored.Phase)
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryRepository()

	_, err := repository.GetGame(ctx, 0)
	assert.True(t, IsNotFound(err))

	_, err = repository.GetGame(ctx, 42)
	assert.True(t, IsNotFound(err))

	err = repository.UpdateGame(ctx, &gametypes.Game{ID: 42})
	assert.True(t, IsNotFound(err))
}

func TestInMemoryRepository_ListGames(t *testing.T) {
	ctx := context.Background()
	repository := NewInMemoryRepository()

	games, err := repository.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)

	_, err = repository.CreateGame(ctx, &gametypes.Game{FirstParty: "alice", Stake: 10})
	require.NoError(t, err)
	_, err = repository.CreateGame(ctx, &gametypes.Game{FirstParty: "bob", Stake: 20})
	require.NoError(t, err)

	games, err = repository.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}
