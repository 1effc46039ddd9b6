package repositories

import (
	"context"

	gametypes "github.com/showdown-games/showdown/pkg/game/types"
)

// Repository stores game records. It issues monotonically increasing
// ids starting at 1, so id 0 always means "does not exist". No
// business-rule validation lives here.
type Repository interface {
	Close(ctx context.Context) error
	// CreateGame persists a new game record and returns its id.
	CreateGame(ctx context.Context, game *gametypes.Game) (int64, error)
	// GetGame returns the game record for id, or ErrNotFound.
	GetGame(ctx context.Context, id int64) (*gametypes.Game, error)
	// UpdateGame persists the current state of an existing game record.
	UpdateGame(ctx context.Context, game *gametypes.Game) error
	// ListGames returns all game records.
	ListGames(ctx context.Context) ([]*gametypes.Game, error)
}
