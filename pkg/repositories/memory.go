package repositories

import (
	"context"
	"sync"

	gametypes "github.com/showdown-games/showdown/pkg/game/types"
)

// InMemoryRepository is a Repository backed by a map. It is used in
// tests and for running the server without a database.
type InMemoryRepository struct {
	lock   sync.RWMutex
	games  map[int64]*gametypes.Game
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		games:  make(map[int64]*gametypes.Game),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) CreateGame(ctx context.Context, game *gametypes.Game) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	id := r.nextID
	r.nextID++
	stored := game.Copy()
	stored.ID = id
	r.games[id] = stored
	return id, nil
}

func (r *InMemoryRepository) GetGame(ctx context.Context, id int64) (*gametypes.Game, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	game, ok := r.games[id]
	if !ok {
		return nil, &ErrNotFound{}
	}
	return game.Copy(), nil
}

func (r *InMemoryRepository) UpdateGame(ctx context.Context, game *gametypes.Game) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.games[game.ID]; !ok {
		return &ErrNotFound{}
	}
	r.games[game.ID] = game.Copy()
	return nil
}

func (r *InMemoryRepository) ListGames(ctx context.Context) ([]*gametypes.Game, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	games := make([]*gametypes.Game, 0, len(r.games))
	for _, game := range r.games {
		games = append(games, game.Copy())
	}
	return games, nil
}
