package workers

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/showdown-games/showdown/pkg/archive"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	"github.com/showdown-games/showdown/pkg/repositories"
	"github.com/stretchr/testify/require"
)

func TestArchiveGameWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository := repositories.NewInMemoryRepository()
	gameID, err := repository.CreateGame(ctx, &gametypes.Game{
		FirstParty:   "alice",
		SecondParty:  "bob",
		FirstChoice:  gametypes.ChoiceRock,
		SecondChoice: gametypes.ChoiceScissors,
		Stake:        10,
		Phase:        gametypes.PhaseFinished,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "games.archive")
	writer, err := archive.NewWriter(path)
	require.NoError(t, err)
	defer writer.Close()

	finishedGameChan := make(chan int64, 1)
	worker := NewArchiveGameWorker(NewArchiveGameWorkerOptions{
		Repository:       repository,
		FinishedGameChan: finishedGameChan,
		Writer:           writer,
	})
	go worker.Start(ctx)

	finishedGameChan <- gameID

	require.Eventually(t, func() bool {
		games, err := archive.Read(path)
		return err == nil && len(games) == 1 && games[0].ID == gameID
	}, 2*time.Second, 10*time.Millisecond)
}
