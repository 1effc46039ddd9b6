package workers

import (
	"context"

	"github.com/showdown-games/showdown/pkg/archive"
	"github.com/showdown-games/showdown/pkg/log"
	"github.com/showdown-games/showdown/pkg/repositories"
)

type ArchiveGameWorker struct {
	repository       repositories.Repository
	finishedGameChan <-chan int64
	writer           *archive.Writer
}

type NewArchiveGameWorkerOptions struct {
	Repository       repositories.Repository
	FinishedGameChan <-chan int64
	Writer           *archive.Writer
}

// NewArchiveGameWorker creates a new ArchiveGameWorker.
// The worker receives finished game ids from the game manager and
// appends the final record to the audit archive.
func NewArchiveGameWorker(opts NewArchiveGameWorkerOptions) *ArchiveGameWorker {
	return &ArchiveGameWorker{
		repository:       opts.Repository,
		finishedGameChan: opts.FinishedGameChan,
		writer:           opts.Writer,
	}
}

func (w *ArchiveGameWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case gameID := <-w.finishedGameChan:
			w.archiveGame(ctx, gameID)
		}
	}
}

func (w *ArchiveGameWorker) archiveGame(ctx context.Context, gameID int64) {
	game, err := w.repository.GetGame(ctx, gameID)
	if err != nil {
		log.Error("Failed to get finished game %d: %v", gameID, err)
		return
	}
	if err := w.writer.Append(game); err != nil {
		log.Error("Failed to archive game %d: %v", gameID, err)
		return
	}
	log.Debug("Archived game %d", gameID)
}
