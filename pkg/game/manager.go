package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/showdown-games/showdown/pkg/commitment"
	"github.com/showdown-games/showdown/pkg/escrow"
	"github.com/showdown-games/showdown/pkg/events"
	"github.com/showdown-games/showdown/pkg/game/types"
	"github.com/showdown-games/showdown/pkg/log"
	"github.com/showdown-games/showdown/pkg/repositories"
)

// Manager drives the lifecycle of wager games. Public operations are
// serialized by a single mutex so that every precondition is checked
// against the stored, pre-operation state and each operation either
// fully applies or leaves the record untouched.
type Manager struct {
	lock             sync.Mutex
	repository       repositories.Repository
	escrow           escrow.Escrow
	eventManager     *events.EventManager
	finishedGameChan chan<- int64
}

// NewManagerOptions contains options for creating a new Manager.
type NewManagerOptions struct {
	Repository   repositories.Repository
	Escrow       escrow.Escrow
	EventManager *events.EventManager
	// FinishedGameChan receives the id of each finished game.
	// Optional; sends are non-blocking.
	FinishedGameChan chan<- int64
}

func NewManager(opts NewManagerOptions) *Manager {
	return &Manager{
		repository:       opts.Repository,
		escrow:           opts.Escrow,
		eventManager:     opts.EventManager,
		finishedGameChan: opts.FinishedGameChan,
	}
}

// CreateGame opens a new game with the caller as first party. The
// caller's stake is taken into escrow custody for the new game.
func (m *Manager) CreateGame(ctx context.Context, caller string, commitmentDigest string, stake int64) (int64, error) {
	if stake <= 0 {
		return 0, &ErrInvalidInput{Reason: "stake must be positive"}
	}
	if !commitment.ValidDigest(commitmentDigest) {
		return 0, &ErrInvalidInput{Reason: "malformed commitment"}
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	game := &types.Game{
		FirstParty:      caller,
		FirstCommitment: commitmentDigest,
		Stake:           stake,
		Phase:           types.PhaseOpen,
	}
	id, err := m.repository.CreateGame(ctx, game)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %v", err)
	}

	if err := m.escrow.Deposit(ctx, id, caller, stake); err != nil {
		return 0, fmt.Errorf("failed to deposit stake for game %d: %v", id, err)
	}

	log.Info("Game %d created by %s with stake %d", id, caller, stake)
	m.eventManager.Trigger(events.NewGameCreated(id, caller, stake))

	return id, nil
}

// JoinGame adds the caller as second party to an open game. The
// caller must match the stake exactly and may not be the first party.
func (m *Manager) JoinGame(ctx context.Context, caller string, gameID int64, commitmentDigest string, stake int64) error {
	if !commitment.ValidDigest(commitmentDigest) {
		return &ErrInvalidInput{Reason: "malformed commitment"}
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	game, err := m.repository.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != types.PhaseOpen {
		return &ErrInvalidPhase{Phase: game.Phase}
	}
	if caller == game.FirstParty {
		return &ErrUnauthorized{Reason: "cannot join your own game"}
	}
	if stake != game.Stake {
		return &ErrInvalidInput{Reason: fmt.Sprintf("stake %d does not match game stake %d", stake, game.Stake)}
	}

	game.SecondParty = caller
	game.SecondCommitment = commitmentDigest
	game.Phase = types.PhaseJoined

	if err := m.escrow.Deposit(ctx, gameID, caller, stake); err != nil {
		return fmt.Errorf("failed to deposit stake for game %d: %v", gameID, err)
	}
	if err := m.repository.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game %d: %v", gameID, err)
	}

	log.Info("Game %d joined by %s", gameID, caller)
	m.eventManager.Trigger(events.NewGameJoined(gameID, caller))

	return nil
}

// Reveal discloses the caller's choice and secret for verification
// against the commitment made earlier. The first party must reveal
// before the second; the second reveal resolves the game and pays out
// before returning.
func (m *Manager) Reveal(ctx context.Context, caller string, gameID int64, choice types.Choice, secret string) error {
	if choice == types.ChoiceNone {
		return &ErrInvalidInput{Reason: "choice must not be none"}
	}
	if choice < types.ChoiceRock || choice > types.ChoiceSpock {
		return &ErrInvalidInput{Reason: fmt.Sprintf("invalid choice %d", choice)}
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	game, err := m.repository.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	switch {
	case caller == game.FirstParty:
		if game.FirstChoice != types.ChoiceNone {
			return &ErrAlreadyRevealed{}
		}
		if game.Phase != types.PhaseJoined {
			return &ErrInvalidPhase{Phase: game.Phase}
		}
		if !commitment.Verify(choice, secret, game.FirstCommitment) {
			return &ErrCommitmentMismatch{}
		}
		game.FirstChoice = choice
		game.Phase = types.PhaseFirstRevealed
	case game.SecondParty != "" && caller == game.SecondParty:
		if game.SecondChoice != types.ChoiceNone {
			return &ErrAlreadyRevealed{}
		}
		if game.Phase != types.PhaseFirstRevealed {
			return &ErrInvalidPhase{Phase: game.Phase}
		}
		if !commitment.Verify(choice, secret, game.SecondCommitment) {
			return &ErrCommitmentMismatch{}
		}
		game.SecondChoice = choice
	default:
		return &ErrUnauthorized{Reason: "caller is not a player in this game"}
	}

	var finishEvent *events.Event
	if game.FirstChoice != types.ChoiceNone && game.SecondChoice != types.ChoiceNone {
		event, err := m.resolve(ctx, game)
		if err != nil {
			return err
		}
		finishEvent = &event
		game.Phase = types.PhaseFinished
	}

	if err := m.repository.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game %d: %v", gameID, err)
	}

	log.Info("Game %d: %s revealed %s", gameID, caller, choice)
	m.eventManager.Trigger(events.NewMoveRevealed(gameID, caller, choice))
	if finishEvent != nil {
		m.eventManager.Trigger(*finishEvent)
		m.notifyFinished(gameID)
	}

	return nil
}

// resolve determines the winner and performs the single payout for a
// game whose choices are both revealed. A payout failure here means
// value conservation would be violated; the game does not finish and
// the error is surfaced as-is.
func (m *Manager) resolve(ctx context.Context, game *types.Game) (events.Event, error) {
	outcome := Resolve(game.FirstChoice, game.SecondChoice)
	switch outcome {
	case types.OutcomeDraw:
		if err := m.escrow.Payout(ctx, game.ID, game.FirstParty, game.Stake); err != nil {
			return events.Event{}, fmt.Errorf("failed to refund first party for game %d: %v", game.ID, err)
		}
		if err := m.escrow.Payout(ctx, game.ID, game.SecondParty, game.Stake); err != nil {
			return events.Event{}, fmt.Errorf("failed to refund second party for game %d: %v", game.ID, err)
		}
		log.Info("Game %d ended in a draw, stakes refunded", game.ID)
		return events.NewGameDraw(game.ID), nil
	default:
		winner := game.FirstParty
		if outcome == types.OutcomeSecondWins {
			winner = game.SecondParty
		}
		prize := 2 * game.Stake
		if err := m.escrow.Payout(ctx, game.ID, winner, prize); err != nil {
			return events.Event{}, fmt.Errorf("failed to pay out game %d: %v", game.ID, err)
		}
		log.Info("Game %d won by %s for %d", game.ID, winner, prize)
		return events.NewGameFinished(game.ID, winner, prize), nil
	}
}

func (m *Manager) notifyFinished(gameID int64) {
	if m.finishedGameChan == nil {
		return
	}
	select {
	case m.finishedGameChan <- gameID:
	default:
		log.Warn("Finished game channel is full, dropping game %d", gameID)
	}
}
