package events

import (
	"time"

	"github.com/google/uuid"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
)

// Event types
const (
	EventTypeGameCreated  = "game_created"
	EventTypeGameJoined   = "game_joined"
	EventTypeMoveRevealed = "move_revealed"
	EventTypeGameFinished = "game_finished"
	EventTypeGameDraw     = "game_draw"
)

// Event represents a notification emitted at a game state transition.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

func newEvent(eventType string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
}

type GameCreated struct {
	GameID     int64  `json:"game_id"`
	FirstParty string `json:"first_party"`
	Stake      int64  `json:"stake"`
}

func NewGameCreated(gameID int64, firstParty string, stake int64) Event {
	return newEvent(EventTypeGameCreated, GameCreated{GameID: gameID, FirstParty: firstParty, Stake: stake})
}

type GameJoined struct {
	GameID      int64  `json:"game_id"`
	SecondParty string `json:"second_party"`
}

func NewGameJoined(gameID int64, secondParty string) Event {
	return newEvent(EventTypeGameJoined, GameJoined{GameID: gameID, SecondParty: secondParty})
}

type MoveRevealed struct {
	GameID int64  `json:"game_id"`
	Party  string `json:"party"`
	Choice string `json:"choice"`
}

func NewMoveRevealed(gameID int64, party string, choice gametypes.Choice) Event {
	return newEvent(EventTypeMoveRevealed, MoveRevealed{GameID: gameID, Party: party, Choice: choice.String()})
}

type GameFinished struct {
	GameID int64  `json:"game_id"`
	Winner string `json:"winner"`
	Prize  int64  `json:"prize"`
}

func NewGameFinished(gameID int64, winner string, prize int64) Event {
	return newEvent(EventTypeGameFinished, GameFinished{GameID: gameID, Winner: winner, Prize: prize})
}

type GameDraw struct {
	GameID int64 `json:"game_id"`
}

func NewGameDraw(gameID int64) Event {
	return newEvent(EventTypeGameDraw, GameDraw{GameID: gameID})
}
