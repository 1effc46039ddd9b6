package types

import "fmt"

// Choice represents a player's move. ChoiceNone is a sentinel meaning
// the player has not revealed yet and is never a valid reveal input.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceRock
	ChoicePaper
	ChoiceScissors
	ChoiceLizard
	ChoiceSpock
)

func (c Choice) String() string {
	switch c {
	case ChoiceNone:
		return "none"
	case ChoiceRock:
		return "rock"
	case ChoicePaper:
		return "paper"
	case ChoiceScissors:
		return "scissors"
	case ChoiceLizard:
		return "lizard"
	case ChoiceSpock:
		return "spock"
	default:
		return "unknown"
	}
}

// ParseChoice parses a choice string into a Choice.
// Valid choices are: rock, paper, scissors, lizard, spock.
func ParseChoice(choice string) (Choice, error) {
	switch choice {
	case "rock":
		return ChoiceRock, nil
	case "paper":
		return ChoicePaper, nil
	case "scissors":
		return ChoiceScissors, nil
	case "lizard":
		return ChoiceLizard, nil
	case "spock":
		return ChoiceSpock, nil
	default:
		return ChoiceNone, fmt.Errorf("unknown choice: %s", choice)
	}
}

// Phase represents the lifecycle stage of a game. Phases only move
// forward: Open -> Joined -> FirstRevealed -> Finished.
type Phase int

const (
	PhaseOpen Phase = iota
	PhaseJoined
	PhaseFirstRevealed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseJoined:
		return "joined"
	case PhaseFirstRevealed:
		return "first_revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome represents the result of resolving two revealed choices.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomeFirstWins:
		return "first_wins"
	case OutcomeSecondWins:
		return "second_wins"
	default:
		return "unknown"
	}
}

// Game is the record for a single wager, keyed by ID.
// The second party fields are zero until someone joins.
type Game struct {
	ID               int64  `json:"id"`
	FirstParty       string `json:"first_party"`
	SecondParty      string `json:"second_party,omitempty"`
	FirstCommitment  string `json:"first_commitment"`
	SecondCommitment string `json:"second_commitment,omitempty"`
	FirstChoice      Choice `json:"first_choice"`
	SecondChoice     Choice `json:"second_choice"`
	Stake            int64  `json:"stake"`
	Phase            Phase  `json:"phase"`
}

// Copy returns a copy of the game record.
func (g *Game) Copy() *Game {
	copy := *g
	return &copy
}
