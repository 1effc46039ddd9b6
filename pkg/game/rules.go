package game

import (
	"github.com/showdown-games/showdown/pkg/game/types"
)

// beats maps each choice to the two choices it dominates:
// rock crushes scissors and lizard, paper covers rock and disproves
// Spock, scissors cut paper and decapitate lizard, lizard poisons
// Spock and eats paper, Spock smashes scissors and vaporizes rock.
var beats = map[types.Choice][]types.Choice{
	types.ChoiceRock:     {types.ChoiceScissors, types.ChoiceLizard},
	types.ChoicePaper:    {types.ChoiceRock, types.ChoiceSpock},
	types.ChoiceScissors: {types.ChoicePaper, types.ChoiceLizard},
	types.ChoiceLizard:   {types.ChoiceSpock, types.ChoicePaper},
	types.ChoiceSpock:    {types.ChoiceScissors, types.ChoiceRock},
}

// Resolve returns the outcome for two revealed choices. Equal choices
// are a draw; otherwise the beats relation is total over non-equal
// pairs, so either first beats second or second beats first.
func Resolve(first, second types.Choice) types.Outcome {
	if first == second {
		return types.OutcomeDraw
	}
	for _, beaten := range beats[first] {
		if beaten == second {
			return types.OutcomeFirstWins
		}
	}
	return types.OutcomeSecondWins
}
