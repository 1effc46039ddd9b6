package game

import (
	"testing"

	"github.com/showdown-games/showdown/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

var allChoices = []types.Choice{
	types.ChoiceRock,
	types.ChoicePaper,
	types.ChoiceScissors,
	types.ChoiceLizard,
	types.ChoiceSpock,
}

func TestResolve_AllPairs(t *testing.T) {
	firstWins := map[[2]types.Choice]bool{
		{types.ChoiceRock, types.ChoiceScissors}:   true,
		{types.ChoiceRock, types.ChoiceLizard}:     true,
		{types.ChoicePaper, types.ChoiceRock}:      true,
		{types.ChoicePaper, types.ChoiceSpock}:     true,
		{types.ChoiceScissors, types.ChoicePaper}:  true,
		{types.ChoiceScissors, types.ChoiceLizard}: true,
		{types.ChoiceLizard, types.ChoiceSpock}:    true,
		{types.ChoiceLizard, types.ChoicePaper}:    true,
		{types.ChoiceSpock, types.ChoiceScissors}:  true,
		{types.ChoiceSpock, types.ChoiceRock}:      true,
	}

	draws := 0
	firsts := 0
	seconds := 0
	for _, first := range allChoices {
		for _, second := range allChoices {
			got := Resolve(first, second)
			var want types.Outcome
			switch {
			case first == second:
				want = types.OutcomeDraw
				draws++
			case firstWins[[2]types.Choice{first, second}]:
				want = types.OutcomeFirstWins
				firsts++
			default:
				want = types.OutcomeSecondWins
				seconds++
			}
			assert.Equal(t, want, got, "Resolve(%s, %s)", first, second)
		}
	}

	assert.Equal(t, 5, draws)
	assert.Equal(t, 10, firsts)
	assert.Equal(t, 10, seconds)
}

func TestResolve_Symmetric(t *testing.T) {
	for _, first := range allChoices {
		for _, second := range allChoices {
			forward := Resolve(first, second)
			backward := Resolve(second, first)
			switch forward {
			case types.OutcomeDraw:
				assert.Equal(t, types.OutcomeDraw, backward, "Resolve(%s, %s)", second, first)
			case types.OutcomeFirstWins:
				assert.Equal(t, types.OutcomeSecondWins, backward, "Resolve(%s, %s)", second, first)
			case types.OutcomeSecondWins:
				assert.Equal(t, types.OutcomeFirstWins, backward, "Resolve(%s, %s)", second, first)
			}
		}
	}
}
