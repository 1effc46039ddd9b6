package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  Choice
	}{
		{input: "rock", want: ChoiceRock},
		{input: "paper", want: ChoicePaper},
		{input: "scissors", want: ChoiceScissors},
		{input: "lizard", want: ChoiceLizard},
		{input: "spock", want: ChoiceSpock},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChoice(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseChoice_Invalid(t *testing.T) {
	for _, input := range []string{"", "none", "Rock", "dynamite"} {
		_, err := ParseChoice(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestGame_Copy(t *testing.T) {
	game := &Game{
		ID:         1,
		FirstParty: "alice",
		Stake:      10,
		Phase:      PhaseOpen,
	}
	copy := game.Copy()
	copy.Phase = PhaseJoined
	copy.SecondParty = "bob"

	assert.Equal(t, PhaseOpen, game.Phase)
	assert.Empty(t, game.SecondParty)
}
