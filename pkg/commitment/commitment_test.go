package commitment

import (
	"strings"
	"testing"

	"github.com/showdown-games/showdown/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeVerify_RoundTrip(t *testing.T) {
	choices := []types.Choice{
		types.ChoiceRock,
		types.ChoicePaper,
		types.ChoiceScissors,
		types.ChoiceLizard,
		types.ChoiceSpock,
	}
	secrets := []string{"s1", "a much longer secret with spaces", "日本語", ""}

	for _, choice := range choices {
		for _, secret := range secrets {
			digest := Compute(choice, secret)
			assert.Len(t, digest, 2*Size)
			assert.True(t, ValidDigest(digest))
			assert.True(t, Verify(choice, secret, digest), "Verify(%s, %q)", choice, secret)
		}
	}
}

func TestVerify_TamperDetection(t *testing.T) {
	digest := Compute(types.ChoiceRock, "s1")

	tests := []struct {
		name   string
		choice types.Choice
		secret string
		stored string
	}{
		{
			name:   "different choice",
			choice: types.ChoicePaper,
			secret: "s1",
			stored: digest,
		},
		{
			name:   "different secret",
			choice: types.ChoiceRock,
			secret: "s2",
			stored: digest,
		},
		{
			name:   "different digest",
			choice: types.ChoiceRock,
			secret: "s1",
			stored: Compute(types.ChoiceRock, "s2"),
		},
		{
			name:   "truncated digest",
			choice: types.ChoiceRock,
			secret: "s1",
			stored: digest[:10],
		},
		{
			name:   "not hex",
			choice: types.ChoiceRock,
			secret: "s1",
			stored: strings.Repeat("zz", Size),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify(tt.choice, tt.secret, tt.stored))
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	assert.Equal(t, Compute(types.ChoiceLizard, "secret"), Compute(types.ChoiceLizard, "secret"))
	assert.NotEqual(t, Compute(types.ChoiceLizard, "secret"), Compute(types.ChoiceSpock, "secret"))
}

func TestValidDigest(t *testing.T) {
	assert.True(t, ValidDigest(Compute(types.ChoiceRock, "s")))
	assert.False(t, ValidDigest(""))
	assert.False(t, ValidDigest("abc"))
	assert.False(t, ValidDigest(strings.Repeat("g", 2*Size)))
}
