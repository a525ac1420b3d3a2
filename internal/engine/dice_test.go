package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomesSingleDie(t *testing.T) {
	outcomes, err := Outcomes(Dice{6})
	require.NoError(t, err)

	require.Len(t, outcomes, 6)
	for i, o := range outcomes {
		assert.Equal(t, Outcome{i + 1}, o)
	}
}

func TestOutcomesLexicographic(t *testing.T) {
	outcomes, err := Outcomes(Dice{2, 3})
	require.NoError(t, err)

	expected := []Outcome{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}
	assert.Equal(t, expected, outcomes)
}

func TestOutcomesCompleteAndBounded(t *testing.T) {
	configs := []Dice{{1}, {6}, {6, 6}, {4, 6, 8}, {1, 1, 1}, {3, 1, 2}}

	for _, d := range configs {
		t.Run(d.String(), func(t *testing.T) {
			outcomes, err := Outcomes(d)
			require.NoError(t, err)
			require.Len(t, outcomes, d.Count())

			seen := make(map[string]bool, len(outcomes))
			for _, o := range outcomes {
				require.Len(t, o, len(d))
				for i, v := range o {
					assert.GreaterOrEqual(t, v, 1)
					assert.LessOrEqual(t, v, d[i])
				}
				assert.False(t, seen[o.Label()], "duplicate outcome %s", o.Label())
				seen[o.Label()] = true
			}
		})
	}
}

func TestOutcomesDoNotAlias(t *testing.T) {
	outcomes, err := Outcomes(Dice{2, 2})
	require.NoError(t, err)

	outcomes[0][0] = 99
	assert.Equal(t, Outcome{1, 2}, outcomes[1])
}

func TestOutcomesInvalid(t *testing.T) {
	tests := []struct {
		name string
		dice Dice
	}{
		{"empty", Dice{}},
		{"nil", nil},
		{"zero faces", Dice{6, 0}},
		{"negative faces", Dice{-4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes, err := Outcomes(tt.dice)
			assert.ErrorIs(t, err, ErrInvalidFaces)
			assert.Nil(t, outcomes)
			assert.Equal(t, 0, tt.dice.Count())
		})
	}
}

func TestOutcomesOverflow(t *testing.T) {
	dice := make(Dice, 64)
	for i := range dice {
		dice[i] = 6
	}

	outcomes, err := Outcomes(dice)
	assert.ErrorIs(t, err, ErrOutcomeOverflow)
	assert.Nil(t, outcomes)

	_, err = Outcomes(Dice{math.MaxInt, 2})
	assert.ErrorIs(t, err, ErrOutcomeOverflow)
}

func TestDiceCount(t *testing.T) {
	assert.Equal(t, 6, DefaultDice().Count())
	assert.Equal(t, 36, Dice{6, 6}.Count())
	assert.Equal(t, 192, Dice{4, 6, 8}.Count())
	assert.Equal(t, math.MaxInt, Dice{math.MaxInt, 2}.Count())
}

func TestDiceAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "6", DefaultDice().String())
	assert.Equal(t, "4,6,8", Dice{4, 6, 8}.String())
	assert.Equal(t, "5", Outcome{5}.Label())
	assert.Equal(t, "3+4", Outcome{3, 4}.Label())
	assert.Equal(t, 7, Outcome{3, 4}.Sum())
}
