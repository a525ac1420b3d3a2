package parser

import (
	"fmt"
	"strings"

	"github.com/suderio/ojcalc/internal/engine"
)

// Quick is a parsed one-line calculation. Dice is nil when the line did not list any.
type Quick struct {
	Params engine.Params
	Dice   engine.Dice
}

// ParseQuick reads "hp,attack,def,evd[,dice...]" or the same values separated by spaces.
// Dice are returned as typed; rejecting faces below 1 is left to the caller.
func ParseQuick(input string) (Quick, error) {
	line, err := quickParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return Quick{}, MapError(input, QuickUsage, err)
	}

	dice, err := expandAll(line.Dice)
	if err != nil {
		return Quick{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return Quick{
		Params: engine.Params{
			HP:      int(line.HP),
			Attack:  int(line.Attack),
			Defense: int(line.Defense),
			Evasion: int(line.Evasion),
		},
		Dice: dice,
	}, nil
}

// ParseDice reads a dice configuration such as "6", "6,6", "4 6 8" or "2d6". Blank input yields nil.
func ParseDice(input string) (engine.Dice, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	cfg, err := diceParser.ParseString("", input)
	if err != nil {
		return nil, MapError(input, DiceUsage, err)
	}

	dice, err := expandAll(cfg.Dice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return dice, nil
}

// ParseField reads a single integer answer.
func ParseField(input string) (int, error) {
	field, err := fieldParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return 0, MapError(input, FieldUsage, err)
	}
	return int(field.Value), nil
}
