package session

import (
	"fmt"
	"strings"

	"github.com/suderio/ojcalc/internal/engine"
)

// InputMode selects how the interactive shell collects a calculation.
type InputMode string

const (
	// ModeDetailed asks for each value on its own prompt.
	ModeDetailed InputMode = "detailed"
	// ModeQuick reads a whole calculation from a single line.
	ModeQuick InputMode = "quick"
)

// DefaultMaxOutcomes caps the size of the outcome space a single calculation may enumerate.
const DefaultMaxOutcomes = 1_000_000

// ParseInputMode accepts the mode names as well as the menu numbers "1" and "2".
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "detailed", "detail", "d":
		return ModeDetailed, nil
	case "2", "quick", "q":
		return ModeQuick, nil
	}
	return "", fmt.Errorf("unknown input mode %q (use detailed or quick)", s)
}

// Config is the per-session state of the shell, passed explicitly into every calculation.
type Config struct {
	Mode        InputMode
	ShowDetail  bool
	DefaultDice engine.Dice
	MaxOutcomes int
}

// DefaultConfig is a detailed-mode session rolling one six-sided die.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeDetailed,
		DefaultDice: engine.DefaultDice(),
		MaxOutcomes: DefaultMaxOutcomes,
	}
}

// fallbackDice returns the configured default when it is usable, and a single d6 otherwise.
func (c Config) fallbackDice() engine.Dice {
	if c.DefaultDice.Validate() == nil {
		return c.DefaultDice
	}
	return engine.DefaultDice()
}
