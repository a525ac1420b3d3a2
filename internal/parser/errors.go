package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrMalformedInput wraps every error produced while reading user input.
var ErrMalformedInput = errors.New("malformed input")

// Usage lines shown when a line cannot be understood.
const (
	QuickUsage = "expected: hp,attack,def,evd[,dice...] or hp attack def evd [dice...] (e.g. 3,5,2,1 or 3 5 2 1 6 6)"
	DiceUsage  = "expected dice faces separated by commas or spaces (e.g. 6 or 6,6 or 2d6)"
	FieldUsage = "expected a whole number"
)

// MapError turns a participle error into a human-friendly message carrying the expected format.
func MapError(input, usage string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("%w: empty input, %s", ErrMalformedInput, usage)
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %q at column %d: %s; %s", ErrMalformedInput, input, perr.Position().Column, perr.Message(), usage)
	}
	return fmt.Errorf("%w: %q: %v; %s", ErrMalformedInput, input, err, usage)
}
