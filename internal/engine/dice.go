package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFaces is the die rolled when no configuration is supplied.
const DefaultFaces = 6

var (
	// ErrInvalidFaces is returned when a dice configuration is empty or holds a die with less than one face.
	ErrInvalidFaces = errors.New("invalid dice configuration")
	// ErrOutcomeOverflow is returned when the outcome space does not fit in an int.
	ErrOutcomeOverflow = errors.New("dice outcome space too large")
)

// Dice lists the face count of every die added to a defensive stat, in roll order.
type Dice []int

// DefaultDice returns a single six-sided die.
func DefaultDice() Dice {
	return Dice{DefaultFaces}
}

// Validate asserts the configuration is non-empty and every die has at least one face.
func (d Dice) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no dice configured", ErrInvalidFaces)
	}
	for i, faces := range d {
		if faces < 1 {
			return fmt.Errorf("%w: die %d has %d faces", ErrInvalidFaces, i+1, faces)
		}
	}
	return nil
}

// Count returns the size of the outcome space, saturating at math.MaxInt.
// Invalid configurations count as zero outcomes.
func (d Dice) Count() int {
	if d.Validate() != nil {
		return 0
	}
	total := 1
	for _, faces := range d {
		if total > math.MaxInt/faces {
			return math.MaxInt
		}
		total *= faces
	}
	return total
}

// String renders the configuration the way it is typed, e.g. "6,6".
func (d Dice) String() string {
	parts := make([]string, len(d))
	for i, faces := range d {
		parts[i] = strconv.Itoa(faces)
	}
	return strings.Join(parts, ",")
}

// Outcome is one realized roll: a value in [1, faces] for every die of a configuration.
type Outcome []int

// Sum adds every die of the outcome.
func (o Outcome) Sum() int {
	total := 0
	for _, v := range o {
		total += v
	}
	return total
}

// Label renders the outcome as "3+4", or just "5" for a single die.
func (o Outcome) Label() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "+")
}

// Outcomes enumerates the Cartesian product of [1, faces] for every die in d.
// The last die varies fastest, so the result is in lexicographic order.
func Outcomes(d Dice) ([]Outcome, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.Count()
	if n == math.MaxInt {
		return nil, fmt.Errorf("%w: [%s]", ErrOutcomeOverflow, d.String())
	}

	out := make([]Outcome, 0, n)
	current := make([]int, len(d))
	for i := range current {
		current[i] = 1
	}

	for {
		o := make(Outcome, len(current))
		copy(o, current)
		out = append(out, o)

		// Advance like an odometer, carrying into the previous die.
		i := len(current) - 1
		for ; i >= 0; i-- {
			if current[i] < d[i] {
				current[i]++
				break
			}
			current[i] = 1
		}
		if i < 0 {
			return out, nil
		}
	}
}
