package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suderio/ojcalc/internal/engine"
)

// Number is a decimal integer. Leading zeros do not switch to octal.
type Number int

// Capture implements participle.Capture.
func (n *Number) Capture(values []string) error {
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("%s is not a whole number in range", values[0])
	}
	*n = Number(v)
	return nil
}

// QuickInput is a whole calculation typed on one line: hp, attack, def, evd and optional dice.
type QuickInput struct {
	HP      Number     `parser:"@Int Sep"`
	Attack  Number     `parser:"@Int Sep"`
	Defense Number     `parser:"@Int Sep"`
	Evasion Number     `parser:"@Int"`
	Dice    []*DieExpr `parser:"( Sep @@ )*"`
}

// DiceInput is a standalone dice configuration, e.g. "6,6" or "2d6 4".
type DiceInput struct {
	Dice []*DieExpr `parser:"( @@ ( Sep @@ )* )?"`
}

// FieldInput is a single integer answer to a prompt.
type FieldInput struct {
	Value Number `parser:"@Int"`
}

// MaxMacroDice bounds the N of an NdS macro.
const MaxMacroDice = 64

// DieExpr is either a face count ("6") or a macro rolling N dice of S faces ("2d6").
type DieExpr struct {
	Macro string `parser:"  @DiceMacro"`
	Faces Number `parser:"| @Int"`
}

// Expand converts the expression into one face count per die.
func (d *DieExpr) Expand() (engine.Dice, error) {
	if d.Macro == "" {
		return engine.Dice{int(d.Faces)}, nil
	}

	count, sides, _ := strings.Cut(strings.ToLower(d.Macro), "d")
	n := 1
	if count != "" {
		parsed, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid dice count in %s: %w", d.Macro, err)
		}
		n = parsed
	}
	if n > MaxMacroDice {
		return nil, fmt.Errorf("cannot roll more than %d dice in %s", MaxMacroDice, d.Macro)
	}
	faces, err := strconv.Atoi(sides)
	if err != nil {
		return nil, fmt.Errorf("invalid dice sides in %s: %w", d.Macro, err)
	}

	out := make(engine.Dice, n)
	for i := range out {
		out[i] = faces
	}
	return out, nil
}

func expandAll(exprs []*DieExpr) (engine.Dice, error) {
	var out engine.Dice
	for _, e := range exprs {
		d, err := e.Expand()
		if err != nil {
			return nil, err
		}
		out = append(out, d...)
	}
	return out, nil
}
